/*
Package ports defines the interfaces between the tng core and its
collaborators: where programs come from and where run records go.

Adapters implementing these interfaces live under pkg/adapters. The
engine itself never parses text and never persists anything; it receives
a validated Program and returns a Result.
*/
package ports
