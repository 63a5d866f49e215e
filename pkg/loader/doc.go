/*
Package loader parses Turing machine programs into validated
domain.Program values. The engine never sees raw text; malformed input
is this package's error domain, reported as ParseError with a line
reference.

Two formats are supported. The tng text format is line-oriented:

	# comments start with '#' or '/'
	+0          initial state (one per program, last wins)
	-6          halting state (repeatable)
	!7          rejecting state (repeatable)
	0,1,1,0,r   quintuple: from,to,read,write,move

Symbols are single characters; '_' and ' ' denote the blank. Moves are
r, l or n (no move), case-insensitive.

The YAML format spells the same structure out explicitly and is the more
natural home for programs with several halting states:

	initial: 0
	halting: [6]
	rejecting: [7]
	rules:
	  - {from: 0, to: 1, read: "1", write: "0", move: right}
*/
package loader
