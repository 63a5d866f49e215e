package domain

// Symbol is a single tape cell value. Symbols are compared for equality
// only; no ordering is implied.
type Symbol rune

// Blank is the symbol implicitly filling every tape position that has
// never been written.
const Blank Symbol = '_'

func (s Symbol) String() string {
	return string(rune(s))
}

// State identifies a machine control state. The engine places no upper
// bound on state numbers; the key space is whatever actually appears in
// a program's rules.
type State uint
