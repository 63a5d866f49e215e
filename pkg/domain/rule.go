package domain

// Direction is the head movement a rule performs after writing.
type Direction int

const (
	Left Direction = iota
	Right
	Stay
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Stay:
		return "stay"
	}
	return "unknown"
}

// Rule is a quintuple: when the machine is in state From and reads Read,
// it writes Write, moves the head per Move and enters state To.
type Rule struct {
	From  State
	Read  Symbol
	To    State
	Write Symbol
	Move  Direction
}

// Action is the right-hand side of a rule, as returned by a table lookup.
type Action struct {
	To    State
	Write Symbol
	Move  Direction
}

// Action returns the rule's right-hand side.
func (r Rule) Action() Action {
	return Action{To: r.To, Write: r.Write, Move: r.Move}
}
