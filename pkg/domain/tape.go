package domain

import "strings"

// Tape is an unbounded, bidirectionally extensible sequence of symbols
// with a single read/write head. Reading a position that was never
// written returns Blank; writing extends the tape's effective bounds
// without limit. It is backed by two growable buffers, one per sign of
// the position, never a fixed-size array.
//
// A Tape is owned exclusively by one run; it is not safe for concurrent
// use.
type Tape struct {
	right []Symbol // positions >= 0
	left  []Symbol // position -1 at index 0, -2 at index 1, ...
	head  int

	// lowest and highest positions ever written; only valid when written.
	lo, hi  int
	written bool
}

// NewTape creates a tape with the given symbols placed at positions
// 0..len-1 and the head at position 0. With no symbols the tape is
// entirely blank.
func NewTape(cells ...Symbol) *Tape {
	t := &Tape{}
	for i, s := range cells {
		t.head = i
		t.Write(s)
	}
	t.head = 0
	return t
}

// ParseTape builds a tape from a string, one symbol per rune. '_' and
// ' ' map to Blank. The head starts at the first non-blank cell, or at
// position 0 when every cell is blank.
func ParseTape(s string) *Tape {
	t := &Tape{}
	head := 0
	seen := false
	for i, r := range []rune(s) {
		sym := Symbol(r)
		if r == ' ' {
			sym = Blank
		}
		t.head = i
		t.Write(sym)
		if !seen && sym != Blank {
			head = i
			seen = true
		}
	}
	t.head = head
	return t
}

// Read returns the symbol at the current head position, Blank if that
// position was never written.
func (t *Tape) Read() Symbol {
	return t.at(t.head)
}

// Write sets the symbol at the current head position. It does not move
// the head.
func (t *Tape) Write(s Symbol) {
	pos := t.head
	if pos >= 0 {
		for len(t.right) <= pos {
			t.right = append(t.right, Blank)
		}
		t.right[pos] = s
	} else {
		i := -pos - 1
		for len(t.left) <= i {
			t.left = append(t.left, Blank)
		}
		t.left[i] = s
	}

	if !t.written {
		t.lo, t.hi, t.written = pos, pos, true
		return
	}
	if pos < t.lo {
		t.lo = pos
	}
	if pos > t.hi {
		t.hi = pos
	}
}

// Move shifts the head one position left or right. Stay leaves it in
// place. There is no bound to check against; the tape is conceptually
// infinite in both directions.
func (t *Tape) Move(d Direction) {
	switch d {
	case Left:
		t.head--
	case Right:
		t.head++
	case Stay:
	}
}

// Head returns the current head position. Position 0 is where the input
// sequence starts; positions to its left are negative.
func (t *Tape) Head() int {
	return t.head
}

// Snapshot returns the contiguous symbols between the lowest and highest
// positions ever written, in position order. It is a read-only
// projection for inspection and testing, not part of the execution
// contract. A tape that was never written yields nil.
func (t *Tape) Snapshot() []Symbol {
	if !t.written {
		return nil
	}
	out := make([]Symbol, 0, t.hi-t.lo+1)
	for pos := t.lo; pos <= t.hi; pos++ {
		out = append(out, t.at(pos))
	}
	return out
}

// Bounds returns the lowest and highest positions ever written. The
// third return is false when nothing was written yet.
func (t *Tape) Bounds() (lo, hi int, ok bool) {
	return t.lo, t.hi, t.written
}

func (t *Tape) String() string {
	var b strings.Builder
	for _, s := range t.Snapshot() {
		b.WriteRune(rune(s))
	}
	return b.String()
}

func (t *Tape) at(pos int) Symbol {
	if pos >= 0 {
		if pos < len(t.right) {
			return t.right[pos]
		}
		return Blank
	}
	i := -pos - 1
	if i < len(t.left) {
		return t.left[i]
	}
	return Blank
}
