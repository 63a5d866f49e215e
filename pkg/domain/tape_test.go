package domain_test

import (
	"testing"

	"github.com/aretw0/tng/pkg/domain"
)

func TestTape_BlankByDefault(t *testing.T) {
	tape := domain.NewTape()
	if got := tape.Read(); got != domain.Blank {
		t.Errorf("expected blank on a fresh tape, got %q", got)
	}
	if snap := tape.Snapshot(); snap != nil {
		t.Errorf("expected nil snapshot before any write, got %v", snap)
	}

	// Moving far out never materializes cells.
	for i := 0; i < 100; i++ {
		tape.Move(domain.Left)
	}
	if got := tape.Read(); got != domain.Blank {
		t.Errorf("expected blank far left of origin, got %q", got)
	}
}

func TestTape_WriteExtendsBothDirections(t *testing.T) {
	tape := domain.NewTape()

	tape.Write('1') // position 0
	for i := 0; i < 3; i++ {
		tape.Move(domain.Right)
	}
	tape.Write('a') // position 3
	for i := 0; i < 5; i++ {
		tape.Move(domain.Left)
	}
	tape.Write('b') // position -2

	lo, hi, ok := tape.Bounds()
	if !ok || lo != -2 || hi != 3 {
		t.Fatalf("bounds = (%d, %d, %v), want (-2, 3, true)", lo, hi, ok)
	}
	if got := tape.String(); got != "b_1__a" {
		t.Errorf("snapshot = %q, want %q", got, "b_1__a")
	}
	if tape.Head() != -2 {
		t.Errorf("head = %d, want -2", tape.Head())
	}
}

func TestTape_DistantWritesPreserveEarlierCells(t *testing.T) {
	tape := domain.NewTape('1', '1', '1')

	for i := 0; i < 1000; i++ {
		tape.Move(domain.Right)
	}
	tape.Write('x')
	for i := 0; i < 2000; i++ {
		tape.Move(domain.Left)
	}
	tape.Write('y')

	snap := tape.Snapshot()
	if len(snap) != 2001 {
		t.Fatalf("snapshot length = %d, want 2001", len(snap))
	}
	if snap[0] != 'y' || snap[len(snap)-1] != 'x' {
		t.Errorf("snapshot edges = %q %q, want y x", snap[0], snap[len(snap)-1])
	}
	// The original block is untouched at positions 0..2.
	for i, want := range []domain.Symbol{'1', '1', '1'} {
		if snap[1000+i] != want {
			t.Errorf("snapshot[%d] = %q, want %q", 1000+i, snap[1000+i], want)
		}
	}
}

func TestParseTape_HeadAtFirstNonBlank(t *testing.T) {
	tape := domain.ParseTape("__101_")
	if tape.Head() != 2 {
		t.Errorf("head = %d, want 2", tape.Head())
	}
	if got := tape.String(); got != "__101_" {
		t.Errorf("round trip = %q, want %q", got, "__101_")
	}

	blank := domain.ParseTape("___")
	if blank.Head() != 0 {
		t.Errorf("all-blank head = %d, want 0", blank.Head())
	}

	// Space is an alias for blank in tape text.
	spaced := domain.ParseTape(" 1 ")
	if spaced.Head() != 1 {
		t.Errorf("spaced head = %d, want 1", spaced.Head())
	}
	if got := spaced.String(); got != "_1_" {
		t.Errorf("spaced = %q, want %q", got, "_1_")
	}
}

func TestTape_StayLeavesHeadInPlace(t *testing.T) {
	tape := domain.ParseTape("1")
	tape.Move(domain.Stay)
	if tape.Head() != 0 {
		t.Errorf("head = %d, want 0", tape.Head())
	}
}
