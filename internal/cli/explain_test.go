package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLeadingComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "copy.tng")
	src := "# Duplicates a block of 1s.\n# Output: input, one blank, input.\n\n+0\n-6\n0,1,1,0,r\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := leadingComments(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Duplicates a block of 1s.\nOutput: input, one blank, input."
	if got != want {
		t.Errorf("leadingComments = %q, want %q", got, want)
	}
}

func TestLeadingComments_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parity.yaml")
	if err := os.WriteFile(path, []byte("# yaml comment\ninitial: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := leadingComments(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("expected empty intro for yaml, got %q", got)
	}
}

func TestRun_RejectsConflictingModes(t *testing.T) {
	err := Run(RunOptions{Path: "whatever.tng", Trace: true, JSON: true})
	if err == nil {
		t.Fatal("expected error for --trace with --json")
	}
}
