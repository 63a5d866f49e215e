package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/tng/internal/presentation/tui"
	"github.com/aretw0/tng/pkg/domain"
	"github.com/aretw0/tng/pkg/loader"
)

// Explain prints a human-readable description of a program file: its
// leading comment block rendered as markdown plus a summary of the
// machine (states, rules, markers).
func Explain(path string) error {
	program, err := loader.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	intro, err := leadingComments(path)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	if intro != "" {
		fmt.Fprintf(&b, "%s\n\n", intro)
	}
	fmt.Fprintf(&b, "- initial state: q%d\n", program.Initial())
	fmt.Fprintf(&b, "- halting states: %s\n", stateList(program.Halting()))
	if rejecting := program.Rejecting(); len(rejecting) > 0 {
		fmt.Fprintf(&b, "- rejecting states: %s\n", stateList(rejecting))
	}
	fmt.Fprintf(&b, "- rules: %d\n", program.Table().Len())

	markdown := b.String()
	if isTerminal() {
		render := tui.NewMarkdownRenderer()
		out, err := render(markdown)
		if err == nil {
			fmt.Print(out)
			return nil
		}
	}
	fmt.Print(markdown)
	return nil
}

// leadingComments collects the comment block at the top of a text
// program file. YAML programs have no comment convention here, so they
// yield an empty intro.
func leadingComments(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "#"):
			lines = append(lines, strings.TrimSpace(strings.TrimPrefix(line, "#")))
		case strings.HasPrefix(line, "//"):
			lines = append(lines, strings.TrimSpace(strings.TrimPrefix(line, "//")))
		case line == "":
			continue
		default:
			return strings.Join(lines, "\n"), scanner.Err()
		}
	}
	return strings.Join(lines, "\n"), scanner.Err()
}

func stateList(states []domain.State) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprintf("q%d", s)
	}
	return strings.Join(parts, ", ")
}
