package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/tng/pkg/domain"
)

// ParseError reports a malformed program line. Line is 1-based; zero
// means the error concerns the program as a whole.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads a program in the tng text format. Construction errors from
// the domain layer (duplicate rules, empty halting set, unknown initial
// state) propagate unwrapped.
func Parse(r io.Reader) (*domain.Program, error) {
	var (
		rules     []domain.Rule
		initial   *domain.State
		halting   []domain.State
		rejecting []domain.State
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "/") {
			continue
		}

		switch text[0] {
		case '+':
			s, err := parseState(text[1:], line)
			if err != nil {
				return nil, err
			}
			initial = &s
		case '-':
			s, err := parseState(text[1:], line)
			if err != nil {
				return nil, err
			}
			halting = append(halting, s)
		case '!':
			s, err := parseState(text[1:], line)
			if err != nil {
				return nil, err
			}
			rejecting = append(rejecting, s)
		default:
			rule, err := parseRule(text, line)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if initial == nil {
		return nil, &ParseError{Msg: "missing initial state declaration (+N)"}
	}

	table, err := domain.NewTransitionTable(rules)
	if err != nil {
		return nil, err
	}
	return domain.NewProgram(table, *initial, halting,
		domain.WithRejectingStates(rejecting...))
}

// ParseString is Parse over an in-memory program.
func ParseString(s string) (*domain.Program, error) {
	return Parse(strings.NewReader(s))
}

// LoadFile parses a program file, choosing the format by extension:
// .yaml/.yml for the YAML format, anything else for the text format.
func LoadFile(path string) (*domain.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(strings.NewReader(string(data)))
	}
}

func parseRule(s string, line int) (domain.Rule, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return domain.Rule{}, &ParseError{
			Line: line,
			Msg:  fmt.Sprintf("expected 5 comma-separated fields (from,to,read,write,move), got %d", len(parts)),
		}
	}

	from, err := parseState(parts[0], line)
	if err != nil {
		return domain.Rule{}, err
	}
	to, err := parseState(parts[1], line)
	if err != nil {
		return domain.Rule{}, err
	}
	read, err := parseSymbol(parts[2], line)
	if err != nil {
		return domain.Rule{}, err
	}
	write, err := parseSymbol(parts[3], line)
	if err != nil {
		return domain.Rule{}, err
	}
	move, err := parseMove(parts[4], line)
	if err != nil {
		return domain.Rule{}, err
	}

	return domain.Rule{From: from, To: to, Read: read, Write: write, Move: move}, nil
}

func parseState(s string, line int) (domain.State, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, &ParseError{Line: line, Msg: fmt.Sprintf("invalid state %q: want a non-negative integer", strings.TrimSpace(s))}
	}
	return domain.State(n), nil
}

func parseSymbol(field string, line int) (domain.Symbol, error) {
	// A field of spaces is the blank, same as '_'.
	if field != "" && strings.TrimSpace(field) == "" {
		return domain.Blank, nil
	}
	r := []rune(strings.TrimSpace(field))
	if len(r) == 1 {
		if r[0] == '_' {
			return domain.Blank, nil
		}
		return domain.Symbol(r[0]), nil
	}
	return 0, &ParseError{Line: line, Msg: fmt.Sprintf("invalid symbol %q: want a single character, '_' or ' ' for blank", field)}
}

func parseMove(field string, line int) (domain.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "r", "right":
		return domain.Right, nil
	case "l", "left":
		return domain.Left, nil
	case "n", "stay", "", "_":
		return domain.Stay, nil
	}
	return 0, &ParseError{Line: line, Msg: fmt.Sprintf("invalid move %q: want r, l or n", field)}
}
