package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/tng/pkg/domain"
)

type yamlProgram struct {
	Initial   *uint      `yaml:"initial"`
	Halting   []uint     `yaml:"halting"`
	Rejecting []uint     `yaml:"rejecting"`
	Rules     []yamlRule `yaml:"rules"`
}

type yamlRule struct {
	From  uint   `yaml:"from"`
	To    uint   `yaml:"to"`
	Read  string `yaml:"read"`
	Write string `yaml:"write"`
	Move  string `yaml:"move"`
}

// ParseYAML reads a program in the YAML format.
func ParseYAML(data []byte) (*domain.Program, error) {
	var def yamlProgram
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid yaml program: %w", err)
	}
	if def.Initial == nil {
		return nil, &ParseError{Msg: "missing initial state"}
	}

	rules := make([]domain.Rule, 0, len(def.Rules))
	for i, r := range def.Rules {
		read, err := parseSymbol(r.Read, 0)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		write, err := parseSymbol(r.Write, 0)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		move, err := parseMove(r.Move, 0)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		rules = append(rules, domain.Rule{
			From:  domain.State(r.From),
			To:    domain.State(r.To),
			Read:  read,
			Write: write,
			Move:  move,
		})
	}

	table, err := domain.NewTransitionTable(rules)
	if err != nil {
		return nil, err
	}
	return domain.NewProgram(table, domain.State(*def.Initial), states(def.Halting),
		domain.WithRejectingStates(states(def.Rejecting)...))
}

func states(in []uint) []domain.State {
	out := make([]domain.State, 0, len(in))
	for _, n := range in {
		out = append(out, domain.State(n))
	}
	return out
}
