package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tng/pkg/domain"
	"github.com/aretw0/tng/pkg/loader"
)

func TestParseYAML_ParityProgram(t *testing.T) {
	p, err := loader.LoadFile("testdata/parity.yaml")
	require.NoError(t, err)

	assert.Equal(t, domain.State(0), p.Initial())
	assert.Equal(t, []domain.State{2, 3}, p.Halting(), "the YAML format declares several halting states")
	assert.Equal(t, 4, p.Table().Len())

	act, ok := p.Table().Lookup(1, domain.Blank)
	require.True(t, ok)
	assert.Equal(t, domain.Action{To: 3, Write: domain.Blank, Move: domain.Stay}, act)
}

func TestParseYAML_Errors(t *testing.T) {
	t.Run("missing initial", func(t *testing.T) {
		_, err := loader.ParseYAML([]byte("halting: [1]\nrules: []\n"))
		var parseErr *loader.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := loader.ParseYAML([]byte("\t:::"))
		assert.Error(t, err)
	})

	t.Run("bad move word", func(t *testing.T) {
		_, err := loader.ParseYAML([]byte(`
initial: 0
halting: [1]
rules:
  - {from: 0, to: 1, read: "1", write: "1", move: up}
`))
		assert.ErrorContains(t, err, "rule 1")
	})

	t.Run("duplicate rule", func(t *testing.T) {
		_, err := loader.ParseYAML([]byte(`
initial: 0
halting: [1]
rules:
  - {from: 0, to: 1, read: "1", write: "1", move: right}
  - {from: 0, to: 0, read: "1", write: "0", move: left}
`))
		var dup *domain.DuplicateRuleError
		require.ErrorAs(t, err, &dup)
	})
}

func TestParseYAML_RejectingStates(t *testing.T) {
	p, err := loader.ParseYAML([]byte(`
initial: 0
halting: [1]
rejecting: [2]
rules:
  - {from: 0, to: 2, read: "_", write: "_", move: stay}
`))
	require.NoError(t, err)
	assert.Equal(t, []domain.State{2}, p.Rejecting())
}
