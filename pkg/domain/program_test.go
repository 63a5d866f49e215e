package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tng/pkg/domain"
)

func mustTable(t *testing.T, rules []domain.Rule) *domain.TransitionTable {
	t.Helper()
	table, err := domain.NewTransitionTable(rules)
	require.NoError(t, err)
	return table
}

func TestNewProgram(t *testing.T) {
	table := mustTable(t, []domain.Rule{
		{From: 0, Read: '1', To: 1, Write: '1', Move: domain.Right},
	})

	p, err := domain.NewProgram(table, 0, []domain.State{1})
	require.NoError(t, err)
	assert.Equal(t, domain.State(0), p.Initial())
	assert.True(t, p.IsHalting(1))
	assert.False(t, p.IsHalting(0))
	assert.Equal(t, []domain.State{1}, p.Halting())
	assert.Empty(t, p.Rejecting())
}

func TestNewProgram_EmptyHaltingSet(t *testing.T) {
	table := mustTable(t, nil)
	_, err := domain.NewProgram(table, 0, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyHaltingSet)
}

func TestNewProgram_UnknownInitialState(t *testing.T) {
	table := mustTable(t, []domain.Rule{
		{From: 0, Read: '1', To: 1, Write: '1', Move: domain.Right},
	})

	_, err := domain.NewProgram(table, 7, []domain.State{1})
	var unknown *domain.UnknownInitialStateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, domain.State(7), unknown.State)
}

func TestNewProgram_InitialMayBeHalting(t *testing.T) {
	// A trivial program that halts immediately needs no rules at all.
	table := mustTable(t, nil)
	p, err := domain.NewProgram(table, 4, []domain.State{4})
	require.NoError(t, err)
	assert.True(t, p.IsHalting(p.Initial()))
}

func TestNewProgram_RejectingStates(t *testing.T) {
	table := mustTable(t, []domain.Rule{
		{From: 0, Read: '1', To: 2, Write: '1', Move: domain.Stay},
	})

	p, err := domain.NewProgram(table, 0, []domain.State{1},
		domain.WithRejectingStates(2))
	require.NoError(t, err)
	assert.True(t, p.IsRejecting(2))
	assert.Equal(t, []domain.State{2}, p.Rejecting())

	_, err = domain.NewProgram(table, 0, []domain.State{2},
		domain.WithRejectingStates(2))
	assert.Error(t, err, "a state cannot be both halting and rejecting")
}
