package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tng/pkg/domain"
)

func TestTransitionTable_Lookup(t *testing.T) {
	table, err := domain.NewTransitionTable([]domain.Rule{
		{From: 0, Read: '1', To: 1, Write: '0', Move: domain.Right},
		{From: 0, Read: domain.Blank, To: 2, Write: domain.Blank, Move: domain.Left},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	act, ok := table.Lookup(0, '1')
	require.True(t, ok)
	assert.Equal(t, domain.Action{To: 1, Write: '0', Move: domain.Right}, act)

	// Blank is a normal symbol, not a wildcard: (1, '1') has no rule
	// even though (0, '_') exists.
	_, ok = table.Lookup(1, '1')
	assert.False(t, ok)
}

func TestTransitionTable_RejectsDuplicates(t *testing.T) {
	_, err := domain.NewTransitionTable([]domain.Rule{
		{From: 3, Read: '1', To: 1, Write: '1', Move: domain.Right},
		{From: 3, Read: '1', To: 2, Write: '0', Move: domain.Left},
	})
	require.Error(t, err)

	var dup *domain.DuplicateRuleError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domain.State(3), dup.State)
	assert.Equal(t, domain.Symbol('1'), dup.Read)
}

func TestTransitionTable_RulesSorted(t *testing.T) {
	table, err := domain.NewTransitionTable([]domain.Rule{
		{From: 2, Read: '0', To: 2, Write: '0', Move: domain.Left},
		{From: 0, Read: '1', To: 1, Write: '1', Move: domain.Right},
		{From: 0, Read: '0', To: 0, Write: '0', Move: domain.Right},
	})
	require.NoError(t, err)

	rules := table.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, domain.State(0), rules[0].From)
	assert.Equal(t, domain.Symbol('0'), rules[0].Read)
	assert.Equal(t, domain.Symbol('1'), rules[1].Read)
	assert.Equal(t, domain.State(2), rules[2].From)
}
