package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tng/internal/validator"
	"github.com/aretw0/tng/pkg/loader"
)

func TestCheck_CleanProgram(t *testing.T) {
	p, err := loader.ParseString("+0\n-1\n0,1,_,_,r\n")
	require.NoError(t, err)
	assert.Empty(t, validator.Check(p))
}

func TestCheck_DeadRuleOnHaltingState(t *testing.T) {
	p, err := loader.ParseString("+0\n-1\n0,1,_,_,r\n1,0,_,_,l\n")
	require.NoError(t, err)

	warnings := validator.Check(p)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].String(), "halting state q1")
}

func TestCheck_UnreachableState(t *testing.T) {
	// State 2 declared halting but nothing transitions into it; state 5
	// only appears in a rule island.
	p, err := loader.ParseString("+0\n-1\n-2\n0,1,_,_,r\n5,5,_,_,r\n")
	require.NoError(t, err)

	warnings := validator.Check(p)
	var msgs []string
	for _, w := range warnings {
		msgs = append(msgs, w.String())
	}
	assert.Contains(t, msgs, "state q2 is unreachable from the initial state")
	assert.Contains(t, msgs, "state q5 is unreachable from the initial state")
}
