package dierand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manorgames/manor-api/internal/pkg/dierand"
)

func TestSeededReplaysIdentically(t *testing.T) {
	first := dierand.NewSeeded(7)
	second := dierand.NewSeeded(7)

	a, err := first.RollN(20, 6)
	require.NoError(t, err)
	b, err := second.RollN(20, 6)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSeededStaysInRange(t *testing.T) {
	roller := dierand.NewSeeded(42)
	for i := 0; i < 100; i++ {
		v, err := roller.Roll(6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestFixedCyclesScript(t *testing.T) {
	roller := dierand.NewFixed(4, 2, 6)

	got, err := roller.RollN(5, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 6, 4, 2}, got)
}
