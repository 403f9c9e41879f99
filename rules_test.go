package lpdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectEnteringDantzig(t *testing.T) {
	tab, err := FromRows([][]float64{
		{0, 3, 5, 5, -1},
		{1, -1, -1, -1, -1},
	})
	require.NoError(t, err)
	tr := NewTracker(tab)

	j, ok := SelectEntering(tab, tr, Primal, Dantzig)
	require.True(t, ok)
	assert.Equal(t, 2, j)
}

func TestSelectEnteringOptimal(t *testing.T) {
	tab, err := FromRows([][]float64{
		{3, 0, -5},
		{1, -1, -1},
	})
	require.NoError(t, err)
	tr := NewTracker(tab)

	_, ok := SelectEntering(tab, tr, Primal, Dantzig)
	assert.False(t, ok)
	_, ok = SelectEntering(tab, tr, Primal, Bland)
	assert.False(t, ok)
}

func TestSelectEnteringBland(t *testing.T) {
	tab, err := FromRows([][]float64{
		{0, 3, 5},
		{1, -1, -1},
	})
	require.NoError(t, err)
	tr := NewTracker(tab)

	j, ok := SelectEntering(tab, tr, Primal, Bland)
	require.True(t, ok)
	assert.Equal(t, 1, j)

	// z1 now stands for column 1, x2 for column 2: x2 comes first.
	require.NoError(t, tr.Swap(1, 1))
	j, ok = SelectEntering(tab, tr, Primal, Bland)
	require.True(t, ok)
	assert.Equal(t, 2, j)
}

func TestSelectEnteringBlandDual(t *testing.T) {
	tab, err := FromRows([][]float64{
		{0, 1, 1},
		{-1, -1, 0},
		{-2, 0, -1},
	})
	require.NoError(t, err)
	tab.clearRow(0)
	dual := tab.Dual()
	tr := NewDualTracker(dual)

	// dual objective row is [0, 1, 2]: z1 is the lowest with a positive cost.
	j, ok := SelectEntering(dual, tr, Dual, Bland)
	require.True(t, ok)
	assert.Equal(t, 1, j)
	j, ok = SelectEntering(dual, tr, Dual, Dantzig)
	require.True(t, ok)
	assert.Equal(t, 2, j)
}

func TestSelectLeaving(t *testing.T) {
	tab, err := FromRows([][]float64{
		{0, 1, 1},
		{2, -1, 0},
		{4, -2, 0},
		{1, -1, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)
	tr := NewTracker(tab)

	i, ok := SelectLeaving(tab, tr, Primal, 1, Dantzig)
	require.True(t, ok)
	assert.Equal(t, 3, i)
	i, ok = SelectLeaving(tab, tr, Primal, 1, Bland)
	require.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = SelectLeaving(tab, tr, Primal, 2, Dantzig)
	assert.False(t, ok)
	_, ok = SelectLeaving(tab, tr, Primal, 2, Bland)
	assert.False(t, ok)
}

func TestSelectLeavingTies(t *testing.T) {
	tab, err := FromRows([][]float64{
		{0, 1, 1},
		{2, -1, 0},
		{4, -2, 0},
	})
	require.NoError(t, err)
	tr := NewTracker(tab)
	// x1 basic in row 2, z1 still basic in row 1
	require.NoError(t, tr.Swap(1, 2))

	i, ok := SelectLeaving(tab, tr, Primal, 1, Dantzig)
	require.True(t, ok)
	assert.Equal(t, 1, i, "first row wins a tie")

	i, ok = SelectLeaving(tab, tr, Primal, 1, Bland)
	require.True(t, ok)
	assert.Equal(t, 2, i, "lowest basic variable wins a tie")
}

func TestPivotRule(t *testing.T) {
	p := newPivotRule(0)
	assert.Equal(t, Dantzig, p.rule)

	assert.False(t, p.observe(3))
	assert.Equal(t, Dantzig, p.rule)
	assert.True(t, p.observe(3+1e-8))
	assert.Equal(t, Bland, p.rule)
	assert.False(t, p.observe(5))
	assert.Equal(t, Bland, p.rule, "never reverts")
}
