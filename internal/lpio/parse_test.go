package lpio

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRead(t *testing.T) {
	p, err := Read(strings.NewReader("1 1\n\n1 0 4\n  0 1   3\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, p.Objective)
	assert.Equal(t, [][]float64{{1, 0, 4}, {0, 1, 3}}, p.Constraints)
}

func TestReadObjectiveOnly(t *testing.T) {
	p, err := Read(strings.NewReader("3 -2.5e1\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -25}, p.Objective)
	assert.Empty(t, p.Constraints)
}

func TestReadWideProblem(t *testing.T) {
	const n = 40000
	objective := strings.TrimSpace(strings.Repeat("1 ", n))
	constraint := strings.Repeat("2 ", n) + "7"
	require.Greater(t, len(constraint), 64*1024)

	p, err := Read(strings.NewReader(objective + "\n" + constraint + "\n"))
	require.NoError(t, err)
	require.Len(t, p.Objective, n)
	require.Len(t, p.Constraints, 1)
	require.Len(t, p.Constraints[0], n+1)
	assert.Equal(t, 7.0, p.Constraints[0][n])
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyInput},
		{"\n  \n", ErrEmptyInput},
		{"1 1\n1 2\n", ErrRowLength},
		{"1 1\n1 2 3 4\n", ErrRowLength},
		{"1 a\n", ErrNotNumber},
		{"1 1\n1 2 NaN\n", ErrNotNumber},
		{"1 1\n1 inf 3\n", ErrNotNumber},
	}
	for _, tt := range tests {
		_, err := Read(strings.NewReader(tt.in))
		assert.True(t, errors.Is(err, tt.want), "%q: %v", tt.in, err)
	}
}

func TestReadErrorLine(t *testing.T) {
	_, err := Read(strings.NewReader("1 1\n\n1 0 4\n1 x 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestProblemTableau(t *testing.T) {
	p := &Problem{
		Objective:   []float64{-1, -1},
		Constraints: [][]float64{{-1, -1, -1}, {1, 0, 2}, {0, 1, 2}},
	}
	tab, err := p.Tableau()
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(4, 3, []float64{
		0, -1, -1,
		-1, 1, 1,
		2, -1, 0,
		2, 0, -1,
	}), tab.Matrix()))
	assert.False(t, math.Signbit(tab.At(2, 2)), "zeros stay positive")
	assert.False(t, tab.Feasible())
}
