package lpdict

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Tableau is the dictionary of a maximization problem in standard form.
// Row 0 is the objective row, rows 1..m are the constraint rows.
// Column 0 holds the objective value (row 0) or the right hand side of the
// basic variable of the row; columns 1..n hold the coefficients of the
// nonbasic variables:
//
//	row 0: z   = t[0][0] + Σ t[0][j] * x_N(j)
//	row i: x_B = t[i][0] + Σ t[i][j] * x_N(j)
type Tableau struct {
	d *mat.Dense
}

// NewTableau builds the initial dictionary of
// maximize c*x subject to A*x <= b, x >= 0.
// c is a row vector (1,n), A is (m,n) and b is a column vector (m,1).
// Row 0 is [0, c], row i is [b_i, -A_i].
func NewTableau(c, A, b *mat.Dense) (*Tableau, error) {
	rows, n := c.Dims()
	if rows != 1 {
		return nil, errors.Wrapf(ErrDimensions, "c has %d rows, want 1", rows)
	}
	m, cols := A.Dims()
	if cols != n {
		return nil, errors.Wrapf(ErrDimensions, "A has %d columns, c has %d", cols, n)
	}
	rows, cols = b.Dims()
	if rows != m || cols != 1 {
		return nil, errors.Wrapf(ErrDimensions, "b is (%d,%d), want (%d,1)", rows, cols, m)
	}

	d := mat.NewDense(m+1, n+1, nil)
	for j := 0; j < n; j++ {
		d.Set(0, j+1, c.At(0, j))
	}
	for i := 0; i < m; i++ {
		d.Set(i+1, 0, b.At(i, 0))
		for j := 0; j < n; j++ {
			d.Set(i+1, j+1, negate(A.At(i, j)))
		}
	}
	return &Tableau{d: d}, nil
}

// FromRows builds a tableau from already converted dictionary rows.
// Every row must have the same, non zero, length.
func FromRows(rows [][]float64) (*Tableau, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrDimensions, "empty tableau")
	}
	width := len(rows[0])
	d := mat.NewDense(len(rows), width, nil)
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrDimensions, "row %d has %d entries, want %d", i, len(row), width)
		}
		d.SetRow(i, row)
	}
	return &Tableau{d: d}, nil
}

// Dims returns the number of constraints m and of nonbasic columns n.
func (t *Tableau) Dims() (m, n int) {
	r, c := t.d.Dims()
	return r - 1, c - 1
}

// At returns the entry at row i, column j.
func (t *Tableau) At(i, j int) float64 {
	return t.d.At(i, j)
}

// Objective returns the current objective value.
func (t *Tableau) Objective() float64 {
	return t.d.At(0, 0)
}

// Row returns a copy of row i.
func (t *Tableau) Row(i int) []float64 {
	return mat.Row(nil, i, t.d)
}

// Matrix exposes the tableau as a read only gonum matrix.
func (t *Tableau) Matrix() mat.Matrix {
	return t.d
}

// Clone returns a deep copy of the tableau.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{d: mat.DenseCopyOf(t.d)}
}

// Feasible reports whether the basic solution of the dictionary is feasible,
// ie no constraint row has a negative right hand side.
func (t *Tableau) Feasible() bool {
	m, _ := t.Dims()
	for i := 1; i <= m; i++ {
		if t.d.At(i, 0) < 0 {
			return false
		}
	}
	return true
}

// Improvable reports whether the objective row still has a positive coefficient.
func (t *Tableau) Improvable() bool {
	_, n := t.Dims()
	for j := 1; j <= n; j++ {
		if t.d.At(0, j) > 0 {
			return true
		}
	}
	return false
}

// Pivot makes the variable of column entering basic in row leaving, and the
// variable basic in row leaving nonbasic in column entering.
// Each row is rebuilt from a snapshot of the tableau taken before the pivot and
// every resulting entry goes through Normalize.
// The caller has to swap the matching variables in its Tracker.
func (t *Tableau) Pivot(entering, leaving int) error {
	rows, cols := t.d.Dims()
	if leaving == 0 {
		return errors.WithStack(ErrObjectiveRow)
	}
	if leaving < 0 || leaving >= rows || entering < 1 || entering >= cols {
		return errors.Wrapf(ErrDimensions, "pivot (%d,%d) outside a (%d,%d) tableau", leaving, entering, rows, cols)
	}
	p := t.d.At(leaving, entering)
	if p == 0 {
		return errors.Wrapf(ErrZeroPivot, "row %d, column %d", leaving, entering)
	}

	snap := mat.DenseCopyOf(t.d)
	pivotRow := mat.Row(nil, leaving, snap)
	for k := range pivotRow {
		pivotRow[k] /= p
	}

	for i := 0; i < rows; i++ {
		if i == leaving {
			continue
		}
		f := snap.At(i, entering)
		for k := 0; k < cols; k++ {
			if k == entering {
				t.d.Set(i, k, Normalize(f/p))
				continue
			}
			t.d.Set(i, k, Normalize(snap.At(i, k)-Normalize(pivotRow[k]*f)))
		}
	}

	for k, v := range pivotRow {
		t.d.Set(leaving, k, Normalize(negate(v)))
	}
	// -(p/p) / -p: coefficient of the leaving variable in the entering row.
	t.d.Set(leaving, entering, Normalize(1/p))
	return nil
}

// Dual returns the negative transpose of the tableau.
// Entries within Tolerance of zero become an exact zero instead of being negated.
func (t *Tableau) Dual() *Tableau {
	r, c := t.d.Dims()
	d := mat.NewDense(c, r, nil)
	d.Apply(func(_, _ int, v float64) float64 {
		if IsZero(v) {
			return 0
		}
		return -v
	}, t.d.T())
	return &Tableau{d: d}
}

func (t *Tableau) setRow(i int, row []float64) {
	t.d.SetRow(i, row)
}

func (t *Tableau) clearRow(i int) {
	_, c := t.d.Dims()
	t.d.SetRow(i, make([]float64, c))
}

func (t *Tableau) setColumn(j int, col []float64) {
	t.d.SetCol(j, col)
}

// takeColumn returns a copy of column j and zeroes it in the tableau.
func (t *Tableau) takeColumn(j int) []float64 {
	col := mat.Col(nil, j, t.d)
	r, _ := t.d.Dims()
	t.d.SetCol(j, make([]float64, r))
	return col
}

func (t *Tableau) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.d, mat.Squeeze()))
}

// negate flips the sign of v and keeps zeros as positive zeros.
func negate(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}
