package lpdict

import (
	"slices"

	"github.com/pkg/errors"
)

// Orientation says how a tableau maps onto the primal variables.
// A Primal tableau has nonbasic variables as columns and basic variables as
// rows. A Dual tableau, the negative transpose, has them the other way around.
type Orientation int

const (
	// Primal is the orientation of the initial dictionary and of the primal phase.
	Primal Orientation = iota
	// Dual is the orientation of the negative transpose solved in the first phase.
	Dual
)

func (o Orientation) String() string {
	if o == Primal {
		return "primal"
	}
	return "dual"
}

// column returns the tableau column held by a variable at p, 0 if it holds a row.
func (o Orientation) column(p Position) int {
	if o == Primal {
		return p.Column
	}
	return p.Row
}

// Tracker remembers which variable every tableau row and column stands for.
// Positions are always recorded in primal terms: Row is the primal row of a
// basic variable and Column the primal column of a nonbasic one.
type Tracker struct {
	pos  map[Variable]Position
	rows []Variable // rows[i] is basic in primal row i, rows[0] unused
	cols []Variable // cols[j] is nonbasic in primal column j, cols[0] unused
}

// NewTracker lays out the variables of a primal tableau: x1..xn nonbasic in
// columns 1..n and z1..zm basic in rows 1..m.
func NewTracker(t *Tableau) *Tracker {
	m, n := t.Dims()
	return newTracker(n, m)
}

// NewDualTracker lays out the variables of a dual tableau: the slack
// variables are basic in the primal rows, which are the dual columns, and the
// structural variables are nonbasic in the primal columns, the dual rows.
func NewDualTracker(dual *Tableau) *Tracker {
	n, m := dual.Dims()
	return newTracker(n, m)
}

func newTracker(n, m int) *Tracker {
	tr := &Tracker{
		pos:  make(map[Variable]Position, n+m),
		rows: make([]Variable, m+1),
		cols: make([]Variable, n+1),
	}
	for j := 1; j <= n; j++ {
		tr.pos[X(j)] = Position{Column: j}
		tr.cols[j] = X(j)
	}
	for i := 1; i <= m; i++ {
		tr.pos[Z(i)] = Position{Row: i}
		tr.rows[i] = Z(i)
	}
	return tr
}

// Position returns where v currently sits.
func (tr *Tracker) Position(v Variable) (Position, bool) {
	p, ok := tr.pos[v]
	return p, ok
}

// Basic returns the variable basic in primal row i.
func (tr *Tracker) Basic(i int) (Variable, bool) {
	if i < 1 || i >= len(tr.rows) {
		return Variable{}, false
	}
	return tr.rows[i], true
}

// Nonbasic returns the variable nonbasic in primal column j.
func (tr *Tracker) Nonbasic(j int) (Variable, bool) {
	if j < 1 || j >= len(tr.cols) {
		return Variable{}, false
	}
	return tr.cols[j], true
}

// AtRow returns the variable standing for row i of a tableau in orientation o.
func (tr *Tracker) AtRow(o Orientation, i int) (Variable, bool) {
	if o == Primal {
		return tr.Basic(i)
	}
	return tr.Nonbasic(i)
}

// Columns returns, in natural order, the variables standing for the columns
// of a tableau in orientation o.
func (tr *Tracker) Columns(o Orientation) []Variable {
	var vars []Variable
	if o == Primal {
		vars = slices.Clone(tr.cols[1:])
	} else {
		vars = slices.Clone(tr.rows[1:])
	}
	slices.SortFunc(vars, Variable.Compare)
	return vars
}

// ColumnOf returns the column v holds in a tableau of orientation o, 0 if v holds a row.
func (tr *Tracker) ColumnOf(o Orientation, v Variable) int {
	return o.column(tr.pos[v])
}

// Swap records a primal pivot: the variable nonbasic in column entering
// becomes basic in row leaving and the variable basic in row leaving becomes
// nonbasic in column entering.
func (tr *Tracker) Swap(entering, leaving int) error {
	in, ok := tr.Nonbasic(entering)
	if !ok {
		return errors.Wrapf(ErrUnknownPosition, "column %d", entering)
	}
	out, ok := tr.Basic(leaving)
	if !ok {
		return errors.Wrapf(ErrUnknownPosition, "row %d", leaving)
	}
	tr.pos[in] = Position{Row: leaving}
	tr.pos[out] = Position{Column: entering}
	tr.rows[leaving] = in
	tr.cols[entering] = out
	return nil
}

// SwapDual records a pivot taken on the dual tableau. entering is a dual
// column, so a primal row, and leaving is a dual row, so a primal column:
// the variable basic in primal row entering becomes nonbasic in primal column
// leaving, and the other way around.
func (tr *Tracker) SwapDual(entering, leaving int) error {
	return tr.Swap(leaving, entering)
}

// Values reads the value of every variable of the given kind, by subscript,
// from a primal tableau: the right hand side of its row if basic, else 0.
func (tr *Tracker) Values(t *Tableau, kind Kind) []float64 {
	count := len(tr.cols) - 1
	if kind == Slack {
		count = len(tr.rows) - 1
	}
	values := make([]float64, count)
	for i := range values {
		if p := tr.pos[Variable{Kind: kind, Subscript: i + 1}]; p.Basic() {
			values[i] = t.At(p.Row, 0)
		}
	}
	return values
}
