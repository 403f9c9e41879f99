package lpdict

import (
	"gonum.org/v1/gonum/floats"
)

// Rule is a pivoting rule.
type Rule int

const (
	// Dantzig picks the entering column with the largest objective coefficient
	// and the leaving row with the smallest bound, first index on ties.
	Dantzig Rule = iota
	// Bland picks the lowest variable in natural order, on both sides, and
	// cannot cycle.
	Bland
)

func (r Rule) String() string {
	if r == Dantzig {
		return "dantzig"
	}
	return "bland"
}

// SelectEntering returns the entering column of t.
// ok is false when no objective coefficient is positive, ie the dictionary is optimal.
func SelectEntering(t *Tableau, tr *Tracker, o Orientation, rule Rule) (int, bool) {
	if rule == Bland {
		for _, v := range tr.Columns(o) {
			if j := tr.ColumnOf(o, v); t.At(0, j) > 0 {
				return j, true
			}
		}
		return 0, false
	}

	_, n := t.Dims()
	if n == 0 {
		return 0, false
	}
	costs := t.Row(0)[1:]
	j := floats.MaxIdx(costs)
	if costs[j] <= 0 {
		return 0, false
	}
	return j + 1, true
}

// SelectLeaving runs the ratio test on column entering of t and returns the
// row bounding the entering variable the most.
// ok is false when no row has a negative coefficient in that column, ie the
// entering variable can grow forever.
func SelectLeaving(t *Tableau, tr *Tracker, o Orientation, entering int, rule Rule) (int, bool) {
	m, _ := t.Dims()
	leaving := 0
	bound := 0.0
	var basic Variable
	for i := 1; i <= m; i++ {
		a := t.At(i, entering)
		if a >= 0 {
			continue
		}
		b := Normalize(-t.At(i, 0) / a)
		if leaving == 0 {
			leaving, bound = i, b
			basic, _ = tr.AtRow(o, i)
			continue
		}
		if rule == Bland {
			v, _ := tr.AtRow(o, i)
			if IsClose(b, bound) {
				if v.Less(basic) {
					leaving, basic = i, v
				}
				continue
			}
			if b < bound {
				leaving, bound, basic = i, b, v
			}
			continue
		}
		if b < bound {
			leaving, bound = i, b
		}
	}
	return leaving, leaving != 0
}

// pivotRule starts with Dantzig's rule and switches for good to Bland's rule
// as soon as a pivot leaves the objective value unchanged.
type pivotRule struct {
	rule Rule
	last float64
}

func newPivotRule(objective float64) *pivotRule {
	return &pivotRule{rule: Dantzig, last: objective}
}

// observe records the objective value after a pivot and reports whether it
// caused the switch to Bland's rule.
func (p *pivotRule) observe(objective float64) bool {
	switched := false
	if p.rule == Dantzig && IsClose(p.last, objective) {
		p.rule = Bland
		switched = true
	}
	p.last = objective
	return switched
}
