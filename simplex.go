package lpdict

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Simplex solves a linear problem in standard form:
// Maximize z = Σ(1<=j<=n) c_j*x_j
// Constraints:
// 1<=i<=m,  Σ(1<=j<=n) a_i_j*x_j <= b_i
// 1<=j<=n x_j >= 0
// c is a row vector (1,n), A is (m,n) and b is a column vector (m,1).
// maxIter caps the number of pivots, 0 means no cap.
func Simplex(c, A, b *mat.Dense, maxIter int) (*Result, error) {
	t, err := NewTableau(c, A, b)
	if err != nil {
		return nil, err
	}
	return Solve(t, WithMaxIterations(maxIter))
}

// Solve runs the simplex method on the initial dictionary t, which is left untouched.
// - If the dictionary is infeasible at the origin, find a feasible one through the dual problem
// - Pivot with Dantzig's rule, then with Bland's rule once a pivot is degenerate
// - Stop on an optimal dictionary or when no row bounds the entering variable
func Solve(t *Tableau, opts ...Option) (*Result, error) {
	r := newRun(opts)
	t = t.Clone()
	tr := NewTracker(t)

	t, dualRule, feasible, err := r.resolve(t, tr)
	if err != nil {
		return nil, err
	}
	if !feasible {
		return &Result{Status: Infeasible, Iterations: r.iterations, Rule: dualRule}, nil
	}

	status, rule, err := r.primal(t, tr)
	if err != nil {
		return nil, err
	}
	res := &Result{Status: status, Iterations: r.iterations, Rule: rule}
	if status == Optimal {
		res.Value = t.Objective()
		res.Solution = tr.Values(t, Structural)
		res.Slack = tr.Values(t, Slack)
	}
	r.log.WithFields(logrus.Fields{
		"status":     status,
		"iterations": r.iterations,
	}).Debug("solve done")
	return res, nil
}

// SolvePrimal pivots the feasible dictionary t in place until it is optimal
// or unbounded, keeping tr in step.
func SolvePrimal(t *Tableau, tr *Tracker, opts ...Option) (Status, error) {
	status, _, err := newRun(opts).primal(t, tr)
	return status, err
}

// run carries the state shared by the two phases of one solve.
type run struct {
	maxIterations int
	iterations    int
	log           logrus.FieldLogger
}

func newRun(opts []Option) *run {
	cfg := newConfig(opts)
	return &run{maxIterations: cfg.maxIterations, log: cfg.logger}
}

// tick accounts for one more pivot.
func (r *run) tick() error {
	if r.maxIterations > 0 && r.iterations >= r.maxIterations {
		return errors.Wrapf(ErrMaxIterations, "after %d pivots", r.iterations)
	}
	r.iterations++
	return nil
}

func (r *run) primal(t *Tableau, tr *Tracker) (Status, Rule, error) {
	rule := newPivotRule(t.Objective())
	for {
		entering, ok := SelectEntering(t, tr, Primal, rule.rule)
		if !ok {
			return Optimal, rule.rule, nil
		}
		leaving, ok := SelectLeaving(t, tr, Primal, entering, rule.rule)
		if !ok {
			return Unbounded, rule.rule, nil
		}
		if err := r.tick(); err != nil {
			return 0, rule.rule, err
		}
		if err := t.Pivot(entering, leaving); err != nil {
			return 0, rule.rule, err
		}
		if err := tr.Swap(entering, leaving); err != nil {
			return 0, rule.rule, err
		}
		r.trace(Primal, rule, entering, leaving, t.Objective())
		if rule.observe(t.Objective()) {
			r.log.WithField("phase", Primal).Info("degenerate pivot, switching to Bland's rule")
		}
	}
}

func (r *run) trace(o Orientation, rule *pivotRule, entering, leaving int, objective float64) {
	r.log.WithFields(logrus.Fields{
		"phase":     o,
		"iteration": r.iterations,
		"entering":  entering,
		"leaving":   leaving,
		"objective": objective,
		"rule":      rule.rule,
	}).Debug("pivot")
}
