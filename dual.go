package lpdict

// ResolveInfeasible turns a dictionary that is infeasible at the origin into
// a feasible one with the same objective, by solving the dual of its zero
// objective version. A feasible t is returned as is.
// feasible is false when the problem has no feasible point.
// tr follows every pivot taken and describes the returned tableau.
func ResolveInfeasible(t *Tableau, tr *Tracker, opts ...Option) (*Tableau, bool, error) {
	feasible, _, ok, err := newRun(opts).resolve(t, tr)
	return feasible, ok, err
}

// SolveDualPhase pivots the dual tableau in place until its own objective row
// has no positive coefficient.
// objective is carried along in column 0: it is injected before each pivot
// and taken back out afterwards, so the ratio test always sees the zero right
// hand side of the dual. It is returned pivoted the same way as the tableau.
// The status is Infeasible when the dual is unbounded, Optimal otherwise.
func SolveDualPhase(dual *Tableau, tr *Tracker, objective []float64, opts ...Option) (Status, []float64, error) {
	status, objective, _, err := newRun(opts).dual(dual, tr, objective)
	return status, objective, err
}

// resolve also returns the rule the dual phase ended with, Dantzig when
// no dual phase ran.
func (r *run) resolve(t *Tableau, tr *Tracker) (*Tableau, Rule, bool, error) {
	if t.Feasible() {
		return t, Dantzig, true, nil
	}
	r.log.Debug("initial dictionary infeasible, solving the dual")

	objective := t.Row(0)
	t.clearRow(0)
	dual := t.Dual()

	status, objective, rule, err := r.dual(dual, tr, objective)
	if err != nil {
		return nil, rule, false, err
	}
	if status == Infeasible {
		return nil, rule, false, nil
	}

	feasible := dual.Dual()
	feasible.setRow(0, objective)
	return feasible, rule, true, nil
}

func (r *run) dual(d *Tableau, tr *Tracker, objective []float64) (Status, []float64, Rule, error) {
	rule := newPivotRule(d.Objective())
	for {
		entering, ok := SelectEntering(d, tr, Dual, rule.rule)
		if !ok {
			return Optimal, objective, rule.rule, nil
		}
		leaving, ok := SelectLeaving(d, tr, Dual, entering, rule.rule)
		if !ok {
			return Infeasible, objective, rule.rule, nil
		}
		if err := r.tick(); err != nil {
			return 0, objective, rule.rule, err
		}

		d.setColumn(0, objective)
		if err := d.Pivot(entering, leaving); err != nil {
			return 0, objective, rule.rule, err
		}
		objective = d.takeColumn(0)

		if err := tr.SwapDual(entering, leaving); err != nil {
			return 0, objective, rule.rule, err
		}
		r.trace(Dual, rule, entering, leaving, d.Objective())
		if rule.observe(d.Objective()) {
			r.log.WithField("phase", Dual).Info("degenerate pivot, switching to Bland's rule")
		}
	}
}
