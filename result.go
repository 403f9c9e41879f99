package lpdict

// Status is the outcome of a solve.
type Status int

const (
	// Optimal means an optimal basic feasible solution was reached.
	Optimal Status = iota
	// Unbounded means the objective can grow without limit on the feasible region.
	Unbounded
	// Infeasible means no point satisfies A*x <= b, x >= 0.
	Infeasible
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	}
	return "unknown"
}

// Result of a solve. Value, Solution and Slack are only set when Status is Optimal.
type Result struct {
	Status Status
	// Value of the objective function.
	Value float64
	// Solution holds x1..xn.
	Solution []float64
	// Slack holds z1..zm.
	Slack []float64
	// Iterations counts the pivots of both phases.
	Iterations int
	// Rule is the pivoting rule in use when the solve ended.
	Rule Rule
}
