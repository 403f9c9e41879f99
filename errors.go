package lpdict

import "github.com/pkg/errors"

var (
	// ErrDimensions is returned when the problem matrices do not agree in shape.
	ErrDimensions = errors.New("lpdict: dimension mismatch")
	// ErrZeroPivot is returned when a pivot is asked on a (near) zero element.
	ErrZeroPivot = errors.New("lpdict: pivot element is zero")
	// ErrObjectiveRow is returned when a pivot is asked on the objective row.
	ErrObjectiveRow = errors.New("lpdict: cannot pivot on the objective row")
	// ErrUnknownPosition is returned when no variable sits at a requested row or column.
	ErrUnknownPosition = errors.New("lpdict: no variable at position")
	// ErrMaxIterations is returned when the solve loop exceeds its pivot budget.
	ErrMaxIterations = errors.New("lpdict: maximum number of iterations reached")
)
