package lpdict

import "strconv"

// Kind tells apart decision variables from slack variables.
type Kind int

const (
	// Structural is one of the n original decision variables x1..xn.
	Structural Kind = iota
	// Slack is the slack variable z1..zm of one constraint.
	Slack
)

func (k Kind) String() string {
	if k == Structural {
		return "x"
	}
	return "z"
}

// Variable identifies a structural or slack variable by its kind and 1-based subscript.
type Variable struct {
	Kind      Kind
	Subscript int
}

// X returns the structural variable x_i.
func X(i int) Variable { return Variable{Kind: Structural, Subscript: i} }

// Z returns the slack variable z_i.
func Z(i int) Variable { return Variable{Kind: Slack, Subscript: i} }

// Less is the natural order used by Bland's rule:
// structural variables come before slack variables, then lower subscripts first.
func (v Variable) Less(o Variable) bool {
	if v.Kind != o.Kind {
		return v.Kind < o.Kind
	}
	return v.Subscript < o.Subscript
}

// Compare returns -1, 0 or +1 following Less.
func (v Variable) Compare(o Variable) int {
	switch {
	case v.Less(o):
		return -1
	case o.Less(v):
		return 1
	}
	return 0
}

func (v Variable) String() string {
	return v.Kind.String() + strconv.Itoa(v.Subscript)
}

// Position locates a variable in the tableau.
// Exactly one of Column (nonbasic) and Row (basic) is non zero.
type Position struct {
	Column int
	Row    int
}

// Basic reports whether the variable is currently expressed by a row.
func (p Position) Basic() bool {
	return p.Row != 0
}
