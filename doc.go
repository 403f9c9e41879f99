// Package lpdict solves linear problems in standard form
//
//	maximize c*x subject to A*x <= b, x >= 0
//
// with the dictionary (tableau) form of the simplex method.
//
// Entering variables are picked with Dantzig's largest coefficient rule until
// a pivot leaves the objective unchanged; from then on both entering and
// leaving variables follow Bland's rule so the method cannot cycle.
//
// A dictionary that is infeasible at the origin is first made feasible by
// solving the dual of its zero objective version, carrying the original
// objective along through the dual pivots.
package lpdict
