// Package simplex implements an LP constraint builder and a two-phase
// simplex solver over exact rationals (§4.5).
//
// Builder accumulates linear constraints (a gradient, a relation in
// {<=, =, >=}, and a bound); AddBoundedBasis is a convenience for adding
// a "<=" / ">=" pair per row of a basis matrix (the polytope
// min' <= B*x <= max'; the reverser passes the identity, so its polytope
// is the box min' <= x <= max'). Build compiles the
// accumulated constraints into a LinearProgram with a feasible starting
// tableau already established via phase I (minimizing the sum of
// artificial variables); Build returns ErrInfeasible if no feasible
// point exists.
//
// LinearProgram.Minimize / Maximize extremize an arbitrary gradient over
// the program's feasible region without mutating the program, so the
// same feasible region can be re-optimized for many different gradients
// — exactly what the reverser's row-width ordering pass (§4.8 step 6)
// and the branch-and-bound enumerator (§4.9) both need.
// LinearProgram.WithEquality returns a NEW LinearProgram with one more
// equality constraint fixed, again without mutating the receiver.
//
// Internally, free (possibly-negative) variables are represented by the
// standard x = x⁺ - x⁻ splitting technique; see DESIGN.md for why this
// was chosen over the spec's literal dependent-reals Gauss-Jordan
// elimination scheme. All arithmetic is exact rational; there is no
// epsilon anywhere in the pivoting rule.
package simplex
