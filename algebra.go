package vecmath

import (
	"math"
	"slices"
)

// ZipWith combines v and other component by component.
//
// The result has max(v.Size(), other.Size()) components. Where one operand
// has no component at an index, 0 is passed to combiner in its place.
func (v Vector) ZipWith(other Vector, combiner func(l, r float64) float64) Vector {
	n := max(len(v.vec), len(other.vec))
	out := make([]float64, n)
	for i := range n {
		var l, r float64
		if i < len(v.vec) {
			l = v.vec[i]
		}
		if i < len(other.vec) {
			r = other.vec[i]
		}
		out[i] = combiner(l, r)
	}
	return Vector{vec: out}
}

// Mul returns the component-wise product.
func (v Vector) Mul(other Vector) Vector {
	return v.ZipWith(other, func(l, r float64) float64 { return l * r })
}

// Div returns the component-wise quotient.
//
// Division by a zero (or missing) component follows IEEE-754 and yields
// ±Inf or NaN.
func (v Vector) Div(other Vector) Vector {
	return v.ZipWith(other, func(l, r float64) float64 { return l / r })
}

// CheckedDiv is like Div but returns ErrDivisionByZero if any divisor
// component, after padding, is zero.
func (v Vector) CheckedDiv(other Vector) (Vector, error) {
	if len(other.vec) < len(v.vec) || slices.Contains(other.vec, 0) {
		return Vector{}, ErrDivisionByZero
	}
	return v.Div(other), nil
}

// Add returns the component-wise sum.
func (v Vector) Add(other Vector) Vector {
	return v.ZipWith(other, func(l, r float64) float64 { return l + r })
}

// Sub returns the component-wise difference.
func (v Vector) Sub(other Vector) Vector {
	return v.ZipWith(other, func(l, r float64) float64 { return l - r })
}

// Clamp bounds every component below by lo and above by hi.
// lo is applied first, then hi, each with zero-padding.
func (v Vector) Clamp(lo, hi Vector) Vector {
	return v.ZipWith(lo, math.Max).ZipWith(hi, math.Min)
}

// Scale multiplies every component by f.
func (v Vector) Scale(f float64) Vector {
	return v.Map(func(n float64) float64 { return n * f })
}

// Map applies fn to every component.
func (v Vector) Map(fn func(n float64) float64) Vector {
	out := make([]float64, len(v.vec))
	for i, n := range v.vec {
		out[i] = fn(n)
	}
	return Vector{vec: out}
}

// Fold walks the components of v in order, threading an accumulator through
// reducer, starting from init.
func Fold[T any](v Vector, init T, reducer func(n float64, acc T) T) T {
	acc := init
	for _, n := range v.vec {
		acc = reducer(n, acc)
	}
	return acc
}

// Reduce folds v into a float64 starting from 0.
func (v Vector) Reduce(reducer func(n, acc float64) float64) float64 {
	return Fold[float64](v, 0, reducer)
}

// Dot returns the sum of the component-wise products.
func (v Vector) Dot(other Vector) float64 {
	return v.Mul(other).Reduce(func(n, acc float64) float64 { return acc + n })
}

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Any reports whether at least one component satisfies pred.
func (v Vector) Any(pred func(n float64) bool) bool {
	return slices.ContainsFunc(v.vec, pred)
}

// All reports whether every component satisfies pred.
// It is true for the zero-dimensional vector.
func (v Vector) All(pred func(n float64) bool) bool {
	for _, n := range v.vec {
		if !pred(n) {
			return false
		}
	}
	return true
}

// Equals reports whether every component of v - other is exactly 0.
//
// The comparison is exact: rounding error makes otherwise equal results
// compare unequal. Use EqualsWithin for a tolerant comparison. Trailing
// zeros are insignificant, so (1, 2, 0) equals (1, 2).
func (v Vector) Equals(other Vector) bool {
	return v.Sub(other).All(func(n float64) bool { return n == 0 })
}

// EqualsWithin reports whether every component of v - other lies within tol
// of 0.
func (v Vector) EqualsWithin(other Vector, tol float64) bool {
	return v.Sub(other).All(func(n float64) bool { return math.Abs(n) <= tol })
}
