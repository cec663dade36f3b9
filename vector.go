package vecmath

import (
	"iter"
	"slices"

	"github.com/hupe1980/vecmath/internal/conv"
)

// DefaultDimension is the dimension used by DefaultOrigin.
const DefaultDimension = 3

// Vector is an immutable ordered sequence of float64 components.
//
// The zero value is the zero-dimensional vector.
type Vector struct {
	vec []float64
}

// New creates a vector from the given components.
func New(nums ...float64) Vector {
	return FromSlice(nums)
}

// FromSlice creates a vector with the components of s.
// s is copied, so later changes to it are not observed by the vector.
func FromSlice(s []float64) Vector {
	return Vector{vec: slices.Clone(s)}
}

// FromFloat32 creates a vector by widening the components of s.
func FromFloat32(s []float32) Vector {
	return Vector{vec: conv.Float32sToFloat64s(s)}
}

// Repeated creates a dim-dimensional vector whose components all equal value.
func Repeated(value float64, dim int) (Vector, error) {
	if dim < 0 {
		return Vector{}, newInvalidDimension(dim)
	}
	vec := make([]float64, dim)
	for i := range vec {
		vec[i] = value
	}
	return Vector{vec: vec}, nil
}

// Origin creates the dim-dimensional zero vector.
func Origin(dim int) (Vector, error) {
	return Repeated(0, dim)
}

// DefaultOrigin returns the origin of DefaultDimension-space.
func DefaultOrigin() Vector {
	return MustOrigin(DefaultDimension)
}

// MustRepeated is like Repeated but panics on error.
func MustRepeated(value float64, dim int) Vector {
	v, err := Repeated(value, dim)
	if err != nil {
		panic(err)
	}
	return v
}

// MustOrigin is like Origin but panics on error.
func MustOrigin(dim int) Vector {
	return MustRepeated(0, dim)
}

// ToSlice returns a copy of the components.
func (v Vector) ToSlice() []float64 {
	if v.vec == nil {
		return []float64{}
	}
	return slices.Clone(v.vec)
}

// Float32 returns the components narrowed to float32.
func (v Vector) Float32() ([]float32, error) {
	out := make([]float32, len(v.vec))
	for i, n := range v.vec {
		f, err := conv.Float64ToFloat32(n)
		if err != nil {
			return nil, &ErrOutOfRange{Index: i, Value: n, cause: err}
		}
		out[i] = f
	}
	return out, nil
}

// Size returns the dimension of v.
func (v Vector) Size() int {
	return len(v.vec)
}

// Nth returns the component at index n.
// ok is false if n is outside [0, Size()).
func (v Vector) Nth(n int) (float64, bool) {
	if n < 0 || n >= len(v.vec) {
		return 0, false
	}
	return v.vec[n], true
}

// At is like Nth, but a negative n counts back from the last component.
func (v Vector) At(n int) (float64, bool) {
	if n < 0 {
		n += len(v.vec)
	}
	return v.Nth(n)
}

// X returns component 0.
func (v Vector) X() (float64, bool) { return v.Nth(0) }

// Y returns component 1.
func (v Vector) Y() (float64, bool) { return v.Nth(1) }

// Z returns component 2.
func (v Vector) Z() (float64, bool) { return v.Nth(2) }

// I returns component 0, the basis-vector alias of X.
func (v Vector) I() (float64, bool) { return v.Nth(0) }

// J returns component 1, the basis-vector alias of Y.
func (v Vector) J() (float64, bool) { return v.Nth(1) }

// K returns component 2, the basis-vector alias of Z.
func (v Vector) K() (float64, bool) { return v.Nth(2) }

// Components returns an iterator over (index, component) pairs.
func (v Vector) Components() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, n := range v.vec {
			if !yield(i, n) {
				return
			}
		}
	}
}
