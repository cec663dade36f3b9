package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is wrapped by every narrowing failure.
var ErrOverflow = errors.New("float overflow")

// Float64ToFloat32 converts v to float32 safely.
// NaN and ±Inf are carried over unchanged; a finite value whose magnitude
// exceeds math.MaxFloat32 is rejected.
func Float64ToFloat32(v float64) (float32, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return float32(v), nil
	}
	if math.Abs(v) > math.MaxFloat32 {
		return 0, fmt.Errorf("%w: %g cannot be converted to float32", ErrOverflow, v)
	}
	return float32(v), nil
}

// Float32sToFloat64s widens src into a newly allocated slice.
func Float32sToFloat64s(src []float32) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}
