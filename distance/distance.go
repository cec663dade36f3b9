package distance

import (
	"fmt"

	"github.com/hupe1980/vecmath"
)

// Dot calculates the dot product of two vectors.
func Dot(a, b vecmath.Vector) float64 {
	return a.Dot(b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2(a, b vecmath.Vector) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// L2 calculates the Euclidean distance between two vectors.
func L2(a, b vecmath.Vector) float64 {
	return a.Sub(b).Magnitude()
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns 0 if either vector has zero magnitude.
func CosineSimilarity(a, b vecmath.Vector) float64 {
	magnitudeA := a.Magnitude()
	magnitudeB := b.Magnitude()

	// Avoid division by zero
	if magnitudeA == 0 || magnitudeB == 0 {
		return 0
	}

	return a.Dot(b) / (magnitudeA * magnitudeB)
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b vecmath.Vector) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return SquaredL2, nil
	case MetricCosine:
		return CosineSimilarity, nil
	case MetricDot:
		return Dot, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
