package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vecmath"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVector generates a dim-dimensional vector with components in [0, 1).
func (r *RNG) UniformVector(dim int) vecmath.Vector {
	return r.UniformRangeVector(dim, 0, 1)
}

// UniformRangeVector generates a vector with components in [minVal, maxVal).
func (r *RNG) UniformRangeVector(dim int, minVal, maxVal float64) vecmath.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vecmath.FromSlice(r.uniformLocked(dim, minVal, maxVal))
}

// GaussianVector generates a vector with standard normal components.
func (r *RNG) GaussianVector(dim int) vecmath.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float64, dim)
	for i := range vec {
		vec[i] = r.rand.NormFloat64()
	}
	return vecmath.FromSlice(vec)
}

// IntegerVector generates a vector with integral components in [-bound, bound].
// Sums and products of such vectors are exact, which makes them suitable for
// checking algebraic laws with Equals.
func (r *RNG) IntegerVector(dim, bound int) vecmath.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	vec := make([]float64, dim)
	for i := range vec {
		vec[i] = float64(r.rand.Intn(2*bound+1) - bound)
	}
	return vecmath.FromSlice(vec)
}

// UniformVectors generates num vectors with components in [0, 1).
func (r *RNG) UniformVectors(num, dim int) []vecmath.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([]vecmath.Vector, num)
	for i := range vectors {
		vectors[i] = vecmath.FromSlice(r.uniformLocked(dim, 0, 1))
	}
	return vectors
}

// RaggedVectors generates num vectors whose dimensions are drawn from
// [0, maxDim] and whose components lie in [-1, 1).
func (r *RNG) RaggedVectors(num, maxDim int) []vecmath.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([]vecmath.Vector, num)
	for i := range vectors {
		dim := r.rand.Intn(maxDim + 1)
		vectors[i] = vecmath.FromSlice(r.uniformLocked(dim, -1, 1))
	}
	return vectors
}

func (r *RNG) uniformLocked(dim int, minVal, maxVal float64) []float64 {
	span := maxVal - minVal
	vec := make([]float64, dim)
	for i := range vec {
		vec[i] = minVal + r.rand.Float64()*span
	}
	return vec
}
