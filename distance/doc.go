// Package distance provides vector distance calculations over vecmath.Vector.
//
// Every function is composed from Vector algebra, so operands of different
// dimension are compared as if the shorter one were zero-padded.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//   - MetricCosine: Cosine similarity
//   - MetricDot: Dot product (inner product)
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.CosineSimilarity(a, b)
package distance
