// Package conv provides safe numeric conversion utilities.
//
// These functions perform range checking to prevent silent overflow when
// narrowing float64 components to float32.
//
// Use cases:
//   - Handing vector components to float32 embedding stores
//   - Widening float32 embeddings into float64 components
//
// Widening is always exact and never fails.
package conv
