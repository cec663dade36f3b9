// Package vecmath provides an immutable N-dimensional vector value type.
//
// A Vector is an ordered sequence of float64 components. Every operation
// returns a new Vector; receivers and operands are never modified, so values
// can be shared between goroutines without synchronization.
//
// # Construction
//
//	v := vecmath.New(1, 2, 3)
//	w := vecmath.FromSlice([]float64{4, 5, 6})
//	o := vecmath.DefaultOrigin()           // (0, 0, 0)
//	r, err := vecmath.Repeated(1.5, 4)     // (1.5, 1.5, 1.5, 1.5)
//
// # Broadcast
//
// Binary operations accept operands of different dimension. The shorter one
// is treated as if it were zero-padded to the longer one:
//
//	vecmath.New(1, 2).Add(vecmath.New(1, 2, 3)) // (2, 4, 3)
//
// All of them are built on ZipWith, which is exported for custom pairwise
// operations.
//
// # Absence
//
// Accessors return (value, ok). An index outside the vector yields ok == false
// rather than a panic:
//
//	x, _ := v.X()
//	if last, ok := v.At(-1); ok {
//	    fmt.Println(last)
//	}
//
// # Floating point
//
// Equals is exact. Div follows IEEE-754 (x/0 is ±Inf, 0/0 is NaN); use
// CheckedDiv to get ErrDivisionByZero instead, and EqualsWithin for a
// tolerant comparison.
package vecmath
