package vecmath

import (
	"log/slog"
	"strconv"
	"strings"
)

// String formats v as a parenthesized, comma-separated component list,
// e.g. "(1, 2.5, -3)".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, n := range v.vec {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(n, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// LogValue implements slog.LogValuer.
func (v Vector) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("dim", len(v.vec)),
		slog.String("components", v.String()),
	)
}
