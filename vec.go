package geom

import (
	"fmt"
	"strings"
)

// formatVector renders the textual form shared by every vector type:
// Vector<Dim>[e0;e1;...]. A one-component vector renders with no separator.
func formatVector[T Scalar](components []T) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vector%d[", len(components))
	for i, c := range components {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%v", c)
	}
	sb.WriteByte(']')
	return sb.String()
}

// checkIndex panics when i is outside [0, n). At and Set are checked
// accessors: an out-of-range index is a caller bug and fails loudly.
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("geom: index %d out of range [0, %d)", i, n))
	}
}
