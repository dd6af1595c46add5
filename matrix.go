package geom

import (
	"fmt"
	"strings"
)

// Square row-major matrices accompanying the vector types. The zero value
// of each is the zero matrix; storage is a flat stack-resident array with
// element (r, c) at index r*cols+c.

// Mat2 is a 2x2 row-major matrix of T.
type Mat2[T Scalar] [4]T

// Mat3 is a 3x3 row-major matrix of T.
type Mat3[T Scalar] [9]T

// Mat4 is a 4x4 row-major matrix of T.
type Mat4[T Scalar] [16]T

// Identity2 returns the 2x2 identity matrix.
func Identity2[T Scalar]() Mat2[T] {
	return Mat2[T]{
		1, 0,
		0, 1,
	}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Scalar]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Scalar]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Dims returns the row and column counts.
func (Mat2[T]) Dims() (rows, cols int) { return 2, 2 }

// Dims returns the row and column counts.
func (Mat3[T]) Dims() (rows, cols int) { return 3, 3 }

// Dims returns the row and column counts.
func (Mat4[T]) Dims() (rows, cols int) { return 4, 4 }

// At returns element (r, c). It panics when either index is out of range.
func (m Mat2[T]) At(r, c int) T {
	checkIndex(r, 2)
	checkIndex(c, 2)
	return m[r*2+c]
}

// Set overwrites element (r, c). It panics when either index is out of
// range.
func (m *Mat2[T]) Set(r, c int, s T) {
	checkIndex(r, 2)
	checkIndex(c, 2)
	m[r*2+c] = s
}

// At returns element (r, c). It panics when either index is out of range.
func (m Mat3[T]) At(r, c int) T {
	checkIndex(r, 3)
	checkIndex(c, 3)
	return m[r*3+c]
}

// Set overwrites element (r, c). It panics when either index is out of
// range.
func (m *Mat3[T]) Set(r, c int, s T) {
	checkIndex(r, 3)
	checkIndex(c, 3)
	m[r*3+c] = s
}

// At returns element (r, c). It panics when either index is out of range.
func (m Mat4[T]) At(r, c int) T {
	checkIndex(r, 4)
	checkIndex(c, 4)
	return m[r*4+c]
}

// Set overwrites element (r, c). It panics when either index is out of
// range.
func (m *Mat4[T]) Set(r, c int, s T) {
	checkIndex(r, 4)
	checkIndex(c, 4)
	m[r*4+c] = s
}

// Row returns row r as a vector.
func (m Mat2[T]) Row(r int) Vec2[T] {
	checkIndex(r, 2)
	return Vec2[T]{m[r*2], m[r*2+1]}
}

// Col returns column c as a vector.
func (m Mat2[T]) Col(c int) Vec2[T] {
	checkIndex(c, 2)
	return Vec2[T]{m[c], m[2+c]}
}

// Row returns row r as a vector.
func (m Mat3[T]) Row(r int) Vec3[T] {
	checkIndex(r, 3)
	return Vec3[T]{m[r*3], m[r*3+1], m[r*3+2]}
}

// Col returns column c as a vector.
func (m Mat3[T]) Col(c int) Vec3[T] {
	checkIndex(c, 3)
	return Vec3[T]{m[c], m[3+c], m[6+c]}
}

// Row returns row r as a vector.
func (m Mat4[T]) Row(r int) Vec4[T] {
	checkIndex(r, 4)
	return Vec4[T]{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

// Col returns column c as a vector.
func (m Mat4[T]) Col(c int) Vec4[T] {
	checkIndex(c, 4)
	return Vec4[T]{m[c], m[4+c], m[8+c], m[12+c]}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{m.Row(0).Dot(v), m.Row(1).Dot(v)}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v), m.Row(3).Dot(v)}
}

// formatMatrix renders Matrix<N>[row;row;...] with comma-separated
// components inside each row.
func formatMatrix[T Scalar](elements []T, n int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix%d[", n)
	for r := 0; r < n; r++ {
		if r > 0 {
			sb.WriteByte(';')
		}
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%v", elements[r*n+c])
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// String renders the matrix as Matrix2[a,b;c,d].
func (m Mat2[T]) String() string { return formatMatrix(m[:], 2) }

// String renders the matrix row by row.
func (m Mat3[T]) String() string { return formatMatrix(m[:], 3) }

// String renders the matrix row by row.
func (m Mat4[T]) String() string { return formatMatrix(m[:], 4) }
