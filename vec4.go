package geom

import "github.com/haddriax/geom/internal/mathn"

// Vec4 is a four-dimensional vector of T. The zero value is the zero
// vector.
type Vec4[T Scalar] [4]T

// New4 builds a Vec4 from exactly four components.
func New4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Dim returns 4. It does not depend on the receiver and may be called on
// the zero value.
func (Vec4[T]) Dim() int { return 4 }

// At returns component i. It panics when i is outside [0, 4).
func (v Vec4[T]) At(i int) T {
	checkIndex(i, 4)
	return v[i]
}

// Set overwrites component i. It panics when i is outside [0, 4).
func (v *Vec4[T]) Set(i int, s T) {
	checkIndex(i, 4)
	v[i] = s
}

// Data returns the components as an ordered array snapshot.
func (v Vec4[T]) Data() [4]T { return v }

// X returns the first component.
func (v Vec4[T]) X() T { return v[0] }

// XY returns the first two components as a Vec2.
func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XYZ returns the first three components as a Vec3.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// Add returns the component-wise sum v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	mathn.AddInPlace(v[:], o[:])
	return v
}

// Sub returns the component-wise difference v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	mathn.SubInPlace(v[:], o[:])
	return v
}

// Hadamard returns the component-wise product of v and o.
func (v Vec4[T]) Hadamard(o Vec4[T]) Vec4[T] {
	mathn.MulInPlace(v[:], o[:])
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	mathn.ScaleInPlace(v[:], s)
	return v
}

// Neg returns v with every component negated.
func (v Vec4[T]) Neg() Vec4[T] {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// Dot returns the dot product v · o.
func (v Vec4[T]) Dot(o Vec4[T]) T { return mathn.Dot(v[:], o[:]) }

// SquaredMagnitude returns the sum of squared components.
func (v Vec4[T]) SquaredMagnitude() T { return mathn.SquaredMag(v[:]) }

// Magnitude returns the Euclidean norm as a float64. The magnitude of an
// integer vector is still a real number.
func (v Vec4[T]) Magnitude() float64 { return mathn.Mag(v[:]) }

// Normalized returns a unit-length copy of v. The zero vector is returned
// unchanged.
func (v Vec4[T]) Normalized() Vec4[T] {
	mathn.NormalizeInPlace(v[:])
	return v
}

// Normalize scales the receiver to unit length in place. The zero vector is
// left unchanged.
func (v *Vec4[T]) Normalize() {
	mathn.NormalizeInPlace(v[:])
}

// Project returns the projection of v onto the direction of onto.
// Projecting onto the zero vector yields the zero vector.
func (v Vec4[T]) Project(onto Vec4[T]) Vec4[T] {
	mathn.ProjectInPlace(v[:], onto[:])
	return v
}

// String renders the vector as Vector4[x;y;z;w].
func (v Vec4[T]) String() string { return formatVector(v[:]) }
