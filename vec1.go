package geom

import "github.com/haddriax/geom/internal/mathn"

// Vec1 is a one-dimensional vector of T. It exists so that every operation
// defined for higher dimensions keeps a uniform meaning down to a single
// component; the zero value is the zero vector.
type Vec1[T Scalar] [1]T

// New1 builds a Vec1 from its single component.
func New1[T Scalar](x T) Vec1[T] {
	return Vec1[T]{x}
}

// Dim returns 1. It does not depend on the receiver and may be called on
// the zero value.
func (Vec1[T]) Dim() int { return 1 }

// At returns component i. It panics when i is outside [0, 1).
func (v Vec1[T]) At(i int) T {
	checkIndex(i, 1)
	return v[i]
}

// Set overwrites component i. It panics when i is outside [0, 1).
func (v *Vec1[T]) Set(i int, s T) {
	checkIndex(i, 1)
	v[i] = s
}

// Data returns the components as an ordered array snapshot.
func (v Vec1[T]) Data() [1]T { return v }

// X returns the first component.
func (v Vec1[T]) X() T { return v[0] }

// Add returns the component-wise sum v + o.
func (v Vec1[T]) Add(o Vec1[T]) Vec1[T] {
	mathn.AddInPlace(v[:], o[:])
	return v
}

// Sub returns the component-wise difference v - o.
func (v Vec1[T]) Sub(o Vec1[T]) Vec1[T] {
	mathn.SubInPlace(v[:], o[:])
	return v
}

// Hadamard returns the component-wise product of v and o.
func (v Vec1[T]) Hadamard(o Vec1[T]) Vec1[T] {
	mathn.MulInPlace(v[:], o[:])
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec1[T]) Scale(s T) Vec1[T] {
	mathn.ScaleInPlace(v[:], s)
	return v
}

// Neg returns v with every component negated.
func (v Vec1[T]) Neg() Vec1[T] {
	v[0] = -v[0]
	return v
}

// Dot returns the dot product v · o.
func (v Vec1[T]) Dot(o Vec1[T]) T { return mathn.Dot(v[:], o[:]) }

// SquaredMagnitude returns the sum of squared components.
func (v Vec1[T]) SquaredMagnitude() T { return mathn.SquaredMag(v[:]) }

// Magnitude returns the Euclidean norm as a float64.
func (v Vec1[T]) Magnitude() float64 { return mathn.Mag(v[:]) }

// Normalized returns a unit-length copy of v. The zero vector is returned
// unchanged.
func (v Vec1[T]) Normalized() Vec1[T] {
	mathn.NormalizeInPlace(v[:])
	return v
}

// Normalize scales the receiver to unit length in place. The zero vector is
// left unchanged.
func (v *Vec1[T]) Normalize() {
	mathn.NormalizeInPlace(v[:])
}

// Project returns the projection of v onto the direction of onto.
// Projecting onto the zero vector yields the zero vector.
func (v Vec1[T]) Project(onto Vec1[T]) Vec1[T] {
	mathn.ProjectInPlace(v[:], onto[:])
	return v
}

// String renders the vector as Vector1[x].
func (v Vec1[T]) String() string { return formatVector(v[:]) }
