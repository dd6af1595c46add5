package geom

import "github.com/haddriax/geom/internal/mathn"

// Vec2 is a two-dimensional vector of T. The zero value is the zero vector.
type Vec2[T Scalar] [2]T

// New2 builds a Vec2 from exactly two components.
func New2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Dim returns 2. It does not depend on the receiver and may be called on
// the zero value.
func (Vec2[T]) Dim() int { return 2 }

// At returns component i. It panics when i is outside [0, 2).
func (v Vec2[T]) At(i int) T {
	checkIndex(i, 2)
	return v[i]
}

// Set overwrites component i. It panics when i is outside [0, 2).
func (v *Vec2[T]) Set(i int, s T) {
	checkIndex(i, 2)
	v[i] = s
}

// Data returns the components as an ordered array snapshot.
func (v Vec2[T]) Data() [2]T { return v }

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// XY returns the first two components, which for a Vec2 is the vector
// itself.
func (v Vec2[T]) XY() Vec2[T] { return v }

// Add returns the component-wise sum v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	mathn.AddInPlace(v[:], o[:])
	return v
}

// Sub returns the component-wise difference v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	mathn.SubInPlace(v[:], o[:])
	return v
}

// Hadamard returns the component-wise product of v and o.
func (v Vec2[T]) Hadamard(o Vec2[T]) Vec2[T] {
	mathn.MulInPlace(v[:], o[:])
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	mathn.ScaleInPlace(v[:], s)
	return v
}

// Neg returns v with every component negated.
func (v Vec2[T]) Neg() Vec2[T] {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// Dot returns the dot product v · o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return mathn.Dot(v[:], o[:]) }

// SquaredMagnitude returns the sum of squared components.
func (v Vec2[T]) SquaredMagnitude() T { return mathn.SquaredMag(v[:]) }

// Magnitude returns the Euclidean norm as a float64. The magnitude of an
// integer vector is still a real number.
func (v Vec2[T]) Magnitude() float64 { return mathn.Mag(v[:]) }

// Normalized returns a unit-length copy of v. The zero vector is returned
// unchanged.
func (v Vec2[T]) Normalized() Vec2[T] {
	mathn.NormalizeInPlace(v[:])
	return v
}

// Normalize scales the receiver to unit length in place. The zero vector is
// left unchanged.
func (v *Vec2[T]) Normalize() {
	mathn.NormalizeInPlace(v[:])
}

// Project returns the projection of v onto the direction of onto.
// Projecting onto the zero vector yields the zero vector.
func (v Vec2[T]) Project(onto Vec2[T]) Vec2[T] {
	mathn.ProjectInPlace(v[:], onto[:])
	return v
}

// String renders the vector as Vector2[x;y].
func (v Vec2[T]) String() string { return formatVector(v[:]) }
