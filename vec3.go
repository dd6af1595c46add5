package geom

import "github.com/haddriax/geom/internal/mathn"

// Vec3 is a three-dimensional vector of T. The zero value is the zero
// vector.
type Vec3[T Scalar] [3]T

// New3 builds a Vec3 from exactly three components.
func New3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Dim returns 3. It does not depend on the receiver and may be called on
// the zero value.
func (Vec3[T]) Dim() int { return 3 }

// At returns component i. It panics when i is outside [0, 3).
func (v Vec3[T]) At(i int) T {
	checkIndex(i, 3)
	return v[i]
}

// Set overwrites component i. It panics when i is outside [0, 3).
func (v *Vec3[T]) Set(i int, s T) {
	checkIndex(i, 3)
	v[i] = s
}

// Data returns the components as an ordered array snapshot.
func (v Vec3[T]) Data() [3]T { return v }

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// XY returns the first two components as a Vec2.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XYZ returns the first three components, which for a Vec3 is the vector
// itself.
func (v Vec3[T]) XYZ() Vec3[T] { return v }

// Add returns the component-wise sum v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	mathn.AddInPlace(v[:], o[:])
	return v
}

// Sub returns the component-wise difference v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	mathn.SubInPlace(v[:], o[:])
	return v
}

// Hadamard returns the component-wise product of v and o. This is not a
// geometric product; see Dot and Cross for those.
func (v Vec3[T]) Hadamard(o Vec3[T]) Vec3[T] {
	mathn.MulInPlace(v[:], o[:])
	return v
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	mathn.ScaleInPlace(v[:], s)
	return v
}

// Neg returns v with every component negated.
func (v Vec3[T]) Neg() Vec3[T] {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// Dot returns the dot product v · o, accumulated in T starting from T's
// zero value.
func (v Vec3[T]) Dot(o Vec3[T]) T { return mathn.Dot(v[:], o[:]) }

// SquaredMagnitude returns the sum of squared components.
func (v Vec3[T]) SquaredMagnitude() T { return mathn.SquaredMag(v[:]) }

// Magnitude returns the Euclidean norm as a float64. The magnitude of an
// integer vector is still a real number.
func (v Vec3[T]) Magnitude() float64 { return mathn.Mag(v[:]) }

// Normalized returns a unit-length copy of v; the receiver is untouched.
// The zero vector is returned unchanged.
func (v Vec3[T]) Normalized() Vec3[T] {
	mathn.NormalizeInPlace(v[:])
	return v
}

// Normalize scales the receiver to unit length in place. The zero vector is
// left unchanged.
func (v *Vec3[T]) Normalize() {
	mathn.NormalizeInPlace(v[:])
}

// Project returns the projection of v onto the direction of onto,
// (v·onto)/(onto·onto) * onto. Projecting onto the zero vector yields the
// zero vector.
func (v Vec3[T]) Project(onto Vec3[T]) Vec3[T] {
	mathn.ProjectInPlace(v[:], onto[:])
	return v
}

// Cross returns the cross product v × o: the vector orthogonal to both
// operands, oriented by the right-hand rule. It is anti-commutative:
// a.Cross(b) == b.Cross(a).Neg().
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// String renders the vector as Vector3[x;y;z].
func (v Vec3[T]) String() string { return formatVector(v[:]) }
