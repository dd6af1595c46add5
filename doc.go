// Package geom provides small, fixed-dimension numeric vectors for Go.
//
// Each dimension is its own array-backed generic type (Vec1 through Vec4),
// so the dimension is part of the type identity: adding a Vec2 to a Vec3,
// taking the cross product of anything but two Vec3 values, or projecting
// components a vector does not have are all compile errors, never run-time
// failures. Values are plain stack-resident arrays with no indirection and
// no heap allocation.
//
// # Quick Start
//
//	a := geom.New3(1.0, 2.0, 3.0)
//	b := geom.New3(4.0, 5.0, 6.0)
//
//	sum := a.Add(b)            // Vector3[5;7;9]
//	dot := a.Dot(b)            // 32
//	n := a.Cross(b)            // normal of the plane spanned by a and b
//	unit := a.Normalized()     // unit length, a is untouched
//
// The zero value of every vector type is the zero vector:
//
//	var origin geom.Vec3[float64] // Vector3[0;0;0]
//
// # Scalar Types
//
// Vectors are generic over any integer or floating-point type (the Scalar
// constraint). Operands of a binary operation must share one scalar type;
// Go applies no implicit promotion, so combining an integer vector with a
// floating one requires an explicit conversion:
//
//	vi := geom.New3(1, 2, 3)
//	vf := geom.Convert3[float64](vi).Scale(0.5)
//
// Magnitude is the exception: it is a real number for every scalar type and
// is always returned as float64.
//
// # Aliases
//
// Common instantiations carry short names: Vector2/Vector3 (float64),
// Vector2f/Vector3f (float32) and Vector2i/Vector3i (int).
//
// # Degenerate Input
//
// Normalizing the zero vector, or projecting onto it, has no mathematical
// result. Instead of producing NaN components, Normalize and Normalized
// leave the zero vector unchanged and Project yields the zero vector.
//
// # Concurrency
//
// Vectors are plain values with no shared state. Distinct values may be
// used from any number of goroutines without coordination; mutating a
// single value (Normalize, Set) concurrently requires external locking,
// the same discipline as any plain struct.
package geom
