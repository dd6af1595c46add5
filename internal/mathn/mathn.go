// Package mathn provides the generic numeric kernels behind the public
// vector types. This is an internal package - external users should use
// the geom package surface.
package mathn

import "math"

// Number is the numeric type set the kernels operate over. It must stay in
// sync with the public Scalar constraint of the root package.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Dot returns the dot product of a and b, accumulated in T starting from
// T's zero value. Assumes equal length (the vector types guarantee it).
func Dot[T Number](a, b []T) T {
	var ret T
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredMag returns the sum of squared components of v, accumulated in T.
func SquaredMag[T Number](v []T) T {
	var ret T
	for _, c := range v {
		ret += c * c
	}

	return ret
}

// Mag returns the Euclidean norm of v as a float64. The magnitude of an
// integer vector is still a real number.
func Mag[T Number](v []T) float64 {
	return math.Sqrt(float64(SquaredMag(v)))
}

// AddInPlace adds b into a component-wise.
func AddInPlace[T Number](a, b []T) {
	for i := range a {
		a[i] += b[i]
	}
}

// SubInPlace subtracts b from a component-wise.
func SubInPlace[T Number](a, b []T) {
	for i := range a {
		a[i] -= b[i]
	}
}

// MulInPlace multiplies a by b component-wise (Hadamard product).
func MulInPlace[T Number](a, b []T) {
	for i := range a {
		a[i] *= b[i]
	}
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace[T Number](a []T, scalar T) {
	for i := range a {
		a[i] *= scalar
	}
}

// NormalizeInPlace divides every component of v by its magnitude, computing
// in float64 and converting back to T. Returns false and leaves v unchanged
// when v has zero magnitude.
func NormalizeInPlace[T Number](v []T) bool {
	m := Mag(v)
	if m == 0 {
		return false
	}
	for i := range v {
		v[i] = T(float64(v[i]) / m)
	}

	return true
}

// ProjectInPlace overwrites a with its projection onto b, computing the
// (a·b)/(b·b) factor in float64. Returns false and zeroes a when b has zero
// magnitude.
func ProjectInPlace[T Number](a, b []T) bool {
	bb := SquaredMag(b)
	if bb == 0 {
		for i := range a {
			a[i] = 0
		}

		return false
	}

	k := float64(Dot(a, b)) / float64(bb)
	for i := range a {
		a[i] = T(float64(b[i]) * k)
	}

	return true
}
