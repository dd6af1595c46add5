package geom

// Scalar is the set of numeric types a vector may hold: any integer or
// floating-point type, including named types with such an underlying type.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Cast converts a single scalar between numeric types using Go's
// conversion rules.
func Cast[U, T Scalar](v T) U {
	return U(v)
}

// Convert2 returns v with every component converted to U. Binary operations
// require both operands to share one scalar type; callers combining mixed
// scalar types pick the result type explicitly:
//
//	wide := geom.Convert2[float64](vi).Add(vf)
func Convert2[U, T Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v[0]), U(v[1])}
}

// Convert3 returns v with every component converted to U.
func Convert3[U, T Scalar](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}

// Convert4 returns v with every component converted to U.
func Convert4[U, T Scalar](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v[0]), U(v[1]), U(v[2]), U(v[3])}
}
