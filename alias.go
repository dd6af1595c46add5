package geom

// Short names for the common instantiations.
type (
	// Vector2 is a 2D vector of float64.
	Vector2 = Vec2[float64]
	// Vector3 is a 3D vector of float64.
	Vector3 = Vec3[float64]
	// Vector2f is a 2D vector of float32.
	Vector2f = Vec2[float32]
	// Vector3f is a 3D vector of float32.
	Vector3f = Vec3[float32]
	// Vector2i is a 2D vector of int.
	Vector2i = Vec2[int]
	// Vector3i is a 3D vector of int.
	Vector3i = Vec3[int]
)
