package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haddriax/geom"
	"github.com/haddriax/geom/testutil"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     geom.Vector3
		expected geom.Vector3
	}{
		{"Simple", geom.New3(1.0, 2.0, 3.0), geom.New3(4.0, 5.0, 6.0), geom.New3(5.0, 7.0, 9.0)},
		{"Zero", geom.New3(1.0, 2.0, 3.0), geom.Vector3{}, geom.New3(1.0, 2.0, 3.0)},
		{"Negative", geom.New3(1.0, -2.0, 3.0), geom.New3(-1.0, 2.0, -3.0), geom.Vector3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Add(tt.b))
			// Commutative.
			assert.Equal(t, tt.expected, tt.b.Add(tt.a))
		})
	}
}

func TestAddAssociative(t *testing.T) {
	rng := testutil.NewRNG(42)

	for i := 0; i < 100; i++ {
		a, b, c := rng.Vec3(), rng.Vec3(), rng.Vec3()

		left := a.Add(b).Add(c)
		right := a.Add(b.Add(c))
		for j := 0; j < 3; j++ {
			assert.InDelta(t, left.At(j), right.At(j), 1e-12)
		}
	}
}

func TestSub(t *testing.T) {
	a := geom.New3(1.0, 2.0, 3.0)
	b := geom.New3(1.0, 2.0, 3.0)

	assert.Equal(t, geom.Vector3{}, a.Sub(b))
	assert.Equal(t, geom.New3(-1.0, -2.0, -3.0), a.Sub(b).Sub(b))
}

func TestHadamard(t *testing.T) {
	a := geom.New3(1, 2, 3)
	b := geom.New3(4, 5, 6)

	assert.Equal(t, geom.New3(4, 10, 18), a.Hadamard(b))
}

func TestScale(t *testing.T) {
	v := geom.New3(1.0, 2.0, 3.0)

	assert.Equal(t, geom.New3(2.0, 4.0, 6.0), v.Scale(2))
	assert.Equal(t, geom.Vector3{}, v.Scale(0))
	// Operands are untouched.
	assert.Equal(t, geom.New3(1.0, 2.0, 3.0), v)
}

func TestNeg(t *testing.T) {
	assert.Equal(t, geom.New3(-1.0, 2.0, -3.0), geom.New3(1.0, -2.0, 3.0).Neg())
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     geom.Vector3
		expected float64
	}{
		{"Simple", geom.New3(1.0, 2.0, 3.0), geom.New3(4.0, 5.0, 6.0), 32},
		{"Orthogonal", geom.New3(1.0, 0.0, 0.0), geom.New3(0.0, 1.0, 0.0), 0},
		{"Opposed", geom.New3(1.0, 1.0, 1.0), geom.New3(-1.0, -1.0, -1.0), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.a.Dot(tt.b), 1e-12)
		})
	}

	assert.Equal(t, 32, geom.New3(1, 2, 3).Dot(geom.New3(4, 5, 6)))
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, math.Sqrt(3), geom.New3(1.0, 1.0, 1.0).Magnitude(), 1e-12)
	assert.InDelta(t, 5, geom.New2(3, 4).Magnitude(), 1e-12)
	assert.Equal(t, 14, geom.New3(1, 2, 3).SquaredMagnitude())
	assert.Zero(t, geom.Vector3{}.Magnitude())
}

func TestNormalized(t *testing.T) {
	v := geom.New3(3.0, -4.0, 12.0)
	n := v.Normalized()

	assert.InDelta(t, 1, n.Magnitude(), 1e-12)
	// The receiver is untouched.
	assert.Equal(t, geom.New3(3.0, -4.0, 12.0), v)
}

func TestNormalize(t *testing.T) {
	v := geom.New3(3.0, -4.0, 12.0)
	expected := v.Normalized()

	v.Normalize()

	assert.Equal(t, expected, v)
	assert.InDelta(t, 1, v.Magnitude(), 1e-12)
}

func TestNormalizeDegenerate(t *testing.T) {
	var v geom.Vector3

	assert.Equal(t, geom.Vector3{}, v.Normalized())

	v.Normalize()
	assert.Equal(t, geom.Vector3{}, v)
}

func TestNormalizedProperty(t *testing.T) {
	rng := testutil.NewRNG(7)

	for i := 0; i < 100; i++ {
		v := rng.NonZeroVec3()
		assert.InDelta(t, 1, v.Normalized().Magnitude(), 1e-9)
	}
}

func TestCross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     geom.Vector3
		expected geom.Vector3
	}{
		{"Basis", geom.New3(1.0, 0.0, 0.0), geom.New3(0.0, 1.0, 0.0), geom.New3(0.0, 0.0, 1.0)},
		{"Parallel", geom.New3(2.0, 2.0, 2.0), geom.New3(4.0, 4.0, 4.0), geom.Vector3{}},
		{"General", geom.New3(1.0, 2.0, 3.0), geom.New3(1.0, 1.0, 1.0), geom.New3(-1.0, 2.0, -1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Cross(tt.b))
		})
	}
}

func TestCrossAntiCommutative(t *testing.T) {
	rng := testutil.NewRNG(99)

	for i := 0; i < 100; i++ {
		a, b := rng.Vec3(), rng.Vec3()

		ab := a.Cross(b)
		ba := b.Cross(a).Neg()
		for j := 0; j < 3; j++ {
			assert.InDelta(t, ab.At(j), ba.At(j), 1e-12)
		}
	}
}

func TestCrossOrthogonal(t *testing.T) {
	rng := testutil.NewRNG(5)

	for i := 0; i < 100; i++ {
		a, b := rng.Vec3(), rng.Vec3()
		n := a.Cross(b)

		assert.InDelta(t, 0, n.Dot(a), 1e-12)
		assert.InDelta(t, 0, n.Dot(b), 1e-12)
	}
}

func TestProject(t *testing.T) {
	a := geom.New3(-4.0, 2.0, 12.0)
	b := geom.New3(3.0, 1.0, 2.0)

	got := a.Project(b)

	// dot(a,b) and dot(b,b) are both 14, so the projection is b itself.
	require.InDelta(t, 1, a.Dot(b)/b.Dot(b), 1e-12)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, b.At(i), got.At(i), 1e-12)
	}
}

func TestProjectProperty(t *testing.T) {
	rng := testutil.NewRNG(21)

	for i := 0; i < 100; i++ {
		a := rng.Vec3()
		b := rng.NonZeroVec3()

		got := a.Project(b)
		expected := b.Scale(a.Dot(b) / b.Dot(b))
		for j := 0; j < 3; j++ {
			assert.InDelta(t, expected.At(j), got.At(j), 1e-9)
		}

		// The residual is orthogonal to the projection target.
		assert.InDelta(t, 0, a.Sub(got).Dot(b), 1e-9)
	}
}

func TestProjectDegenerate(t *testing.T) {
	a := geom.New3(1.0, 2.0, 3.0)

	assert.Equal(t, geom.Vector3{}, a.Project(geom.Vector3{}))
}

func TestOtherDimensions(t *testing.T) {
	t.Run("Vec1", func(t *testing.T) {
		a := geom.New1(3.0)
		assert.Equal(t, geom.New1(5.0), a.Add(geom.New1(2.0)))
		assert.InDelta(t, 3, a.Magnitude(), 1e-12)
		assert.Equal(t, geom.New1(1.0), a.Normalized())
	})

	t.Run("Vec2", func(t *testing.T) {
		a := geom.New2(3.0, 4.0)
		assert.Equal(t, geom.New2(6.0, 8.0), a.Scale(2))
		assert.InDelta(t, 25, a.Dot(a), 1e-12)
		assert.InDelta(t, 1, a.Normalized().Magnitude(), 1e-12)
	})

	t.Run("Vec4", func(t *testing.T) {
		a := geom.New4(1.0, 2.0, 3.0, 4.0)
		b := geom.New4(4.0, 3.0, 2.0, 1.0)
		assert.Equal(t, geom.New4(5.0, 5.0, 5.0, 5.0), a.Add(b))
		assert.InDelta(t, 20, a.Dot(b), 1e-12)
		assert.Equal(t, geom.New4(4.0, 6.0, 6.0, 4.0), a.Hadamard(b))
		assert.InDelta(t, 1, a.Normalized().Magnitude(), 1e-12)
	})
}
