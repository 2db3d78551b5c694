package vector

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

const eps = 1e-9

func TestNewStoresVerbatim(t *testing.T) {
	v := New(math.Inf(1), -2.5)
	require.True(t, math.IsInf(v.X, 1))
	require.Equal(t, -2.5, v.Y)
	require.Equal(t, "XY", v.Order())
}

func TestFactories(t *testing.T) {
	require.Equal(t, New(0, 0), Zero())
	require.Equal(t, New(-1, 0), Left())
	require.Equal(t, New(1, 0), Right())
	require.Equal(t, New(0, 1), Up())

	// Down has always matched Up rather than (0, -1).
	require.Equal(t, New(0, 1), Down())
	require.Equal(t, Up(), Down())

	a, b := Zero(), Zero()
	require.NotSame(t, a, b)
	a.Add(Right())
	require.Equal(t, 0.0, b.X)
}

func TestToArrayAndObject(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		x := rng.NormFloat64() * 1e3
		y := rng.NormFloat64() * 1e3
		v := New(x, y)
		require.Equal(t, [2]float64{x, y}, v.ToArray())
		require.Equal(t, Record{X: x, Y: y}, v.ToObject())
	}
}

func TestClone(t *testing.T) {
	v := New(1.5, -2)
	c := v.Clone()
	require.NotSame(t, v, c)
	require.Equal(t, v, c)

	c.Scale(2)
	require.Equal(t, New(1.5, -2), v)
}

func TestAddSubtractIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a := New(rng.Float64()*200-100, rng.Float64()*200-100)
		b := New(rng.Float64()*200-100, rng.Float64()*200-100)

		got := a.Clone()
		got.Add(b)
		got.Subtract(b)
		require.InDelta(t, a.X, got.X, eps)
		require.InDelta(t, a.Y, got.Y, eps)
	}
}

func TestAddSubtract(t *testing.T) {
	v := New(1, 2)
	v.Add(New(68, 67))
	require.Equal(t, New(69, 69), v)

	v.Subtract(New(70, 60))
	require.Equal(t, New(-1, 9), v)
}

func TestNilOperandsAreNoOps(t *testing.T) {
	v := New(3, 4)
	v.Add(nil)
	v.Subtract(nil)
	v.Dot(nil)
	v.From(nil)
	v.From((*Vector2)(nil))
	require.Equal(t, New(3, 4), v)

	_, ok := v.DistanceTo(nil)
	require.False(t, ok)
	_, ok = v.AngleBetween(nil)
	require.False(t, ok)
	_, ok = v.AngleTo(nil)
	require.False(t, ok)
	require.True(t, math.IsNaN(DotProduct(v, nil)))
}

func TestSetPartial(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want *Vector2
	}{
		{"both valid", 5, 6, New(5, 6)},
		{"bad y", 5, math.NaN(), New(5, 2)},
		{"bad x", math.NaN(), 6, New(1, 6)},
		{"both bad", math.NaN(), math.NaN(), New(1, 2)},
		{"infinite x", math.Inf(1), 6, New(1, 6)},
		{"infinite y", 5, math.Inf(-1), New(5, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(1, 2)
			v.Set(tt.x, tt.y)
			require.Equal(t, tt.want, v)
		})
	}
}

func TestScale(t *testing.T) {
	v := New(1, 2)
	v.Scale(4)
	require.Equal(t, New(4, 8), v)

	v.Scale(math.NaN())
	require.True(t, math.IsNaN(v.X))
	require.True(t, math.IsNaN(v.Y))
}

func TestDotIsComponentWise(t *testing.T) {
	a := New(2, 3)
	b := New(4, 5)

	require.Equal(t, 23.0, DotProduct(a, b))

	a.Dot(b)
	require.Equal(t, New(8, 15), a)
	require.Equal(t, New(4, 5), b)
}

func TestDotProductFormula(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a := New(rng.NormFloat64(), rng.NormFloat64())
		b := New(rng.NormFloat64(), rng.NormFloat64())
		require.InDelta(t, a.X*b.X+a.Y*b.Y, DotProduct(a, b), eps)
	}
}

func TestNormalize(t *testing.T) {
	v := New(3, 4)
	got := v.Normalize()
	require.Same(t, v, got)
	require.InDelta(t, 0.6, v.X, eps)
	require.InDelta(t, 0.8, v.Y, eps)
	require.InDelta(t, 1.0, v.Magnitude(), eps)

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		w := New(rng.NormFloat64()*50, rng.NormFloat64()*50)
		require.InDelta(t, 1.0, w.Normalize().Magnitude(), eps)
	}

	z := Zero().Normalize()
	require.Equal(t, New(0, 0), z)
}

func TestNormalizedLeavesReceiver(t *testing.T) {
	v := New(0, -5)
	n := v.Normalized()
	require.Equal(t, New(0, -5), v)
	require.Equal(t, New(0, -1), n)
	require.NotSame(t, v, n)
}

func TestMagnitudeAndDistance(t *testing.T) {
	require.Equal(t, 5.0, New(3, 4).Magnitude())
	require.Equal(t, 0.0, Zero().Magnitude())

	d, ok := New(1, 1).DistanceTo(New(4, 5))
	require.True(t, ok)
	require.Equal(t, 5.0, d)

	d, ok = New(-2, 7).DistanceTo(New(-2, 7))
	require.True(t, ok)
	require.Equal(t, 0.0, d)
}

func TestAngleBetweenIsNaN(t *testing.T) {
	a, ok := Right().AngleBetween(Up())
	require.True(t, ok)
	require.True(t, math.IsNaN(a))
}

func TestExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name string
		v    *Vector2
		want float64
	}{
		{"tiny", New(1e-170, 1e-170), math.Sqrt2 * 1e-170},
		{"huge", New(1e200, 1e200), math.Sqrt2 * 1e200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InEpsilon(t, tt.want, tt.v.Magnitude(), 1e-12)

			d, ok := Zero().DistanceTo(tt.v)
			require.True(t, ok)
			require.InEpsilon(t, tt.want, d, 1e-12)

			n := tt.v.Normalized()
			require.InDelta(t, 1.0, n.Magnitude(), eps)
			require.InDelta(t, math.Sqrt2/2, n.X, eps)

			angle, _ := tt.v.AngleTo(Right())
			require.InDelta(t, 45, angle, 1e-9)
		})
	}
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name string
		a, b *Vector2
		want float64
	}{
		{"perpendicular", Right(), Up(), 90},
		{"opposite", Right(), Left(), 180},
		{"same", New(2, 2), New(5, 5), 0},
		{"diagonal", Right(), New(1, 1), 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.AngleTo(tt.b)
			require.True(t, ok)
			require.InDelta(t, tt.want, got, 1e-6)
		})
	}

	got, ok := Zero().AngleTo(Right())
	require.True(t, ok)
	require.True(t, math.IsNaN(got))
}

func TestString(t *testing.T) {
	require.Equal(t, "[3; 4]", New(3, 4).String())
	require.Equal(t, "[-1.5; 0.25]", New(-1.5, 0.25).String())
	require.Equal(t, "[0; 0]", Zero().String())
	require.Equal(t, "[1e+200; -1e-07]", New(1e200, -1e-7).String())
	require.Equal(t, "[123456789; 0.000001]", New(123456789, 1e-6).String())
}

func TestFrom(t *testing.T) {
	t.Run("record", func(t *testing.T) {
		v := Zero().From(Record{X: 3, Y: 4})
		require.Equal(t, New(3, 4), v)
	})

	t.Run("vector", func(t *testing.T) {
		src := New(-1, 2)
		v := Zero().From(src)
		require.Equal(t, src, v)
		require.NotSame(t, src, v)
	})

	t.Run("sequence", func(t *testing.T) {
		v := Zero().From(Sequence{3.0, 4.0})
		require.Equal(t, New(3, 4), v)

		v = Zero().From(Sequence{3, float32(4)})
		require.Equal(t, New(3, 4), v)
	})

	t.Run("sequence with bad element", func(t *testing.T) {
		v := New(1, 2).From(Sequence{5.0, "bad"})
		require.Equal(t, New(5, 2), v)

		v = New(1, 2).From(Sequence{"bad", 6.0})
		require.Equal(t, New(1, 6), v)
	})

	t.Run("short sequence", func(t *testing.T) {
		v := New(1, 2).From(Sequence{9.0})
		require.Equal(t, New(9, 2), v)

		v = New(1, 2).From(Sequence{})
		require.Equal(t, New(1, 2), v)
	})

	t.Run("record with NaN", func(t *testing.T) {
		v := New(1, 2).From(Record{X: math.NaN(), Y: 8})
		require.Equal(t, New(1, 8), v)
	})

	t.Run("text is a no-op", func(t *testing.T) {
		// The split parts are strings, which the numeric guard rejects.
		v := New(1, 2)
		got := v.From(Text("[3;4]"))
		require.Same(t, v, got)
		require.Equal(t, New(1, 2), v)
	})
}

func TestR2Interop(t *testing.T) {
	v := FromR2(r2.Vec{X: 1, Y: -2})
	require.Equal(t, New(1, -2), v)
	require.Equal(t, r2.Vec{X: 1, Y: -2}, v.R2())

	w := New(3, 4)
	require.InDelta(t, r2.Norm(w.R2()), w.Magnitude(), eps)
}
