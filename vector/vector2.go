// Package vector provides a mutable two-dimensional vector type.
//
// Mutating methods never fail loudly: an invalid operand (a nil vector, a
// non-finite coordinate passed to Set) leaves the receiver unchanged.
package vector

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// OrderXY is the axis order reported by every Vector2.
const OrderXY = "XY"

// Vector2 is a 2D coordinate or displacement.
type Vector2 struct {
	X, Y float64
}

// New returns a vector holding x and y verbatim.
func New(x, y float64) *Vector2 {
	return &Vector2{X: x, Y: y}
}

// Zero returns (0, 0).
func Zero() *Vector2 { return New(0, 0) }

// Left returns (-1, 0).
func Left() *Vector2 { return New(-1, 0) }

// Right returns (1, 0).
func Right() *Vector2 { return New(1, 0) }

// Up returns (0, 1).
func Up() *Vector2 { return New(0, 1) }

// Down returns (0, 1), the same value as Up. Existing callers depend on
// this; use a negated Up when (0, -1) is wanted.
func Down() *Vector2 { return New(0, 1) }

// DotProduct returns the scalar dot product of a and b, or NaN if either is nil.
func DotProduct(a, b *Vector2) float64 {
	if a == nil || b == nil {
		return math.NaN()
	}
	return r2.Dot(a.R2(), b.R2())
}

// Order returns the nominal axis order tag.
func (v Vector2) Order() string { return OrderXY }

// Set overwrites each coordinate whose new value is finite. A NaN or
// infinite argument leaves that coordinate as it was.
func (v *Vector2) Set(x, y float64) {
	if isFinite(x) {
		v.X = x
	}
	if isFinite(y) {
		v.Y = y
	}
}

// Add adds other to v component-wise.
func (v *Vector2) Add(other *Vector2) {
	if other == nil {
		return
	}
	v.X += other.X
	v.Y += other.Y
}

// Subtract subtracts other from v component-wise.
func (v *Vector2) Subtract(other *Vector2) {
	if other == nil {
		return
	}
	v.X -= other.X
	v.Y -= other.Y
}

// Dot multiplies v by other component-wise, in place. It is not the scalar
// dot product; see DotProduct for that.
func (v *Vector2) Dot(other *Vector2) {
	if other == nil {
		return
	}
	v.X *= other.X
	v.Y *= other.Y
}

// Scale multiplies both coordinates by value. NaN is applied like any other
// factor.
func (v *Vector2) Scale(value float64) {
	v.X *= value
	v.Y *= value
}

// Normalize rescales v to unit length in place and returns v. A zero vector
// stays (0, 0).
func (v *Vector2) Normalize() *Vector2 {
	length := v.Magnitude()
	if length == 0 {
		v.Set(0, 0)
	} else {
		v.Set(v.X/length, v.Y/length)
	}
	return v
}

// Clone returns a new vector with the same coordinates.
func (v Vector2) Clone() *Vector2 {
	return New(v.X, v.Y)
}

// Normalized returns a unit-length copy of v, leaving v untouched.
func (v Vector2) Normalized() *Vector2 {
	return v.Clone().Normalize()
}

// Magnitude returns the Euclidean length of v, without overflow or
// underflow for extreme coordinates.
func (v Vector2) Magnitude() float64 {
	return r2.Norm(v.R2())
}

// DistanceTo returns the Euclidean distance between v and other. The bool
// is false when other is nil.
func (v Vector2) DistanceTo(other *Vector2) (float64, bool) {
	if other == nil {
		return 0, false
	}
	return math.Hypot(v.X-other.X, v.Y-other.Y), true
}

// AngleBetween reports NaN for any non-nil other; the bool is false when
// other is nil.
//
// Deprecated: the result has never been a usable angle and is kept only for
// callers that compare against it. Use AngleTo.
func (v Vector2) AngleBetween(other *Vector2) (float64, bool) {
	if other == nil {
		return 0, false
	}
	return math.NaN(), true
}

// AngleTo returns the unsigned angle between v and other in degrees, in
// [0, 180]. It is NaN when either vector has zero length and the bool is
// false when other is nil.
func (v Vector2) AngleTo(other *Vector2) (float64, bool) {
	if other == nil {
		return 0, false
	}
	if v.Magnitude() == 0 || other.Magnitude() == 0 {
		return math.NaN(), true
	}
	// Compare unit vectors so the product of two large lengths cannot overflow.
	a, b := v.Normalized(), other.Normalized()
	cos := a.X*b.X + a.Y*b.Y
	// Rounding can push cos just outside [-1, 1] for parallel vectors.
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi, true
}

// String formats v as "[x; y]".
func (v Vector2) String() string {
	return "[" + formatCoord(v.X) + "; " + formatCoord(v.Y) + "]"
}

// ToArray returns the coordinates as an ordered pair.
func (v Vector2) ToArray() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// ToObject returns the coordinates as a keyed record.
func (v Vector2) ToObject() Record {
	return Record{X: v.X, Y: v.Y}
}

// R2 converts v to a gonum r2.Vec.
func (v Vector2) R2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// FromR2 returns a new vector holding the coordinates of p.
func FromR2(p r2.Vec) *Vector2 {
	return New(p.X, p.Y)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// formatCoord prints plain decimals, switching to an exponent below 1e-6
// and from 1e21 up.
func formatCoord(f float64) string {
	if a := math.Abs(f); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
