// Package renderer draws the sandbox with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vec2/vector"
)

// ToRaylib narrows a vector to raylib's float32 representation.
func ToRaylib(v vector.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// FromRaylib widens a raylib vector.
func FromRaylib(v rl.Vector2) vector.Vector2 {
	return vector.Vector2{X: float64(v.X), Y: float64(v.Y)}
}
