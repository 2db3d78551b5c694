// Package components defines ECS components for the sandbox.
package components

import "github.com/pthm-cable/vec2/vector"

// Position represents a body's world position.
type Position struct {
	vector.Vector2
}

// Velocity represents a body's velocity in world units per second.
type Velocity struct {
	vector.Vector2
}

// Body holds physical properties of a body.
type Body struct {
	Radius float64
	Mass   float64
}

// Tag identifies a body across snapshots.
type Tag struct {
	ID uint32
}
