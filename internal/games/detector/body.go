package detector

import (
	"github.com/vovakirdan/detector-run/internal/config"
	"github.com/vovakirdan/detector-run/internal/core"
)

// PhysicsBody is the jumping detector. Y is the feet, not the top edge,
// so the body stands on the ground line when Y == ground.
type PhysicsBody struct {
	X, Y          float64
	Width, Height float64
	VelY          float64
	Airborne      bool

	gravity float64
	impulse float64
	ground  float64
}

// NewPhysicsBody places a body of the configured size on the ground.
func NewPhysicsBody(player config.PlayerConfig, physics config.PhysicsConfig, ground float64) *PhysicsBody {
	b := &PhysicsBody{
		X:       player.X,
		Width:   player.Width,
		Height:  player.Height,
		gravity: physics.Gravity,
		impulse: physics.JumpImpulse,
	}
	b.Land(ground)
	return b
}

// Jump starts a jump. It reports false and does nothing while airborne.
func (b *PhysicsBody) Jump() bool {
	if b.Airborne {
		return false
	}
	b.VelY = b.impulse
	b.Airborne = true
	return true
}

// Tick integrates one frame of gravity and lands the body on the ground line.
func (b *PhysicsBody) Tick() {
	b.VelY += b.gravity
	b.Y += b.VelY

	if b.Y > b.ground {
		b.Y = b.ground
		b.VelY = 0
		b.Airborne = false
	}
}

// Land puts the body on the given ground line at rest.
func (b *PhysicsBody) Land(ground float64) {
	b.ground = ground
	b.Y = ground
	b.VelY = 0
	b.Airborne = false
}

// SetGround moves the ground line after a resize. A standing body follows it;
// a body in mid-air keeps its arc unless the new ground is above its feet.
func (b *PhysicsBody) SetGround(ground float64) {
	if !b.Airborne || b.Y > ground {
		b.Land(ground)
		return
	}
	b.ground = ground
}

// Box returns the body's bounds with Y pointing at the top edge.
func (b *PhysicsBody) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y - b.Height, W: b.Width, H: b.Height}
}
