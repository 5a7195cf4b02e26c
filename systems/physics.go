package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/veer/components"
)

// Bounds represents the simulation world size.
type Bounds struct {
	Width, Height float32
}

// PhysicsSystem integrates velocities into positions with toroidal wrap.
type PhysicsSystem struct {
	filter ecs.Filter3[components.Position, components.Velocity, components.Body]
	bounds Bounds
}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem(w *ecs.World, bounds Bounds) *PhysicsSystem {
	return &PhysicsSystem{
		filter: *ecs.NewFilter3[components.Position, components.Velocity, components.Body](w),
		bounds: bounds,
	}
}

// Update advances all entities by one tick.
func (s *PhysicsSystem) Update(w *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, body := query.Get()

		// Clamp to max speed; the sampler emits bounded velocities but the
		// echo sample can pass through an unclamped previous best.
		speed := float32(math.Sqrt(float64(vel.X*vel.X + vel.Y*vel.Y)))
		if speed > body.MaxSpeed {
			scale := body.MaxSpeed / speed
			vel.X *= scale
			vel.Y *= scale
		}

		pos.X += vel.X
		pos.Y += vel.Y

		// Toroidal wrap
		if pos.X < 0 {
			pos.X += s.bounds.Width
		} else if pos.X >= s.bounds.Width {
			pos.X -= s.bounds.Width
		}
		if pos.Y < 0 {
			pos.Y += s.bounds.Height
		} else if pos.Y >= s.bounds.Height {
			pos.Y -= s.bounds.Height
		}
	}
}
