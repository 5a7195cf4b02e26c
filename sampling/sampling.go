// Package sampling provides discrete velocity-candidate generation for local
// steering. A sampler enumerates a finite, ordered sequence of normalized
// velocity candidates; the caller scores each one against its own cost
// function and keeps the best. Two strategies are provided: an exhaustive
// polar grid and an adaptive grid warped around the agent's previous best
// velocity.
package sampling

import "math"

// Vec2 is a 2D vector in normalized velocity space. Samples have magnitude
// in (0, 1]; callers scale by the agent's max speed.
type Vec2 struct {
	X, Y float32
}

// Scale returns the vector multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Angle returns the vector direction in radians.
func (v Vec2) Angle() float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)))
}

// fromPolar builds a vector from an angle and a speed factor.
func fromPolar(angle, speed float64) Vec2 {
	return Vec2{
		X: float32(math.Cos(angle) * speed),
		Y: float32(math.Sin(angle) * speed),
	}
}

// AgentState is the read-only view of an agent a sampler needs: its last
// known-good velocity and its maximum speed. Samplers never write back.
type AgentState interface {
	BestVelocity() Vec2
	MaxSpeed() float32
}

// VelocitySampler enumerates velocity candidates one at a time.
//
// The caller drives one pass per simulation tick:
//
//	sampler.Reset()
//	for {
//		v := sampler.GetCurrentSample(agent)
//		cost := evaluate(v)
//		// track best (v, cost) externally
//		if !sampler.SetCurrentCost(cost) {
//			break
//		}
//	}
//
// GetCurrentSample is idempotent for a fixed cursor; SetCurrentCost advances
// the cursor and reports whether another sample is worth fetching. A sampler
// instance holds a single mutable cursor and must not be shared between
// concurrently stepped agents.
type VelocitySampler interface {
	// Reset starts a new sampling pass, discarding any partial progress.
	Reset()
	// GetCurrentSample returns the candidate at the current cursor as a
	// normalized velocity (scale by the agent's max speed). Past the end of
	// the sequence it returns the zero vector.
	GetCurrentSample(agent AgentState) Vec2
	// SetCurrentCost records the evaluation of the current sample, advances
	// the cursor, and reports whether more samples are available. The cost
	// value is accepted for forward compatibility with cost-adaptive
	// strategies; the provided implementations ignore it.
	SetCurrentCost(cost float32) bool
}
