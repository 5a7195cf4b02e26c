// Package components defines ECS components for the steering sandbox.
package components

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in world units per tick.
type Velocity struct {
	X, Y float32
}

// Body holds an entity's physical envelope and speed limit.
type Body struct {
	Radius   float32
	MaxSpeed float32
}

// Steering holds per-agent steering state: the goal being sought, the last
// best velocity (fed back into the adaptive sampler next tick), and pass
// diagnostics for telemetry.
type Steering struct {
	GoalX, GoalY float32

	// Best velocity from the last sampling pass, in world units per tick.
	BestVelX, BestVelY float32

	// Diagnostics from the last pass.
	BestCost    float32
	SamplesUsed int32

	Arrived bool
}
