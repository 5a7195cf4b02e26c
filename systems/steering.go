package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/veer/components"
	"github.com/pthm-cable/veer/sampling"
)

// SteeringParams holds tuning for the steering control loop.
type SteeringParams struct {
	NeighborRadius float32 // how far to look for discs to avoid
	ArriveRadius   float32 // goal distance below which an agent is done
	SlowRadius     float32 // goal distance below which desired speed tapers
}

// SteeringSystem drives one sampling pass per agent per tick: reset the
// agent's sampler, fetch candidates, score each against the velocity cost,
// and commit the best-scoring velocity as the agent's new best. The best
// velocity feeds back into the adaptive sampler on the next tick.
type SteeringSystem struct {
	filter ecs.Filter4[components.Position, components.Velocity, components.Body, components.Steering]

	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	bodyMap *ecs.Map1[components.Body]

	// One sampler per agent: the pass cursor is per-agent state.
	samplers   map[ecs.Entity]sampling.VelocitySampler
	newSampler func() sampling.VelocitySampler

	cost   *VelocityCost
	grid   *SpatialGrid
	params SteeringParams

	scratch []Neighbor
}

// agentView adapts ECS components to the sampler's read-only agent state.
type agentView struct {
	best     sampling.Vec2
	maxSpeed float32
}

var _ sampling.AgentState = agentView{}

func (a agentView) BestVelocity() sampling.Vec2 { return a.best }
func (a agentView) MaxSpeed() float32           { return a.maxSpeed }

// NewSteeringSystem creates a steering system. newSampler constructs one
// sampler per agent on first sight; samplers are reused across ticks with
// only their cursor reset.
func NewSteeringSystem(
	w *ecs.World,
	cost *VelocityCost,
	grid *SpatialGrid,
	newSampler func() sampling.VelocitySampler,
	params SteeringParams,
) *SteeringSystem {
	return &SteeringSystem{
		filter:     *ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Steering](w),
		posMap:     ecs.NewMap1[components.Position](w),
		velMap:     ecs.NewMap1[components.Velocity](w),
		bodyMap:    ecs.NewMap1[components.Body](w),
		samplers:   make(map[ecs.Entity]sampling.VelocitySampler),
		newSampler: newSampler,
		cost:       cost,
		grid:       grid,
		params:     params,
		scratch:    make([]Neighbor, 0, MaxQueryResults),
	}
}

// Update runs one sampling pass for every live agent.
func (s *SteeringSystem) Update(w *ecs.World, bounds Bounds) {
	query := s.filter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, vel, body, steer := query.Get()

		dx, dy := ToroidalDelta(pos.X, pos.Y, steer.GoalX, steer.GoalY, bounds.Width, bounds.Height)
		goalDist := float32(math.Sqrt(float64(dx*dx + dy*dy)))

		if goalDist < s.params.ArriveRadius {
			steer.Arrived = true
			steer.BestVelX = 0
			steer.BestVelY = 0
			steer.SamplesUsed = 0
			vel.X = 0
			vel.Y = 0
			continue
		}
		steer.Arrived = false

		// Unobstructed goal-seeking velocity, tapered inside the slow radius.
		desiredSpeed := body.MaxSpeed
		if goalDist < s.params.SlowRadius {
			desiredSpeed = body.MaxSpeed * goalDist / s.params.SlowRadius
		}
		goalVX := dx / goalDist * desiredSpeed
		goalVY := dy / goalDist * desiredSpeed

		s.scratch = s.grid.QueryNeighborsInto(
			s.scratch[:0],
			pos.X, pos.Y, s.params.NeighborRadius,
			entity, s.posMap, s.velMap, s.bodyMap,
		)

		sampler, ok := s.samplers[entity]
		if !ok {
			sampler = s.newSampler()
			s.samplers[entity] = sampler
		}

		view := agentView{
			best:     sampling.Vec2{X: steer.BestVelX, Y: steer.BestVelY},
			maxSpeed: body.MaxSpeed,
		}

		result := runPass(sampler, view, s.cost, passInput{
			Radius:   body.Radius,
			MaxSpeed: body.MaxSpeed,
			GoalVX:   goalVX,
			GoalVY:   goalVY,
			CurVX:    vel.X,
			CurVY:    vel.Y,
		}, s.scratch)

		steer.BestVelX = result.VX
		steer.BestVelY = result.VY
		steer.BestCost = result.Cost
		steer.SamplesUsed = result.Samples

		vel.X = result.VX
		vel.Y = result.VY
	}
}

// passInput bundles the per-agent values a sampling pass needs.
type passInput struct {
	Radius   float32
	MaxSpeed float32
	GoalVX   float32
	GoalVY   float32
	CurVX    float32
	CurVY    float32
}

// passResult is the outcome of one sampling pass.
type passResult struct {
	VX, VY  float32
	Cost    float32
	Samples int32
}

// runPass drives one full Reset-to-exhaustion sampling pass and returns the
// best-scoring velocity in world units per tick.
func runPass(
	sampler sampling.VelocitySampler,
	view sampling.AgentState,
	cost *VelocityCost,
	in passInput,
	neighbors []Neighbor,
) passResult {
	result := passResult{Cost: float32(math.MaxFloat32)}

	sampler.Reset()
	for {
		cand := sampler.GetCurrentSample(view)
		wx := cand.X * in.MaxSpeed
		wy := cand.Y * in.MaxSpeed

		c := cost.Evaluate(wx, wy, in.Radius, in.GoalVX, in.GoalVY, in.CurVX, in.CurVY, in.MaxSpeed, neighbors)
		result.Samples++

		if c < result.Cost {
			result.Cost = c
			result.VX = wx
			result.VY = wy
		}

		if !sampler.SetCurrentCost(c) {
			break
		}
	}

	return result
}

// Forget drops the sampler held for an entity. Call when an agent is removed
// so the map does not grow without bound.
func (s *SteeringSystem) Forget(e ecs.Entity) {
	delete(s.samplers, e)
}

// SetSamplerFactory swaps the sampler constructor and drops all held
// samplers, so every agent picks up the new strategy on its next pass.
func (s *SteeringSystem) SetSamplerFactory(f func() sampling.VelocitySampler) {
	s.newSampler = f
	clear(s.samplers)
}

// NewSampler constructs a sampler with the current factory. Useful for
// visualizing the candidate set without touching any agent's pass state.
func (s *SteeringSystem) NewSampler() sampling.VelocitySampler {
	return s.newSampler()
}
