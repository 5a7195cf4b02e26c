package systems

import "math"

// CostWeights blends the three velocity penalties. Tunable via config and
// cmd/tune.
type CostWeights struct {
	Collision float32 // imminent time-of-impact against neighbors
	Goal      float32 // deviation from the goal-seeking velocity
	Current   float32 // deviation from the current velocity (smoothness)
}

// VelocityCost scores candidate velocities for the sampling pass. Lower is
// better. Collision risk is measured as the earliest time of impact of the
// candidate against neighbor discs within a look-ahead horizon; the two
// deviation terms pull toward the goal and damp velocity thrash.
type VelocityCost struct {
	Weights CostWeights
	Horizon float32 // look-ahead in ticks
}

// NewVelocityCost creates a cost evaluator.
func NewVelocityCost(weights CostWeights, horizon float32) *VelocityCost {
	return &VelocityCost{Weights: weights, Horizon: horizon}
}

// Evaluate scores a candidate velocity (world units per tick) for an agent
// of the given radius. goalVX/goalVY is the unobstructed goal-seeking
// velocity, curVX/curVY the agent's current velocity; maxSpeed normalizes
// the deviation terms. Neighbors carry deltas relative to the agent.
func (c *VelocityCost) Evaluate(
	vx, vy, radius float32,
	goalVX, goalVY, curVX, curVY, maxSpeed float32,
	neighbors []Neighbor,
) float32 {
	var collisionPenalty float32
	if toi := earliestImpact(vx, vy, radius, c.Horizon, neighbors); toi < c.Horizon {
		collisionPenalty = (c.Horizon - toi) / c.Horizon
	}

	// Deviation terms normalized by the worst case of two opposed
	// max-speed vectors.
	norm := 2 * maxSpeed
	goalPenalty := dist(vx, vy, goalVX, goalVY) / norm
	currentPenalty := dist(vx, vy, curVX, curVY) / norm

	return c.Weights.Collision*collisionPenalty +
		c.Weights.Goal*goalPenalty +
		c.Weights.Current*currentPenalty
}

// earliestImpact returns the earliest time (in ticks) at which an agent
// moving at (vx, vy) would touch any neighbor disc, assuming neighbors hold
// their current velocities. Returns horizon if nothing is hit within it.
// Already-overlapping neighbors count as an immediate impact.
func earliestImpact(vx, vy, radius, horizon float32, neighbors []Neighbor) float32 {
	earliest := horizon

	for i := range neighbors {
		n := &neighbors[i]

		combined := radius + n.Radius
		combinedSq := combined * combined
		if n.DistSq <= combinedSq {
			return 0
		}

		// Relative motion of the agent with respect to the neighbor; the
		// neighbor sits at (DX, DY) from the agent.
		rvx := vx - n.VX
		rvy := vy - n.VY

		a := rvx*rvx + rvy*rvy
		if a < 1e-12 {
			continue // no relative motion, no future impact
		}

		b := n.DX*rvx + n.DY*rvy
		if b <= 0 {
			continue // moving apart
		}

		disc := b*b - a*(n.DistSq-combinedSq)
		if disc <= 0 {
			continue // closest approach misses
		}

		t := (b - float32(math.Sqrt(float64(disc)))) / a
		if t >= 0 && t < earliest {
			earliest = t
		}
	}

	return earliest
}

func dist(x1, y1, x2, y2 float32) float32 {
	dx := x2 - x1
	dy := y2 - y1
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}
