package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/veer/components"
	"github.com/pthm-cable/veer/config"
)

// spawnRing places count agents evenly on a circle with antipodal goals, the
// standard crossing scenario: every agent's straight-line path runs through
// the congested center.
func (g *Game) spawnRing(count int) {
	cfg := config.Cfg()

	cx := g.bounds.Width / 2
	cy := g.bounds.Height / 2

	minDim := g.bounds.Width
	if g.bounds.Height < minDim {
		minDim = g.bounds.Height
	}
	ringRadius := minDim * float32(cfg.Agents.RingFraction)

	radius := float32(cfg.Agents.Radius)
	maxSpeed := float32(cfg.Agents.MaxSpeed)

	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		// Small jitter breaks the perfect symmetry that would otherwise
		// funnel every agent through the exact center point.
		angle += (g.rng.Float64() - 0.5) * 0.02

		cos := float32(math.Cos(angle))
		sin := float32(math.Sin(angle))

		pos := components.Position{X: cx + cos*ringRadius, Y: cy + sin*ringRadius}
		vel := components.Velocity{}
		body := components.Body{Radius: radius, MaxSpeed: maxSpeed}
		steer := components.Steering{
			GoalX: cx - cos*ringRadius,
			GoalY: cy - sin*ringRadius,
		}

		g.agentMapper.NewEntity(&pos, &vel, &body, &steer)
	}
}

// respawn clears all agents and spawns a fresh ring.
func (g *Game) respawn(count int) {
	// Collect first; removal during query iteration is not allowed.
	entities := g.collectAgents()
	for _, e := range entities {
		g.steering.Forget(e)
		g.world.RemoveEntity(e)
	}

	g.spawnRing(count)
	g.tick = 0
}

// collectAgents returns all live agent entities.
func (g *Game) collectAgents() []ecs.Entity {
	var entities []ecs.Entity

	query := g.agentFilter.Query()
	for query.Next() {
		entities = append(entities, query.Entity())
	}

	return entities
}
