package game

import (
	"github.com/pthm-cable/veer/systems"
)

// Counts returns the total and arrived agent counts.
func (g *Game) Counts() (agents, arrived int) {
	query := g.agentFilter.Query()
	for query.Next() {
		_, _, _, steer := query.Get()
		agents++
		if steer.Arrived {
			arrived++
		}
	}
	return agents, arrived
}

// Overlaps returns the number of agent pairs whose discs currently
// intersect. Each pair is counted once.
func (g *Game) Overlaps() int {
	var scratch []systems.Neighbor
	overlaps := 0

	query := g.agentFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, _, body, _ := query.Get()

		scratch = g.grid.QueryNeighborsInto(
			scratch[:0],
			pos.X, pos.Y, body.Radius*4,
			entity, g.posMap, g.velMap, g.bodyMap,
		)

		for _, n := range scratch {
			combined := body.Radius + n.Radius
			if n.DistSq < combined*combined {
				overlaps++
			}
		}
	}

	// Every intersecting pair is seen from both sides.
	return overlaps / 2
}
