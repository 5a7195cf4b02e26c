package systems

import (
	"math"
	"testing"
)

func defaultCost() *VelocityCost {
	return NewVelocityCost(CostWeights{Collision: 1, Goal: 0.5, Current: 0.2}, 60)
}

// TestEarliestImpactHeadOn verifies the swept-disc test against a stationary
// neighbor straight ahead.
func TestEarliestImpactHeadOn(t *testing.T) {
	// Neighbor 100 units ahead, both discs radius 5: impact after closing
	// 90 units at speed 2 = 45 ticks.
	neighbors := []Neighbor{{DX: 100, DY: 0, Radius: 5, DistSq: 100 * 100}}

	toi := earliestImpact(2, 0, 5, 60, neighbors)
	if math.Abs(float64(toi-45)) > 0.01 {
		t.Errorf("time of impact = %f, want 45", toi)
	}
}

// TestEarliestImpactMovingApart verifies no impact when receding.
func TestEarliestImpactMovingApart(t *testing.T) {
	neighbors := []Neighbor{{DX: 100, DY: 0, Radius: 5, DistSq: 100 * 100}}

	toi := earliestImpact(-2, 0, 5, 60, neighbors)
	if toi != 60 {
		t.Errorf("time of impact = %f, want horizon (60)", toi)
	}
}

// TestEarliestImpactMiss verifies a candidate that passes wide misses.
func TestEarliestImpactMiss(t *testing.T) {
	// Neighbor ahead, candidate angled far enough to clear both radii.
	neighbors := []Neighbor{{DX: 50, DY: 0, Radius: 2, DistSq: 50 * 50}}

	toi := earliestImpact(1, 1, 2, 60, neighbors)
	if toi != 60 {
		t.Errorf("time of impact = %f, want horizon (60)", toi)
	}
}

// TestEarliestImpactOverlap verifies already-touching discs count as an
// immediate impact regardless of the candidate.
func TestEarliestImpactOverlap(t *testing.T) {
	neighbors := []Neighbor{{DX: 3, DY: 0, Radius: 5, DistSq: 9}}

	toi := earliestImpact(-2, 0, 5, 60, neighbors)
	if toi != 0 {
		t.Errorf("time of impact = %f, want 0", toi)
	}
}

// TestEarliestImpactMovingNeighbor verifies neighbor velocity enters the
// relative-motion test: chasing a neighbor fleeing at equal speed never hits.
func TestEarliestImpactMovingNeighbor(t *testing.T) {
	neighbors := []Neighbor{{DX: 50, DY: 0, VX: 2, VY: 0, Radius: 5, DistSq: 50 * 50}}

	toi := earliestImpact(2, 0, 5, 60, neighbors)
	if toi != 60 {
		t.Errorf("time of impact = %f, want horizon (60)", toi)
	}

	// Head-on approach halves the closing time.
	neighbors[0].VX = -2
	toi = earliestImpact(2, 0, 5, 60, neighbors)
	if math.Abs(float64(toi-10)) > 0.01 {
		t.Errorf("head-on time of impact = %f, want 10", toi)
	}
}

// TestEvaluateOrdersCollidingBelowClear verifies a clear candidate scores
// better than one aimed at a neighbor, all else equal.
func TestEvaluateOrdersCollidingBelowClear(t *testing.T) {
	cost := defaultCost()
	neighbors := []Neighbor{{DX: 30, DY: 0, Radius: 5, DistSq: 30 * 30}}

	// Both candidates deviate equally from the goal velocity (0, 0 goal
	// weight would also do); one heads at the neighbor, one away.
	toward := cost.Evaluate(2, 0, 5, 0, 2, 0, 0, 2, neighbors)
	away := cost.Evaluate(-2, 0, 5, 0, 2, 0, 0, 2, neighbors)

	if toward <= away {
		t.Errorf("candidate aimed at neighbor scored %f, clear candidate %f; want toward > away", toward, away)
	}
}

// TestEvaluateGoalDeviation verifies the goal term orders candidates by
// distance to the goal velocity when no neighbors are present.
func TestEvaluateGoalDeviation(t *testing.T) {
	cost := NewVelocityCost(CostWeights{Goal: 1}, 60)

	onGoal := cost.Evaluate(3, 0, 5, 3, 0, 0, 0, 3, nil)
	offGoal := cost.Evaluate(0, 3, 5, 3, 0, 0, 0, 3, nil)

	if onGoal > 1e-6 {
		t.Errorf("candidate equal to goal velocity scored %f, want 0", onGoal)
	}
	if offGoal <= onGoal {
		t.Errorf("off-goal candidate scored %f, on-goal %f; want off > on", offGoal, onGoal)
	}
}

// TestEvaluateCurrentDeviation verifies the smoothness term penalizes
// velocity reversals.
func TestEvaluateCurrentDeviation(t *testing.T) {
	cost := NewVelocityCost(CostWeights{Current: 1}, 60)

	keep := cost.Evaluate(2, 0, 5, 0, 0, 2, 0, 2, nil)
	reverse := cost.Evaluate(-2, 0, 5, 0, 0, 2, 0, 2, nil)

	if keep > 1e-6 {
		t.Errorf("keeping current velocity scored %f, want 0", keep)
	}
	if math.Abs(float64(reverse-1)) > 1e-5 {
		t.Errorf("full reversal scored %f, want 1 (normalized worst case)", reverse)
	}
}
