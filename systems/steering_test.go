package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/veer/sampling"
)

// testView implements sampling.AgentState for pass tests.
type testView struct {
	best     sampling.Vec2
	maxSpeed float32
}

var _ sampling.AgentState = testView{}

func (v testView) BestVelocity() sampling.Vec2 { return v.best }
func (v testView) MaxSpeed() float32           { return v.maxSpeed }

// TestRunPassPicksGoalVelocityWhenClear verifies an unobstructed pass picks
// the grid point matching the goal velocity exactly.
func TestRunPassPicksGoalVelocityWhenClear(t *testing.T) {
	cost := NewVelocityCost(CostWeights{Goal: 1}, 60)
	sampler := sampling.NewBruteForce(4, 32)
	view := testView{maxSpeed: 2}

	// Goal velocity sits exactly on the grid: angle 0, full speed.
	result := runPass(sampler, view, cost, passInput{
		Radius:   5,
		MaxSpeed: 2,
		GoalVX:   2,
		GoalVY:   0,
	}, nil)

	if math.Abs(float64(result.VX-2)) > 1e-5 || math.Abs(float64(result.VY)) > 1e-5 {
		t.Errorf("best velocity = (%f, %f), want (2, 0)", result.VX, result.VY)
	}
	if result.Cost > 1e-5 {
		t.Errorf("best cost = %f, want 0", result.Cost)
	}
}

// TestRunPassSampleCounts verifies a pass evaluates the full grid plus the
// fallback for brute force, plus the echo as well for adaptive.
func TestRunPassSampleCounts(t *testing.T) {
	cost := defaultCost()
	view := testView{best: sampling.Vec2{X: 1, Y: 0}, maxSpeed: 2}
	in := passInput{Radius: 5, MaxSpeed: 2, GoalVX: 2}

	brute := runPass(sampling.NewBruteForce(3, 8), view, cost, in, nil)
	if brute.Samples != 3*8+1 {
		t.Errorf("brute-force pass evaluated %d samples, want %d", brute.Samples, 3*8+1)
	}

	adaptive := runPass(sampling.NewAdaptive(3, 8), view, cost, in, nil)
	if adaptive.Samples != 3*8+2 {
		t.Errorf("adaptive pass evaluated %d samples, want %d", adaptive.Samples, 3*8+2)
	}
}

// TestRunPassAvoidsBlockedGoal verifies that with a disc parked on the goal
// line, the chosen velocity has a later impact than aiming straight at the
// goal would.
func TestRunPassAvoidsBlockedGoal(t *testing.T) {
	cost := NewVelocityCost(CostWeights{Collision: 1, Goal: 0.3}, 60)
	sampler := sampling.NewBruteForce(4, 32)
	view := testView{maxSpeed: 2}

	// Neighbor dead ahead on the way to the goal.
	neighbors := []Neighbor{{DX: 40, DY: 0, Radius: 6, DistSq: 40 * 40}}

	result := runPass(sampler, view, cost, passInput{
		Radius:   5,
		MaxSpeed: 2,
		GoalVX:   2,
		GoalVY:   0,
	}, neighbors)

	const horizon = 60
	chosen := earliestImpact(result.VX, result.VY, 5, horizon, neighbors)
	direct := earliestImpact(2, 0, 5, horizon, neighbors)

	if chosen <= direct {
		t.Errorf("chosen velocity impacts at %f, straight-at-goal at %f; want chosen later", chosen, direct)
	}

	// It should still make forward progress, not flee the goal outright.
	if result.VX <= 0 {
		t.Errorf("chosen velocity (%f, %f) has no goal progress", result.VX, result.VY)
	}
}

// TestRunPassEchoWinsWhenGridBlocked verifies the adaptive echo sample can
// win the pass: when the previous best velocity scores better than every
// grid point, the pass returns it exactly.
func TestRunPassEchoWinsWhenGridBlocked(t *testing.T) {
	cost := NewVelocityCost(CostWeights{Collision: 1, Goal: 0.5}, 60)

	// A 1x2 grid emits only full-speed samples along and against the
	// previous heading. The previous best was half speed, which threads
	// between a wall ahead and a chaser behind better than either.
	sampler := sampling.NewAdaptive(1, 2)
	view := testView{best: sampling.Vec2{X: 0, Y: 1}, maxSpeed: 2}

	neighbors := []Neighbor{
		{DX: 0, DY: 35, Radius: 6, DistSq: 35 * 35},         // wall ahead
		{DX: 0, DY: -35, VY: 2, Radius: 6, DistSq: 35 * 35}, // chaser behind
	}

	result := runPass(sampler, view, cost, passInput{
		Radius:   5,
		MaxSpeed: 2,
		GoalVX:   0,
		GoalVY:   2,
		CurVX:    0,
		CurVY:    1,
	}, neighbors)

	if result.VX != 0 || result.VY != 1 {
		t.Errorf("best velocity = (%f, %f), want the echoed previous best (0, 1)", result.VX, result.VY)
	}
}
