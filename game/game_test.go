package game

import (
	"testing"

	"github.com/pthm-cable/veer/config"
)

func newHeadlessGame(t *testing.T) *Game {
	t.Helper()

	if err := config.Init(""); err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	g, err := NewGame(Options{
		Seed:           42,
		Headless:       true,
		StepsPerUpdate: 1,
	})
	if err != nil {
		t.Fatalf("creating game: %v", err)
	}
	return g
}

func TestHeadlessGameSteps(t *testing.T) {
	g := newHeadlessGame(t)
	defer g.Unload()

	for i := 0; i < 50; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 50 {
		t.Errorf("Tick() = %d, want 50", g.Tick())
	}

	agents, _ := g.Counts()
	if agents != config.Cfg().Agents.Count {
		t.Errorf("agents = %d, want %d", agents, config.Cfg().Agents.Count)
	}
}

func TestAgentsMoveTowardGoals(t *testing.T) {
	g := newHeadlessGame(t)
	defer g.Unload()

	g.UpdateHeadless()

	// After the first tick every agent (starting far from its goal) should
	// have committed a nonzero best velocity.
	moving := 0
	query := g.agentFilter.Query()
	for query.Next() {
		_, vel, _, _ := query.Get()
		if vel.X != 0 || vel.Y != 0 {
			moving++
		}
	}

	if moving == 0 {
		t.Error("expected agents to pick nonzero velocities on the first tick")
	}
}

func TestRespawnResetsPopulation(t *testing.T) {
	g := newHeadlessGame(t)
	defer g.Unload()

	for i := 0; i < 10; i++ {
		g.UpdateHeadless()
	}

	g.respawn(8)

	agents, arrived := g.Counts()
	if agents != 8 {
		t.Errorf("agents after respawn = %d, want 8", agents)
	}
	if arrived != 0 {
		t.Errorf("arrived after respawn = %d, want 0", arrived)
	}
	if g.Tick() != 0 {
		t.Errorf("tick after respawn = %d, want 0", g.Tick())
	}
}
