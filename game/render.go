package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/veer/systems"
)

// Draw renders one frame: world, overlays, HUD, and control panel.
func (g *Game) Draw() {
	g.scene.Begin()

	g.drawAgents()
	g.drawSelectionOverlay()
	g.drawHUD()

	prev := g.uiState
	g.panel.Draw(&g.uiState)
	g.applyPanel(prev)

	g.scene.End()
}

// drawAgents renders all agents, their goals, and goal paths.
func (g *Game) drawAgents() {
	query := g.agentFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, vel, body, steer := query.Get()

		selected := g.hasSelection && entity == g.selected

		if selected {
			dx, dy := systems.ToroidalDelta(
				pos.X, pos.Y, steer.GoalX, steer.GoalY,
				g.bounds.Width, g.bounds.Height,
			)
			g.scene.DrawPath(pos.X, pos.Y, dx, dy)
		}

		g.scene.DrawGoal(steer.GoalX, steer.GoalY)
		g.scene.DrawAgent(pos.X, pos.Y, body.Radius, vel.X, vel.Y, steer.Arrived, selected)
	}
}

// drawSelectionOverlay renders the sample fan for the selected agent.
func (g *Game) drawSelectionOverlay() {
	if !g.hasSelection || !g.uiState.ShowSampleFan {
		return
	}

	pos := g.posMap.Get(g.selected)
	body := g.bodyMap.Get(g.selected)
	steer := g.steerMap.Get(g.selected)
	if pos == nil || body == nil || steer == nil {
		g.hasSelection = false
		return
	}

	g.scene.DrawSampleFan(
		pos.X, pos.Y,
		g.sampleFanSampler(),
		steer.BestVelX, steer.BestVelY, body.MaxSpeed,
	)
}

// drawHUD renders the top-left status text.
func (g *Game) drawHUD() {
	var agents, arrived int
	query := g.agentFilter.Query()
	for query.Next() {
		_, _, _, steer := query.Get()
		agents++
		if steer.Arrived {
			arrived++
		}
	}

	rl.DrawText(fmt.Sprintf("Tick: %d", g.tick), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Agents: %d  Arrived: %d", agents, arrived), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %dx  [</>]", g.stepsPerUpdate), 10, 60, 20, rl.White)
	if g.uiState.Paused {
		rl.DrawText("PAUSED", 10, 85, 20, rl.Yellow)
	}
}
