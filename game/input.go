package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/veer/sampling"
	"github.com/pthm-cable/veer/systems"
	"github.com/pthm-cable/veer/ui"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.uiState.Paused = !g.uiState.Paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.uiState.RespawnWanted = true
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	cam := g.scene.Camera()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		cam.Pan(-delta.X, -delta.Y)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		cam.Reset()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		mouse := rl.GetMousePosition()
		wx, wy := cam.ScreenToWorld(mouse.X, mouse.Y)
		g.selectAgentAt(wx, wy)
	}
}

// selectAgentAt picks the agent under a world-space point, or clears the
// selection when the click lands on empty space.
func (g *Game) selectAgentAt(x, y float32) {
	const pickSlack = 4 // clickable margin around the disc

	g.hasSelection = false

	query := g.agentFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, _, body, _ := query.Get()

		dx, dy := systems.ToroidalDelta(x, y, pos.X, pos.Y, g.bounds.Width, g.bounds.Height)
		r := body.Radius + pickSlack
		if dx*dx+dy*dy <= r*r {
			g.selected = entity
			g.hasSelection = true
		}
	}
}

// applyPanel reacts to control changes made in the UI panel.
func (g *Game) applyPanel(prev ui.PanelState) {
	if g.uiState.Preset != prev.Preset {
		g.steering.SetSamplerFactory(presetFactory(g.uiState.Preset))
	}

	if g.uiState.RespawnWanted || g.uiState.AgentCount != prev.AgentCount {
		g.uiState.RespawnWanted = false
		g.hasSelection = false
		g.respawn(g.uiState.AgentCount)
	}
}

// sampleFanSampler returns a fresh sampler of the active kind for overlay
// rendering.
func (g *Game) sampleFanSampler() sampling.VelocitySampler {
	return g.steering.NewSampler()
}
