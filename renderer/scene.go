// Package renderer draws the steering sandbox with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/veer/sampling"
)

// velocityScale stretches per-tick velocity vectors into visible lines.
const velocityScale = 12

// Scene draws agents, goals, and debug overlays through a pan/zoom camera.
type Scene struct {
	cam *Camera
}

// NewScene creates a scene with its camera covering the given world size at
// the given viewport size.
func NewScene(viewportW, viewportH, worldW, worldH float32) *Scene {
	return &Scene{cam: NewCamera(viewportW, viewportH, worldW, worldH)}
}

// Camera returns the scene's camera for input-driven pan and zoom.
func (s *Scene) Camera() *Camera {
	return s.cam
}

// Begin clears the frame.
func (s *Scene) Begin() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 18, G: 18, B: 24, A: 255})
}

// End submits the frame.
func (s *Scene) End() {
	rl.EndDrawing()
}

// DrawAgent draws one agent disc with its current velocity vector.
func (s *Scene) DrawAgent(wx, wy, radius, vx, vy float32, arrived, selected bool) {
	if !s.cam.IsVisible(wx, wy, radius) {
		return
	}

	x, y := s.cam.WorldToScreen(wx, wy)
	z := s.cam.Zoom

	color := rl.SkyBlue
	if arrived {
		color = rl.Gray
	}

	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius*z, color)
	if selected {
		rl.DrawCircleLinesV(rl.Vector2{X: x, Y: y}, radius*z+3, rl.Yellow)
	}

	if !arrived {
		rl.DrawLineV(
			rl.Vector2{X: x, Y: y},
			rl.Vector2{X: x + vx*velocityScale*z, Y: y + vy*velocityScale*z},
			rl.White,
		)
	}
}

// DrawGoal draws a goal marker.
func (s *Scene) DrawGoal(wx, wy float32) {
	if !s.cam.IsVisible(wx, wy, 8) {
		return
	}

	x, y := s.cam.WorldToScreen(wx, wy)

	rl.DrawCircleLinesV(rl.Vector2{X: x, Y: y}, 4, rl.Green)
	rl.DrawLineV(rl.Vector2{X: x - 6, Y: y}, rl.Vector2{X: x + 6, Y: y}, rl.Green)
	rl.DrawLineV(rl.Vector2{X: x, Y: y - 6}, rl.Vector2{X: x, Y: y + 6}, rl.Green)
}

// fanAgent feeds a fixed previous-best velocity into a sampler for overlay
// rendering without touching the live agent.
type fanAgent struct {
	best     sampling.Vec2
	maxSpeed float32
}

func (a fanAgent) BestVelocity() sampling.Vec2 { return a.best }
func (a fanAgent) MaxSpeed() float32           { return a.maxSpeed }

// DrawSampleFan draws every candidate the sampler would offer the selected
// agent this tick, as points at the velocity-scaled candidate endpoints. The
// fan makes the difference between the fixed grid and the warped adaptive
// grid visible at a glance.
func (s *Scene) DrawSampleFan(
	wx, wy float32,
	sampler sampling.VelocitySampler,
	bestVX, bestVY, maxSpeed float32,
) {
	x, y := s.cam.WorldToScreen(wx, wy)
	z := s.cam.Zoom

	view := fanAgent{
		best:     sampling.Vec2{X: bestVX, Y: bestVY},
		maxSpeed: maxSpeed,
	}

	sampler.Reset()
	for {
		cand := sampler.GetCurrentSample(view)

		px := x + cand.X*maxSpeed*velocityScale*z
		py := y + cand.Y*maxSpeed*velocityScale*z
		rl.DrawCircleV(rl.Vector2{X: px, Y: py}, 2, rl.Orange)

		if !sampler.SetCurrentCost(0) {
			break
		}
	}

	// Ring at max speed for reference
	rl.DrawCircleLinesV(rl.Vector2{X: x, Y: y}, maxSpeed*velocityScale*z, rl.DarkGray)
}

// DrawPath draws the toroidal-shortest line from an agent to its goal. The
// camera maps both endpoints by shortest wrap, so a seam-crossing path stays
// a single straight segment on screen.
func (s *Scene) DrawPath(wx, wy, dx, dy float32) {
	x, y := s.cam.WorldToScreen(wx, wy)
	z := s.cam.Zoom

	faded := rl.Color{R: 80, G: 120, B: 80, A: 120}
	rl.DrawLineV(
		rl.Vector2{X: x, Y: y},
		rl.Vector2{X: x + dx*z, Y: y + dy*z},
		faded,
	)
}
