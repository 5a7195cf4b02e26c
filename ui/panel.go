// Package ui draws the raygui control panel.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/veer/sampling"
)

// PanelState holds the user-adjustable controls. The game reads it after
// every Draw and applies whatever changed.
type PanelState struct {
	Paused        bool
	Preset        string // sampling.PresetQuality or sampling.PresetPerformance
	AgentCount    int
	ShowSampleFan bool
	RespawnWanted bool
}

// Panel is the right-side control panel.
type Panel struct {
	x       int32
	width   int32
	visible bool
}

const (
	panelWidth  = 220
	rowHeight   = 28
	panelMargin = 10
)

// NewPanel creates a panel anchored to the right edge of the screen.
func NewPanel(screenWidth int32) *Panel {
	return &Panel{
		x:       screenWidth - panelWidth - panelMargin,
		width:   panelWidth,
		visible: true,
	}
}

// Toggle switches panel visibility.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Draw renders the panel and updates state from widget interactions.
func (p *Panel) Draw(state *PanelState) {
	if !p.visible {
		return
	}

	x := float32(p.x)
	y := float32(panelMargin)
	w := float32(p.width)

	rl.DrawRectangle(int32(x), int32(y), int32(w), 190, rl.Color{R: 30, G: 30, B: 40, A: 230})
	rl.DrawText("Steering", int32(x)+10, int32(y)+6, 16, rl.White)
	y += rowHeight + 4
	x += 10
	w -= 20

	pauseLabel := "Pause"
	if state.Paused {
		pauseLabel = "Resume"
	}
	state.Paused = gui.Toggle(
		rl.Rectangle{X: x, Y: y, Width: w, Height: 22},
		pauseLabel, state.Paused,
	)
	y += rowHeight

	quality := state.Preset == sampling.PresetQuality
	quality = gui.Toggle(
		rl.Rectangle{X: x, Y: y, Width: w, Height: 22},
		"Quality sampler", quality,
	)
	if quality {
		state.Preset = sampling.PresetQuality
	} else {
		state.Preset = sampling.PresetPerformance
	}
	y += rowHeight

	count := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: w - 40, Height: 22},
		"2", "128",
		float32(state.AgentCount), 2, 128,
	)
	rl.DrawText(fmt.Sprintf("%d", state.AgentCount), int32(x+w-32), int32(y+4), 14, rl.RayWhite)
	state.AgentCount = int(count)
	y += rowHeight

	state.ShowSampleFan = gui.CheckBox(
		rl.Rectangle{X: x, Y: y, Width: 22, Height: 22},
		"Sample fan", state.ShowSampleFan,
	)
	y += rowHeight

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: 22}, "Respawn") {
		state.RespawnWanted = true
	}
}
