// Package telemetry collects steering metrics and performance data.
package telemetry

import "log/slog"

// WindowStats aggregates steering metrics over one stats window. Agents and
// Arrived are end-of-window gauges; the averages cover every sampling pass
// in the window.
type WindowStats struct {
	WindowEnd   int32   `csv:"window_end"`
	Agents      int     `csv:"agents"`
	Arrived     int     `csv:"arrived"`
	AvgSamples  float64 `csv:"avg_samples"`
	AvgBestCost float64 `csv:"avg_best_cost"`
	AvgSpeed    float64 `csv:"avg_speed"`
	Blocked     int     `csv:"blocked"`
}

// blockedCostThreshold marks a pass as blocked when even its best candidate
// carried this much cost: the agent had no clean velocity available.
const blockedCostThreshold = 0.5

// Collector accumulates per-pass steering metrics and emits WindowStats at
// window boundaries.
type Collector struct {
	window int32

	passes    int64
	sampleSum int64
	costSum   float64
	speedSum  float64
	blocked   int

	// End-of-window gauges, refreshed every tick.
	agents  int
	arrived int

	lastWindow int32
}

// NewCollector creates a collector emitting stats every window ticks.
func NewCollector(window int32) *Collector {
	if window < 1 {
		window = 120
	}
	return &Collector{window: window}
}

// RecordPass records the outcome of one agent's sampling pass.
func (c *Collector) RecordPass(samples int32, bestCost, speed float32) {
	c.passes++
	c.sampleSum += int64(samples)
	c.costSum += float64(bestCost)
	c.speedSum += float64(speed)
	if bestCost > blockedCostThreshold {
		c.blocked++
	}
}

// RecordTick refreshes the population gauges. Call once per tick.
func (c *Collector) RecordTick(agents, arrived int) {
	c.agents = agents
	c.arrived = arrived
}

// EndTick closes out the tick; at window boundaries it returns the completed
// window's stats and true, resetting the accumulators.
func (c *Collector) EndTick(tick int32) (WindowStats, bool) {
	if tick-c.lastWindow < c.window {
		return WindowStats{}, false
	}

	stats := WindowStats{
		WindowEnd: tick,
		Agents:    c.agents,
		Arrived:   c.arrived,
		Blocked:   c.blocked,
	}
	if c.passes > 0 {
		stats.AvgSamples = float64(c.sampleSum) / float64(c.passes)
		stats.AvgBestCost = c.costSum / float64(c.passes)
		stats.AvgSpeed = c.speedSum / float64(c.passes)
	}

	c.lastWindow = tick
	c.passes = 0
	c.sampleSum = 0
	c.costSum = 0
	c.speedSum = 0
	c.blocked = 0

	return stats, true
}

// LogStats logs a stats window.
func (s WindowStats) LogStats() {
	slog.Info("steering",
		"window_end", s.WindowEnd,
		"agents", s.Agents,
		"arrived", s.Arrived,
		"avg_samples", s.AvgSamples,
		"avg_best_cost", s.AvgBestCost,
		"avg_speed", s.AvgSpeed,
		"blocked", s.Blocked,
	)
}
