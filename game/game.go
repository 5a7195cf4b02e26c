// Package game wires the world, systems, and telemetry into a runnable
// steering sandbox.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/veer/components"
	"github.com/pthm-cable/veer/config"
	"github.com/pthm-cable/veer/renderer"
	"github.com/pthm-cable/veer/sampling"
	"github.com/pthm-cable/veer/systems"
	"github.com/pthm-cable/veer/telemetry"
	"github.com/pthm-cable/veer/ui"
)

// Options configures game construction.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete sandbox state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	agentMapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Body,
		components.Steering,
	]
	agentFilter *ecs.Filter4[
		components.Position,
		components.Velocity,
		components.Body,
		components.Steering,
	]

	// Individual component mappers for lookups
	posMap   *ecs.Map1[components.Position]
	velMap   *ecs.Map1[components.Velocity]
	bodyMap  *ecs.Map1[components.Body]
	steerMap *ecs.Map1[components.Steering]

	// Systems
	grid     *systems.SpatialGrid
	steering *systems.SteeringSystem
	physics  *systems.PhysicsSystem

	// Telemetry
	stats  *telemetry.Collector
	perf   *telemetry.PerfCollector
	output *telemetry.OutputManager

	// Rendering (nil in headless mode)
	scene *renderer.Scene
	panel *ui.Panel

	uiState ui.PanelState

	// Agent selected for the sample-fan overlay
	selected     ecs.Entity
	hasSelection bool

	bounds         systems.Bounds
	tick           int32
	stepsPerUpdate int
	logStats       bool
	headless       bool
}

// NewGame creates a game from the loaded configuration and options.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	bounds := systems.Bounds{
		Width:  cfg.Derived.WorldW32,
		Height: cfg.Derived.WorldH32,
	}

	g := &Game{
		world:  world,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		bounds: bounds,
		agentMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Body,
			components.Steering,
		](world),
		agentFilter: ecs.NewFilter4[
			components.Position,
			components.Velocity,
			components.Body,
			components.Steering,
		](world),
		posMap:         ecs.NewMap1[components.Position](world),
		velMap:         ecs.NewMap1[components.Velocity](world),
		bodyMap:        ecs.NewMap1[components.Body](world),
		steerMap:       ecs.NewMap1[components.Steering](world),
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
	}

	g.grid = systems.NewSpatialGrid(bounds.Width, bounds.Height, float32(cfg.Spatial.CellSize))

	cost := systems.NewVelocityCost(systems.CostWeights{
		Collision: float32(cfg.Cost.CollisionWeight),
		Goal:      float32(cfg.Cost.GoalWeight),
		Current:   float32(cfg.Cost.CurrentWeight),
	}, float32(cfg.Cost.Horizon))

	g.steering = systems.NewSteeringSystem(world, cost, g.grid,
		newSamplerFactory(cfg.Sampler),
		systems.SteeringParams{
			NeighborRadius: float32(cfg.Steering.NeighborRadius),
			ArriveRadius:   float32(cfg.Steering.ArriveRadius),
			SlowRadius:     float32(cfg.Steering.SlowRadius),
		})

	g.physics = systems.NewPhysicsSystem(world, bounds)

	g.stats = telemetry.NewCollector(int32(cfg.Telemetry.StatsWindow))
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output

	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}
	if g.output != nil {
		slog.Info("output enabled", "run_id", g.output.RunID(), "dir", g.output.Dir())
	}

	if !opts.Headless {
		g.scene = renderer.NewScene(
			float32(cfg.Screen.Width), float32(cfg.Screen.Height),
			bounds.Width, bounds.Height,
		)
		g.panel = ui.NewPanel(int32(cfg.Screen.Width))
	}

	g.uiState = ui.PanelState{
		Preset:     cfg.Sampler.Preset,
		AgentCount: cfg.Agents.Count,
	}

	g.spawnRing(cfg.Agents.Count)

	return g, nil
}

// newSamplerFactory builds per-agent sampler constructors from config. A
// non-empty preset wins over the explicit strategy settings.
func newSamplerFactory(sc config.SamplerConfig) func() sampling.VelocitySampler {
	if sc.Preset != "" {
		return presetFactory(sc.Preset)
	}

	layers, dirs := sc.LayerCount, sc.OuterLayerSampleCount
	if sc.Strategy == "brute_force" {
		return func() sampling.VelocitySampler {
			return sampling.NewBruteForce(layers, dirs)
		}
	}
	return func() sampling.VelocitySampler {
		return sampling.NewAdaptive(layers, dirs)
	}
}

// presetFactory returns a constructor for a named preset. Preset names are
// validated at config load, so unknown names fall back to performance rather
// than erroring mid-tick.
func presetFactory(name string) func() sampling.VelocitySampler {
	return func() sampling.VelocitySampler {
		s, ok := sampling.New(name)
		if !ok {
			return sampling.Performance()
		}
		return s
	}
}

// Update runs input handling plus simulation steps for one frame.
func (g *Game) Update() {
	g.handleInput()

	if g.uiState.Paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless runs simulation steps without input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs a single simulation tick.
func (g *Game) step() {
	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseSpatialGrid)
	g.rebuildGrid()

	g.perf.StartPhase(telemetry.PhaseSteering)
	g.steering.Update(g.world, g.bounds)

	g.perf.StartPhase(telemetry.PhasePhysics)
	g.physics.Update(g.world)

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.collectStats()

	g.perf.EndTick()
	g.tick++
}

// rebuildGrid reindexes all agents into the spatial grid.
func (g *Game) rebuildGrid() {
	g.grid.Clear()

	query := g.agentFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, _, _, _ := query.Get()
		g.grid.Insert(entity, pos.X, pos.Y)
	}
}

// collectStats gathers pass diagnostics and emits window summaries.
func (g *Game) collectStats() {
	var agents, arrived int

	query := g.agentFilter.Query()
	for query.Next() {
		_, vel, _, steer := query.Get()

		agents++
		if steer.Arrived {
			arrived++
			continue
		}

		speed := sampling.Vec2{X: vel.X, Y: vel.Y}.Len()
		g.stats.RecordPass(steer.SamplesUsed, steer.BestCost, speed)
	}
	g.stats.RecordTick(agents, arrived)

	stats, ok := g.stats.EndTick(g.tick)
	if !ok {
		return
	}

	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("telemetry write failed", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEnd); err != nil {
		slog.Error("perf write failed", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload closes output files.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("closing output", "error", err)
	}
}
