package main

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pthm-cable/veer/config"
	"github.com/pthm-cable/veer/game"
)

// Fitness blend: collisions dominate, then completion, then time.
const (
	overlapPenalty    = 10.0
	unfinishedPenalty = 100.0
)

// FitnessEvaluator scores cost-weight vectors by running headless
// simulations over a fixed seed set.
type FitnessEvaluator struct {
	params   *ParamVector
	maxTicks int32
	seeds    []int64
	cfg      *config.Config
}

// NewFitnessEvaluator creates an evaluator. cfg must be the global config
// returned by config.Cfg(); evaluations rewrite its cost section in place.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, cfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:   params,
		maxTicks: maxTicks,
		seeds:    seeds,
		cfg:      cfg,
	}
}

// Evaluate applies the raw parameter vector and returns the mean score over
// all seeds. Lower is better. Seeds run in parallel; the config is only
// written here, before any run starts.
func (f *FitnessEvaluator) Evaluate(raw []float64) float64 {
	f.params.ApplyToConfig(f.cfg, raw)

	scores := make([]float64, len(f.seeds))

	eg, _ := errgroup.WithContext(context.Background())
	for i, seed := range f.seeds {
		eg.Go(func() error {
			score, err := runSeed(seed, f.maxTicks)
			if err != nil {
				return err
			}
			scores[i] = score
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		// A failed run should never look attractive to the optimizer.
		return unfinishedPenalty * 10
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// runSeed runs one headless simulation to completion or the tick cap and
// scores it: accumulated overlapping pairs, a penalty per agent that never
// arrived, and the fraction of the cap the run needed.
func runSeed(seed int64, maxTicks int32) (float64, error) {
	g, err := game.NewGame(game.Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 1,
	})
	if err != nil {
		return 0, err
	}
	defer g.Unload()

	var overlapSum int
	finishTick := maxTicks

	for g.Tick() < maxTicks {
		g.UpdateHeadless()
		overlapSum += g.Overlaps()

		agents, arrived := g.Counts()
		if arrived == agents {
			finishTick = g.Tick()
			break
		}
	}

	agents, arrived := g.Counts()

	score := overlapPenalty * float64(overlapSum) / float64(agents)
	score += unfinishedPenalty * float64(agents-arrived) / float64(agents)
	score += float64(finishTick) / float64(maxTicks)

	return score, nil
}
