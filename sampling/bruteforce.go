package sampling

import "math"

// BruteForceSampler enumerates a fixed polar grid of velocities: directions
// evenly spaced over the full circle, speed rings evenly spaced in
// (0, 1]. The grid is independent of the agent's previous velocity, so it is
// exhaustive within its resolution but pays for every grid point each tick.
//
// The smallest speed ring is 1/layerCount, never exactly zero; the exact
// zero velocity only appears as the fallback sample past the end of the grid.
type BruteForceSampler struct {
	layerCount            int
	outerLayerSampleCount int
	currentSampleIdx      int
}

// NewBruteForce creates a brute-force sampler over a layerCount x
// outerLayerSampleCount grid. Both counts must be >= 1; the sampler does not
// validate (see config validation).
func NewBruteForce(layerCount, outerLayerSampleCount int) *BruteForceSampler {
	return &BruteForceSampler{
		layerCount:            layerCount,
		outerLayerSampleCount: outerLayerSampleCount,
	}
}

// Reset starts a new sampling pass.
func (s *BruteForceSampler) Reset() {
	s.currentSampleIdx = 0
}

// GetCurrentSample returns the grid point at the current cursor, or the zero
// vector once the grid is exhausted. The agent state is unused by this
// strategy; the grid is fixed.
func (s *BruteForceSampler) GetCurrentSample(_ AgentState) Vec2 {
	if s.currentSampleIdx >= s.layerCount*s.outerLayerSampleCount {
		return Vec2{}
	}

	layerIdx, directionIdx := gridIndices(s.currentSampleIdx, s.layerCount, s.outerLayerSampleCount)

	angle := float64(directionIdx) / float64(s.outerLayerSampleCount) * 2 * math.Pi
	speedFactor := float64(layerIdx+1) / float64(s.layerCount)

	return fromPolar(angle, speedFactor)
}

// SetCurrentCost advances the cursor and reports whether another sample is
// available. The answer stays true for one call past the last grid point, so
// the zero-velocity fallback gets evaluated too.
func (s *BruteForceSampler) SetCurrentCost(_ float32) bool {
	s.currentSampleIdx++
	return s.currentSampleIdx <= s.layerCount*s.outerLayerSampleCount
}
