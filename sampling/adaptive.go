package sampling

import "math"

// warpExponent controls how strongly adaptive sample directions concentrate
// around the previous heading. The warp |u|^warpExponent * u compresses
// spacing near u = 0 and stretches it toward u = ±1.
const warpExponent = 0.8

// AdaptiveSampler enumerates a polar grid warped around the agent's previous
// best velocity: directions bunch up near the last heading and thin out
// toward ±180°, so far fewer samples are needed than an exhaustive grid when
// the environment changes slowly between ticks.
//
// After the grid, one extra sample echoes the previous best velocity exactly,
// so steering can never score worse than its last known-good choice.
type AdaptiveSampler struct {
	layerCount            int
	outerLayerSampleCount int
	currentSampleIdx      int
}

// NewAdaptive creates an adaptive sampler over a layerCount x
// outerLayerSampleCount grid. Both counts must be >= 1; the sampler does not
// validate (see config validation).
func NewAdaptive(layerCount, outerLayerSampleCount int) *AdaptiveSampler {
	return &AdaptiveSampler{
		layerCount:            layerCount,
		outerLayerSampleCount: outerLayerSampleCount,
	}
}

// Reset starts a new sampling pass.
func (s *AdaptiveSampler) Reset() {
	s.currentSampleIdx = 0
}

// GetCurrentSample returns the warped grid point at the current cursor. At
// cursor == layerCount*outerLayerSampleCount it returns the normalized
// previous best velocity unchanged (the echo sample); past that, the zero
// vector.
//
// The previous best is normalized by MaxSpeed and not clamped; if BestVel
// exceeded MaxSpeed the echo does too. A zero previous best warps around
// angle 0 (atan2(0,0) = 0).
func (s *AdaptiveSampler) GetCurrentSample(agent AgentState) Vec2 {
	total := s.layerCount * s.outerLayerSampleCount
	if s.currentSampleIdx >= total+1 {
		return Vec2{}
	}

	invMaxSpeed := 1 / agent.MaxSpeed()
	oldVelocity := agent.BestVelocity().Scale(invMaxSpeed)

	if s.currentSampleIdx == total {
		return oldVelocity
	}

	layerIdx, directionIdx := gridIndices(s.currentSampleIdx, s.layerCount, s.outerLayerSampleCount)

	// Undistorted angle sweeps [-1, 1) as the direction index advances.
	undistortedAngle := -1 + 2*float64(directionIdx)/float64(s.outerLayerSampleCount)
	speedFactor := float64(layerIdx+1) / float64(s.layerCount)

	baseAngle := float64(oldVelocity.Angle())
	angle := baseAngle + warpAngle(undistortedAngle)*math.Pi

	return fromPolar(angle, speedFactor)
}

// SetCurrentCost advances the cursor and reports whether another sample is
// available. The answer stays true through the echo sample and one
// zero-velocity fallback past it, one call longer than the brute-force
// sampler on the same grid.
func (s *AdaptiveSampler) SetCurrentCost(_ float32) bool {
	s.currentSampleIdx++
	return s.currentSampleIdx <= s.layerCount*s.outerLayerSampleCount+1
}

// warpAngle applies the sign-preserving power-law warp to an undistorted
// angle in [-1, 1].
func warpAngle(u float64) float64 {
	return math.Pow(math.Abs(u), warpExponent) * u
}
