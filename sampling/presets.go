package sampling

// Preset names accepted by New.
const (
	PresetQuality     = "quality"
	PresetPerformance = "performance"
)

// Quality preset grid: wide and exhaustive, favouring steering fidelity over
// per-tick cost.
const (
	qualityLayers     = 4
	qualityDirections = 32
)

// Performance preset grid: coarse, relying on the adaptive warp to stay
// effective with far fewer samples.
const (
	performanceLayers     = 3
	performanceDirections = 9
)

// Quality returns a fresh exhaustive sampler with the quality grid. Each call
// constructs a new instance; sampler cursors must not be shared between
// concurrently stepped agents.
func Quality() VelocitySampler {
	return NewBruteForce(qualityLayers, qualityDirections)
}

// Performance returns a fresh adaptive sampler with the performance grid.
func Performance() VelocitySampler {
	return NewAdaptive(performanceLayers, performanceDirections)
}

// New returns a fresh sampler for a preset name, or false for an unknown name.
func New(name string) (VelocitySampler, bool) {
	switch name {
	case PresetQuality:
		return Quality(), true
	case PresetPerformance:
		return Performance(), true
	default:
		return nil, false
	}
}
