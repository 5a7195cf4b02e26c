package sampling

import (
	"math"
	"testing"
)

// stubAgent implements AgentState for tests.
type stubAgent struct {
	best     Vec2
	maxSpeed float32
}

var _ AgentState = stubAgent{}

func (a stubAgent) BestVelocity() Vec2 { return a.best }
func (a stubAgent) MaxSpeed() float32  { return a.maxSpeed }

const tolerance = 1e-5

func vecNear(a, b Vec2) bool {
	return math.Abs(float64(a.X-b.X)) < tolerance && math.Abs(float64(a.Y-b.Y)) < tolerance
}

// TestBruteForceSampleCount verifies exactly layerCount*outerLayerSampleCount
// calls report more samples, with one trailing true for the zero fallback.
func TestBruteForceSampleCount(t *testing.T) {
	tests := []struct {
		name   string
		layers int
		dirs   int
	}{
		{"single sample", 1, 1},
		{"one layer four directions", 1, 4},
		{"three layers one direction", 3, 1},
		{"quality-sized grid", 4, 32},
	}

	agent := stubAgent{maxSpeed: 1}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewBruteForce(tc.layers, tc.dirs)
			s.Reset()

			total := tc.layers * tc.dirs
			trueCount := 0
			for {
				s.GetCurrentSample(agent)
				if !s.SetCurrentCost(0) {
					break
				}
				trueCount++
				if trueCount > total+10 {
					t.Fatalf("sampler never exhausted after %d samples", trueCount)
				}
			}

			if trueCount != total {
				t.Errorf("true count = %d, want %d", trueCount, total)
			}
		})
	}
}

// TestBruteForceZeroFallback verifies the exact zero vector past the grid.
func TestBruteForceZeroFallback(t *testing.T) {
	s := NewBruteForce(2, 3)
	agent := stubAgent{maxSpeed: 1}

	for i := 0; i < 6; i++ {
		s.SetCurrentCost(0)
	}

	v := s.GetCurrentSample(agent)
	if v.X != 0 || v.Y != 0 {
		t.Errorf("fallback sample = (%f, %f), want exact (0, 0)", v.X, v.Y)
	}
}

// TestBruteForceDirectionCoverage checks the four cardinal directions for a
// single-layer grid with four directions.
func TestBruteForceDirectionCoverage(t *testing.T) {
	s := NewBruteForce(1, 4)
	agent := stubAgent{maxSpeed: 1}

	want := []Vec2{
		{1, 0},
		{0, 1},
		{-1, 0},
		{0, -1},
	}

	for i, w := range want {
		v := s.GetCurrentSample(agent)
		if !vecNear(v, w) {
			t.Errorf("sample %d = (%f, %f), want (%f, %f)", i, v.X, v.Y, w.X, w.Y)
		}
		s.SetCurrentCost(0)
	}
}

// TestBruteForceLayerCoverage checks the speed rings for a three-layer grid
// with a single direction.
func TestBruteForceLayerCoverage(t *testing.T) {
	s := NewBruteForce(3, 1)
	agent := stubAgent{maxSpeed: 1}

	want := []float32{1.0 / 3, 2.0 / 3, 1}

	for i, speed := range want {
		v := s.GetCurrentSample(agent)
		if math.Abs(float64(v.X-speed)) > tolerance || math.Abs(float64(v.Y)) > tolerance {
			t.Errorf("sample %d = (%f, %f), want (%f, 0)", i, v.X, v.Y, speed)
		}
		s.SetCurrentCost(0)
	}
}

// TestBruteForceIdempotent verifies repeated reads without feedback return the
// same sample.
func TestBruteForceIdempotent(t *testing.T) {
	s := NewBruteForce(3, 8)
	agent := stubAgent{maxSpeed: 1}

	s.SetCurrentCost(0)
	s.SetCurrentCost(0)

	a := s.GetCurrentSample(agent)
	b := s.GetCurrentSample(agent)
	if a != b {
		t.Errorf("repeated reads differ: (%f, %f) vs (%f, %f)", a.X, a.Y, b.X, b.Y)
	}
}

// TestBruteForceReset verifies Reset reproduces the cursor-0 sample.
func TestBruteForceReset(t *testing.T) {
	s := NewBruteForce(3, 8)
	agent := stubAgent{maxSpeed: 1}

	first := s.GetCurrentSample(agent)
	for i := 0; i < 5; i++ {
		s.SetCurrentCost(float32(i))
	}

	s.Reset()
	if v := s.GetCurrentSample(agent); v != first {
		t.Errorf("post-reset sample = (%f, %f), want (%f, %f)", v.X, v.Y, first.X, first.Y)
	}
}

// TestBruteForceMagnitudeBound verifies all regular samples stay within the
// unit disc.
func TestBruteForceMagnitudeBound(t *testing.T) {
	s := NewBruteForce(4, 16)
	agent := stubAgent{maxSpeed: 1}

	for i := 0; i < 4*16; i++ {
		v := s.GetCurrentSample(agent)
		if mag := v.Len(); mag > 1+tolerance {
			t.Errorf("sample %d magnitude = %f, want <= 1", i, mag)
		}
		if mag := v.Len(); mag < 1.0/4-tolerance {
			t.Errorf("sample %d magnitude = %f, below smallest ring", i, mag)
		}
		s.SetCurrentCost(0)
	}
}
