package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	if cfg.Agents.Count < 1 {
		t.Errorf("Agents.Count = %d, want >= 1", cfg.Agents.Count)
	}
	if cfg.Sampler.LayerCount < 1 || cfg.Sampler.OuterLayerSampleCount < 1 {
		t.Errorf("degenerate sampler grid in defaults: %+v", cfg.Sampler)
	}
	if cfg.Cost.Horizon <= 0 {
		t.Errorf("Cost.Horizon = %v, want > 0", cfg.Cost.Horizon)
	}
}

func TestLoadComputesDerived(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}

	// World defaults to zero in defaults.yaml, so derived dims come from
	// the screen.
	if cfg.Derived.WorldW32 != float32(cfg.Screen.Width) {
		t.Errorf("WorldW32 = %v, want %v", cfg.Derived.WorldW32, cfg.Screen.Width)
	}
	if cfg.Derived.WorldH32 != float32(cfg.Screen.Height) {
		t.Errorf("WorldH32 = %v, want %v", cfg.Derived.WorldH32, cfg.Screen.Height)
	}
}

func TestLoadOverride(t *testing.T) {
	path := writeTempConfig(t, `
agents:
  count: 100
world:
  width: 2000
  height: 1500
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config with overrides: %v", err)
	}

	if cfg.Agents.Count != 100 {
		t.Errorf("Agents.Count = %d, want 100", cfg.Agents.Count)
	}
	// Unspecified fields keep defaults
	if cfg.Agents.MaxSpeed != 2.0 {
		t.Errorf("Agents.MaxSpeed = %v, want default 2.0", cfg.Agents.MaxSpeed)
	}
	if cfg.Derived.WorldW32 != 2000 || cfg.Derived.WorldH32 != 1500 {
		t.Errorf("derived world = %vx%v, want 2000x1500",
			cfg.Derived.WorldW32, cfg.Derived.WorldH32)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero layer count", "sampler:\n  layer_count: 0\n"},
		{"unknown strategy", "sampler:\n  strategy: random_walk\n"},
		{"unknown preset", "sampler:\n  preset: turbo\n"},
		{"zero horizon", "cost:\n  horizon: 0\n"},
		{"negative weight", "cost:\n  collision_weight: -1\n"},
		{"zero agent radius", "agents:\n  radius: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.yaml)
			if _, err := Load(path); err == nil {
				t.Errorf("expected validation error for %q", tt.yaml)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
