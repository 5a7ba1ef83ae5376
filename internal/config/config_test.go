package config

import (
	"errors"
	"io"
	"testing"

	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/theme"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := load(nil, envMap(nil), io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Variant != field.DepthDrift || cfg.ParticleCount() != 100 {
		t.Fatalf("unexpected variant/count %v/%d", cfg.Variant, cfg.ParticleCount())
	}
	if cfg.Width != WindowWidth || cfg.Height != WindowHeight {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Theme != ThemeSystem || cfg.ShowStats {
		t.Fatalf("unexpected theme/stats %q/%v", cfg.Theme, cfg.ShowStats)
	}
	if cfg.Palette != theme.DefaultPalette {
		t.Fatalf("unexpected palette %+v", cfg.Palette)
	}
}

func TestRainDefaultCount(t *testing.T) {
	cfg, err := load([]string{"-variant", "rain"}, envMap(nil), io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ParticleCount() != 80 {
		t.Fatalf("expected 80 raindrops, got %d", cfg.ParticleCount())
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	env := envMap(map[string]string{
		"PARTICLE_VARIANT": "rain",
		"PARTICLE_COUNT":   "40",
		"PARTICLE_THEME":   "light",
		"PARTICLE_STATS":   "true",
	})
	cfg, err := load([]string{"-count", "60", "-theme", "dark"}, env, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Variant != field.FallingRain {
		t.Fatalf("expected rain from env, got %v", cfg.Variant)
	}
	if cfg.ParticleCount() != 60 {
		t.Fatalf("expected flag count 60, got %d", cfg.ParticleCount())
	}
	if cfg.Theme != ThemeDark {
		t.Fatalf("expected flag theme dark, got %q", cfg.Theme)
	}
	if !cfg.ShowStats {
		t.Fatalf("expected stats from env")
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "variant", args: []string{"-variant", "snow"}},
		{name: "count", args: []string{"-count", "many"}},
		{name: "count range", args: []string{"-count", "20000"}},
		{name: "negative count", args: []string{"-count", "-1"}},
		{name: "theme", args: []string{"-theme", "sepia"}},
		{name: "width", args: []string{"-width", "0"}},
		{name: "colour", args: []string{"-dark-color", "purple-ish"}},
		{name: "alpha", args: []string{"-light-alpha", "2"}},
		{name: "nan alpha", args: []string{"-dark-alpha", "NaN"}},
		{name: "stats", args: []string{"-stats", "maybe"}},
		{name: "unknown flag", args: []string{"-fps", "60"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(tc.args, envMap(nil), io.Discard)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}
