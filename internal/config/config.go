package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/theme"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	MaxParticles = 10000

	// Frames kept for the fps overlay.
	StatsRingSize = 120

	DefaultDarkColor  = "#8b5cf6"
	DefaultDarkAlpha  = 0.8
	DefaultLightColor = "#6366f1"
	DefaultLightAlpha = 0.6
)

var ErrInvalid = errors.New("invalid configuration")

// ThemeMode is "dark", "light" or "system".
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeDark   ThemeMode = "dark"
	ThemeLight  ThemeMode = "light"
)

type Config struct {
	Width, Height int
	Variant       field.Variant
	// Count is the particle count; 0 means the variant default.
	Count     int
	Theme     ThemeMode
	Palette   theme.Palette
	ShowStats bool
}

// ParticleCount resolves the configured count against the variant default.
func (c Config) ParticleCount() int {
	if c.Count > 0 {
		return c.Count
	}
	return c.Variant.DefaultCount()
}

// Load builds a Config from PARTICLE_* environment variables, then args.
// Flags win over the environment.
func Load(args []string) (Config, error) {
	return load(args, os.Getenv, os.Stderr)
}

func load(args []string, getenv func(string) string, usage io.Writer) (Config, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	fs := flag.NewFlagSet("particle-field", flag.ContinueOnError)
	fs.SetOutput(usage)

	variant := fs.String("variant", env("PARTICLE_VARIANT", "depth"), "particle motion: depth or rain")
	count := fs.String("count", env("PARTICLE_COUNT", "0"), "number of particles (0 = variant default)")
	themeMode := fs.String("theme", env("PARTICLE_THEME", string(ThemeSystem)), "colour theme: dark, light or system")
	width := fs.String("width", env("PARTICLE_WIDTH", strconv.Itoa(WindowWidth)), "initial window width")
	height := fs.String("height", env("PARTICLE_HEIGHT", strconv.Itoa(WindowHeight)), "initial window height")
	darkColor := fs.String("dark-color", env("PARTICLE_DARK_COLOR", DefaultDarkColor), "particle colour on dark theme")
	darkAlpha := fs.String("dark-alpha", env("PARTICLE_DARK_ALPHA", strconv.FormatFloat(DefaultDarkAlpha, 'f', -1, 64)), "particle opacity on dark theme")
	lightColor := fs.String("light-color", env("PARTICLE_LIGHT_COLOR", DefaultLightColor), "particle colour on light theme")
	lightAlpha := fs.String("light-alpha", env("PARTICLE_LIGHT_ALPHA", strconv.FormatFloat(DefaultLightAlpha, 'f', -1, 64)), "particle opacity on light theme")
	stats := fs.String("stats", env("PARTICLE_STATS", "false"), "show the stats overlay")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var cfg Config
	var err error

	if cfg.Variant, err = field.ParseVariant(*variant); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if cfg.Count, err = parseInt("count", *count, 0, MaxParticles); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = parseInt("width", *width, 1, 1<<14); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = parseInt("height", *height, 1, 1<<14); err != nil {
		return Config{}, err
	}

	switch mode := ThemeMode(*themeMode); mode {
	case ThemeSystem, ThemeDark, ThemeLight:
		cfg.Theme = mode
	default:
		return Config{}, fmt.Errorf("%w: theme %q", ErrInvalid, *themeMode)
	}

	da, err := parseFloat("dark-alpha", *darkAlpha)
	if err != nil {
		return Config{}, err
	}
	la, err := parseFloat("light-alpha", *lightAlpha)
	if err != nil {
		return Config{}, err
	}
	if cfg.Palette, err = theme.NewPalette(*darkColor, da, *lightColor, la); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if cfg.ShowStats, err = strconv.ParseBool(*stats); err != nil {
		return Config{}, fmt.Errorf("%w: stats %q", ErrInvalid, *stats)
	}

	return cfg, nil
}

func parseInt(name, s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalid, name, s)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s %d out of range [%d, %d]", ErrInvalid, name, n, lo, hi)
	}
	return n, nil
}

func parseFloat(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalid, name, s)
	}
	return f, nil
}
