package theme

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
	dark "github.com/thiagokokada/dark-mode-go"
)

// Theme is the active colour scheme of the page.
type Theme int

const (
	Dark Theme = iota
	Light
)

var ErrUnknownTheme = errors.New("unknown theme")

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Source reports the theme that should be used for the next frame.
type Source interface {
	Theme() Theme
}

// Fixed is a Source that never changes.
type Fixed Theme

func (f Fixed) Theme() Theme { return Theme(f) }

// Toggle is a Source flipped by user input.
type Toggle struct {
	light atomic.Bool
}

func NewToggle(initial Theme) *Toggle {
	t := &Toggle{}
	t.Set(initial)
	return t
}

func (t *Toggle) Theme() Theme {
	if t.light.Load() {
		return Light
	}
	return Dark
}

func (t *Toggle) Set(th Theme) { t.light.Store(th == Light) }

// Flip switches between light and dark and returns the new theme.
func (t *Toggle) Flip() Theme {
	for {
		old := t.light.Load()
		if t.light.CompareAndSwap(old, !old) {
			if old {
				return Dark
			}
			return Light
		}
	}
}

// System follows the operating system's dark mode setting. The setting is
// read once when the System is created; Start keeps it current from the
// platform change watcher on a background goroutine, so Theme never touches
// the OS.
type System struct {
	current Toggle
	watcher *dark.Watcher
	done    chan struct{}
}

func NewSystem() *System {
	return newSystem(dark.ModeCheckerFunc(dark.IsDarkMode), nil)
}

// newSystem takes the checker for the initial value and the change watcher
// factory; a nil factory uses the platform one.
func newSystem(checker dark.ModeChecker, factory dark.ChangeWatcherFactory) *System {
	s := &System{
		watcher: dark.NewWatcher(checker, factory),
		done:    make(chan struct{}),
	}
	isDark, err := checker.IsDarkMode()
	if err != nil {
		log.Printf("theme: dark mode detection failed, using dark: %v", err)
		isDark = true
	}
	s.current.Set(fromDark(isDark))
	return s
}

func (s *System) Theme() Theme { return s.current.Theme() }

// Start watches for OS theme changes until ctx is done. If no watcher is
// available the initial value stays in effect.
func (s *System) Start(ctx context.Context) error {
	events, errs, err := s.watcher.Watch(ctx)
	if err != nil {
		close(s.done)
		return fmt.Errorf("watch dark mode: %w", err)
	}
	go func() {
		defer close(s.done)
		for events != nil || errs != nil {
			select {
			case isDark, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				s.current.Set(fromDark(isDark))
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				log.Printf("theme: dark mode watcher: %v", err)
			}
		}
	}()
	return nil
}

// Done is closed once the watcher goroutine has exited.
func (s *System) Done() <-chan struct{} { return s.done }

func fromDark(isDark bool) Theme {
	if isDark {
		return Dark
	}
	return Light
}

// Parse accepts "dark" or "light" (case-insensitive).
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Palette holds the particle fill colour for each theme.
type Palette struct {
	Dark  color.NRGBA
	Light color.NRGBA
}

// DefaultPalette is violet-500 at 0.8 on dark and indigo-500 at 0.6 on light.
var DefaultPalette = Palette{
	Dark:  color.NRGBA{R: 139, G: 92, B: 246, A: 204},
	Light: color.NRGBA{R: 99, G: 102, B: 241, A: 153},
}

func (p Palette) For(t Theme) color.NRGBA {
	if t == Light {
		return p.Light
	}
	return p.Dark
}

// Background is the page background behind the particle layer.
func Background(t Theme) color.NRGBA {
	if t == Light {
		return color.NRGBA{R: 249, G: 250, B: 251, A: 255} // gray-50
	}
	return color.NRGBA{R: 3, G: 7, B: 18, A: 255} // gray-950
}

// ParseColor turns a hex string ("#8b5cf6" or "#abc") and an alpha in [0, 1]
// into a fill colour.
func ParseColor(hex string, alpha float64) (color.NRGBA, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return color.NRGBA{}, fmt.Errorf("alpha %v out of range [0, 1]", alpha)
	}
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}, nil
}

func NewPalette(darkHex string, darkAlpha float64, lightHex string, lightAlpha float64) (Palette, error) {
	d, err := ParseColor(darkHex, darkAlpha)
	if err != nil {
		return Palette{}, fmt.Errorf("dark: %w", err)
	}
	l, err := ParseColor(lightHex, lightAlpha)
	if err != nil {
		return Palette{}, fmt.Errorf("light: %w", err)
	}
	return Palette{Dark: d, Light: l}, nil
}
