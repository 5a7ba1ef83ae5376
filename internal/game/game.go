package game

import (
	"context"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/theme"
)

// Game hosts the particle field in an ebiten window. Frame requests made by
// the animator are served from Draw, once per display refresh.
type Game struct {
	cfg config.Config

	layer  *layer
	frames *frame.Queue
	resize *frame.ResizeHub
	stats  *frame.Stats
	themes *themeSource
	anim   *field.Animator
	cancel context.CancelFunc

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	paused    bool
	showStats bool
}

// New builds the host. In system theme mode the OS dark mode watcher runs
// until ctx is done or Close is called.
func New(ctx context.Context, cfg config.Config) *Game {
	ctx, cancel := context.WithCancel(ctx)
	g := &Game{
		cfg:       cfg,
		layer:     newLayer(),
		frames:    frame.NewQueue(),
		resize:    frame.NewResizeHub(),
		stats:     frame.NewStats(config.StatsRingSize),
		themes:    newThemeSource(ctx, cfg.Theme),
		prevKey:   map[ebiten.Key]bool{},
		showStats: cfg.ShowStats,
		cancel:    cancel,
	}
	g.resize.OnResize(g.layer.resize)
	g.anim = field.NewAnimator(field.Options{
		Surface:   g.layer,
		Scheduler: g.frames,
		Resize:    g.resize,
		Theme:     g.themes,
		Palette:   cfg.Palette,
	})
	return g
}

// Close stops the animator and the theme watcher.
func (g *Game) Close() {
	g.anim.Stop()
	g.cancel()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyT) {
		log.Printf("game: theme switched to %s", g.themes.flip())
	}
	if justPressed(ebiten.KeyS) {
		g.showStats = !g.showStats
	}
	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}

	if !g.paused && !g.anim.Running() {
		g.start()
	}
	return nil
}

func (g *Game) start() {
	w, h := g.resize.Size()
	if w <= 0 || h <= 0 {
		return
	}
	g.stats.Reset()
	g.anim.Start(w, h, g.cfg.ParticleCount(), g.cfg.Variant)
}

// togglePause stops the animator as if its view were unmounted, and starts a
// fresh field when resumed.
func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.anim.Stop()
		g.layer.Clear()
		return
	}
	g.start()
}

func (g *Game) Draw(screen *ebiten.Image) {
	th := g.themes.Theme()
	screen.Fill(theme.Background(th))

	g.runFrames(time.Now())
	if g.layer.img != nil {
		screen.DrawImage(g.layer.img, nil)
	}

	if g.showStats {
		ebitenutil.DebugPrintAt(screen, g.statusLine(th), 12, 12)
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "Paused - Space to resume", 12, screen.Bounds().Dy()-24)
	}
}

// runFrames serves the pending frame requests and records the refresh.
func (g *Game) runFrames(now time.Time) int {
	n := g.frames.Flush()
	if n > 0 {
		g.stats.Mark(now)
	}
	return n
}

// Layout keeps the logical screen at the window size so the field always
// covers the whole window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resize.Update(outsideWidth, outsideHeight) {
		log.Printf("game: surface resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// themeSource follows the OS setting in system mode until the user toggles
// the theme by hand.
type themeSource struct {
	system *theme.System
	toggle *theme.Toggle
	manual bool
}

func newThemeSource(ctx context.Context, mode config.ThemeMode) *themeSource {
	s := &themeSource{toggle: theme.NewToggle(theme.Dark)}
	switch mode {
	case config.ThemeLight:
		s.toggle.Set(theme.Light)
		s.manual = true
	case config.ThemeDark:
		s.manual = true
	default:
		s.system = theme.NewSystem()
		if err := s.system.Start(ctx); err != nil {
			log.Printf("game: following OS theme changes disabled: %v", err)
		}
	}
	return s
}

func (s *themeSource) Theme() theme.Theme {
	if !s.manual && s.system != nil {
		return s.system.Theme()
	}
	return s.toggle.Theme()
}

func (s *themeSource) flip() theme.Theme {
	if !s.manual {
		s.toggle.Set(s.Theme())
		s.manual = true
	}
	return s.toggle.Flip()
}
