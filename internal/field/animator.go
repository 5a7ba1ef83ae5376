package field

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/iburimskiy/particle-field/internal/theme"
)

// Surface is the drawing target of the field.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, clr color.Color)
}

// FrameID identifies a pending frame request.
type FrameID uint64

// FrameScheduler runs a callback once on the next display refresh.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// ResizeNotifier delivers surface size changes. The returned func removes
// the listener.
type ResizeNotifier interface {
	OnResize(fn func(w, h int)) (remove func())
}

type Options struct {
	Surface   Surface
	Scheduler FrameScheduler
	// Resize is optional; without it the host calls OnSurfaceResize itself.
	Resize ResizeNotifier
	// Theme defaults to theme.Dark.
	Theme   theme.Source
	Palette theme.Palette
	// Rand returns samples in [0, 1). Defaults to math/rand/v2.
	Rand func() float64
}

// Animator owns a fixed collection of particles and redraws them once per
// frame until stopped. It is not safe for concurrent use; every method and
// every frame callback must run on the host's draw goroutine.
type Animator struct {
	opts Options

	particles []Particle
	variant   Variant
	w, h      float64

	running      bool
	gen          uint64
	pending      FrameID
	hasPending   bool
	removeResize func()
	frames       uint64
}

func NewAnimator(opts Options) *Animator {
	if opts.Theme == nil {
		opts.Theme = theme.Fixed(theme.Dark)
	}
	if opts.Palette == (theme.Palette{}) {
		opts.Palette = theme.DefaultPalette
	}
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}
	return &Animator{opts: opts}
}

// Start allocates count particles for variant and begins the frame loop.
// Without a surface or scheduler it does nothing.
func (a *Animator) Start(w, h, count int, v Variant) {
	if a.running {
		log.Printf("field: start ignored, animator already running")
		return
	}
	if a.opts.Surface == nil || a.opts.Scheduler == nil {
		log.Printf("field: no drawing surface, not starting")
		return
	}
	if w <= 0 || h <= 0 || count <= 0 {
		log.Printf("field: not starting with surface %dx%d and %d particles", w, h, count)
		return
	}

	a.variant = v
	a.w, a.h = float64(w), float64(h)
	a.particles = make([]Particle, count)
	for i := range a.particles {
		a.particles[i] = spawn(v, a.w, a.h, a.opts.Rand)
	}

	if a.opts.Resize != nil {
		a.removeResize = a.opts.Resize.OnResize(a.OnSurfaceResize)
	}

	a.running = true
	a.gen++
	a.frames = 0
	a.schedule(a.gen)
	log.Printf("field: started %d %s particles on %dx%d", count, v, w, h)
}

// OnSurfaceResize records new bounds. Particles keep their coordinates.
func (a *Animator) OnSurfaceResize(w, h int) {
	a.w, a.h = float64(w), float64(h)
}

// Stop cancels the frame loop and the resize listener. After Stop returns no
// frame of the stopped run is drawn. Calling it again is a no-op.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.gen++
	if a.hasPending {
		a.opts.Scheduler.CancelFrame(a.pending)
		a.hasPending = false
	}
	if a.removeResize != nil {
		a.removeResize()
		a.removeResize = nil
	}
	a.particles = nil
	log.Printf("field: stopped after %d frames", a.frames)
}

func (a *Animator) Running() bool { return a.running }

func (a *Animator) Variant() Variant { return a.variant }

// Frames is the number of frames drawn by the current run.
func (a *Animator) Frames() uint64 { return a.frames }

func (a *Animator) Bounds() (w, h int) { return int(a.w), int(a.h) }

// Particles returns a copy of the collection.
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

func (a *Animator) schedule(gen uint64) {
	a.pending = a.opts.Scheduler.RequestFrame(func() { a.tick(gen) })
	a.hasPending = true
}

func (a *Animator) tick(gen uint64) {
	if !a.running || gen != a.gen {
		return
	}
	a.hasPending = false
	a.frame()
	a.schedule(gen)
}

func (a *Animator) frame() {
	surface := a.opts.Surface
	surface.Clear()

	fill := a.opts.Palette.For(a.opts.Theme.Theme())
	for i := range a.particles {
		p := &a.particles[i]
		step(a.variant, p, a.w, a.h, a.opts.Rand)

		x, y, r := Project(a.variant, *p, a.w, a.h)
		clr := fill
		if a.variant == FallingRain {
			clr.A = uint8(clamp01(p.Opacity)*255 + 0.5)
		}
		surface.FillCircle(x, y, r, clr)
	}
	a.frames++
}
