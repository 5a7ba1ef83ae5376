package field

import (
	"errors"
	"fmt"
	"strings"
)

// Variant selects the motion model of the field.
type Variant int

const (
	// DepthDrift particles approach the viewer and are projected toward the
	// surface centre.
	DepthDrift Variant = iota
	// FallingRain particles fall straight down at their own speed.
	FallingRain
)

const (
	MaxDepth  = 1000.0
	DepthStep = 2.0

	// RainMargin is how far above the top edge a recycled raindrop restarts.
	RainMargin   = 10.0
	RainMinSpeed = 1.0
	RainMaxSpeed = 3.0

	MinSize = 1.0
	MaxSize = 3.0

	RainMinOpacity = 0.2
	RainMaxOpacity = 0.7
)

var ErrUnknownVariant = errors.New("unknown particle variant")

func (v Variant) String() string {
	switch v {
	case DepthDrift:
		return "depth"
	case FallingRain:
		return "rain"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// DefaultCount is the particle count each variant was designed for.
func (v Variant) DefaultCount() int {
	if v == FallingRain {
		return 80
	}
	return 100
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "depth", "depth-drift":
		return DepthDrift, nil
	case "rain", "falling-rain":
		return FallingRain, nil
	}
	return DepthDrift, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Particle is one decorative point. Z is only meaningful for DepthDrift;
// Speed and Opacity only for FallingRain.
type Particle struct {
	X, Y    float64
	Z       float64
	Speed   float64
	Size    float64
	Opacity float64
}

// between maps a unit sample in [0, 1) onto [lo, hi).
func between(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}

func spawn(v Variant, w, h float64, rnd func() float64) Particle {
	p := Particle{
		X:    rnd() * w,
		Y:    rnd() * h,
		Size: between(rnd(), MinSize, MaxSize),
	}
	switch v {
	case DepthDrift:
		// (0, MaxDepth]
		p.Z = MaxDepth - rnd()*MaxDepth
	case FallingRain:
		p.Speed = between(rnd(), RainMinSpeed, RainMaxSpeed)
		p.Opacity = between(rnd(), RainMinOpacity, RainMaxOpacity)
	}
	return p
}

// stepDepth moves p one frame closer and recycles it to the far plane once it
// passes the viewer.
func stepDepth(p *Particle, w, h float64, rnd func() float64) {
	p.Z -= DepthStep
	if p.Z <= 0 {
		p.Z = MaxDepth
		p.X = rnd() * w
		p.Y = rnd() * h
	}
}

// stepRain moves p down by its speed and restarts it above the top edge once
// it leaves the bottom.
func stepRain(p *Particle, w, h float64, rnd func() float64) {
	p.Y += p.Speed
	if p.Y > h {
		p.Y = -RainMargin
		p.X = rnd() * w
		p.Speed = between(rnd(), RainMinSpeed, RainMaxSpeed)
		p.Size = between(rnd(), MinSize, MaxSize)
		p.Opacity = between(rnd(), RainMinOpacity, RainMaxOpacity)
	}
}

func step(v Variant, p *Particle, w, h float64, rnd func() float64) {
	if v == FallingRain {
		stepRain(p, w, h, rnd)
		return
	}
	stepDepth(p, w, h, rnd)
}

// Scale is the pseudo-perspective factor for depth z: 1 at the viewer, 0.5
// at the far plane.
func Scale(z float64) float64 {
	return MaxDepth / (MaxDepth + z)
}

// Project returns the screen position and radius of p on a w×h surface.
func Project(v Variant, p Particle, w, h float64) (x, y, r float64) {
	if v == FallingRain {
		return p.X, p.Y, p.Size
	}
	s := Scale(p.Z)
	cx, cy := w/2, h/2
	return (p.X-cx)*s + cx, (p.Y-cy)*s + cy, p.Size * s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
