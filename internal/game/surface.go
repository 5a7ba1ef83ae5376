package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// layer is the offscreen image the particle field draws into. It sits behind
// the rest of the frame, like a fixed canvas behind page content.
type layer struct {
	img   *ebiten.Image
	w, h  int
	alloc func(w, h int) *ebiten.Image
}

func newLayer() *layer {
	return &layer{alloc: ebiten.NewImage}
}

func (l *layer) resize(w, h int) {
	if w <= 0 || h <= 0 || (w == l.w && h == l.h) {
		return
	}
	if l.img != nil {
		l.img.Deallocate()
	}
	l.w, l.h = w, h
	l.img = l.alloc(w, h)
}

func (l *layer) Clear() {
	if l.img == nil {
		return
	}
	l.img.Clear()
}

func (l *layer) FillCircle(x, y, r float64, clr color.Color) {
	if l.img == nil {
		return
	}
	vector.DrawFilledCircle(l.img, float32(x), float32(y), float32(r), clr, true)
}
