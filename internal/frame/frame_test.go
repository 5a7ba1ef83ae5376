package frame

import (
	"image/color"
	"testing"
	"time"

	"github.com/iburimskiy/particle-field/internal/field"
)

func TestQueueRunsInRequestOrder(t *testing.T) {
	q := NewQueue()
	var order []int
	for i := 1; i <= 5; i++ {
		q.RequestFrame(func() { order = append(order, i) })
	}
	if ran := q.Flush(); ran != 5 {
		t.Fatalf("expected 5 callbacks, ran %d", ran)
	}
	for i, got := range order {
		if got != i+1 {
			t.Fatalf("order=%v", order)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
}

func TestQueueDefersNestedRequests(t *testing.T) {
	q := NewQueue()
	calls := 0
	var loop func()
	loop = func() {
		calls++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	q.Flush()
	q.Flush()
	if calls != 2 {
		t.Fatalf("expected one call per flush, got %d", calls)
	}
	if q.Len() != 1 {
		t.Fatalf("expected one pending request, got %d", q.Len())
	}
}

func TestQueueCancel(t *testing.T) {
	q := NewQueue()
	ran := false
	var second field.FrameID
	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { ran = true })
	id := q.RequestFrame(func() { t.Fatal("cancelled callback ran") })
	q.CancelFrame(id)

	if n := q.Flush(); n != 1 {
		t.Fatalf("expected 1 callback, ran %d", n)
	}
	if ran {
		t.Fatalf("callback cancelled mid-flush still ran")
	}
}

func TestResizeHub(t *testing.T) {
	r := NewResizeHub()
	var got [][2]int
	remove := r.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })

	if !r.Update(800, 600) {
		t.Fatalf("expected change")
	}
	if r.Update(800, 600) {
		t.Fatalf("same size must not notify")
	}
	r.Update(1024, 768)
	if len(got) != 2 || got[1] != [2]int{1024, 768} {
		t.Fatalf("unexpected notifications %v", got)
	}

	remove()
	r.Update(640, 480)
	if len(got) != 2 || r.Listeners() != 0 {
		t.Fatalf("listener still attached: %v", got)
	}
	if w, h := r.Size(); w != 640 || h != 480 {
		t.Fatalf("size=%dx%d", w, h)
	}
}

func TestStatsFPS(t *testing.T) {
	s := NewStats(4)
	now := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		s.Mark(now)
		now = now.Add(time.Second / 50)
	}
	if fps := s.FPS(); fps < 49.9 || fps > 50.1 {
		t.Fatalf("expected ~50 fps, got %v", fps)
	}
	if len(s.Snapshot(100)) != 4 {
		t.Fatalf("snapshot must be capped by the ring size")
	}
	if up := s.Uptime(); up != 9*time.Second/50 {
		t.Fatalf("uptime=%v", up)
	}

	s.Reset()
	if s.FPS() != 0 || s.Uptime() != 0 {
		t.Fatalf("expected zero stats after reset")
	}
}

func TestStatsSnapshotOrder(t *testing.T) {
	s := NewStats(3)
	now := time.Unix(0, 0)
	s.Mark(now)
	for _, d := range []time.Duration{1, 2, 3, 4} {
		now = now.Add(d)
		s.Mark(now)
	}
	got := s.Snapshot(3)
	want := []time.Duration{2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot=%v want=%v", got, want)
		}
	}
}

type countingSurface struct{ clears, circles int }

func (s *countingSurface) Clear() { s.clears++ }
func (s *countingSurface) FillCircle(x, y, r float64, _ color.Color) { s.circles++ }

func TestAnimatorOnQueue(t *testing.T) {
	q := NewQueue()
	hub := NewResizeHub()
	hub.Update(800, 600)
	surface := &countingSurface{}

	a := field.NewAnimator(field.Options{Surface: surface, Scheduler: q, Resize: hub})
	a.Start(800, 600, 80, field.FallingRain)
	for i := 0; i < 30; i++ {
		q.Flush()
	}
	if surface.clears != 30 || surface.circles != 30*80 {
		t.Fatalf("clears=%d circles=%d", surface.clears, surface.circles)
	}

	hub.Update(400, 300)
	if w, h := a.Bounds(); w != 400 || h != 300 {
		t.Fatalf("animator bounds %dx%d after resize", w, h)
	}

	a.Stop()
	if q.Len() != 0 || hub.Listeners() != 0 {
		t.Fatalf("stop left pending=%d listeners=%d", q.Len(), hub.Listeners())
	}
	q.Flush()
	if surface.clears != 30 {
		t.Fatalf("frame drawn after stop")
	}
}
