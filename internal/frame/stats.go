package frame

import "time"

// Stats records the last N frame intervals into a ring buffer so the overlay
// can show a smoothed frame rate.
type Stats struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	last      time.Time
	started   time.Time
}

func NewStats(ringSize int) *Stats {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Stats{buffer: make([]time.Duration, ringSize)}
}

// Mark records a frame at now.
func (s *Stats) Mark(now time.Time) {
	if s.started.IsZero() {
		s.started = now
		s.last = now
		return
	}
	s.buffer[s.nextIndex] = now.Sub(s.last)
	s.last = now
	s.nextIndex++
	if s.nextIndex >= len(s.buffer) {
		s.nextIndex = 0
	}
	if s.filled < len(s.buffer) {
		s.filled++
	}
}

// Snapshot returns up to the last n intervals, most recent last.
func (s *Stats) Snapshot(n int) []time.Duration {
	if n > s.filled {
		n = s.filled
	}
	out := make([]time.Duration, 0, n)
	idx := s.nextIndex - 1
	if idx < 0 {
		idx = len(s.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, s.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(s.buffer) - 1
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FPS is the mean frame rate over the buffered intervals.
func (s *Stats) FPS() float64 {
	if s.filled == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.Snapshot(s.filled) {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(s.filled) / total.Seconds()
}

// Uptime is the time between the first and the latest frame.
func (s *Stats) Uptime() time.Duration {
	return s.last.Sub(s.started)
}

func (s *Stats) Reset() {
	clear(s.buffer)
	s.nextIndex = 0
	s.filled = 0
	s.last = time.Time{}
	s.started = time.Time{}
}
