package jukebox

import (
	"math"
	"sync"

	"github.com/gopxl/beep/v2"
)

// Tap wraps a beep.Streamer and records the most recent samples (mono mix)
// into a ring buffer so the scene can react to what is actually audible.
type Tap struct {
	Source beep.Streamer

	mu   sync.Mutex
	buf  []float64
	next int
	full bool
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Tap{
		Source: src,
		buf:    make([]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buf[t.next] = (samples[i][0] + samples[i][1]) / 2
			t.next++
			if t.next >= len(t.buf) {
				t.next = 0
				t.full = true
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Level returns the RMS of the buffered samples, clamped to [0,1].
func (t *Tap) Level() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	count := t.next
	if t.full {
		count = len(t.buf)
	}
	if count == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < count; i++ {
		sum += t.buf[i] * t.buf[i]
	}
	return math.Min(1, math.Sqrt(sum/float64(count)))
}
