package scene

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

const (
	SmoothingFactor = 0.1
	TickInterval    = 100 * time.Millisecond

	// FloorEpsilon is the volume below which a silent analyzer stops ticking.
	FloorEpsilon = 0.001
)

// Levels are smoothed loudness figures in [0,1].
type Levels struct {
	Volume float64
	Bass   float64
	Mid    float64
	Treble float64
}

func (l Levels) toward(target Levels, f float64) Levels {
	return Levels{
		Volume: Smooth(l.Volume, target.Volume, f),
		Bass:   Smooth(l.Bass, target.Bass, f),
		Mid:    Smooth(l.Mid, target.Mid, f),
		Treble: Smooth(l.Treble, target.Treble, f),
	}
}

// fromVolume derives the bands from a single loudness figure.
func fromVolume(v float64) Levels {
	return Levels{Volume: v, Bass: v * 0.8, Mid: v * 0.6, Treble: v * 0.4}
}

// Source supplies raw levels once per tick.
type Source interface {
	Sample() Levels
}

// StandIn produces plausible random levels when nothing can be measured.
type StandIn struct {
	rng *rand.Rand
}

func NewStandIn(rng *rand.Rand) *StandIn {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &StandIn{rng: rng}
}

func (s *StandIn) Sample() Levels {
	return fromVolume(s.rng.Float64()*0.5 + 0.2)
}

// LevelFunc adapts a loudness meter into a Source.
type LevelFunc func() float64

func (f LevelFunc) Sample() Levels {
	return fromVolume(clamp(f(), 0, 1))
}

// Analyzer smooths a Source while listening and decays to silence otherwise.
type Analyzer struct {
	mu        sync.Mutex
	source    Source
	listening bool
	levels    Levels
}

// NewAnalyzer starts in the listening state.
func NewAnalyzer(source Source) *Analyzer {
	return &Analyzer{source: source, listening: true}
}

func (a *Analyzer) SetListening(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listening = on
}

func (a *Analyzer) Listening() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listening
}

// SetSource swaps where samples come from, keeping the current levels.
func (a *Analyzer) SetSource(source Source) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.source = source
}

func (a *Analyzer) Levels() Levels {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.levels
}

// Tick advances one step and reports whether another tick is wanted. While
// not listening ticking stops once the volume falls to FloorEpsilon.
func (a *Analyzer) Tick() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.listening || a.source == nil {
		a.levels = a.levels.toward(Levels{}, SmoothingFactor)
		return a.levels.Volume > FloorEpsilon
	}
	a.levels = a.levels.toward(a.source.Sample(), SmoothingFactor)
	return true
}

// Run ticks every TickInterval until ctx is done, calling emit with the new
// levels whenever they changed.
func (a *Analyzer) Run(ctx context.Context, emit func(Levels)) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	active := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !active && !a.Listening() {
				continue
			}
			active = a.Tick()
			if emit != nil {
				emit(a.Levels())
			}
		}
	}
}
