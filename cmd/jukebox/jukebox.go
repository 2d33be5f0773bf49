// Package jukebox implements the shuffle playback engine: a random play order
// over the fixed catalog, advance on end, skip on error and a bounded budget
// for consecutive failures.
package jukebox

import (
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gigurra/shuk/cmd/catalog"
	"github.com/gigurra/shuk/cmd/fetch"
	"github.com/samber/lo"
)

var (
	ErrNoTrack       = errors.New("no track selected")
	ErrClosed        = errors.New("jukebox is closed")
	ErrPlaybackError = errors.New("playback error")
)

const DefaultVolume = 0.7

// Engine manages a shuffled play order over a catalog and drives a Surface.
type Engine struct {
	mu sync.Mutex

	catalog *catalog.Catalog
	surface Surface
	rng     *rand.Rand
	log     *slog.Logger
	client  *http.Client

	// Play order management
	order  []int // Permutation of catalog indices
	cursor int   // Current position in order
	loaded bool  // Whether the surface holds the track under the cursor

	// Playback state
	state     PlaybackState
	volume    float64
	trackID   uint64 // Incremented on every load, used to ignore stale surface events
	requestID uint64 // Incremented on every play/pause request, used to ignore stale play results

	// Failure budget
	failures    int
	maxFailures int
	tripped     bool

	closed   bool
	onChange func(PlaybackInfo)
}

type Option func(*Engine)

// WithRand injects the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func WithVolume(v float64) Option {
	return func(e *Engine) { e.volume = clampVolume(v) }
}

// WithMaxConsecutiveFailures caps how many tracks in a row may fail before
// the engine stops skipping. Zero or less means one full pass over the order.
func WithMaxConsecutiveFailures(n int) Option {
	return func(e *Engine) { e.maxFailures = n }
}

func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

func WithHTTPClient(client *http.Client) Option {
	return func(e *Engine) { e.client = client }
}

// WithOnChange registers a hook that receives a snapshot after every state or
// track change. It is called without the engine lock held.
func WithOnChange(fn func(PlaybackInfo)) Option {
	return func(e *Engine) { e.onChange = fn }
}

// New creates an engine over cat. Nothing is shuffled or loaded until
// Initialize is called.
func New(cat *catalog.Catalog, surface Surface, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		surface: surface,
		state:   StateIdle,
		volume:  DefaultVolume,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.client == nil {
		e.client = fetch.Client(2 * time.Minute)
	}
	return e
}

// mutate runs fn under the lock and publishes a snapshot afterwards.
func (e *Engine) mutate(fn func()) {
	e.mu.Lock()
	fn()
	info := e.infoLocked()
	onChange := e.onChange
	e.mu.Unlock()

	if onChange != nil {
		onChange(info)
	}
}

// Initialize builds a fresh uniform permutation of the catalog, points the
// cursor at its start and loads, but does not play, the first track.
func (e *Engine) Initialize() {
	e.mutate(func() {
		if e.closed {
			return
		}
		e.shuffleLocked()
		e.state = StateIdle
		if len(e.order) > 0 {
			e.loadLocked()
		}
	})
}

// Reshuffle replaces the play order with a new permutation and starts over
// from its first track, keeping playback going if it was.
func (e *Engine) Reshuffle() {
	e.mutate(func() {
		if e.closed {
			return
		}
		wasPlaying := e.state.wantsSound()
		e.shuffleLocked()
		if len(e.order) == 0 {
			return
		}
		e.loadLocked()
		if wasPlaying {
			e.requestPlayLocked()
		} else if e.state == StateErrored {
			e.state = StateIdle
		}
	})
}

func (e *Engine) shuffleLocked() {
	e.order = e.rng.Perm(e.catalog.Len())
	e.cursor = 0
	e.loaded = false
	e.failures = 0
	e.tripped = false
	if len(e.order) == 0 {
		e.order = nil
	}
}

// ResolveCurrentURL returns the address of the track under the cursor, or
// false when there is none yet.
func (e *Engine) ResolveCurrentURL() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentURLLocked()
}

func (e *Engine) currentURLLocked() (string, bool) {
	if len(e.order) == 0 {
		return "", false
	}
	u, err := e.catalog.URL(e.order[e.cursor])
	if err != nil {
		return "", false
	}
	return u, true
}

// CurrentDisplayName returns the title of the track under the cursor, or
// "Loading..." when the play order is empty.
func (e *Engine) CurrentDisplayName() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentNameLocked()
}

func (e *Engine) currentNameLocked() string {
	if len(e.order) == 0 {
		return catalog.LoadingName
	}
	name, err := e.catalog.DisplayName(e.order[e.cursor])
	if err != nil {
		return catalog.UnknownName
	}
	return name
}

// SetVolume clamps v to [0,1], applies it to the loaded track if there is one
// and keeps it for every track loaded later.
func (e *Engine) SetVolume(v float64) {
	e.mutate(func() {
		e.volume = clampVolume(v)
		if e.loaded && !e.closed {
			e.surface.SetVolume(e.volume)
		}
	})
}

func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// Order returns a copy of the current play order.
func (e *Engine) Order() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]int(nil), e.order...)
}

// Status returns the current playback information.
func (e *Engine) Status() PlaybackInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.infoLocked()
}

func (e *Engine) infoLocked() PlaybackInfo {
	info := PlaybackInfo{
		State:       e.state,
		Cursor:      e.cursor,
		OrderLength: len(e.order),
		TrackIndex:  -1,
		DisplayName: e.currentNameLocked(),
		Volume:      e.volume,
		Failures:    e.failures,
		Tripped:     e.tripped,
	}
	if len(e.order) > 0 {
		info.TrackIndex = e.order[e.cursor]
	}
	info.URL, _ = e.currentURLLocked()
	return info
}

// Close stops playback and releases the surface. Callbacks that arrive
// afterwards are ignored. Calling Close more than once is fine.
func (e *Engine) Close() {
	e.mutate(func() {
		if e.closed {
			return
		}
		e.closed = true
		e.trackID++
		e.requestID++
		e.loaded = false
		e.state = StateIdle
		e.surface.Release()
	})
}

func clampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return lo.Clamp(v, 0, 1)
}
