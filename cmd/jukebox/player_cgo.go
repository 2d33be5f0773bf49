//go:build (linux && cgo) || windows || darwin

package jukebox

import (
	"bytes"
	"context"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gigurra/shuk/cmd/fetch"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

const tapSize = 4096

// speakerSurface fetches a track into memory, decodes it and plays it through
// the system speaker using beep.
type speakerSurface struct {
	mu sync.Mutex

	client      *http.Client
	initialized bool
	sampleRate  beep.SampleRate

	// Per-track state, replaced on every Load
	gen      uint64 // Incremented on every Load/Release, used to ignore stale fetches and callbacks
	cancel   context.CancelFunc
	events   SurfaceEvents
	ready    bool
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volumeFx *effects.Volume
	tap      *Tap
	pending  func(error) // Play request waiting for the fetch to finish

	volume float64
}

// NewSpeakerSurface creates a surface that plays through the system speaker.
func NewSpeakerSurface(client *http.Client) Surface {
	if client == nil {
		client = fetch.Client(2 * time.Minute)
	}
	return &speakerSurface{
		client:     client,
		sampleRate: beep.SampleRate(44100), // Standard sample rate
	}
}

// initSpeakerLocked initializes the speaker if not already done.
func (s *speakerSurface) initSpeakerLocked() error {
	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *speakerSurface) Load(url string, volume float64, events SurfaceEvents) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.gen++
	gen := s.gen
	s.events = events
	s.volume = volume

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.fetch(ctx, gen, url)
	return nil
}

func (s *speakerSurface) fetch(ctx context.Context, gen uint64, url string) {
	data, err := fetch.Bytes(ctx, s.client, url)

	var streamer beep.StreamSeekCloser
	var format beep.Format
	if err == nil {
		streamer, format, err = mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	}

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		if streamer != nil {
			streamer.Close()
		}
		return
	}
	events := s.events
	if err != nil {
		s.pending = nil
		s.mu.Unlock()
		if events.Failed != nil {
			events.Failed(err)
		}
		return
	}

	s.streamer = streamer
	s.format = format
	s.ready = true

	pending := s.pending
	s.pending = nil
	var startErr error
	if pending != nil {
		startErr = s.startLocked()
	}
	s.mu.Unlock()

	if pending != nil {
		pending(startErr)
	}
}

func (s *speakerSurface) Play(onResult func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		s.pending = onResult
		return
	}

	// Resume a paused track
	if s.ctrl != nil {
		speaker.Lock()
		s.ctrl.Paused = false
		speaker.Unlock()
		go onResult(nil)
		return
	}

	err := s.startLocked()
	go onResult(err)
}

// startLocked begins playing the decoded track (must be called with lock held).
func (s *speakerSurface) startLocked() error {
	if err := s.initSpeakerLocked(); err != nil {
		return err
	}

	// Resample if needed to match speaker sample rate
	resampled := beep.Resample(4, s.format.SampleRate, s.sampleRate, s.streamer)
	s.tap = NewTap(resampled, tapSize)
	s.volumeFx = &effects.Volume{Streamer: s.tap, Base: 2}
	applyGain(s.volumeFx, s.volume)
	s.ctrl = &beep.Ctrl{Streamer: s.volumeFx, Paused: false}

	gen := s.gen
	speaker.Play(beep.Seq(s.ctrl, beep.Callback(func() {
		// Run in a separate goroutine: this fires on the speaker goroutine
		// with the speaker lock held.
		go s.finished(gen)
	})))
	return nil
}

func (s *speakerSurface) finished(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.streamer == nil {
		s.mu.Unlock()
		return
	}
	err := s.streamer.Err()
	events := s.events
	s.mu.Unlock()

	if err != nil {
		if events.Failed != nil {
			events.Failed(err)
		}
		return
	}
	if events.Ended != nil {
		events.Ended()
	}
}

func (s *speakerSurface) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
	if s.ctrl != nil {
		speaker.Lock()
		s.ctrl.Paused = true
		speaker.Unlock()
	}
}

func (s *speakerSurface) SetVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = volume
	if s.volumeFx != nil {
		speaker.Lock()
		applyGain(s.volumeFx, volume)
		speaker.Unlock()
	}
}

func (s *speakerSurface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.gen++
}

// Level reports the loudness of the last few thousand samples played.
func (s *speakerSurface) Level() float64 {
	s.mu.Lock()
	tap := s.tap
	s.mu.Unlock()

	if tap == nil {
		return 0
	}
	return tap.Level()
}

// stopLocked stops playback and drops the current track (must be called with lock held).
func (s *speakerSurface) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.ctrl != nil {
		speaker.Lock()
		s.ctrl.Paused = true
		s.ctrl.Streamer = nil
		speaker.Unlock()
	}
	if s.streamer != nil {
		s.streamer.Close()
		s.streamer = nil
	}
	s.ctrl = nil
	s.volumeFx = nil
	s.tap = nil
	s.ready = false
	s.pending = nil
}

// applyGain maps a linear volume in [0,1] onto beep's logarithmic volume.
func applyGain(v *effects.Volume, volume float64) {
	if volume <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(volume)
}
