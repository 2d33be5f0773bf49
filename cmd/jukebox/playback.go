package jukebox

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gigurra/shuk/cmd/fetch"
)

// Play requests playback of the current track. The request completes
// asynchronously: the engine sits in StateLoading until the surface answers.
// A rejected start leaves the cursor where it is and the engine in
// StateErrored until the listener acts again. An empty play order is a no-op.
func (e *Engine) Play() error {
	var err error
	e.mutate(func() {
		if e.closed {
			err = ErrClosed
			return
		}
		if len(e.order) == 0 || e.state.wantsSound() {
			return
		}
		// An explicit play after giving up earns a fresh pass.
		if e.tripped {
			e.tripped = false
			e.failures = 0
		}
		if !e.loaded {
			e.loadLocked()
		}
		e.requestPlayLocked()
	})
	return err
}

// Pause stops playback without moving the cursor. A play request still in
// flight is abandoned.
func (e *Engine) Pause() {
	e.mutate(func() {
		if e.closed || !e.state.wantsSound() {
			return
		}
		e.requestID++
		e.surface.Pause()
		e.state = StatePaused
	})
}

// TogglePlayPause pauses when sound is wanted, otherwise plays.
func (e *Engine) TogglePlayPause() error {
	e.mu.Lock()
	playing := e.state.wantsSound()
	e.mu.Unlock()

	if playing {
		e.Pause()
		return nil
	}
	return e.Play()
}

// SkipNext advances to the next track in the play order, wrapping around at
// the end. The new track only starts if the engine was playing.
func (e *Engine) SkipNext() {
	e.mutate(func() {
		if e.closed || len(e.order) == 0 {
			return
		}
		e.skipLocked(e.state.wantsSound())
	})
}

// OnNaturalEnd is what happens when a track plays to its end: move on and
// keep playing.
func (e *Engine) OnNaturalEnd() {
	e.mutate(func() {
		if e.closed || len(e.order) == 0 {
			return
		}
		e.endedLocked()
	})
}

// OnPlaybackError treats the current track as broken and skips past it.
func (e *Engine) OnPlaybackError() {
	e.mutate(func() {
		if e.closed || len(e.order) == 0 {
			return
		}
		e.failedLocked(ErrPlaybackError)
	})
}

// handleEnded is bound to one loaded track; events from replaced tracks are
// ignored.
func (e *Engine) handleEnded(trackID uint64) {
	e.mutate(func() {
		if e.closed || trackID != e.trackID || len(e.order) == 0 {
			return
		}
		e.endedLocked()
	})
}

func (e *Engine) handleFailed(trackID uint64, cause error) {
	e.mutate(func() {
		if e.closed || trackID != e.trackID || len(e.order) == 0 {
			return
		}
		e.failedLocked(cause)
	})
}

// handlePlayResult is bound to one play request; a result for a request that
// was superseded by a skip, pause or new load is ignored.
func (e *Engine) handlePlayResult(requestID uint64, err error) {
	e.mutate(func() {
		if e.closed || requestID != e.requestID {
			return
		}
		if err != nil {
			e.log.Warn("playback could not start", "track", e.currentNameLocked(), "error", err)
			e.state = StateErrored
			return
		}
		e.state = StatePlaying
		e.failures = 0
		e.log.Info("now playing", "track", e.currentNameLocked(), "cursor", e.cursor)
	})
}

func (e *Engine) endedLocked() {
	e.failures = 0
	e.skipLocked(true)
}

func (e *Engine) failedLocked(cause error) {
	e.failures++
	e.log.Warn("track failed, skipping", "track", e.currentNameLocked(), "failures", e.failures, "error", cause)

	if e.failures >= e.failureBudgetLocked() {
		e.tripped = true
		e.requestID++
		e.loaded = false
		e.state = StateErrored
		e.log.Error("too many tracks failed in a row, stopping", "failures", e.failures)
		return
	}
	e.skipLocked(e.state.wantsSound())
}

func (e *Engine) skipLocked(play bool) {
	e.cursor = (e.cursor + 1) % len(e.order)
	e.loadLocked()
	if play {
		e.requestPlayLocked()
	} else if e.state == StateErrored {
		e.state = StateIdle
	}
}

func (e *Engine) failureBudgetLocked() int {
	if e.maxFailures > 0 {
		return e.maxFailures
	}
	return len(e.order)
}

// loadLocked hands the track under the cursor to the surface.
func (e *Engine) loadLocked() {
	e.trackID++
	id := e.trackID

	url, ok := e.currentURLLocked()
	if !ok {
		e.loaded = false
		return
	}
	e.loaded = true

	err := e.surface.Load(url, e.volume, SurfaceEvents{
		Ended:  func() { e.handleEnded(id) },
		Failed: func(err error) { e.handleFailed(id, err) },
	})
	if err != nil {
		// Surfaces report asynchronously; keep it that way for load errors too.
		go e.handleFailed(id, err)
	}
	e.log.Debug("loaded track", "cursor", e.cursor, "track", e.currentNameLocked(), "url", url)
}

func (e *Engine) requestPlayLocked() {
	e.requestID++
	id := e.requestID
	e.state = StateLoading
	e.surface.Play(func(err error) { e.handlePlayResult(id, err) })
}

// DownloadCurrent saves the current track into dir, named after its display
// name, and returns the path written. Playback state is not touched.
func (e *Engine) DownloadCurrent(ctx context.Context, dir string) (string, error) {
	e.mu.Lock()
	url, ok := e.currentURLLocked()
	name := e.currentNameLocked()
	client := e.client
	e.mu.Unlock()

	if !ok {
		return "", ErrNoTrack
	}

	dest := filepath.Join(dir, fetch.FileName(name))
	n, err := fetch.ToFile(ctx, client, url, dest, 3)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", name, err)
	}
	e.log.Info("saved track", "track", name, "path", dest, "size", fetch.FormatBytes(n))
	return dest, nil
}
