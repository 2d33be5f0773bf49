package jukebox

import "sync"

// silentSurface accepts every request and produces no sound. Tracks never
// end on their own. It backs --mute and builds without native audio.
type silentSurface struct {
	mu       sync.Mutex
	url      string
	volume   float64
	playing  bool
	released bool
}

func NewSilentSurface() Surface {
	return &silentSurface{}
}

func (s *silentSurface) Load(url string, volume float64, events SurfaceEvents) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.url = url
	s.volume = volume
	s.playing = false
	s.released = false
	return nil
}

func (s *silentSurface) Play(onResult func(error)) {
	s.mu.Lock()
	s.playing = true
	s.mu.Unlock()
	go onResult(nil)
}

func (s *silentSurface) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

func (s *silentSurface) SetVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = volume
}

func (s *silentSurface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.released = true
	s.url = ""
}
