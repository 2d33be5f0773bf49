package jukebox

// PlaybackState represents the current state of playback.
type PlaybackState string

const (
	StateIdle    PlaybackState = "idle"
	StateLoading PlaybackState = "loading"
	StatePlaying PlaybackState = "playing"
	StatePaused  PlaybackState = "paused"
	StateErrored PlaybackState = "errored"
)

// wantsSound reports whether the listener asked for audio in this state.
func (s PlaybackState) wantsSound() bool {
	return s == StatePlaying || s == StateLoading
}

// PlaybackInfo contains information about the current playback state.
type PlaybackInfo struct {
	State       PlaybackState
	Cursor      int     // Position in the play order
	OrderLength int     // Number of tracks in the play order (0 until initialized)
	TrackIndex  int     // Catalog index under the cursor (-1 if none)
	DisplayName string  // Human-readable title of the current track
	URL         string  // Resolved address of the current track
	Volume      float64 // Output volume in [0,1]
	Failures    int     // Consecutive failed tracks since the last good play
	Tripped     bool    // Set once failures exhausted the skip budget
}

// Surface is the audio output the engine drives. Implementations own the
// actual decoding and device access; the engine owns what plays when.
//
// Callbacks must never be invoked synchronously from inside a Surface method.
// A track that cannot be fetched or decoded is reported through
// SurfaceEvents.Failed. The onResult of Play only reports whether playback
// could be started at all; Pause and Load drop any pending Play request.
type Surface interface {
	Load(url string, volume float64, events SurfaceEvents) error
	Play(onResult func(error))
	Pause()
	SetVolume(volume float64)
	Release()
}

// SurfaceEvents are the ended/error notifications for one loaded track.
type SurfaceEvents struct {
	Ended  func()
	Failed func(error)
}

// LevelMeter is implemented by surfaces that can report the loudness of what
// is currently audible, in [0,1].
type LevelMeter interface {
	Level() float64
}
