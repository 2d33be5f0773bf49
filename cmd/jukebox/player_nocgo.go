//go:build !((linux && cgo) || windows || darwin)

package jukebox

import "net/http"

// AudioAvailable indicates whether audio playback is supported in this build.
// On Linux audio requires cgo for the native sound libraries.
const AudioAvailable = false

// NewSpeakerSurface falls back to a silent surface when cgo is disabled.
// The player will work but without sound.
func NewSpeakerSurface(client *http.Client) Surface {
	return NewSilentSurface()
}
