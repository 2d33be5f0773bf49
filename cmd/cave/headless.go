package cave

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gigurra/shuk/cmd/jukebox"
)

// runHeadless plays without a scene, printing each track as it starts.
func runHeadless(ctx context.Context, params *Params, out io.Writer) error {
	changes := make(chan jukebox.PlaybackInfo, 64)
	sess := newSession(params, func(info jukebox.PlaybackInfo) {
		select {
		case changes <- info:
		default:
		}
	})
	defer sess.engine.Close()

	sess.log.Info("no terminal, playing headless")
	sess.engine.Initialize()
	if err := sess.engine.Play(); err != nil {
		return err
	}
	return followChanges(ctx, changes, params.Notify, out, sess.log)
}

// followChanges reports track starts until ctx is done or playback gives up.
func followChanges(ctx context.Context, changes <-chan jukebox.PlaybackInfo, notify bool, out io.Writer, log *slog.Logger) error {
	lastTrack := -1
	for {
		select {
		case <-ctx.Done():
			return nil
		case info := <-changes:
			if info.Tripped {
				return fmt.Errorf("%d tracks failed in a row, giving up", info.Failures)
			}
			if info.State != jukebox.StatePlaying || info.TrackIndex == lastTrack {
				continue
			}
			lastTrack = info.TrackIndex
			fmt.Fprintf(out, "▶ %s\n", info.DisplayName)
			log.Info("track started", "track", info.DisplayName, "cursor", info.Cursor)
			if notify {
				if err := sendNotification("shuk", "Now playing: "+info.DisplayName); err != nil {
					log.Warn("notification failed", "error", err)
				}
			}
		}
	}
}
