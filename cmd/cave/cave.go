// Package cave is the interactive shell: the shuffle player plus the terminal
// rendering of the cave scene, or the player alone in music mode.
package cave

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/gigurra/shuk/cmd/catalog"
	"github.com/gigurra/shuk/cmd/common"
	"github.com/gigurra/shuk/cmd/device"
	"github.com/gigurra/shuk/cmd/fetch"
	"github.com/gigurra/shuk/cmd/jukebox"
	"github.com/gigurra/shuk/cmd/scene"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Mode selects what the shell shows.
type Mode int

const (
	ModeCave  Mode = iota // Scene plus player
	ModeMusic             // Player only
)

func (m Mode) String() string {
	if m == ModeMusic {
		return "music"
	}
	return "cave"
}

type Params struct {
	FPS         int     `short:"f" optional:"true" help:"Frames per second" default:"15"`
	Volume      float64 `short:"v" optional:"true" help:"Initial volume (0-1)." default:"0.7"`
	Seed        int64   `optional:"true" help:"Seed for the shuffle (0 picks a random seed)." default:"0"`
	Mute        bool    `short:"m" optional:"true" help:"Run without sound."`
	Notify      bool    `short:"n" optional:"true" help:"Show a desktop notification when the track changes."`
	NoAutoplay  bool    `optional:"true" help:"Wait for space before starting playback."`
	MaxFailures int     `optional:"true" help:"Consecutive failed tracks before playback stops (0 means one full pass)." default:"0"`
	Dir         string  `short:"d" optional:"true" help:"Directory for saved tracks (defaults to the shuk cache)."`
	BaseURL     string  `optional:"true" help:"Streaming origin the track references are appended to." default:"https://rangatracks.b-cdn.net/"`
}

func Cmd() *cobra.Command {
	return command("cave", ModeCave,
		"Enter the cave: shuffle music with an audio-reactive scene",
		`Enter the cave.

Three coloured lights orbit the point under your mouse while the catalog plays
in random order. Click to pin the lights in place, click again to release.

Controls:
  space      Play / pause
  n          Next track
  + / -      Volume
  1 2 3      Select the Shu, Phi or Theta knob
  ← → / h l  Turn the selected knob
  a          Toggle listening (lights react to the music)
  s          Toggle stars
  d          Save the current track
  c          Copy the track address
  r          Show the track address as a QR code
  R          Reshuffle the play order
  m          Switch between cave and music mode
  ?          Help
  q          Quit

Without a terminal the music plays headless and track changes are printed.`)
}

func PlayCmd() *cobra.Command {
	return command("play", ModeMusic,
		"Shuffle-play the catalog (music mode)",
		`Shuffle-play the whole catalog.

Starts in music mode; press m to enter the cave. Without a terminal the music
plays headless and track changes are printed.`)
}

func command(use string, mode Mode, short, long string) *cobra.Command {
	return boa.CmdT[Params]{
		Use:         use,
		Short:       short,
		Long:        long,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(cmd, params, mode); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", use, err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

// Run starts a session. The scene is only built when stdout is a terminal.
func Run(cmd *cobra.Command, params *Params, mode Mode) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rendering := device.RenderingAvailable(int(os.Stdout.Fd()))
	common.InitLogging(cmd, rendering)

	if !rendering {
		return runHeadless(ctx, params, os.Stdout)
	}

	prof := device.Detect(device.TerminalWidth(int(os.Stdout.Fd())))
	sess := newSession(params, nil)
	defer sess.engine.Close()

	sess.log.Info("session started", "mode", mode, "constrained", prof.Constrained, "lowPerformance", prof.LowPerformance)
	sess.engine.Initialize()
	if !params.NoAutoplay {
		if err := sess.engine.Play(); err != nil {
			return err
		}
	}

	m := newModel(sess.engine, sess.analyzer, scene.NewModel(prof.Constrained, prof.LowPerformance), options{
		mode:        mode,
		fps:         params.FPS,
		notify:      params.Notify,
		downloadDir: downloadDir(params),
		log:         sess.log,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	sess.log.Info("session ended")
	return nil
}

// session owns the engine and everything that feeds the scene for one run.
type session struct {
	id       string
	log      *slog.Logger
	engine   *jukebox.Engine
	analyzer *scene.Analyzer
}

func newSession(params *Params, onChange func(jukebox.PlaybackInfo)) *session {
	id := uuid.NewString()
	log := slog.Default().With("session", id)

	var surface jukebox.Surface
	if params.Mute || !jukebox.AudioAvailable {
		if !params.Mute {
			log.Warn("audio not available in this build, playing silently")
		}
		surface = jukebox.NewSilentSurface()
	} else {
		surface = jukebox.NewSpeakerSurface(fetch.Client(2 * time.Minute))
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []jukebox.Option{
		jukebox.WithRand(rand.New(rand.NewSource(seed))),
		jukebox.WithVolume(params.Volume),
		jukebox.WithMaxConsecutiveFailures(params.MaxFailures),
		jukebox.WithLogger(log),
	}
	if onChange != nil {
		opts = append(opts, jukebox.WithOnChange(onChange))
	}
	engine := jukebox.New(catalog.New(params.BaseURL, catalog.Tracks), surface, opts...)

	// Measure what is actually audible when we can, otherwise make it up.
	var source scene.Source = scene.NewStandIn(nil)
	if meter, ok := surface.(jukebox.LevelMeter); ok {
		source = scene.LevelFunc(meter.Level)
	}

	return &session{
		id:       id,
		log:      log,
		engine:   engine,
		analyzer: scene.NewAnalyzer(source),
	}
}

func downloadDir(params *Params) string {
	if params.Dir != "" {
		return params.Dir
	}
	return common.DownloadDir()
}

var sendNotification = func(title, message string) error {
	return beeep.Notify(title, message, "")
}
