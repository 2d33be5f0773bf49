package cave

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/shuk/cmd/jukebox"
	"github.com/gigurra/shuk/cmd/qr"
	"github.com/gigurra/shuk/cmd/scene"
	"github.com/gigurra/shuk/cmd/share"
)

const (
	headerRows = 3
	footerRows = 1

	volumeStep = 0.1
	flashFor   = 3 * time.Second
)

// player is the part of the engine the shell drives.
type player interface {
	TogglePlayPause() error
	SkipNext()
	Reshuffle()
	SetVolume(v float64)
	Volume() float64
	Status() jukebox.PlaybackInfo
	DownloadCurrent(ctx context.Context, dir string) (string, error)
}

type options struct {
	mode        Mode
	fps         int
	notify      bool
	downloadDir string
	log         *slog.Logger
}

type frameMsg time.Time

type levelsMsg struct{}

type downloadedMsg struct {
	path string
	err  error
}

type flashExpiredMsg struct {
	id int
}

type model struct {
	player   player
	analyzer *scene.Analyzer
	scene    *scene.Model
	opts     options

	mode   Mode
	width  int
	height int

	start      time.Time
	now        time.Time
	frame      scene.Frame
	sceneReady bool
	introDone  bool

	analyzerTicking bool
	selected        scene.Knob
	stars           bool
	showHelp        bool
	showQR          bool

	flash   string
	flashID int

	lastTrack int
}

func newModel(p player, analyzer *scene.Analyzer, sm *scene.Model, opts options) model {
	if opts.fps < 5 {
		opts.fps = 5
	}
	if opts.fps > 60 {
		opts.fps = 60
	}
	if opts.log == nil {
		opts.log = slog.Default()
	}
	return model{
		player:    p,
		analyzer:  analyzer,
		scene:     sm,
		opts:      opts,
		mode:      opts.mode,
		selected:  scene.KnobShu,
		lastTrack: -1,

		analyzerTicking: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.frameTick(), levelsTick())
}

func (m model) frameTick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func levelsTick() tea.Cmd {
	return tea.Tick(scene.TickInterval, func(time.Time) tea.Msg {
		return levelsMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		cmd := m.advance(time.Time(msg))
		return m, tea.Batch(cmd, m.frameTick())

	case levelsMsg:
		m.analyzerTicking = m.analyzer.Tick()
		if m.analyzerTicking {
			return m, levelsTick()
		}

	case downloadedMsg:
		if msg.err != nil {
			m.opts.log.Warn("download failed", "error", msg.err)
			cmd := m.setFlash("Download failed: " + msg.err.Error())
			return m, cmd
		}
		cmd := m.setFlash("Saved " + msg.path)
		return m, cmd

	case flashExpiredMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes the help view
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch key {
	case " ":
		if err := m.player.TogglePlayPause(); err != nil {
			cmd := m.setFlash(err.Error())
			return m, cmd
		}
	case "n":
		m.player.SkipNext()
	case "+", "=":
		m.player.SetVolume(stepVolume(m.player.Volume(), 1))
	case "-", "_":
		m.player.SetVolume(stepVolume(m.player.Volume(), -1))
	case "1":
		m.selected = scene.KnobShu
	case "2":
		m.selected = scene.KnobPhi
	case "3":
		m.selected = scene.KnobTheta
	case "left", "h":
		m.scene.Knobs = m.scene.Knobs.Turn(m.selected, -1)
	case "right", "l":
		m.scene.Knobs = m.scene.Knobs.Turn(m.selected, 1)
	case "a":
		listening := !m.analyzer.Listening()
		m.analyzer.SetListening(listening)
		m.opts.log.Debug("listening toggled", "listening", listening)
		if !m.analyzerTicking {
			m.analyzerTicking = true
			return m, levelsTick()
		}
	case "s":
		m.stars = !m.stars
	case "d":
		return m, m.download()
	case "c":
		cmd := m.copyURL()
		return m, cmd
	case "r":
		m.showQR = !m.showQR
	case "R":
		m.player.Reshuffle()
		cmd := m.setFlash("Reshuffled")
		return m, cmd
	case "?":
		m.showHelp = true
	case "m", "tab":
		if m.mode == ModeCave {
			m.mode = ModeMusic
		} else {
			m.mode = ModeCave
		}
	case "esc":
		m.showQR = false
	}
	return m, nil
}

// handleMouse steers the lights. Events on the status panel and the help
// line never reach the scene.
func (m model) handleMouse(msg tea.MouseMsg) {
	if m.mode != ModeCave || m.onChrome(msg.Y) {
		return
	}
	p, ok := m.pick(msg.X, msg.Y)
	if !ok {
		return
	}
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.scene.Target.Move(p)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.scene.Target.Click(p)
		_, locked := m.scene.Target.Locked()
		m.opts.log.Debug("target lock toggled", "locked", locked, "x", p.X, "y", p.Y)
	}
}

func (m model) onChrome(row int) bool {
	return row < headerRows || row >= m.height-footerRows
}

func (m model) sceneRows() int {
	return max(m.height-headerRows-footerRows, 1)
}

// pick maps a terminal cell onto the plane the statue stands in. Cells are
// about twice as tall as they are wide.
func (m model) pick(x, y int) (scene.Vec3, bool) {
	if m.width <= 0 || m.height <= 0 {
		return scene.Vec3{}, false
	}
	rows := m.sceneRows()
	ndcX := (float64(x)+0.5)/float64(m.width)*2 - 1
	ndcY := 1 - (float64(y-headerRows)+0.5)/float64(rows)*2
	return scene.PickPlane(m.camera(), ndcX, ndcY, m.aspect(), scene.StatuePosition.Z)
}

func (m model) aspect() float64 {
	return float64(m.width) / float64(m.sceneRows()*2)
}

func (m model) camera() scene.Vec3 {
	if m.frame.Camera == (scene.Vec3{}) {
		return scene.IntroEnd
	}
	return m.frame.Camera
}

// advance moves the scene one frame and watches for track changes.
func (m *model) advance(now time.Time) tea.Cmd {
	if m.start.IsZero() {
		m.start = now
	}
	m.now = now

	if !m.sceneReady {
		m.sceneReady = true
		m.opts.log.Info("scene ready")
	}

	m.frame = m.scene.Frame(now.Sub(m.start), m.analyzer.Levels(), m.analyzer.Listening())
	if m.frame.IntroDone && !m.introDone {
		m.introDone = true
		m.opts.log.Info("intro complete")
	}

	status := m.player.Status()
	if status.State == jukebox.StatePlaying && status.TrackIndex != m.lastTrack {
		m.lastTrack = status.TrackIndex
		m.opts.log.Info("track started", "track", status.DisplayName, "cursor", status.Cursor)
		if m.opts.notify {
			return notifyCmd(status.DisplayName, m.opts.log)
		}
	}
	return nil
}

func notifyCmd(name string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if err := sendNotification("shuk", "Now playing: "+name); err != nil {
			log.Warn("notification failed", "error", err)
		}
		return nil
	}
}

func (m model) download() tea.Cmd {
	p, dir := m.player, m.opts.downloadDir
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		path, err := p.DownloadCurrent(ctx, dir)
		return downloadedMsg{path: path, err: err}
	}
}

func (m *model) copyURL() tea.Cmd {
	url := m.player.Status().URL
	if url == "" {
		return m.setFlash(jukebox.ErrNoTrack.Error())
	}
	if err := share.Copy(url); err != nil {
		m.opts.log.Warn("copy failed", "error", err)
		return m.setFlash("Copy failed: " + err.Error())
	}
	return m.setFlash("Copied " + url)
}

func (m *model) setFlash(text string) tea.Cmd {
	m.flashID++
	m.flash = text
	id := m.flashID
	return tea.Tick(flashFor, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

func (m model) qrCode() (string, error) {
	url := m.player.Status().URL
	if url == "" {
		return "", jukebox.ErrNoTrack
	}
	code, err := qr.Render(url, false)
	if err != nil {
		return "", fmt.Errorf("rendering qr code: %w", err)
	}
	return code, nil
}

func stepVolume(v float64, dir int) float64 {
	return math.Round((v+float64(dir)*volumeStep)*10) / 10
}
