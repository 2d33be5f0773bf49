package cave

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/shuk/cmd/common"
	"github.com/gigurra/shuk/cmd/jukebox"
	"github.com/gigurra/shuk/cmd/scene"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")) // Orange
	trackStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	flashStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
)

const (
	starColor   = "#5a5a6e"
	targetColor = "#9a9a9a"
	lockColor   = "#ff8000"
)

// Statue shading from dim to bright.
var shades = []rune(" .:-=+*#%@")

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	rows := m.sceneRows()
	switch {
	case m.showQR:
		b.WriteString(m.renderQR(rows))
	case m.mode == ModeCave:
		b.WriteString(m.renderScene(rows))
	default:
		b.WriteString(m.renderMusic(rows))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(common.TruncateWithEllipsis(
		"space play • n next • +/- volume • 1-3 knob • ←/→ turn • a listen • m mode • ? help • q quit", m.width)))
	return b.String()
}

func stateIcon(s jukebox.PlaybackState) string {
	switch s {
	case jukebox.StatePlaying:
		return "▶"
	case jukebox.StateLoading:
		return "…"
	case jukebox.StatePaused:
		return "⏸"
	case jukebox.StateErrored:
		return "✖"
	default:
		return "■"
	}
}

func volumeBar(v float64, width int) string {
	filled := int(math.Round(v * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// renderHeader is the three row status panel.
func (m model) renderHeader() string {
	status := m.player.Status()

	// Row 1: title and track
	title := titleStyle.Render("shuk") + dimStyle.Render(" ["+m.mode.String()+"] ")
	name := common.TruncateWithEllipsis(status.DisplayName, max(m.width-lipgloss.Width(title)-2, 1))
	row1 := title + trackStyle.Render(name)

	// Row 2: playback
	row2 := fmt.Sprintf("%s %-8s vol %s %3.0f%%", stateIcon(status.State), status.State, volumeBar(status.Volume, 10), status.Volume*100)
	if status.OrderLength > 0 {
		row2 += dimStyle.Render(fmt.Sprintf("  %d/%d", status.Cursor+1, status.OrderLength))
	}
	if status.Tripped {
		row2 += warnStyle.Render("  too many failures, press space to retry")
	} else if status.Failures > 0 {
		row2 += warnStyle.Render(fmt.Sprintf("  %d failed", status.Failures))
	}
	if m.flash != "" {
		row2 += "  " + flashStyle.Render(m.flash)
	}

	// Row 3: knobs and listening
	k := m.scene.Knobs
	knob := func(which scene.Knob, label string) string {
		text := fmt.Sprintf("[%d] %s %.1f", int(which)+1, label, k.Value(which))
		if which == m.selected {
			return selectedStyle.Render(text)
		}
		if which == scene.KnobTheta {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(scene.ThetaColor(k.Theta).Hex())).Render(text)
		}
		return text
	}
	listen := "off"
	if m.analyzer.Listening() {
		listen = "on " + volumeBar(m.analyzer.Levels().Volume, 8)
	}
	row3 := strings.Join([]string{
		knob(scene.KnobShu, "Shu"),
		knob(scene.KnobPhi, "Phi"),
		knob(scene.KnobTheta, "Theta"),
		dimStyle.Render("listening " + listen),
	}, "  ")

	fit := lipgloss.NewStyle().MaxWidth(m.width)
	return strings.Join([]string{
		fit.Render(row1),
		fit.Render(row2),
		fit.Render(row3),
	}, "\n")
}

// cell is one terminal character with an optional color.
type cell struct {
	ch    rune
	color string
}

type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		c.cells[y] = make([]cell, w)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: ' '}
		}
	}
	return c
}

func (c *canvas) set(x, y int, ch rune, color string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{ch: ch, color: color}
}

// String renders each row, styling runs of the same color together.
func (c *canvas) String() string {
	styles := map[string]lipgloss.Style{}
	lines := make([]string, c.h)
	for y, row := range c.cells {
		var line strings.Builder
		var run []rune
		color := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if color == "" {
				line.WriteString(string(run))
			} else {
				st, ok := styles[color]
				if !ok {
					st = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
					styles[color] = st
				}
				line.WriteString(st.Render(string(run)))
			}
			run = run[:0]
		}
		for _, cl := range row {
			if cl.color != color {
				flush()
				color = cl.color
			}
			run = append(run, cl.ch)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

// renderScene rasterizes the current frame into rows lines.
func (m model) renderScene(rows int) string {
	c := newCanvas(m.width, rows)
	aspect := m.aspect()
	f := m.frame

	toCell := func(p scene.Vec3) (int, int, bool) {
		x, y, ok := scene.Project(f.Camera, p, aspect)
		if !ok {
			return 0, 0, false
		}
		col := int(math.Floor((x + 1) / 2 * float64(m.width)))
		row := int(math.Floor((1 - y) / 2 * float64(rows)))
		return col, row, true
	}

	if m.stars {
		drawStars(c, m.elapsed())
	}

	if !f.IntroDone {
		progress := math.Min(float64(m.elapsed())/float64(scene.IntroDuration), 1)
		msg := fmt.Sprintf("descending into the cave %3.0f%%", progress*100)
		y := rows / 2
		for i, r := range []rune(common.Center(msg, m.width)) {
			if r != ' ' {
				c.set(i, y, r, targetColor)
			}
		}
		return c.String()
	}

	if x, y, ok := toCell(scene.StatuePosition); ok {
		drawStatue(c, x, y, f, m.elapsed())
	}

	if x, y, ok := toCell(f.Target); ok {
		if _, locked := m.scene.Target.Locked(); locked {
			c.set(x, y, '◎', lockColor)
		} else {
			c.set(x, y, '+', targetColor)
		}
	}

	for _, l := range f.Lights {
		x, y, ok := toCell(l.Position)
		if !ok {
			continue
		}
		drawLight(c, x, y, l)
	}
	return c.String()
}

func (m model) elapsed() time.Duration {
	if m.start.IsZero() {
		return 0
	}
	return m.now.Sub(m.start)
}

func drawStars(c *canvas, t time.Duration) {
	twinkle := int(t / (700 * time.Millisecond))
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			h := uint32(x)*73856093 ^ uint32(y)*19349663
			if h%61 != 0 {
				continue
			}
			ch := '·'
			if (int(h>>8)+twinkle)%7 == 0 {
				ch = '*'
			}
			c.set(x, y, ch, starColor)
		}
	}
}

// drawStatue paints a shaded ellipse. Scale breathes it, bulge widens it,
// wave sways its rows and noise roughens the shading.
func drawStatue(c *canvas, cx, cy int, f scene.Frame, t time.Duration) {
	secs := t.Seconds()
	rx := 7 * f.Scale * (1 + f.Effects.Bulge*0.04)
	ry := 4 * f.Scale * (1 + f.Effects.Morph*0.02)
	brightness := math.Min(1, 0.25+f.Glow/9+f.Emission*0.1)
	color := stoneColor(brightness)

	for dy := -int(ry) - 1; dy <= int(ry)+1; dy++ {
		sway := math.Sin(float64(dy)*0.8+secs*2) * f.Effects.Wave
		for dx := -int(rx) - 2; dx <= int(rx)+2; dx++ {
			nx := (float64(dx) - sway) / rx
			ny := float64(dy) / ry
			d := nx*nx + ny*ny
			if d > 1 {
				continue
			}
			shade := (1 - d) * brightness
			if f.Effects.Noise > 0 {
				h := uint32(cx+dx)*2654435761 ^ uint32(cy+dy)*40503 ^ uint32(secs*4)
				shade += (float64(h%100)/100 - 0.5) * 0.2 * f.Effects.Noise
			}
			idx := int(math.Round(shade * float64(len(shades)-1)))
			idx = max(1, min(idx, len(shades)-1))
			c.set(cx+dx, cy+dy, shades[idx], color)
		}
	}
}

func stoneColor(brightness float64) string {
	base := scene.RGB{R: 200, G: 168, B: 120}
	return scene.RGB{
		R: uint8(float64(base.R) * brightness),
		G: uint8(float64(base.G) * brightness),
		B: uint8(float64(base.B) * brightness),
	}.Hex()
}

func drawLight(c *canvas, x, y int, l scene.Light) {
	color := l.Color.Hex()
	halo := int(math.Round(l.Intensity * 0.8))
	for dy := -halo; dy <= halo; dy++ {
		for dx := -halo * 2; dx <= halo*2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := float64(dx*dx)/4 + float64(dy*dy)
			if d > float64(halo*halo) {
				continue
			}
			c.set(x+dx, y+dy, '·', color)
		}
	}
	c.set(x, y, '●', color)
}

// renderMusic is the player-only view.
func (m model) renderMusic(rows int) string {
	status := m.player.Status()
	lines := make([]string, rows)
	mid := rows / 2

	put := func(row int, s string) {
		if row >= 0 && row < rows {
			lines[row] = s
		}
	}
	put(mid-2, trackStyle.Render(common.Center(status.DisplayName, m.width)))
	put(mid, common.Center(fmt.Sprintf("%s  %s", stateIcon(status.State), status.State), m.width))
	put(mid+1, dimStyle.Render(common.Center("volume "+volumeBar(status.Volume, 20), m.width)))
	if m.analyzer.Listening() {
		put(mid+3, titleStyle.Render(common.Center(volumeBar(m.analyzer.Levels().Volume, 30), m.width)))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderQR(rows int) string {
	code, err := m.qrCode()
	if err != nil {
		return warnStyle.Render(common.Center(err.Error(), m.width)) + strings.Repeat("\n", max(rows-1, 0))
	}
	lines := strings.Split(strings.TrimSuffix(code, "\n"), "\n")
	if len(lines) > rows || lipgloss.Width(lines[0]) > m.width {
		msg := "terminal too small for the QR code, press r to close"
		return warnStyle.Render(common.Center(msg, m.width)) + strings.Repeat("\n", max(rows-1, 0))
	}
	pad := (m.width - lipgloss.Width(lines[0])) / 2
	out := make([]string, rows)
	for i, l := range lines {
		out[i] = strings.Repeat(" ", pad) + l
	}
	return strings.Join(out, "\n")
}

func (m model) renderHelp() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  shuk - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("  Playback"))
	b.WriteString("\n")
	b.WriteString("    space     Play / pause\n")
	b.WriteString("    n         Next track\n")
	b.WriteString("    + / -     Volume up / down\n")
	b.WriteString("    d         Save the current track\n")
	b.WriteString("    c         Copy the track address\n")
	b.WriteString("    r         Show the track address as a QR code\n")
	b.WriteString("    R         Reshuffle the play order\n")
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("  Cave"))
	b.WriteString("\n")
	b.WriteString("    1 2 3     Select Shu (lights), Phi (orbit, distortion) or Theta (morph)\n")
	b.WriteString("    ←/→ h/l   Turn the selected knob\n")
	b.WriteString("    a         Toggle listening\n")
	b.WriteString("    s         Toggle stars\n")
	b.WriteString("    mouse     Lights follow the pointer, click to pin, click again to release\n")
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("  General"))
	b.WriteString("\n")
	b.WriteString("    m         Switch between cave and music mode\n")
	b.WriteString("    ?         This help\n")
	b.WriteString("    q         Quit\n")
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("  Press any key to close"))
	b.WriteString("\n")
	return b.String()
}
