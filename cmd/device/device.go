// Package device decides how much the host can take: whether to treat it as a
// small screen and whether to fall back to the cheap orbit and lighting.
package device

import (
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/shuk/cmd/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	// NarrowWidth is the column count below which a terminal counts as a
	// small screen.
	NarrowWidth = 80

	minCPUs   = 2
	minMemory = 2 << 30
)

// Profile describes what the scene should scale down for.
type Profile struct {
	Constrained    bool
	LowPerformance bool

	Width       int    // Terminal columns, 0 if unknown
	CPUs        int    // Logical CPUs, 0 if unknown
	TotalMemory uint64 // Bytes, 0 if unknown
}

// Probe reads host capacity. Fields may be replaced in tests.
type Probe struct {
	CPUs        func() (int, error)
	TotalMemory func() (uint64, error)
}

var hostProbe = Probe{
	CPUs: func() (int, error) {
		return cpu.Counts(true)
	},
	TotalMemory: func() (uint64, error) {
		v, err := mem.VirtualMemory()
		if err != nil {
			return 0, err
		}
		return v.Total, nil
	},
}

// Detect profiles this host for a terminal termWidth columns wide.
func Detect(termWidth int) Profile {
	return hostProbe.Detect(termWidth)
}

// Detect builds a profile. Anything that cannot be measured is assumed to be
// fine.
func (p Probe) Detect(termWidth int) Profile {
	prof := Profile{Width: termWidth}

	if p.CPUs != nil {
		if n, err := p.CPUs(); err == nil {
			prof.CPUs = n
		}
	}
	if p.TotalMemory != nil {
		if total, err := p.TotalMemory(); err == nil {
			prof.TotalMemory = total
		}
	}

	narrow := termWidth > 0 && termWidth < NarrowWidth
	fewCPUs := prof.CPUs > 0 && prof.CPUs <= minCPUs
	prof.Constrained = narrow || fewCPUs

	lowMem := prof.TotalMemory > 0 && prof.TotalMemory < minMemory
	prof.LowPerformance = prof.Constrained || lowMem
	return prof
}

// RenderingAvailable reports whether fd is a terminal the scene can draw on.
func RenderingAvailable(fd int) bool {
	return term.IsTerminal(fd)
}

// TerminalWidth returns the column count of fd, or 0 if it is not a terminal.
func TerminalWidth(fd int) int {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

type Params struct {
	Width int `short:"w" optional:"true" help:"Pretend the terminal is this wide (0 measures stdout)." default:"0"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "device",
		Short: "Show how the cave will scale itself on this machine",
		Long: `Show the device profile the cave uses.

Narrow terminals and hosts with two or fewer CPUs are treated as constrained:
lights and the statue glow are dimmed. Constrained hosts and hosts with less
than 2 GiB of memory use the simplified orbit.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			width := params.Width
			if width <= 0 {
				width = TerminalWidth(int(os.Stdout.Fd()))
			}
			Print(os.Stdout, Detect(width), RenderingAvailable(int(os.Stdout.Fd())))
		},
	}.ToCobra()
}

// Print writes the profile as a table.
func Print(out io.Writer, p Profile, rendering bool) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Property", "Value"})
	t.AppendRows([]table.Row{
		{"Terminal width", orUnknown(p.Width, fmt.Sprintf("%d cols", p.Width))},
		{"Logical CPUs", orUnknown(p.CPUs, fmt.Sprintf("%d", p.CPUs))},
		{"Total memory", orUnknown(int(p.TotalMemory>>20), fmt.Sprintf("%.1f GiB", float64(p.TotalMemory)/(1<<30)))},
		{"Constrained", p.Constrained},
		{"Low performance", p.LowPerformance},
		{"Rendering", rendering},
	})
	t.Render()
}

func orUnknown(v int, s string) string {
	if v <= 0 {
		return "unknown"
	}
	return s
}
