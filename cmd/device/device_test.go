package device

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func fixedProbe(cpus int, memory uint64) Probe {
	return Probe{
		CPUs:        func() (int, error) { return cpus, nil },
		TotalMemory: func() (uint64, error) { return memory, nil },
	}
}

func TestDetect(t *testing.T) {
	const gib = 1 << 30
	tests := []struct {
		name            string
		probe           Probe
		width           int
		wantConstrained bool
		wantLowPerf     bool
	}{
		{"roomy desktop", fixedProbe(8, 16*gib), 120, false, false},
		{"narrow terminal", fixedProbe(8, 16*gib), 60, true, true},
		{"two cpus", fixedProbe(2, 16*gib), 120, true, true},
		{"little memory", fixedProbe(8, gib), 120, false, true},
		{"unknown width", fixedProbe(8, 16*gib), 0, false, false},
		{"exactly the threshold", fixedProbe(8, 16*gib), NarrowWidth, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.probe.Detect(tt.width)
			if p.Constrained != tt.wantConstrained {
				t.Errorf("Constrained = %v, want %v", p.Constrained, tt.wantConstrained)
			}
			if p.LowPerformance != tt.wantLowPerf {
				t.Errorf("LowPerformance = %v, want %v", p.LowPerformance, tt.wantLowPerf)
			}
		})
	}
}

func TestDetectIgnoresProbeErrors(t *testing.T) {
	p := Probe{
		CPUs:        func() (int, error) { return 0, errors.New("no cpu info") },
		TotalMemory: func() (uint64, error) { return 0, errors.New("no mem info") },
	}.Detect(100)
	if p.Constrained || p.LowPerformance {
		t.Errorf("unmeasurable host should not be scaled down: %+v", p)
	}
}

func TestDetectHost(t *testing.T) {
	p := Detect(200)
	if p.Width != 200 {
		t.Errorf("expected width to be recorded, got %d", p.Width)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, Profile{Constrained: true, Width: 70, CPUs: 4, TotalMemory: 8 << 30}, false)
	out := buf.String()
	for _, want := range []string{"70 cols", "8.0 GiB", "Constrained", "true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCmd(t *testing.T) {
	if cmd := Cmd(); cmd.Use != "device" {
		t.Errorf("unexpected use %q", cmd.Use)
	}
}
