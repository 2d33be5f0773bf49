package qr

import (
	"strings"
	"testing"

	"github.com/skip2/go-qrcode"
)

func TestRender(t *testing.T) {
	out, err := Render("https://rangatracks.b-cdn.net/Ikea.mp3", false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, black) || !strings.Contains(out, white) {
		t.Error("expected both dark and light modules")
	}

	size, err := Size("https://rangatracks.b-cdn.net/Ikea.mp3")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != size {
		t.Errorf("expected %d rows, got %d", size, len(lines))
	}
}

func TestRenderInvert(t *testing.T) {
	normal, err := Render("shuk", false)
	if err != nil {
		t.Fatal(err)
	}
	inverted, err := Render("shuk", true)
	if err != nil {
		t.Fatal(err)
	}
	if normal == inverted {
		t.Error("inverting should change the output")
	}
	// The quiet zone is paper: light normally, dark when inverted.
	if !strings.HasPrefix(normal, white) || !strings.HasPrefix(inverted, black) {
		t.Error("unexpected quiet zone colors")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]qrcode.RecoveryLevel{
		"low":     qrcode.Low,
		"M":       qrcode.Medium,
		"q":       qrcode.High,
		"highest": qrcode.Highest,
		"bogus":   qrcode.Medium,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
