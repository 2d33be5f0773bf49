package share

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gigurra/shuk/cmd/catalog"
)

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	old := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return err
	}
	t.Cleanup(func() { clipboardWriteAll = old })
	return &copied
}

func TestRunPrintsURL(t *testing.T) {
	var buf bytes.Buffer
	err := Run(context.Background(), &Params{Index: 0, BaseURL: catalog.DefaultBaseURL}, &buf)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := catalog.DefaultBaseURL + catalog.Tracks[0]
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected %q in output, got %q", want, buf.String())
	}
	if !strings.HasPrefix(buf.String(), catalog.DisplayName(catalog.Tracks[0])) {
		t.Errorf("expected display name first, got %q", buf.String())
	}
}

func TestRunCopies(t *testing.T) {
	copied := stubClipboard(t, nil)

	var buf bytes.Buffer
	if err := Run(context.Background(), &Params{Index: 3, Copy: true, BaseURL: "https://cdn.example/"}, &buf); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if want := "https://cdn.example/" + catalog.Tracks[3]; *copied != want {
		t.Errorf("copied %q, want %q", *copied, want)
	}
}

func TestRunCopyFailure(t *testing.T) {
	stubClipboard(t, errors.New("no clipboard"))

	err := Run(context.Background(), &Params{Index: 0, Copy: true}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "no clipboard") {
		t.Errorf("expected clipboard error, got %v", err)
	}
}

func TestRunQR(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), &Params{Index: 1, QR: true, RecoveryLevel: "low"}, &buf); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\033[40m") {
		t.Error("expected ANSI blocks in output")
	}
}

func TestRunIndexOutOfRange(t *testing.T) {
	err := Run(context.Background(), &Params{Index: len(catalog.Tracks)}, &bytes.Buffer{})
	if !errors.Is(err, catalog.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestRunSeededPickIsStable(t *testing.T) {
	var a, b bytes.Buffer
	if err := Run(context.Background(), &Params{Index: -1, Seed: 7}, &a); err != nil {
		t.Fatal(err)
	}
	if err := Run(context.Background(), &Params{Index: -1, Seed: 7}, &b); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same seed should pick the same track")
	}
}

func TestRunOpens(t *testing.T) {
	old := openURL
	t.Cleanup(func() { openURL = old })

	var opened string
	openURL = func(_ context.Context, url string) error {
		opened = url
		return nil
	}
	if err := Run(context.Background(), &Params{Index: 2, Open: true, BaseURL: "https://cdn.example/"}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if opened != "https://cdn.example/"+catalog.Tracks[2] {
		t.Errorf("opened %q", opened)
	}

	openURL = func(context.Context, string) error { return errors.New("no browser") }
	if err := Run(context.Background(), &Params{Index: 2, Open: true}, &bytes.Buffer{}); err == nil {
		t.Error("expected the open failure to surface")
	}
}
