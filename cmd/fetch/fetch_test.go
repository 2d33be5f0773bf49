package fetch

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestCmd(t *testing.T) {
	cmd := Cmd()
	if cmd == nil {
		t.Fatal("Cmd returned nil")
	}
	if cmd.Name() != "download" {
		t.Errorf("expected Name()='download', got '%s'", cmd.Name())
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.expected {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.expected)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("01 Chibz & Ranga - Box Of Love"); got != "01 Chibz & Ranga - Box Of Love.mp3" {
		t.Errorf("FileName = %q", got)
	}
	// Names must not escape the target directory.
	if got := FileName("../../etc/passwd"); got != "passwd.mp3" {
		t.Errorf("FileName with path = %q", got)
	}
}

func TestGetAndBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("unexpected User-Agent %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte("ID3 fake mp3"))
	}))
	defer server.Close()

	client := Client(5 * time.Second)

	var buf bytes.Buffer
	n, err := Get(context.Background(), client, server.URL+"/a.mp3", &buf)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if n != int64(len("ID3 fake mp3")) || buf.String() != "ID3 fake mp3" {
		t.Errorf("Get wrote %d bytes: %q", n, buf.String())
	}

	data, err := Bytes(context.Background(), client, server.URL+"/a.mp3")
	if err != nil {
		t.Fatalf("Bytes returned error: %v", err)
	}
	if string(data) != "ID3 fake mp3" {
		t.Errorf("Bytes = %q", data)
	}
}

func TestGetStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Bytes(context.Background(), Client(time.Second), server.URL)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusNotFound {
		t.Errorf("StatusError.Code = %d", se.Code)
	}
}

func TestToFileDoesNotRetryNotFound(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "track.mp3")
	if _, err := ToFile(context.Background(), Client(time.Second), server.URL, dest, 3); err == nil {
		t.Fatal("expected error for 404")
	}
	if hits.Load() != 1 {
		t.Errorf("404 was requested %d times, want 1", hits.Load())
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("failed download left a file behind")
	}
	entries, _ := os.ReadDir(filepath.Dir(dest))
	if len(entries) != 0 {
		t.Errorf("temp files left behind: %d", len(entries))
	}
}

func TestToFileRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "nested", "track.mp3")
	n, err := ToFile(context.Background(), Client(time.Second), server.URL, dest, 2)
	if err != nil {
		t.Fatalf("ToFile returned error: %v", err)
	}
	if n != 7 {
		t.Errorf("ToFile wrote %d bytes, want 7", n)
	}
	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "payload" {
		t.Errorf("file content = %q, %v", data, err)
	}
}

func TestRunSavesTrackByIndex(t *testing.T) {
	var gotPath atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.EscapedPath())
		w.Write([]byte("mp3"))
	}))
	defer server.Close()

	dir := t.TempDir()
	path, err := Run(context.Background(), &Params{
		Index:   2,
		Dir:     dir,
		Timeout: 5,
		Retries: 1,
		BaseURL: server.URL + "/",
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if want := filepath.Join(dir, "01 Chibz & Ranga - Box Of Love.mp3"); path != want {
		t.Errorf("Run saved to %q, want %q", path, want)
	}
	seen, _ := gotPath.Load().(string)
	if !strings.Contains(seen, "01%20Chibz%20%26%20Ranga") {
		t.Errorf("server saw path %q; reference must be sent as encoded", seen)
	}
}
