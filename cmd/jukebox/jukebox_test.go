package jukebox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/gigurra/shuk/cmd/catalog"
)

// fakeSurface records what the engine asked for. Tests fire the callbacks by
// hand, which keeps every scenario deterministic.
type fakeSurface struct {
	mu       sync.Mutex
	loads    []fakeLoad
	plays    []func(error)
	pauses   int
	volumes  []float64
	released int
	loadErr  error
}

type fakeLoad struct {
	url    string
	volume float64
	events SurfaceEvents
}

func (f *fakeSurface) Load(url string, volume float64, events SurfaceEvents) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads = append(f.loads, fakeLoad{url: url, volume: volume, events: events})
	return f.loadErr
}

func (f *fakeSurface) Play(onResult func(error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays = append(f.plays, onResult)
}

func (f *fakeSurface) Pause() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pauses++
}

func (f *fakeSurface) SetVolume(volume float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volumes = append(f.volumes, volume)
}

func (f *fakeSurface) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released++
}

func (f *fakeSurface) lastLoad(t *testing.T) fakeLoad {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.loads) == 0 {
		t.Fatal("nothing was loaded")
	}
	return f.loads[len(f.loads)-1]
}

func (f *fakeSurface) lastPlay(t *testing.T) func(error) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.plays) == 0 {
		t.Fatal("play was never requested")
	}
	return f.plays[len(f.plays)-1]
}

func (f *fakeSurface) loadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.loads)
}

func (f *fakeSurface) playCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.plays)
}

func testCatalog(n int) *catalog.Catalog {
	refs := make([]string, n)
	for i := range refs {
		refs[i] = fmt.Sprintf("Track%%20%d.mp3", i)
	}
	return catalog.New("https://tracks.example/", refs)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(n int, opts ...Option) (*Engine, *fakeSurface) {
	surface := &fakeSurface{}
	opts = append([]Option{WithRand(rand.New(rand.NewSource(42))), WithLogger(quietLogger())}, opts...)
	return New(testCatalog(n), surface, opts...), surface
}

// startPlaying initializes, requests play and confirms the start.
func startPlaying(t *testing.T, e *Engine, s *fakeSurface) {
	t.Helper()
	e.Initialize()
	if err := e.Play(); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	s.lastPlay(t)(nil)
	if got := e.Status().State; got != StatePlaying {
		t.Fatalf("expected playing, got %s", got)
	}
}

func TestInitializeProducesPermutation(t *testing.T) {
	for n := 1; n <= 50; n++ {
		e, s := newTestEngine(n)
		e.Initialize()

		order := e.Order()
		if len(order) != n {
			t.Fatalf("n=%d: order has %d entries", n, len(order))
		}
		sorted := append([]int(nil), order...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if v != i {
				t.Fatalf("n=%d: order %v is not a permutation", n, order)
			}
		}

		info := e.Status()
		if info.Cursor != 0 || info.State != StateIdle {
			t.Errorf("n=%d: expected cursor 0 and idle, got %d %s", n, info.Cursor, info.State)
		}
		if s.loadCount() != 1 || s.playCount() != 0 {
			t.Errorf("n=%d: expected one load and no play, got %d loads %d plays", n, s.loadCount(), s.playCount())
		}
	}
}

func TestResolveCurrentURLFollowsOrder(t *testing.T) {
	e, s := newTestEngine(10)
	e.Initialize()

	url, ok := e.ResolveCurrentURL()
	if !ok {
		t.Fatal("expected a current url")
	}
	want := fmt.Sprintf("https://tracks.example/Track%%20%d.mp3", e.Order()[0])
	if url != want {
		t.Errorf("expected %q, got %q", want, url)
	}
	if got := s.lastLoad(t).url; got != want {
		t.Errorf("surface loaded %q, want %q", got, want)
	}
	if got := e.CurrentDisplayName(); got != fmt.Sprintf("Track %d", e.Order()[0]) {
		t.Errorf("unexpected display name %q", got)
	}
}

func TestSkipNextWrapsAround(t *testing.T) {
	const n = 7
	e, _ := newTestEngine(n)
	e.Initialize()
	orderBefore := e.Order()

	seen := map[int]bool{}
	for i := 0; i < n; i++ {
		seen[e.Status().TrackIndex] = true
		e.SkipNext()
	}
	if got := e.Status().Cursor; got != 0 {
		t.Errorf("expected cursor back at 0 after %d skips, got %d", n, got)
	}
	if len(seen) != n {
		t.Errorf("expected to visit all %d tracks, visited %d", n, len(seen))
	}
	if fmt.Sprint(e.Order()) != fmt.Sprint(orderBefore) {
		t.Error("wrapping must not reshuffle")
	}
}

func TestSkipNextKeepsPlayIntent(t *testing.T) {
	e, s := newTestEngine(5)
	e.Initialize()

	e.SkipNext()
	if s.playCount() != 0 {
		t.Error("skip while idle must not start playback")
	}

	startPlaying(t, e, s)
	plays := s.playCount()
	e.SkipNext()
	if s.playCount() != plays+1 {
		t.Error("skip while playing must request play of the next track")
	}
	if got := e.Status().State; got != StateLoading {
		t.Errorf("expected loading, got %s", got)
	}
}

func TestNaturalEndAdvancesAndPlays(t *testing.T) {
	e, s := newTestEngine(5)
	startPlaying(t, e, s)
	first := e.Status().TrackIndex

	s.lastLoad(t).events.Ended()

	info := e.Status()
	if info.Cursor != 1 {
		t.Errorf("expected cursor 1, got %d", info.Cursor)
	}
	if info.TrackIndex == first {
		t.Error("expected a different track after the end")
	}
	if info.State != StateLoading {
		t.Errorf("expected loading, got %s", info.State)
	}
	s.lastPlay(t)(nil)
	if got := e.Status().State; got != StatePlaying {
		t.Errorf("expected playing, got %s", got)
	}
}

func TestPlaybackErrorSkipsToDifferentTrack(t *testing.T) {
	e, s := newTestEngine(5)
	startPlaying(t, e, s)
	first := e.Status().TrackIndex

	s.lastLoad(t).events.Failed(errors.New("decode failed"))

	info := e.Status()
	if info.TrackIndex == first || info.Cursor != 1 {
		t.Errorf("expected to move past the failed track, got cursor %d track %d", info.Cursor, info.TrackIndex)
	}
	if info.Failures != 1 {
		t.Errorf("expected 1 failure, got %d", info.Failures)
	}
	s.lastPlay(t)(nil)
	if got := e.Status().Failures; got != 0 {
		t.Errorf("a good start must reset failures, got %d", got)
	}
}

func TestOnNaturalEndAndOnPlaybackError(t *testing.T) {
	e, s := newTestEngine(4)
	startPlaying(t, e, s)

	e.OnNaturalEnd()
	if got := e.Status().Cursor; got != 1 {
		t.Errorf("expected cursor 1, got %d", got)
	}
	e.OnPlaybackError()
	if got := e.Status().Cursor; got != 2 {
		t.Errorf("expected cursor 2, got %d", got)
	}
}

func TestVolumeIsClamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.5, 1},
		{-0.2, 0},
		{0.35, 0.35},
	}
	for _, tt := range tests {
		e, s := newTestEngine(3)
		e.Initialize()
		e.SetVolume(tt.in)
		if got := e.Volume(); got != tt.want {
			t.Errorf("SetVolume(%v): got %v, want %v", tt.in, got, tt.want)
		}
		if got := s.volumes[len(s.volumes)-1]; got != tt.want {
			t.Errorf("SetVolume(%v): surface got %v", tt.in, got)
		}

		// Later loads carry the same volume.
		e.SkipNext()
		if got := s.lastLoad(t).volume; got != tt.want {
			t.Errorf("SetVolume(%v): next load got %v", tt.in, got)
		}
	}
}

func TestDefaultVolume(t *testing.T) {
	e, _ := newTestEngine(1)
	if got := e.Volume(); got != DefaultVolume {
		t.Errorf("expected %v, got %v", DefaultVolume, got)
	}
}

func TestStalePlayResultIsIgnored(t *testing.T) {
	e, s := newTestEngine(5)
	e.Initialize()
	if err := e.Play(); err != nil {
		t.Fatal(err)
	}
	stale := s.lastPlay(t)

	e.SkipNext()
	stale(errors.New("aborted"))

	info := e.Status()
	if info.State != StateLoading {
		t.Errorf("stale rejection changed state to %s", info.State)
	}
	if info.Cursor != 1 {
		t.Errorf("stale rejection moved cursor to %d", info.Cursor)
	}
}

func TestStaleEndedEventIsIgnored(t *testing.T) {
	e, s := newTestEngine(5)
	startPlaying(t, e, s)
	stale := s.lastLoad(t).events

	e.SkipNext()
	stale.Ended()
	stale.Failed(errors.New("late"))

	info := e.Status()
	if info.Cursor != 1 {
		t.Errorf("stale events moved cursor to %d", info.Cursor)
	}
	if info.Failures != 0 {
		t.Errorf("stale failure was counted: %d", info.Failures)
	}
}

func TestRejectedStartLeavesCursor(t *testing.T) {
	e, s := newTestEngine(5)
	e.Initialize()
	if err := e.Play(); err != nil {
		t.Fatal(err)
	}
	s.lastPlay(t)(errors.New("not allowed"))

	info := e.Status()
	if info.State != StateErrored {
		t.Errorf("expected errored, got %s", info.State)
	}
	if info.Cursor != 0 {
		t.Errorf("rejected start must not advance, cursor %d", info.Cursor)
	}

	// Listener retries.
	if err := e.Play(); err != nil {
		t.Fatal(err)
	}
	s.lastPlay(t)(nil)
	if got := e.Status().State; got != StatePlaying {
		t.Errorf("expected playing after retry, got %s", got)
	}
}

func TestFailureBudgetTrips(t *testing.T) {
	e, s := newTestEngine(10, WithMaxConsecutiveFailures(3))
	startPlaying(t, e, s)

	for i := 0; i < 3; i++ {
		s.lastLoad(t).events.Failed(errors.New("broken"))
	}

	info := e.Status()
	if !info.Tripped {
		t.Fatal("expected the failure budget to trip")
	}
	if info.State != StateErrored {
		t.Errorf("expected errored, got %s", info.State)
	}
	if info.Cursor != 2 {
		t.Errorf("expected to stop on the third failing track, cursor %d", info.Cursor)
	}

	loads := s.loadCount()
	if err := e.Play(); err != nil {
		t.Fatal(err)
	}
	if s.loadCount() != loads+1 {
		t.Error("play after tripping should reload the current track")
	}
	if e.Status().Tripped {
		t.Error("explicit play should reset the breaker")
	}
}

func TestFailureBudgetDefaultsToOnePass(t *testing.T) {
	const n = 4
	e, s := newTestEngine(n)
	startPlaying(t, e, s)

	for i := 0; i < n; i++ {
		if e.Status().Tripped {
			t.Fatalf("tripped early after %d failures", i)
		}
		s.lastLoad(t).events.Failed(errors.New("broken"))
	}
	if !e.Status().Tripped {
		t.Error("expected to trip after every track failed once")
	}
}

func TestLoadErrorIsReportedAsFailure(t *testing.T) {
	surface := &fakeSurface{loadErr: errors.New("bad url")}
	changes := make(chan PlaybackInfo, 16)
	e := New(testCatalog(3), surface,
		WithLogger(quietLogger()),
		WithMaxConsecutiveFailures(1),
		WithOnChange(func(info PlaybackInfo) { changes <- info }),
	)
	e.Initialize()

	for info := range changes {
		if info.Failures > 0 || info.Tripped {
			return
		}
	}
}

func TestEmptyCatalog(t *testing.T) {
	e, s := newTestEngine(0)
	e.Initialize()

	if _, ok := e.ResolveCurrentURL(); ok {
		t.Error("expected no url for an empty catalog")
	}
	if got := e.CurrentDisplayName(); got != catalog.LoadingName {
		t.Errorf("expected %q, got %q", catalog.LoadingName, got)
	}
	if err := e.Play(); err != nil {
		t.Errorf("play on empty catalog should be a no-op, got %v", err)
	}
	e.SkipNext()
	e.OnNaturalEnd()
	e.OnPlaybackError()
	e.Reshuffle()

	if s.loadCount() != 0 || s.playCount() != 0 {
		t.Error("empty catalog must not touch the surface")
	}
	if got := e.Status().TrackIndex; got != -1 {
		t.Errorf("expected track index -1, got %d", got)
	}
}

func TestNameBeforeInitialize(t *testing.T) {
	e, _ := newTestEngine(3)
	if got := e.CurrentDisplayName(); got != catalog.LoadingName {
		t.Errorf("expected %q, got %q", catalog.LoadingName, got)
	}
}

func TestPauseDropsPendingPlay(t *testing.T) {
	e, s := newTestEngine(3)
	e.Initialize()
	if err := e.Play(); err != nil {
		t.Fatal(err)
	}
	pending := s.lastPlay(t)

	e.Pause()
	pending(nil)

	if got := e.Status().State; got != StatePaused {
		t.Errorf("late play result overrode pause, state %s", got)
	}
	if s.pauses != 1 {
		t.Errorf("expected surface pause, got %d", s.pauses)
	}
}

func TestTogglePlayPause(t *testing.T) {
	e, s := newTestEngine(3)
	e.Initialize()

	if err := e.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	s.lastPlay(t)(nil)
	if got := e.Status().State; got != StatePlaying {
		t.Fatalf("expected playing, got %s", got)
	}
	if err := e.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	if got := e.Status().State; got != StatePaused {
		t.Fatalf("expected paused, got %s", got)
	}
	loads := s.loadCount()
	if err := e.TogglePlayPause(); err != nil {
		t.Fatal(err)
	}
	if s.loadCount() != loads {
		t.Error("resuming must not reload the track")
	}
}

func TestReshuffleRestartsOrder(t *testing.T) {
	e, s := newTestEngine(20)
	startPlaying(t, e, s)
	e.SkipNext()
	e.SkipNext()
	before := e.Order()

	e.Reshuffle()

	info := e.Status()
	if info.Cursor != 0 {
		t.Errorf("expected cursor 0, got %d", info.Cursor)
	}
	if info.State != StateLoading {
		t.Errorf("expected playback to continue, got %s", info.State)
	}
	if fmt.Sprint(before) == fmt.Sprint(e.Order()) {
		t.Error("expected a new order")
	}
}

func TestCloseReleasesSurface(t *testing.T) {
	e, s := newTestEngine(3)
	startPlaying(t, e, s)
	events := s.lastLoad(t).events

	e.Close()
	e.Close()

	if s.released != 1 {
		t.Errorf("expected one release, got %d", s.released)
	}
	events.Ended()
	if got := e.Status().Cursor; got != 0 {
		t.Errorf("events after close moved cursor to %d", got)
	}
	if err := e.Play(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestOnChangeIsNotified(t *testing.T) {
	var states []PlaybackState
	e, s := newTestEngine(3, WithOnChange(func(info PlaybackInfo) {
		states = append(states, info.State)
	}))
	e.Initialize()
	_ = e.Play()
	s.lastPlay(t)(nil)

	want := []PlaybackState{StateIdle, StateLoading, StatePlaying}
	if fmt.Sprint(states) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, states)
	}
}

func TestDownloadCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ID3 fake mp3"))
	}))
	defer server.Close()

	refs := []string{"Some%20Song%20(Live).mp3"}
	e := New(catalog.New(server.URL+"/", refs), &fakeSurface{},
		WithLogger(quietLogger()),
		WithHTTPClient(server.Client()),
	)

	if _, err := e.DownloadCurrent(context.Background(), t.TempDir()); !errors.Is(err, ErrNoTrack) {
		t.Errorf("expected ErrNoTrack before initialize, got %v", err)
	}

	e.Initialize()
	dir := t.TempDir()
	path, err := e.DownloadCurrent(context.Background(), dir)
	if err != nil {
		t.Fatalf("DownloadCurrent failed: %v", err)
	}
	if want := filepath.Join(dir, "Some Song (Live).mp3"); path != want {
		t.Errorf("expected %q, got %q", want, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "ID3 fake mp3" {
		t.Errorf("unexpected content %q", data)
	}
	if got := e.Status().State; got != StateIdle {
		t.Errorf("download must not touch playback, state %s", got)
	}
}

func TestSilentSurface(t *testing.T) {
	s := NewSilentSurface()
	if err := s.Load("https://tracks.example/a.mp3", 0.5, SurfaceEvents{}); err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	s.Play(func(err error) { done <- err })
	if err := <-done; err != nil {
		t.Errorf("silent surface rejected play: %v", err)
	}
	s.Pause()
	s.SetVolume(0.2)
	s.Release()
}

func TestEngineWithSilentSurface(t *testing.T) {
	changes := make(chan PlaybackInfo, 16)
	e := New(testCatalog(3), NewSilentSurface(),
		WithLogger(quietLogger()),
		WithOnChange(func(info PlaybackInfo) { changes <- info }),
	)
	e.Initialize()
	if err := e.Play(); err != nil {
		t.Fatal(err)
	}
	for info := range changes {
		if info.State == StatePlaying {
			return
		}
	}
}

type sliceStreamer struct {
	samples [][2]float64
}

func (s *sliceStreamer) Stream(out [][2]float64) (int, bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	n := copy(out, s.samples)
	s.samples = s.samples[n:]
	return n, true
}

func (s *sliceStreamer) Err() error { return nil }

func TestTapLevel(t *testing.T) {
	src := &sliceStreamer{samples: make([][2]float64, 64)}
	for i := range src.samples {
		src.samples[i] = [2]float64{0.5, 0.5}
	}
	tap := NewTap(src, 16)
	if got := tap.Level(); got != 0 {
		t.Errorf("expected 0 before streaming, got %v", got)
	}

	buf := make([][2]float64, 64)
	n, ok := tap.Stream(buf)
	if n != 64 || !ok {
		t.Fatalf("unexpected stream result %d %v", n, ok)
	}
	if got := tap.Level(); got < 0.499 || got > 0.501 {
		t.Errorf("expected level ~0.5, got %v", got)
	}
}
