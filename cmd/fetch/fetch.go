// Package fetch downloads tracks over HTTP, either into memory for playback or
// onto disk when a listener saves the current track.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const userAgent = "shuk/fetch"

// StatusError is returned when the origin answers with a 4xx/5xx status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %s", e.Status)
}

// Client creates an HTTP client that follows at most 10 redirects.
func Client(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}
}

// Get streams the body of url into w and returns the number of bytes written.
func Get(ctx context.Context, client *http.Client, url string, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	written, err := io.Copy(w, resp.Body)
	if err != nil {
		return written, fmt.Errorf("download error: %w", err)
	}
	return written, nil
}

// Bytes returns the whole body of url in memory.
func Bytes(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Get(ctx, client, url, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToFile downloads url to dest, retrying transient failures up to retries
// times with a linearly growing pause. The file only appears under its final
// name once the download completed.
func ToFile(ctx context.Context, client *http.Client, url, dest string, retries int) (int64, error) {
	if retries < 1 {
		retries = 1
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, fmt.Errorf("cannot create directory: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		if attempt > 1 {
			slog.Debug("retrying download", "url", url, "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(time.Second * time.Duration(attempt-1)):
			}
		}

		n, err := toFileOnce(ctx, client, url, dest)
		if err == nil {
			return n, nil
		}
		lastErr = err

		if !retryable(err) {
			return 0, err
		}
	}

	return 0, fmt.Errorf("failed after %d attempts: %w", retries, lastErr)
}

func toFileOnce(ctx context.Context, client *http.Client, url, dest string) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".shuk-download-*")
	if err != nil {
		return 0, fmt.Errorf("cannot create file: %w", err)
	}
	tmpName := tmp.Name()

	n, err := Get(ctx, client, url, tmp)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return 0, err
	}

	if err := os.Rename(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return 0, fmt.Errorf("cannot move download into place: %w", err)
	}
	return n, nil
}

// Auth and not-found answers will not change on retry.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return false
		}
	}
	return true
}

func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
