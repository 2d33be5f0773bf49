package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// LogLevelFlag is the persistent root flag every command inherits.
const LogLevelFlag = "log-level"

// ParseLogLevel converts a --log-level flag value into a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s (must be error, warn, info, or debug)", level)
	}
}

// LogPath returns the path to the log file used by interactive commands
func LogPath() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "shuk.log")
}

// SetupLogging installs the default slog logger.
// With toFile set, output goes to ~/.shuk/shuk.log only, so full-screen UIs
// are not scribbled over. Otherwise it goes to stderr.
func SetupLogging(level string, toFile bool) error {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	if toFile {
		out = io.Discard
		if logPath := LogPath(); logPath != "" {
			if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
				f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err == nil {
					out = f
				}
			}
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: lvl,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

// InitLogging sets up logging from the inherited --log-level flag. A bad
// level is reported and info is used instead.
func InitLogging(cmd *cobra.Command, toFile bool) {
	level, name := "info", appName
	if cmd != nil {
		name = cmd.Name()
		if f := cmd.Flag(LogLevelFlag); f != nil {
			level = f.Value.String()
		}
	}
	if err := SetupLogging(level, toFile); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		_ = SetupLogging("info", toFile)
	}
}
