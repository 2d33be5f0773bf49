package common

import (
	"os"
	"path/filepath"
)

const appName = "shuk"

func CacheDir() string {
	return filepath.Join(cacheHome(), appName)
}

// DownloadDir is where saved tracks end up unless a command says otherwise.
func DownloadDir() string {
	return filepath.Join(CacheDir(), "downloads")
}

// StateDir returns ~/.shuk, or "" if the home directory is unknown.
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "."+appName)
}

// https://specifications.freedesktop.org/basedir/latest/#variables
func cacheHome() string {
	dir := os.Getenv("XDG_CACHE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".cache")
	}
	return dir
}
