package common

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/GiGurra/cmder"
)

// runOpener is swapped out in tests.
var runOpener = func(ctx context.Context, cmdAndArgs []string) error {
	return cmder.New(cmdAndArgs...).
		WithAttemptTimeout(10 * time.Second).
		Run(ctx).Err
}

func openCommand(goos, url string) ([]string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd":
		return []string{"xdg-open", url}, nil
	case "darwin":
		return []string{"open", url}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", url}, nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// OpenURL hands url to the desktop's default handler.
func OpenURL(ctx context.Context, url string) error {
	cmdAndArgs, err := openCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}
	if err := runOpener(ctx, cmdAndArgs); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
