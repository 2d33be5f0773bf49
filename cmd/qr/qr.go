// Package qr renders QR codes as ANSI blocks for the terminal.
package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	black = "\033[40m  \033[0m"
	white = "\033[47m  \033[0m"
)

// ParseLevel maps a recovery level name onto go-qrcode's levels. Unknown
// names fall back to medium.
func ParseLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToLower(name) {
	case "low", "l":
		return qrcode.Low
	case "high", "h", "q":
		// go-qrcode has no Quartile; High is the closest.
		return qrcode.High
	case "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// Render encodes text at medium recovery.
func Render(text string, invert bool) (string, error) {
	return RenderLevel(text, qrcode.Medium, invert)
}

// RenderLevel draws each module as two terminal cells. Standard output is dark
// modules on a light background; invert swaps them. The quiet zone is kept.
func RenderLevel(text string, level qrcode.RecoveryLevel, invert bool) (string, error) {
	code, err := qrcode.New(text, level)
	if err != nil {
		return "", fmt.Errorf("generating qr code: %w", err)
	}

	ink, paper := black, white
	if invert {
		ink, paper = white, black
	}

	var sb strings.Builder
	for _, row := range code.Bitmap() {
		for _, dark := range row {
			if dark {
				sb.WriteString(ink)
			} else {
				sb.WriteString(paper)
			}
		}
		sb.WriteString("\033[0m\n")
	}
	return sb.String(), nil
}

// Size returns the number of rows (and columns) Render will produce for text.
func Size(text string) (int, error) {
	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return 0, err
	}
	return len(code.Bitmap()), nil
}
