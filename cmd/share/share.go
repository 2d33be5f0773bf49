// Package share hands a track's address to the listener: printed, copied to
// the clipboard or drawn as a QR code.
package share

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/gigurra/shuk/cmd/catalog"
	"github.com/gigurra/shuk/cmd/common"
	"github.com/gigurra/shuk/cmd/qr"
	"github.com/spf13/cobra"
)

var (
	clipboardWriteAll = clipboard.WriteAll
	openURL           = common.OpenURL
)

type Params struct {
	Index         int    `short:"i" optional:"true" help:"Catalog index of the track (-1 picks one at random)." default:"-1"`
	Copy          bool   `short:"c" optional:"true" help:"Copy the address to the clipboard."`
	QR            bool   `short:"q" optional:"true" help:"Render the address as a QR code."`
	Open          bool   `short:"o" optional:"true" help:"Open the address in the default browser."`
	Invert        bool   `optional:"true" help:"Invert QR colors (light on dark)."`
	RecoveryLevel string `short:"r" optional:"true" help:"QR error recovery level (low, medium, high, highest)." default:"medium"`
	Seed          int64  `optional:"true" help:"Seed for the random pick (0 picks a random seed)." default:"0"`
	BaseURL       string `optional:"true" help:"Streaming origin the track references are appended to." default:"https://rangatracks.b-cdn.net/"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "share",
		Short: "Print, copy or QR-encode a track's address",
		Long: `Print the streaming address of a track.

Without --index a random track is chosen. --copy puts the address on the
clipboard, --qr draws it as a QR code for a phone to scan and --open hands
it to the browser.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(cmd.Context(), params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "share: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, out io.Writer) error {
	cat := catalog.New(params.BaseURL, catalog.Tracks)
	if cat.Len() == 0 {
		return fmt.Errorf("catalog is empty")
	}

	index := params.Index
	if index < 0 {
		seed := params.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		index = rand.New(rand.NewSource(seed)).Intn(cat.Len())
	}

	url, err := cat.URL(index)
	if err != nil {
		return fmt.Errorf("track %d: %w", index, err)
	}
	name, _ := cat.DisplayName(index)

	fmt.Fprintf(out, "%s\n%s\n", name, url)

	if params.Copy {
		if err := Copy(url); err != nil {
			return err
		}
		fmt.Fprintln(out, "Copied to clipboard.")
	}

	if params.QR {
		code, err := qr.RenderLevel(url, qr.ParseLevel(params.RecoveryLevel), params.Invert)
		if err != nil {
			return err
		}
		fmt.Fprint(out, code)
	}

	if params.Open {
		if err := openURL(ctx, url); err != nil {
			return err
		}
	}
	return nil
}

// Copy puts text on the system clipboard.
func Copy(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
