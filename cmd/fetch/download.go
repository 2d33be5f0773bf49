package fetch

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/shuk/cmd/catalog"
	"github.com/gigurra/shuk/cmd/common"
	"github.com/spf13/cobra"
)

type Params struct {
	Index   int    `short:"i" optional:"true" help:"Catalog index of the track to save (-1 picks the first track of a fresh shuffle)." default:"-1"`
	Dir     string `short:"d" optional:"true" help:"Directory to save into (defaults to the shuk cache)."`
	Seed    int64  `optional:"true" help:"Seed for the shuffle when no index is given (0 picks a random seed)." default:"0"`
	Timeout int    `short:"T" optional:"true" help:"Timeout in seconds." default:"120"`
	Retries int    `short:"t" optional:"true" help:"Number of attempts." default:"3"`
	BaseURL string `optional:"true" help:"Streaming origin the track references are appended to." default:"https://rangatracks.b-cdn.net/"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "download",
		Short: "Save a track from the catalog to disk",
		Long: `Save a track from the catalog to disk.

The file is named after the track's display name. Without --index the first
track of a freshly shuffled play order is saved.`,
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			common.InitLogging(cmd, false)
			path, err := Run(cmd.Context(), params)
			if err != nil {
				fmt.Fprintf(os.Stderr, "download: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(path)
		},
	}.ToCobra()
}

// FileName is the suggested save-as name for a track.
func FileName(displayName string) string {
	return filepath.Base(displayName) + ".mp3"
}

func Run(ctx context.Context, params *Params) (string, error) {
	cat := catalog.New(params.BaseURL, catalog.Tracks)
	if cat.Len() == 0 {
		return "", fmt.Errorf("catalog is empty")
	}

	index := params.Index
	if index < 0 {
		seed := params.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		index = rand.New(rand.NewSource(seed)).Perm(cat.Len())[0]
	}

	url, err := cat.URL(index)
	if err != nil {
		return "", fmt.Errorf("track %d: %w", index, err)
	}
	name, _ := cat.DisplayName(index)

	dir := params.Dir
	if dir == "" {
		dir = common.DownloadDir()
	}
	dest := filepath.Join(dir, FileName(name))

	client := Client(time.Duration(params.Timeout) * time.Second)
	n, err := ToFile(ctx, client, url, dest, params.Retries)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(os.Stderr, "Downloaded: %s (%s)\n", dest, FormatBytes(n))
	return dest, nil
}
