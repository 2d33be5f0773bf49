package catalog

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/shuk/cmd/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type Params struct {
	Shuffled bool   `short:"s" optional:"true" help:"List the tracks in a fresh shuffled play order."`
	Seed     int64  `optional:"true" help:"Seed for the shuffle (0 picks a random seed)." default:"0"`
	URLs     bool   `short:"u" optional:"true" help:"Include the resolved stream URL of each track."`
	BaseURL  string `optional:"true" help:"Streaming origin the track references are appended to." default:"https://rangatracks.b-cdn.net/"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "tracks",
		Short:       "List the track catalog",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := Run(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "tracks: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

type row struct {
	pos   int
	index int
}

func Run(params *Params, out io.Writer) error {
	cat := New(params.BaseURL, Tracks)

	order := lo.Range(cat.Len())
	if params.Shuffled {
		seed := params.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		order = rand.New(rand.NewSource(seed)).Perm(cat.Len())
	}

	rows := lo.Map(order, func(index int, pos int) row {
		return row{pos: pos, index: index}
	})

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	header := table.Row{"#", "Track", "Name"}
	if params.URLs {
		header = append(header, "URL")
	}
	t.AppendHeader(header)

	for _, r := range rows {
		name, err := cat.DisplayName(r.index)
		if err != nil {
			return err
		}
		tr := table.Row{r.pos + 1, r.index, name}
		if params.URLs {
			u, err := cat.URL(r.index)
			if err != nil {
				return err
			}
			tr = append(tr, u)
		}
		t.AppendRow(tr)
	}

	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d tracks", cat.Len())})
	t.Render()
	return nil
}
