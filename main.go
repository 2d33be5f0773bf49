package main

import (
	"os"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gigurra/shuk/cmd/catalog"
	"github.com/gigurra/shuk/cmd/cave"
	"github.com/gigurra/shuk/cmd/common"
	"github.com/gigurra/shuk/cmd/device"
	"github.com/gigurra/shuk/cmd/fetch"
	"github.com/gigurra/shuk/cmd/serve"
	"github.com/gigurra/shuk/cmd/share"
	"github.com/spf13/cobra"
)

// Command group IDs
const (
	groupPlayback = "playback"
	groupSharing  = "sharing"
	groupHosting  = "hosting"
)

// withGroup sets the GroupID on a command and returns it
func withGroup(cmd *cobra.Command, group string) *cobra.Command {
	cmd.GroupID = group
	return cmd
}

func rootCmd() *cobra.Command {
	root := boa.CmdT[boa.NoParams]{
		Use:     "shuk",
		Short:   "Shuffle the rangatracks catalog inside a reactive cave",
		Version: appVersion(),
		Groups: []*cobra.Group{
			{ID: groupPlayback, Title: "Playback:"},
			{ID: groupSharing, Title: "Sharing:"},
			{ID: groupHosting, Title: "Hosting:"},
		},
		SubCmds: []*cobra.Command{
			// Playback
			withGroup(cave.Cmd(), groupPlayback),
			withGroup(cave.PlayCmd(), groupPlayback),
			withGroup(catalog.Cmd(), groupPlayback),
			withGroup(device.Cmd(), groupPlayback),

			// Sharing
			withGroup(share.Cmd(), groupSharing),
			withGroup(fetch.Cmd(), groupSharing),

			// Hosting
			withGroup(serve.Cmd(), groupHosting),
		},
	}.ToCobra()
	root.PersistentFlags().String(common.LogLevelFlag, "info", "Log level (debug, info, warn, error).")
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func appVersion() string {
	bi, hasBuilInfo := debug.ReadBuildInfo()
	if !hasBuilInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
