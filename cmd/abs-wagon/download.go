package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/internal/goals/download"
	"github.com/sgl-project/abs-wagon/pkg/configutils"
	"github.com/sgl-project/abs-wagon/pkg/constants"
)

// DownloadGoal implements the GoalCommand interface for artifact downloads
type DownloadGoal struct {
	downloader *download.Downloader
}

// Name returns the name of the goal
func (d *DownloadGoal) Name() string {
	return "download"
}

// ShortDescription returns a short description of the goal
func (d *DownloadGoal) ShortDescription() string {
	return "Download objects from a container"
}

// LongDescription returns a detailed description of the goal
func (d *DownloadGoal) LongDescription() string {
	return "Download objects from an Azure Blob Storage container. A single key is written to --download-path. " +
		"Several keys are treated as prefixes and every object below them is written to --download-path/<key>."
}

// ConfigureCommand adds the download flags
func (d *DownloadGoal) ConfigureCommand(cmd *cobra.Command) {
	cmd.Flags().String("container", "", "source container")
	cmd.Flags().StringSlice("keys", nil, "object key, or comma separated key prefixes")
	cmd.Flags().String("download-path", "", "target file for a single key, target directory otherwise")
}

// FlagKeys returns the configuration keys of the download flags
func (d *DownloadGoal) FlagKeys() configutils.FlagKeys {
	return configutils.FlagKeys{
		"container":     constants.ContainerConfigKey,
		"keys":          constants.KeysConfigKey,
		"download-path": constants.DownloadPathConfigKey,
	}
}

// FxModules returns the fx modules needed by this goal
func (d *DownloadGoal) FxModules() []fx.Option {
	return []fx.Option{
		download.Module,
		fx.Populate(&d.downloader),
	}
}

// Run downloads the configured keys
func (d *DownloadGoal) Run(ctx context.Context) error {
	return d.downloader.Run(ctx)
}

// NewDownloadGoal creates a new download goal
func NewDownloadGoal() *DownloadGoal {
	return &DownloadGoal{}
}
