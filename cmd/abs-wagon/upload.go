package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/internal/goals/upload"
	"github.com/sgl-project/abs-wagon/pkg/configutils"
	"github.com/sgl-project/abs-wagon/pkg/constants"
)

// UploadGoal implements the GoalCommand interface for artifact uploads
type UploadGoal struct {
	uploader *upload.Uploader
}

// Name returns the name of the goal
func (u *UploadGoal) Name() string {
	return "upload"
}

// ShortDescription returns a short description of the goal
func (u *UploadGoal) ShortDescription() string {
	return "Upload a file or directory to a container"
}

// LongDescription returns a detailed description of the goal
func (u *UploadGoal) LongDescription() string {
	return "Upload a single file, or every file below a directory, to an Azure Blob Storage container. " +
		"Directory files are stored under their relative path, below --key when given."
}

// ConfigureCommand adds the upload flags
func (u *UploadGoal) ConfigureCommand(cmd *cobra.Command) {
	cmd.Flags().String("container", "", "target container")
	cmd.Flags().String("path", "", "local file or directory to upload")
	cmd.Flags().String("key", "", "target key of a file, or key prefix of a directory")
}

// FlagKeys returns the configuration keys of the upload flags
func (u *UploadGoal) FlagKeys() configutils.FlagKeys {
	return configutils.FlagKeys{
		"container": constants.ContainerConfigKey,
		"path":      constants.PathConfigKey,
		"key":       constants.KeyConfigKey,
	}
}

// FxModules returns the fx modules needed by this goal
func (u *UploadGoal) FxModules() []fx.Option {
	return []fx.Option{
		upload.Module,
		fx.Populate(&u.uploader),
	}
}

// Run uploads the configured path
func (u *UploadGoal) Run(ctx context.Context) error {
	return u.uploader.Run(ctx)
}

// NewUploadGoal creates a new upload goal
func NewUploadGoal() *UploadGoal {
	return &UploadGoal{}
}
