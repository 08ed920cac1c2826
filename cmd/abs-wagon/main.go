package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sgl-project/abs-wagon/pkg/constants"
	"github.com/sgl-project/abs-wagon/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:     constants.AppName,
	Short:   "Publish and retrieve build artifacts in Azure Blob Storage",
	Long:    "abs-wagon uploads files and directory trees to an Azure Blob Storage container and downloads them back by key or key prefix.",
	Version: version.String(),
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(CreateGoalCommand(NewUploadGoal()))
	rootCmd.AddCommand(CreateGoalCommand(NewDownloadGoal()))
	rootCmd.AddCommand(CreateGoalCommand(NewListGoal()))
}
