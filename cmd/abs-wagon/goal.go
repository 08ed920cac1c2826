package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/internal/goals"
	"github.com/sgl-project/abs-wagon/pkg/afero"
	"github.com/sgl-project/abs-wagon/pkg/auth"
	"github.com/sgl-project/abs-wagon/pkg/configutils"
	"github.com/sgl-project/abs-wagon/pkg/constants"
	"github.com/sgl-project/abs-wagon/pkg/logging"
	"github.com/sgl-project/abs-wagon/pkg/metrics"
	"github.com/sgl-project/abs-wagon/pkg/storage/azure"
)

var configFilePath string
var debug bool

// GoalCommand represents a goal that can be run from the command line
type GoalCommand interface {
	Name() string
	ShortDescription() string
	LongDescription() string
	FxModules() []fx.Option

	// ConfigureCommand lets goals add their own flags
	ConfigureCommand(*cobra.Command)

	// FlagKeys maps the goal's flags to configuration keys
	FlagKeys() configutils.FlagKeys

	// Run executes the goal once the fx app has started
	Run(ctx context.Context) error
}

// CreateGoalCommand creates a cobra command for a goal
func CreateGoalCommand(goal GoalCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:           goal.Name(),
		Short:         goal.ShortDescription(),
		Long:          goal.LongDescription(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoalCommand(cmd, goal)
		},
	}

	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", "path to config file")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")

	goal.ConfigureCommand(cmd)

	keys := goal.FlagKeys()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := keys[f.Name]; ok {
			f.Usage += " (env " + constants.EnvVarKey(key) + ")"
		}
	})

	return cmd
}

// commonModules assemble the wagon stack every goal runs on
func commonModules() []fx.Option {
	return []fx.Option{
		logging.UseLoggingInterface,
		afero.Module,
		logging.Module,
		metrics.Module,
		auth.Module,
		azure.Module,
		goals.Module,
	}
}

// runGoalCommand builds the fx app for goal, runs it and tears the app down.
// The goal's error wins over a failure to stop.
func runGoalCommand(cmd *cobra.Command, goal GoalCommand) error {
	options := []fx.Option{configProvider(cmd, goal)}
	options = append(options, commonModules()...)
	options = append(options, goal.FxModules()...)

	return runApp(cmd.Context(), fx.New(options...), goal)
}

func runApp(ctx context.Context, app *fx.App, goal GoalCommand) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}

	runErr := goal.Run(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return err
	}
	return runErr
}
