package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/pkg/configutils"
	"github.com/sgl-project/abs-wagon/pkg/constants"
)

// configProvider binds the shared and goal specific flags on top of the
// environment and the optional config file.
func configProvider(cli *cobra.Command, goal GoalCommand) fx.Option {
	keys := configutils.FlagKeys{"debug": constants.DebugConfigKey}
	for flag, key := range goal.FlagKeys() {
		keys[flag] = key
	}
	return configutils.ProvideViper(constants.EnvPrefix, cli.Flags(), keys, configFilePath)
}
