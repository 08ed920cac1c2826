package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/internal/goals/list"
	"github.com/sgl-project/abs-wagon/pkg/configutils"
	"github.com/sgl-project/abs-wagon/pkg/constants"
)

// ListGoal implements the GoalCommand interface for listing a prefix
type ListGoal struct {
	lister *list.Lister
}

// Name returns the name of the goal
func (l *ListGoal) Name() string {
	return "list"
}

// ShortDescription returns a short description of the goal
func (l *ListGoal) ShortDescription() string {
	return "List the keys below a prefix"
}

// LongDescription returns a detailed description of the goal
func (l *ListGoal) LongDescription() string {
	return "Print every key of an Azure Blob Storage container that starts with --prefix, one per line."
}

// ConfigureCommand adds the list flags
func (l *ListGoal) ConfigureCommand(cmd *cobra.Command) {
	cmd.Flags().String("container", "", "container to list")
	cmd.Flags().String("prefix", "", "key prefix")
	cmd.Flags().BoolP("long", "l", false, "print size and modification time")
}

// FlagKeys returns the configuration keys of the list flags
func (l *ListGoal) FlagKeys() configutils.FlagKeys {
	return configutils.FlagKeys{
		"container": constants.ContainerConfigKey,
		"prefix":    constants.PrefixConfigKey,
		"long":      constants.LongConfigKey,
	}
}

// FxModules returns the fx modules needed by this goal
func (l *ListGoal) FxModules() []fx.Option {
	return []fx.Option{
		list.Module,
		fx.Populate(&l.lister),
	}
}

// Run prints the listing
func (l *ListGoal) Run(ctx context.Context) error {
	return l.lister.Run(ctx)
}

// NewListGoal creates a new list goal
func NewListGoal() *ListGoal {
	return &ListGoal{}
}
