package main

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/pkg/afero"
	"github.com/sgl-project/abs-wagon/pkg/configutils"
)

// MockGoalCommand is a mock implementation of the GoalCommand interface for testing
type MockGoalCommand struct {
	mock.Mock
}

func (m *MockGoalCommand) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockGoalCommand) ShortDescription() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockGoalCommand) LongDescription() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockGoalCommand) FxModules() []fx.Option {
	args := m.Called()
	return args.Get(0).([]fx.Option)
}

func (m *MockGoalCommand) ConfigureCommand(cmd *cobra.Command) {
	m.Called(cmd)
}

func (m *MockGoalCommand) FlagKeys() configutils.FlagKeys {
	args := m.Called()
	return args.Get(0).(configutils.FlagKeys)
}

func (m *MockGoalCommand) Run(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ GoalCommand = (*MockGoalCommand)(nil)

func newMockGoal() *MockGoalCommand {
	goal := new(MockGoalCommand)
	goal.On("Name").Return("mock-goal")
	goal.On("ShortDescription").Return("Mock Goal Short Description")
	goal.On("LongDescription").Return("Mock Goal Long Description")
	goal.On("ConfigureCommand", mock.AnythingOfType("*cobra.Command")).Run(func(args mock.Arguments) {
		args.Get(0).(*cobra.Command).Flags().String("container", "", "container")
	})
	goal.On("FlagKeys").Return(configutils.FlagKeys{"container": "container"})
	return goal
}

func TestCreateGoalCommand(t *testing.T) {
	goal := newMockGoal()

	cmd := CreateGoalCommand(goal)

	assert.Equal(t, "mock-goal", cmd.Use)
	assert.Equal(t, "Mock Goal Short Description", cmd.Short)
	assert.Equal(t, "Mock Goal Long Description", cmd.Long)
	assert.True(t, cmd.SilenceUsage)
	assert.NotNil(t, cmd.RunE)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	debugFlag := cmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, debugFlag)
	assert.Equal(t, "d", debugFlag.Shorthand)

	containerFlag := cmd.Flags().Lookup("container")
	require.NotNil(t, containerFlag)
	assert.Equal(t, "container (env ABS_WAGON_CONTAINER)", containerFlag.Usage)
	goal.AssertCalled(t, "ConfigureCommand", mock.AnythingOfType("*cobra.Command"))
}

func TestConfigProvider(t *testing.T) {
	goal := NewDownloadGoal()
	cmd := CreateGoalCommand(goal)
	require.NoError(t, cmd.ParseFlags([]string{
		"--container", "artifacts",
		"--keys", "logs/2024-01-01,logs/2024-01-02",
		"--download-path", "/tmp/out",
		"-d",
	}))

	var v *viper.Viper
	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() afero.Fs { return afero.NewMemMapFs() }),
		configProvider(cmd, goal),
		fx.Populate(&v),
	)
	require.NoError(t, app.Err())

	assert.Equal(t, "artifacts", v.GetString("container"))
	assert.Equal(t, []string{"logs/2024-01-01", "logs/2024-01-02"}, v.GetStringSlice("keys"))
	assert.Equal(t, "/tmp/out", v.GetString("download_path"))
	assert.True(t, v.GetBool("logging.debug"))
}

func TestConfigProvider_Env(t *testing.T) {
	t.Setenv("ABS_WAGON_PREFIX", "releases/")

	goal := NewListGoal()
	cmd := CreateGoalCommand(goal)
	require.NoError(t, cmd.ParseFlags([]string{"--container", "artifacts"}))

	var v *viper.Viper
	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() afero.Fs { return afero.NewMemMapFs() }),
		configProvider(cmd, goal),
		fx.Populate(&v),
	)
	require.NoError(t, app.Err())
	assert.Equal(t, "releases/", v.GetString("prefix"))
}

func TestRunApp(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		goal := newMockGoal()
		goal.On("Run", mock.Anything).Return(nil).Once()

		stopped := false
		app := fx.New(fx.NopLogger, fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.StopHook(func() { stopped = true }))
		}))

		require.NoError(t, runApp(ctx, app, goal))
		goal.AssertExpectations(t)
		assert.True(t, stopped)
	})

	t.Run("goal error", func(t *testing.T) {
		goal := newMockGoal()
		goal.On("Run", mock.Anything).Return(errors.New("run error"))

		stopped := false
		app := fx.New(fx.NopLogger, fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.StopHook(func() { stopped = true }))
		}))

		err := runApp(ctx, app, goal)
		assert.EqualError(t, err, "run error")
		assert.True(t, stopped, "the app is stopped after a failed goal")
	})

	t.Run("broken app", func(t *testing.T) {
		goal := newMockGoal()
		app := fx.New(fx.NopLogger, fx.Invoke(func(*viper.Viper) {}))

		assert.Error(t, runApp(ctx, app, goal))
		goal.AssertNotCalled(t, "Run", mock.Anything)
	})
}

func TestRootCommand(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"upload", "download", "list"}, names)
	assert.Contains(t, rootCmd.Version, "gitVersion=")
}
