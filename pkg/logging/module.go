package logging

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module will load the configuration from Viper and creates a new logger
// using "logging" viper configuration key. The logger is flushed when the
// fx app stops.
var Module fx.Option = fx.Options(
	fx.Provide(
		provideZapLogger(ConfigKey),
		provideInterface,
	),
	fx.Invoke(func(lc fx.Lifecycle, l *zap.Logger) {
		lc.Append(fx.StopHook(func() {
			// stderr can't be synced on every platform
			_ = l.Sync()
		}))
	}),
)

func provideZapLogger(configKey string) func(v *viper.Viper) (*zap.Logger, error) {
	return func(v *viper.Viper) (*zap.Logger, error) {
		config, err := NewConfig(WithViperKey(v, configKey))
		if err != nil {
			return nil, fmt.Errorf("error reading logging configuration '%s': %w", configKey, err)
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid logging configuration '%s': %w", configKey, err)
		}

		return NewLogger(config)
	}
}

func provideInterface(l *zap.Logger) Interface { return ForZap(l) }
