package azure

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/pkg/afero"
	"github.com/sgl-project/abs-wagon/pkg/logging"
	"github.com/sgl-project/abs-wagon/pkg/metrics"
)

// Module provides the blob *Repository configured from the "azure" viper key.
var Module = fx.Provide(
	provideConfig,
	provideRepository,
)

func provideConfig(v *viper.Viper) (*Config, error) {
	config, err := NewConfig(WithViper(v))
	if err != nil {
		return nil, fmt.Errorf("error creating azure config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid azure config: %w", err)
	}
	return config, nil
}

func provideRepository(config *Config, fs afero.Fs, logger logging.Interface, m *metrics.TransferMetrics) *Repository {
	return NewRepository(config, fs, logger, m)
}
