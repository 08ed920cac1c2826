package metrics

import (
	"github.com/spf13/viper"

	"github.com/sgl-project/abs-wagon/pkg/configutils"
)

// ConfigKey is the root configuration key (in Viper) for metrics.
var ConfigKey = "metrics"

// Config controls metrics export.
type Config struct {
	// Textfile is where metrics are written when the run ends.
	// Nothing is written when empty.
	Textfile string `mapstructure:"textfile"`
}

// NewConfig reads the metrics configuration from v
func NewConfig(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := configutils.UnmarshalKey(v, ConfigKey, c); err != nil {
		return nil, err
	}
	return c, nil
}
