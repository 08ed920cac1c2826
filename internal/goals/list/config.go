package list

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/sgl-project/abs-wagon/pkg/configutils"
)

type Config struct {
	// Container to list
	Container string `mapstructure:"container" validate:"required"`

	// Prefix restricts the listing, empty lists the whole container
	Prefix string `mapstructure:"prefix"`

	// Long prints size and modification time next to every key
	Long bool `mapstructure:"long"`
}

type Option func(*Config) error

// NewConfig builds and returns a new configuration from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithViper reads the configuration from the top level keys of v.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) error {
		if err := configutils.BindEnvsRecursive(v, c, ""); err != nil {
			return fmt.Errorf("error occurred when binding environment variables: %w", err)
		}

		if err := v.Unmarshal(c); err != nil {
			return fmt.Errorf("error occurred when unmarshalling config: %w", err)
		}
		return nil
	}
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
