package azure

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/sgl-project/abs-wagon/pkg/configutils"
)

// ConfigKey is the root configuration key (in Viper) for the blob repository.
var ConfigKey = "azure"

// DefaultPageTimeout bounds a single listing page request.
const DefaultPageTimeout = time.Minute

// Config tunes the blob repository
type Config struct {
	// PageTimeout bounds each listing page request
	PageTimeout time.Duration `mapstructure:"page_timeout" validate:"gte=0"`

	// PageSize caps the number of keys per listing page, 0 lets the service decide
	PageSize int32 `mapstructure:"page_size" validate:"gte=0,lte=5000"`

	// VerifyConnection fetches the container properties on connect so that
	// bad credentials fail early
	VerifyConnection bool `mapstructure:"verify_connection"`
}

// Option is a configuration option for the repository.
type Option func(*Config) error

// DefaultConfig returns default repository configuration
func DefaultConfig() *Config {
	return &Config{
		PageTimeout: DefaultPageTimeout,
	}
}

// NewConfig builds and returns a new configuration from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(c); err != nil {
			return nil, err
		}
	}
	if c.PageTimeout == 0 {
		c.PageTimeout = DefaultPageTimeout
	}
	return c, nil
}

// WithViper reads the configuration below the "azure" key.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) error {
		if v == nil {
			return errors.New("nil Viper")
		}
		return configutils.UnmarshalKey(v, ConfigKey, c)
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
