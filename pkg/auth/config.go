package auth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/sgl-project/abs-wagon/pkg/configutils"
)

// ConfigKey is the root configuration key (in Viper) for credentials.
var ConfigKey = "auth"

// Config selects and carries one credential encoding.
type Config struct {
	// Type picks the encoding. Defaults to environment.
	Type Kind `mapstructure:"type"`

	// SAS URL auth
	SASURL string `mapstructure:"sas_url"`

	// Service principal auth
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TenantID     string `mapstructure:"tenant_id"`
	Endpoint     string `mapstructure:"endpoint"`

	// Storage account key auth
	AccountName string `mapstructure:"account_name"`
	AccountKey  string `mapstructure:"account_key"`
}

// Option is a configuration option for credentials.
type Option func(*Config) error

// Apply takes the supplied options and applies them to the configuration.
func (c *Config) Apply(opts ...Option) error {
	for _, o := range opts {
		if o == nil {
			continue
		}

		if err := o(c); err != nil {
			return err
		}
	}

	return nil
}

// NewConfig creates a new credentials config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Type: KindEnvironment}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// WithViper reads the configuration below the "auth" key. Every field can
// also be set through the environment, e.g. ABS_WAGON_AUTH_TYPE.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) error {
		if v == nil {
			return errors.New("nil Viper")
		}
		if err := configutils.UnmarshalKey(v, ConfigKey, c); err != nil {
			return err
		}
		if c.Type == "" {
			c.Type = KindEnvironment
		}
		return nil
	}
}

// Validate reports every problem with the selected encoding at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Type {
	case KindSASURL:
		if c.SASURL == "" {
			result = multierror.Append(result, errors.New("sas_url is required"))
		} else if err := validateSASURL(c.SASURL); err != nil {
			result = multierror.Append(result, err)
		}
	case KindServicePrincipal:
		if c.ClientID == "" {
			result = multierror.Append(result, errors.New("client_id is required"))
		}
		if c.ClientSecret == "" {
			result = multierror.Append(result, errors.New("client_secret is required"))
		}
		if c.TenantID == "" {
			result = multierror.Append(result, errors.New("tenant_id is required"))
		}
		if c.Endpoint == "" {
			result = multierror.Append(result, errors.New("endpoint is required"))
		} else if u, err := url.Parse(c.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
			result = multierror.Append(result, fmt.Errorf("endpoint %q is not an absolute URL", c.Endpoint))
		}
	case KindAccountKey:
		if c.AccountName == "" {
			result = multierror.Append(result, errors.New("account_name is required"))
		}
		if c.AccountKey == "" {
			result = multierror.Append(result, errors.New("account_key is required"))
		}
	case KindEnvironment:
	default:
		result = multierror.Append(result, fmt.Errorf("unsupported auth type %q", c.Type))
	}

	return result.ErrorOrNil()
}

func validateSASURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("sas_url is not a valid URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New("sas_url must be an absolute URL")
	}
	if u.Query().Get("sig") == "" {
		return errors.New("sas_url carries no signature")
	}
	return nil
}

func redactQuery(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid>"
	}
	if u.RawQuery != "" {
		u.RawQuery = "REDACTED"
	}
	return strings.TrimSuffix(u.String(), "?")
}
