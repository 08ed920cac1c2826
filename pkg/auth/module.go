package auth

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/pkg/logging"
)

// Module provides Credentials resolved from the "auth" viper key.
var Module = fx.Provide(
	func(v *viper.Viper, logger logging.Interface) (Credentials, error) {
		config, err := NewConfig(WithViper(v))
		if err != nil {
			return nil, fmt.Errorf("error creating auth config: %w", err)
		}

		creds, err := config.Credentials()
		if err != nil {
			return nil, err
		}

		logger.WithField("credentials", creds.Redacted()).Debug("Resolved credentials")
		return creds, nil
	})
