package list

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/internal/goals"
)

// Module provides a *Lister printing to stdout.
var Module = fx.Provide(
	func(v *viper.Viper, session goals.Session) (*Lister, error) {
		config, err := NewConfig(WithViper(v))
		if err != nil {
			return nil, fmt.Errorf("error creating list config: %w", err)
		}

		if err = config.Validate(); err != nil {
			return nil, fmt.Errorf("error validating list config: %w", err)
		}
		return NewLister(config, session, os.Stdout), nil
	})
