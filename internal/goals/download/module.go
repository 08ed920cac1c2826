package download

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/internal/goals"
)

var Module = fx.Provide(
	func(v *viper.Viper, session goals.Session) (*Downloader, error) {
		config, err := NewConfig(WithViper(v))
		if err != nil {
			return nil, fmt.Errorf("error creating download config: %w", err)
		}

		if err = config.Validate(); err != nil {
			return nil, fmt.Errorf("error validating download config: %w", err)
		}
		return NewDownloader(config, session), nil
	})
