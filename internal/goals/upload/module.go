package upload

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/internal/goals"
	"github.com/sgl-project/abs-wagon/pkg/afero"
)

var Module = fx.Provide(
	func(v *viper.Viper, session goals.Session, fs afero.Fs) (*Uploader, error) {
		config, err := NewConfig(WithViper(v))
		if err != nil {
			return nil, fmt.Errorf("error creating upload config: %w", err)
		}

		if err = config.Validate(); err != nil {
			return nil, fmt.Errorf("error validating upload config: %w", err)
		}
		return NewUploader(config, session, fs), nil
	})
