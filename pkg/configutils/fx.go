package configutils

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/pkg/afero"
)

// FlagKeys maps command line flag names to the viper keys they override.
type FlagKeys map[string]string

// NewViper creates a viper instance reading, in order of precedence, the
// given flags, environment variables prefixed with envPrefix and the config
// file at configFilePath. The config file is optional.
func NewViper(fs afero.Fs, envPrefix string, flags *pflag.FlagSet, keys FlagKeys, configFilePath string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range keys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("can't bind %s flag: %w", name, err)
			}
		}
	}

	if configFilePath != "" {
		if err := ResolveAndMergeFile(fs, v, configFilePath); err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	return v, nil
}

// ProvideViper provides an fx module for creating a viper instance as
// described by NewViper.
func ProvideViper(envPrefix string, flags *pflag.FlagSet, keys FlagKeys, configFilePath string) fx.Option {
	return fx.Provide(func(fs afero.Fs) (*viper.Viper, error) {
		return NewViper(fs, envPrefix, flags, keys, configFilePath)
	})
}
