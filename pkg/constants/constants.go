package constants

import (
	"strings"
)

// Application Constants
var (
	AppName   = "abs-wagon"
	EnvPrefix = "ABS_WAGON"
)

// Configuration keys shared by the goals
const (
	ContainerConfigKey    = "container"
	KeysConfigKey         = "keys"
	DownloadPathConfigKey = "download_path"
	PathConfigKey         = "path"
	KeyConfigKey          = "key"
	PrefixConfigKey       = "prefix"
	LongConfigKey         = "long"
	DebugConfigKey        = "logging.debug"
)

// EnvVarKey returns the environment variable overriding the given
// configuration key.
func EnvVarKey(configKey string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(configKey, ".", "_"))
}
