package afero

import (
	"go.uber.org/fx"
)

var fs = NewOsFs()

// Module makes the host file system available as afero.Fs.
var Module fx.Option = fx.Provide(
	func() Fs { return fs },
)
