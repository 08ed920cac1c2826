package goals

import (
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/pkg/storage/azure"
)

// Module provides the Session shared by all goals, backed by the blob repository.
var Module = fx.Provide(
	func(r *azure.Repository) Connector { return r },
	NewSession,
)
