package gateway

import (
	"staffhub/apps/gateway/handlers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	handlers.Module,
)
