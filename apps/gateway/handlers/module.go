package handlers

import (
	"staffhub/apps/gateway/handlers/employee"
	"staffhub/apps/gateway/handlers/middleware"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	employee.Module,
)
