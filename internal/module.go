package internal

import (
	"staffhub/internal/employee"

	"go.uber.org/fx"
)

var Module = fx.Options(
	employee.Module,
)
