package repository

import (
	"go.uber.org/fx"

	"staffhub/pkg/repository/postgres"
)

var Module = fx.Options(
	postgres.Module,
)
