package postgres

import (
	employeerepo "staffhub/pkg/repository/postgres/employee_repo"

	"go.uber.org/fx"
)

var Module = fx.Options(
	employeerepo.Module,
)
