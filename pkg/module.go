package pkg

import (
	"go.uber.org/fx"

	"staffhub/pkg/config"
	"staffhub/pkg/db"
	"staffhub/pkg/logger"
	"staffhub/pkg/migration"
	"staffhub/pkg/reply"
	"staffhub/pkg/repository"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	migration.Module,
	repository.Module,
	db.Module,
	reply.Module,
)
