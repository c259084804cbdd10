package router

import (
	"context"
	"net/http"

	"staffhub/apps/gateway/handlers/employee"
	"staffhub/apps/gateway/handlers/middleware"
	"staffhub/pkg/config"
	"staffhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Employee  employee.Handler
}

func NewRouter(params Params) {
	r := gin.New()
	baseUrl := "/api/v1"
	api := r.Group(baseUrl)
	api.Use(params.Ctx(), gin.Logger(), gin.Recovery())

	employeeGroup := api.Group("/employees")
	{
		employeeGroup.GET("/", params.Employee.GetListEmployee)
		employeeGroup.GET("/search", params.Employee.SearchEmployee)
		employeeGroup.GET("/:id", params.Employee.GetByIDEmployee)
		employeeGroup.POST("/", params.Employee.CreateEmployee)
		employeeGroup.PATCH("/:id", params.Employee.PatchEmployee)
		employeeGroup.DELETE("/:id", params.Employee.DeleteEmployee)
	}

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders:   []string{"*"},
			AllowedOrigins:   params.Config.GetStringSlice("cors.allowed_origins"),
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowCredentials: true,
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
