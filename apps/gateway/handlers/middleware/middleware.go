package middleware

import (
	"staffhub/pkg/config"
	"staffhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(NewMiddleware)
)

const requestIDHeader = "X-Request-Id"

type (
	Middleware interface {
		Ctx() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger logger.Logger
		Config config.IConfig
	}

	mw struct {
		logger logger.Logger
		config config.IConfig
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger: params.Logger,
		config: params.Config,
	}
}

// Ctx attaches a log context and a request id to every request.
func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := m.logger.Context(c.Request.Context())
		ctx = logger.WithRequestID(ctx, requestID)

		c.Header(requestIDHeader, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
