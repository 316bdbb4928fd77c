package app

import (
	"github.com/gin-gonic/gin"

	"github.com/ovenlight/mealdesk-backend/internal/http/middleware"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type Middleware struct {
	TraceContext gin.HandlerFunc
	RequestLog   gin.HandlerFunc
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		TraceContext: middleware.AttachTraceContext(),
		RequestLog:   middleware.RequestLogger(log),
	}
}
