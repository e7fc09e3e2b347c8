package server

import (
	"car-price-service/internal/adapters/primary/http/handlers"
	"car-price-service/internal/adapters/primary/http/middleware"
	"car-price-service/internal/config"
	"car-price-service/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes. metrics may be nil, in which case
// /metrics is not served.
func NewRouter(cfg *config.Config, h *handlers.Handler, metrics *telemetry.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging("/metrics"),
		middleware.Recovery(),
		middleware.CORS(cfg.CORS.AllowOrigins),
		metrics.Middleware(),
	)

	h.RegisterRoutes(router)

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	return router
}
