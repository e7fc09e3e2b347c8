package handlers

import (
	"car-price-service/internal/core/services"
	"car-price-service/internal/telemetry"

	"github.com/gin-gonic/gin"
)

const identity = "Car Price Prediction API"

type Handler struct {
	predictionSvc *services.PredictionService
	metrics       *telemetry.Metrics
}

// New builds the HTTP handler. metrics may be nil.
func New(predictionSvc *services.PredictionService, metrics *telemetry.Metrics) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		metrics:       metrics,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Home)
	r.POST("/predict", h.Predict)
}
