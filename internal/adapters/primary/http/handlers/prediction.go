package handlers

import (
	"net/http"

	"car-price-service/internal/adapters/primary/http/dto"
	"car-price-service/internal/core/domain"
	"car-price-service/internal/telemetry"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, identity)
}

func (h *Handler) Predict(c *gin.Context) {
	if !h.predictionSvc.Ready() {
		h.fail(c, domain.ErrArtifactsNotLoaded)
		return
	}

	body, err := dto.DecodePredictionRequest(c.Request.Body)
	if err != nil {
		h.fail(c, err)
		return
	}

	price, err := h.predictionSvc.PredictPrice(body)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.metrics.ObservePrediction(telemetry.OutcomeSuccess)
	c.JSON(http.StatusOK, dto.PredictionResponse{PredictedPrice: price})
}

func (h *Handler) fail(c *gin.Context, err error) {
	outcome := outcomeOf(err)
	h.metrics.ObservePrediction(outcome)

	entry := log.WithError(err).WithFields(log.Fields{
		"outcome":    outcome,
		"request_id": c.GetString("request_id"),
	})
	if outcome == telemetry.OutcomeIncomplete {
		entry.Warn("predict rejected")
	} else {
		entry.Error("predict failed")
	}

	mapDomainError(c, err)
}
