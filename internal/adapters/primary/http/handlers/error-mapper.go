package handlers

import (
	"errors"
	"net/http"

	"car-price-service/internal/adapters/primary/http/dto"
	"car-price-service/internal/core/domain"
	"car-price-service/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// mapDomainError writes {"error": err.Error()}: 400 for incomplete data,
// 500 for everything else.
func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrIncompleteData):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrArtifactsNotLoaded):
		return telemetry.OutcomeNotLoaded
	case errors.Is(err, domain.ErrIncompleteData):
		return telemetry.OutcomeIncomplete
	default:
		return telemetry.OutcomeError
	}
}
