package middleware

import (
	"fmt"
	"io"
	"net/http"

	"car-price-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Recovery turns a panic anywhere below it into a 500 with the panic text as
// the error message, and keeps the server running.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.WithFields(log.Fields{
			"panic":      recovered,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		}).Error("request panicked")

		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprint(recovered)})
	})
}
