package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		r.ServeHTTP(w, req)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("unmatched", "404")))
}

func TestMetrics_PredictionsAndGauge(t *testing.T) {
	m := NewMetrics()
	m.ObservePrediction(OutcomeSuccess)
	m.ObservePrediction(OutcomeSuccess)
	m.ObservePrediction(OutcomeIncomplete)
	m.SetArtifactsLoaded(true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.predictions.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues(OutcomeIncomplete)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.artifactsLoaded))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "carprice_predictions_total"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObservePrediction(OutcomeError)
	m.SetArtifactsLoaded(false)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
