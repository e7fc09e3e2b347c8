package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car-price-service/internal/adapters/primary/http/handlers"
	"car-price-service/internal/adapters/primary/http/server"
	"car-price-service/internal/adapters/secondary/artifact"
	"car-price-service/internal/config"
	"car-price-service/internal/core/services"
	"car-price-service/internal/telemetry"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "carprice",
		Short:         "Car price prediction API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	rootCmd.AddCommand(newPredictCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog := initLogger(cfg)
	defer closeLog()

	artifacts := loadArtifacts(cfg)

	var metrics *telemetry.Metrics
	if cfg.Metrics.Enabled {
		metrics = telemetry.NewMetrics()
		metrics.SetArtifactsLoaded(artifacts.Loaded())
		log.Info("metrics enabled on /metrics")
	} else {
		log.Info("metrics disabled")
	}

	predictionSvc := services.NewPredictionService(artifacts)
	h := handlers.New(predictionSvc, metrics)

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(cfg, h, metrics)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// loadArtifacts loads the model and scaler once. A failure is logged and
// yields an empty pair, so the server still starts and /predict answers 500.
func loadArtifacts(cfg *config.Config) services.Artifacts {
	modelFile, scalerFile := cfg.Artifact.ModelFile(), cfg.Artifact.ScalerFile()
	fields := log.Fields{
		"model_path":  modelFile,
		"scaler_path": scalerFile,
	}

	artifacts, err := services.LoadArtifacts(artifact.NewFileLoader(), modelFile, scalerFile)
	if err != nil {
		log.WithError(err).WithFields(fields).Error("model or scaler failed to load, predictions disabled")
		return services.Artifacts{}
	}

	log.WithFields(fields).Info("model and scaler loaded")
	return artifacts
}
