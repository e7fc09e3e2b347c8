package services

import (
	"fmt"

	"car-price-service/internal/core/domain"
	ports "car-price-service/internal/core/ports/output"
)

// PredictionService runs car features through the scaler and then the model.
// It is built once at startup and never mutated, so it is safe for concurrent use.
type PredictionService struct {
	model  ports.Predictor
	scaler ports.Transformer
}

func NewPredictionService(artifacts Artifacts) *PredictionService {
	if !artifacts.Loaded() {
		return &PredictionService{}
	}
	return &PredictionService{model: artifacts.Model, scaler: artifacts.Scaler}
}

func (s *PredictionService) Ready() bool {
	return s.model != nil && s.scaler != nil
}

// Predict returns the raw model output for a single car.
func (s *PredictionService) Predict(features domain.CarFeatures) (float64, error) {
	if !s.Ready() {
		return 0, domain.ErrArtifactsNotLoaded
	}

	batch := [][]float64{features.Vector()}

	scaled, err := s.scaler.Transform(batch)
	if err != nil {
		return 0, fmt.Errorf("transform: %w", err)
	}

	predictions, err := s.model.Predict(scaled)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	if len(predictions) == 0 {
		return 0, domain.ErrEmptyPrediction
	}

	return predictions[0], nil
}

// PredictPrice validates a decoded request body and returns the formatted price.
func (s *PredictionService) PredictPrice(data map[string]any) (string, error) {
	if !s.Ready() {
		return "", domain.ErrArtifactsNotLoaded
	}

	features, err := domain.ParseCarFeatures(data)
	if err != nil {
		return "", err
	}

	price, err := s.Predict(features)
	if err != nil {
		return "", err
	}

	return domain.FormatUSD(price), nil
}
