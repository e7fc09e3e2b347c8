package services

import (
	"fmt"

	ports "car-price-service/internal/core/ports/output"
)

// Artifacts is the model/scaler pair. Both are set or neither is.
type Artifacts struct {
	Model  ports.Predictor
	Scaler ports.Transformer
}

func (a Artifacts) Loaded() bool {
	return a.Model != nil && a.Scaler != nil
}

// LoadArtifacts loads the model then the scaler. Any failure yields an empty
// pair alongside the error, so callers can keep serving without inference.
func LoadArtifacts(loader ports.ArtifactLoader, modelPath, scalerPath string) (Artifacts, error) {
	model, err := loader.LoadModel(modelPath)
	if err != nil {
		return Artifacts{}, fmt.Errorf("load model: %w", err)
	}
	scaler, err := loader.LoadScaler(scalerPath)
	if err != nil {
		return Artifacts{}, fmt.Errorf("load scaler: %w", err)
	}
	return Artifacts{Model: model, Scaler: scaler}, nil
}
