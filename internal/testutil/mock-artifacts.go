package testutil

import (
	"github.com/stretchr/testify/mock"

	ports "car-price-service/internal/core/ports/output"
)

// MockPredictor is a mock of ports.Predictor.
type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Predict(rows [][]float64) ([]float64, error) {
	args := m.Called(rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

// MockTransformer is a mock of ports.Transformer.
type MockTransformer struct {
	mock.Mock
}

func (m *MockTransformer) Transform(rows [][]float64) ([][]float64, error) {
	args := m.Called(rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float64), args.Error(1)
}

// MockArtifactLoader is a mock of ports.ArtifactLoader.
type MockArtifactLoader struct {
	mock.Mock
}

func (m *MockArtifactLoader) LoadModel(path string) (ports.Predictor, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Predictor), args.Error(1)
}

func (m *MockArtifactLoader) LoadScaler(path string) (ports.Transformer, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.Transformer), args.Error(1)
}

// SumPredictor adds a weighted sum of each row; used where a deterministic,
// order-sensitive model is needed without mock expectations.
type SumPredictor struct {
	Weights []float64
}

func (p SumPredictor) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		for j, x := range row {
			out[i] += p.Weights[j] * x
		}
	}
	return out, nil
}

// IdentityTransformer returns its input unchanged.
type IdentityTransformer struct{}

func (IdentityTransformer) Transform(rows [][]float64) ([][]float64, error) {
	return rows, nil
}
