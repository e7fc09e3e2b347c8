package artifact

import (
	"encoding/json"
	"fmt"
	"os"

	"car-price-service/internal/core/domain"
	ports "car-price-service/internal/core/ports/output"
)

// Artifact kinds understood by the loader.
const (
	KindLinearRegression = "linear_regression"
	KindStandardScaler   = "standard_scaler"
	KindMinMaxScaler     = "min_max_scaler"
)

var kinds = map[string]func() any{
	KindLinearRegression: func() any { return &LinearRegression{} },
	KindStandardScaler:   func() any { return &StandardScaler{} },
	KindMinMaxScaler:     func() any { return &MinMaxScaler{} },
}

type envelope struct {
	Kind string `json:"kind"`
}

type validator interface {
	validate() error
}

type FileLoader struct{}

func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

var _ ports.ArtifactLoader = (*FileLoader)(nil)

func (l *FileLoader) LoadModel(path string) (ports.Predictor, error) {
	obj, err := Decode(path)
	if err != nil {
		return nil, err
	}
	p, ok := obj.(ports.Predictor)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no predict", domain.ErrMissingCapability, path)
	}
	return p, nil
}

func (l *FileLoader) LoadScaler(path string) (ports.Transformer, error) {
	obj, err := Decode(path)
	if err != nil {
		return nil, err
	}
	t, ok := obj.(ports.Transformer)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no transform", domain.ErrMissingCapability, path)
	}
	return t, nil
}

// Decode reads the file at path and returns the artifact named by its kind.
// The caller decides which capability it needs.
func Decode(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArtifactRead, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrArtifactDecode, path, err)
	}

	newObj, ok := kinds[env.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", domain.ErrUnknownArtifactKind, env.Kind, path)
	}

	obj := newObj()
	if err := json.Unmarshal(raw, obj); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrArtifactDecode, path, err)
	}
	if v, ok := obj.(validator); ok {
		if err := v.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrArtifactDecode, path, err)
		}
	}
	return obj, nil
}

func checkWidth(name string, rows [][]float64, want int) error {
	for _, row := range rows {
		if len(row) != want {
			return fmt.Errorf("%w: X has %d features, but %s is expecting %d features as input",
				domain.ErrShapeMismatch, len(row), name, want)
		}
	}
	return nil
}
