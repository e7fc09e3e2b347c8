package dto

import (
	"encoding/json"
	"errors"
	"io"

	"car-price-service/internal/core/domain"
)

type PredictionResponse struct {
	PredictedPrice string `json:"predicted_price"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	errEmptyBody    = errors.New("request body is empty")
	errTrailingData = errors.New("unexpected data after JSON body")
	errNotAnObject  = errors.New("request body must be a JSON object")
)

// DecodePredictionRequest parses the body into a generic object so that
// field presence and numeric conversion can be checked separately. Numbers
// are kept as json.Number.
func DecodePredictionRequest(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyBody
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	switch v := body.(type) {
	case map[string]any:
		return v, nil
	case []any:
		// An array can never carry the named fields.
		return nil, domain.ErrIncompleteData
	default:
		return nil, errNotAnObject
	}
}
