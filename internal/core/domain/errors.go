package domain

import "errors"

// ============================================================================
// Prediction Errors
// ============================================================================

var (
	ErrArtifactsNotLoaded = errors.New("model or scaler failed to load")
	ErrIncompleteData     = errors.New("incomplete data")
	ErrConversion         = errors.New("could not convert value")
	ErrShapeMismatch      = errors.New("feature count mismatch")
	ErrEmptyPrediction    = errors.New("model returned no prediction")
)

// ============================================================================
// Artifact Loading Errors
// ============================================================================

var (
	ErrArtifactRead        = errors.New("artifact file could not be read")
	ErrArtifactDecode      = errors.New("artifact file could not be decoded")
	ErrUnknownArtifactKind = errors.New("unknown artifact kind")
	ErrMissingCapability   = errors.New("artifact does not provide the required capability")
)
