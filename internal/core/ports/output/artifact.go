package ports

// Predictor is the capability a model artifact must provide: one prediction per row.
type Predictor interface {
	Predict(rows [][]float64) ([]float64, error)
}

// Transformer is the capability a scaler artifact must provide. The output
// has the same shape as the input.
type Transformer interface {
	Transform(rows [][]float64) ([][]float64, error)
}

// ArtifactLoader deserializes artifacts from disk and checks their capability.
type ArtifactLoader interface {
	LoadModel(path string) (Predictor, error)
	LoadScaler(path string) (Transformer, error)
}
