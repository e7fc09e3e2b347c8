package artifact

import "errors"

// LinearRegression predicts intercept + coef·x for each row.
type LinearRegression struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func (m *LinearRegression) validate() error {
	if len(m.Coef) == 0 {
		return errors.New("linear_regression: coef is empty")
	}
	return nil
}

func (m *LinearRegression) Predict(rows [][]float64) ([]float64, error) {
	if err := checkWidth("LinearRegression", rows, len(m.Coef)); err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		y := m.Intercept
		for j, x := range row {
			y += m.Coef[j] * x
		}
		out[i] = y
	}
	return out, nil
}
