package artifact

import "errors"

// StandardScaler maps x to (x - mean) / scale per column. A zero scale is
// treated as 1 so constant training columns pass through centred.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *StandardScaler) validate() error {
	if len(s.Mean) == 0 || len(s.Mean) != len(s.Scale) {
		return errors.New("standard_scaler: mean and scale must be non-empty and the same length")
	}
	return nil
}

func (s *StandardScaler) Transform(rows [][]float64) ([][]float64, error) {
	if err := checkWidth("StandardScaler", rows, len(s.Mean)); err != nil {
		return nil, err
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		scaled := make([]float64, len(row))
		for j, x := range row {
			scale := s.Scale[j]
			if scale == 0 {
				scale = 1
			}
			scaled[j] = (x - s.Mean[j]) / scale
		}
		out[i] = scaled
	}
	return out, nil
}

// MinMaxScaler maps x to x*scale + min per column.
type MinMaxScaler struct {
	Min   []float64 `json:"min"`
	Scale []float64 `json:"scale"`
}

func (s *MinMaxScaler) validate() error {
	if len(s.Min) == 0 || len(s.Min) != len(s.Scale) {
		return errors.New("min_max_scaler: min and scale must be non-empty and the same length")
	}
	return nil
}

func (s *MinMaxScaler) Transform(rows [][]float64) ([][]float64, error) {
	if err := checkWidth("MinMaxScaler", rows, len(s.Min)); err != nil {
		return nil, err
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		scaled := make([]float64, len(row))
		for j, x := range row {
			scaled[j] = x*s.Scale[j] + s.Min[j]
		}
		out[i] = scaled
	}
	return out, nil
}
