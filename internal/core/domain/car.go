package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Request field names, in feature-vector order.
const (
	FieldYear       = "Year"
	FieldEngineSize = "Engine_Size"
	FieldMileage    = "Mileage"
	FieldDoors      = "Doors"
	FieldOwnerCount = "Owner_Count"
)

var RequiredFields = []string{FieldYear, FieldEngineSize, FieldMileage, FieldDoors, FieldOwnerCount}

// CarFeatures is one car's input to the price model.
type CarFeatures struct {
	Year       float64
	EngineSize float64
	Mileage    float64
	Doors      int
	OwnerCount int
}

// Vector returns the features as [Year, Engine_Size, Mileage, Doors, Owner_Count].
func (f CarFeatures) Vector() []float64 {
	return []float64{f.Year, f.EngineSize, f.Mileage, float64(f.Doors), float64(f.OwnerCount)}
}

// HasRequiredFields reports whether every required key is present. Present
// keys with a null value still count; they fail later at conversion.
func HasRequiredFields(data map[string]any) bool {
	for _, field := range RequiredFields {
		if _, ok := data[field]; !ok {
			return false
		}
	}
	return true
}

// ParseCarFeatures builds CarFeatures from a decoded JSON object.
func ParseCarFeatures(data map[string]any) (CarFeatures, error) {
	if !HasRequiredFields(data) {
		return CarFeatures{}, ErrIncompleteData
	}

	var (
		f   CarFeatures
		err error
	)
	if f.Year, err = toFloat(FieldYear, data[FieldYear]); err != nil {
		return CarFeatures{}, err
	}
	if f.EngineSize, err = toFloat(FieldEngineSize, data[FieldEngineSize]); err != nil {
		return CarFeatures{}, err
	}
	if f.Mileage, err = toFloat(FieldMileage, data[FieldMileage]); err != nil {
		return CarFeatures{}, err
	}
	if f.Doors, err = toInt(FieldDoors, data[FieldDoors]); err != nil {
		return CarFeatures{}, err
	}
	if f.OwnerCount, err = toInt(FieldOwnerCount, data[FieldOwnerCount]); err != nil {
		return CarFeatures{}, err
	}
	return f, nil
}

// toFloat accepts numbers, numeric strings and booleans. Values beyond the
// float64 range become ±Inf rather than an error.
func toFloat(field string, v any) (float64, error) {
	switch s := v.(type) {
	case nil, map[string]any, []any:
		return 0, conversionError(field, v)
	case string:
		return parseFloat(field, strings.TrimSpace(s))
	case json.Number:
		return parseFloat(field, s.String())
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, conversionError(field, v)
	}
	return f, nil
}

func parseFloat(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, conversionError(field, s)
	}
	return f, nil
}

// toInt truncates numeric values toward zero; strings must be integer literals.
func toInt(field string, v any) (int, error) {
	switch n := v.(type) {
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, conversionError(field, v)
		}
		return i, nil
	case json.Number, float64, float32, int, int64, bool:
		f, err := cast.ToFloat64E(n)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, conversionError(field, v)
		}
		t := math.Trunc(f)
		if t >= math.MaxInt64 || t < math.MinInt64 {
			return 0, conversionError(field, v)
		}
		return int(t), nil
	default:
		return 0, conversionError(field, v)
	}
}

func conversionError(field string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrConversion, field, printable(v))
}

func printable(v any) any {
	if v == nil {
		return "null"
	}
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return v
}
