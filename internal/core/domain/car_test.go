package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBody() map[string]any {
	return map[string]any{
		"Year":        json.Number("2018"),
		"Engine_Size": json.Number("2.0"),
		"Mileage":     json.Number("45000"),
		"Doors":       json.Number("4"),
		"Owner_Count": json.Number("1"),
	}
}

func TestParseCarFeatures_Valid(t *testing.T) {
	f, err := ParseCarFeatures(validBody())
	require.NoError(t, err)

	assert.Equal(t, CarFeatures{Year: 2018, EngineSize: 2.0, Mileage: 45000, Doors: 4, OwnerCount: 1}, f)
	assert.Equal(t, []float64{2018, 2.0, 45000, 4, 1}, f.Vector())
}

func TestParseCarFeatures_MissingField(t *testing.T) {
	for _, field := range RequiredFields {
		t.Run(field, func(t *testing.T) {
			body := validBody()
			delete(body, field)

			_, err := ParseCarFeatures(body)
			assert.ErrorIs(t, err, ErrIncompleteData)
		})
	}

	_, err := ParseCarFeatures(map[string]any{})
	assert.ErrorIs(t, err, ErrIncompleteData)
}

func TestParseCarFeatures_Coercion(t *testing.T) {
	body := validBody()
	body["Year"] = " 2020 "
	body["Mileage"] = true
	body["Doors"] = json.Number("4.9")
	body["Owner_Count"] = "2"

	f, err := ParseCarFeatures(body)
	require.NoError(t, err)

	assert.Equal(t, 2020.0, f.Year)
	assert.Equal(t, 1.0, f.Mileage)
	assert.Equal(t, 4, f.Doors)
	assert.Equal(t, 2, f.OwnerCount)
}

func TestParseCarFeatures_ConversionFailure(t *testing.T) {
	cases := map[string]struct {
		field string
		value any
	}{
		"null year":         {FieldYear, nil},
		"text mileage":      {FieldMileage, "lots"},
		"object engine":     {FieldEngineSize, map[string]any{"cc": 2000}},
		"decimal string":    {FieldDoors, "4.5"},
		"array owner count": {FieldOwnerCount, []any{json.Number("1")}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			body := validBody()
			body[tc.field] = tc.value

			_, err := ParseCarFeatures(body)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConversion)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParseCarFeatures_NoRangeValidation(t *testing.T) {
	body := validBody()
	body["Mileage"] = json.Number("-10")
	body["Doors"] = json.Number("0")

	f, err := ParseCarFeatures(body)
	require.NoError(t, err)
	assert.Equal(t, -10.0, f.Mileage)
	assert.Equal(t, 0, f.Doors)
}

func TestParseCarFeatures_OutOfRangeFloat(t *testing.T) {
	body := validBody()
	body["Year"] = json.Number("1e400")
	body["Mileage"] = "-1e400"
	body["Engine_Size"] = "nan"

	f, err := ParseCarFeatures(body)
	require.NoError(t, err)
	assert.True(t, math.IsInf(f.Year, 1))
	assert.True(t, math.IsInf(f.Mileage, -1))
	assert.True(t, math.IsNaN(f.EngineSize))

	body = validBody()
	body["Doors"] = json.Number("1e400")
	_, err = ParseCarFeatures(body)
	assert.ErrorIs(t, err, ErrConversion)
}
