package domain

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatUSD renders v as US currency with thousands separators and two
// decimals, e.g. 1234.5 -> "$1,234.50" and -12 -> "$-12.00". Non-finite
// values render as "$nan", "$inf" and "$-inf".
func FormatUSD(v float64) string {
	switch {
	case math.IsNaN(v):
		return "$nan"
	case math.IsInf(v, 1):
		return "$inf"
	case math.IsInf(v, -1):
		return "$-inf"
	}
	return "$" + message.NewPrinter(language.AmericanEnglish).Sprintf("%.2f", v)
}
