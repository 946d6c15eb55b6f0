package utils

import (
	"math"

	"github.com/dustin/go-humanize"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatAmount renders a monetary value with thousands separators and no
// decimals ("1,234,568").
func FormatAmount(f float64) string {
	return humanize.Comma(int64(math.Round(f)))
}
