package utils

import "math"

// RoundMoney rounds to two decimals; all stored totals go through this so
// that recomputed sums stay comparable.
func RoundMoney(value float64) float64 {
	return math.Round(value*100) / 100
}
