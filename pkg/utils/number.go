package utils

import "math"

// RoundWithFourDecimalPlace arredonda com quatro casas, usado para taxas de
// engajamento que tipicamente ficam abaixo de 0.1
func RoundWithFourDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10000) / 10000
}
