package utils

import "github.com/shopspring/decimal"

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}

func RoundWithOneDecimalPlace(f float64) float64 {
	return Round(f, 1)
}

// Round arredonda usando aritmética decimal para evitar resíduos de ponto flutuante
func Round(f float64, places int32) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}

// Percent calcula part/total*100, retornando 0 quando total não é positivo
func Percent(part, total float64) float64 {
	if total <= 0 {
		return 0
	}

	return decimal.NewFromFloat(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromFloat(total)).
		InexactFloat64()
}
