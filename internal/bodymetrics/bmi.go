package bodymetrics

import "fmt"

// Category is a BMI classification band.
type Category int

const (
	Underweight Category = iota
	Normal
	Overweight
	Obese
)

// String returns the Portuguese label shown to the user.
func (c Category) String() string {
	switch c {
	case Underweight:
		return "Abaixo do peso"
	case Normal:
		return "Peso normal"
	case Overweight:
		return "Sobrepeso"
	case Obese:
		return "Obesidade"
	default:
		return "Desconhecido"
	}
}

// BMI computes the body mass index from weight in kilograms and height in
// centimeters.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be positive, got %.1f", weightKg)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("height must be positive, got %.1f", heightCm)
	}

	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// Classify maps a BMI value onto its band. Bands are half-open with the
// lower bound inclusive: 18.5 is already normal, 25 already overweight,
// 30 already obese.
func Classify(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Normal
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}
