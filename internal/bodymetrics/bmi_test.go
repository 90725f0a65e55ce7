package bodymetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{name: "typical adult", weightKg: 70, heightCm: 175, want: 22.857},
		{name: "short and light", weightKg: 50, heightCm: 160, want: 19.531},
		{name: "tall and heavy", weightKg: 110, heightCm: 190, want: 30.471},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMI(tt.weightKg, tt.heightCm)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestBMIRejectsNonPositiveInputs(t *testing.T) {
	for _, tt := range []struct {
		name     string
		weightKg float64
		heightCm float64
	}{
		{name: "zero weight", weightKg: 0, heightCm: 175},
		{name: "negative weight", weightKg: -70, heightCm: 175},
		{name: "zero height", weightKg: 70, heightCm: 0},
		{name: "negative height", weightKg: 70, heightCm: -175},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BMI(tt.weightKg, tt.heightCm)
			assert.Error(t, err)
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want Category
	}{
		{16.0, Underweight},
		{18.4999, Underweight},
		{18.5, Normal},
		{22.0, Normal},
		{24.9999, Normal},
		{25.0, Overweight},
		{29.9999, Overweight},
		{30.0, Obese},
		{42.0, Obese},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.bmi), "bmi %.4f", tt.bmi)
	}
}

func TestCategoryLabels(t *testing.T) {
	assert.Equal(t, "Abaixo do peso", Underweight.String())
	assert.Equal(t, "Peso normal", Normal.String())
	assert.Equal(t, "Sobrepeso", Overweight.String())
	assert.Equal(t, "Obesidade", Obese.String())
}
