package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round up", -1.235, -1.24},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Very small negative", -0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small positive", 0.001, true},
		{"Very small negative", -0.001, true},
		{"Just above tolerance", 0.02, false},
		{"Just below negative tolerance", -0.02, false},
		{"Exactly tolerance", 0.01, true},
		{"Large positive", 100.0, false},
		{"Large negative", -100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsZero(tt.input)
			if result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsPositiveAndIsNegative(t *testing.T) {
	tests := []struct {
		name             string
		input            float64
		expectedPositive bool
		expectedNegative bool
	}{
		{"Large positive", 100.0, true, false},
		{"Small positive above tolerance", 0.02, true, false},
		{"Exactly tolerance", 0.01, false, false},
		{"Zero", 0.0, false, false},
		{"Exactly negative tolerance", -0.01, false, false},
		{"Small negative below tolerance", -0.02, false, true},
		{"Large negative", -100.0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsPositive(tt.input); result != tt.expectedPositive {
				t.Errorf("IsPositive(%v) = %v, expected %v", tt.input, result, tt.expectedPositive)
			}
			if result := IsNegative(tt.input); result != tt.expectedNegative {
				t.Errorf("IsNegative(%v) = %v, expected %v", tt.input, result, tt.expectedNegative)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Identical values", 100.0, 100.0, 0.01, true},
		{"Within tolerance", 100.0, 100.005, 0.01, true},
		{"Exactly at tolerance", 100.0, 100.01, 0.01, true},
		{"Outside tolerance", 100.0, 100.02, 0.01, false},
		{"Negative values within", -50.0, -50.005, 0.01, true},
		{"Opposite signs outside", 1.0, -1.0, 0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestWithinRelativeTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val       float64
		reference float64
		fraction  float64
		expected  bool
	}{
		{"Exact match", 120000.0, 120000.0, 0.01, true},
		{"Just inside one percent", 119000.0, 120000.0, 0.01, true},
		{"Exactly one percent", 118800.0, 120000.0, 0.01, true},
		{"Outside one percent", 118000.0, 120000.0, 0.01, false},
		{"Zero reference, zero value", 0.0, 0.0, 0.01, true},
		{"Zero reference, nonzero value", 5.0, 0.0, 0.01, false},
		{"Negative reference within", -99.5, -100.0, 0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinRelativeTolerance(tt.val, tt.reference, tt.fraction)
			if result != tt.expected {
				t.Errorf("WithinRelativeTolerance(%v, %v, %v) = %v, expected %v",
					tt.val, tt.reference, tt.fraction, result, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if result := Min(3.5, 2.5); result != 2.5 {
		t.Errorf("Min(3.5, 2.5) = %v, expected 2.5", result)
	}
	if result := Min(-1.0, 1.0); result != -1.0 {
		t.Errorf("Min(-1.0, 1.0) = %v, expected -1.0", result)
	}
	if result := Max(3.5, 2.5); result != 3.5 {
		t.Errorf("Max(3.5, 2.5) = %v, expected 3.5", result)
	}
	if result := Max(-1.0, 1.0); result != 1.0 {
		t.Errorf("Max(-1.0, 1.0) = %v, expected 1.0", result)
	}
}

func TestApplyPercentage(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		percentage float64
		expected   float64
	}{
		{"Half", 200.0, 50.0, 100.0},
		{"Full", 200.0, 100.0, 200.0},
		{"Zero percent", 200.0, 0.0, 0.0},
		{"Eight percent of revenue", 250000.0, 8.0, 20000.0},
		{"Over one hundred percent", 100.0, 150.0, 150.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyPercentage(tt.value, tt.percentage)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("ApplyPercentage(%v, %v) = %v, expected %v",
					tt.value, tt.percentage, result, tt.expected)
			}
		})
	}
}
