package valuation

import (
	"math"
	"testing"
)

var (
	historicalYears = []YearMetrics{
		{Year: 2023, Revenue: 100000, Ebitda: 10000, Ebit: 8000},
		{Year: 2024, Revenue: 200000, Ebitda: 30000, Ebit: 25000},
	}
	projectedYears = []YearMetrics{
		{Year: 2025, Revenue: 400000, Ebitda: 80000, Ebit: 70000},
		{Year: 2026, Revenue: 800000, Ebitda: 200000, Ebit: 180000},
	}
)

func TestSelectMetrics(t *testing.T) {
	tests := []struct {
		name     string
		sel      BasisSelection
		expected Metrics
	}{
		{
			name:     "Historical year",
			sel:      BasisSelection{Basis: BasisHistorical, HistoricalYear: 2024},
			expected: Metrics{Revenue: 200000, Ebitda: 30000, Ebit: 25000},
		},
		{
			name:     "Projected year",
			sel:      BasisSelection{Basis: BasisProjected, ProjectedYear: 2026},
			expected: Metrics{Revenue: 800000, Ebitda: 200000, Ebit: 180000},
		},
		{
			name:     "Mixed 50/50",
			sel:      BasisSelection{Basis: BasisMixed, HistoricalYear: 2024, ProjectedYear: 2025, HistoricalShare: 0.5},
			expected: Metrics{Revenue: 300000, Ebitda: 55000, Ebit: 47500},
		},
		{
			name:     "Mixed share clamped above one",
			sel:      BasisSelection{Basis: BasisMixed, HistoricalYear: 2024, ProjectedYear: 2025, HistoricalShare: 1.7},
			expected: Metrics{Revenue: 200000, Ebitda: 30000, Ebit: 25000},
		},
		{
			name:     "Average across both series",
			sel:      BasisSelection{Basis: BasisAverage, AverageYears: []int{2024, 2025}},
			expected: Metrics{Revenue: 300000, Ebitda: 55000, Ebit: 47500},
		},
		{
			name:     "Missing year contributes zero",
			sel:      BasisSelection{Basis: BasisHistorical, HistoricalYear: 2010},
			expected: Metrics{},
		},
		{
			name:     "Average with one missing year dilutes",
			sel:      BasisSelection{Basis: BasisAverage, AverageYears: []int{2024, 2010}},
			expected: Metrics{Revenue: 100000, Ebitda: 15000, Ebit: 12500},
		},
		{
			name:     "Average with empty selection",
			sel:      BasisSelection{Basis: BasisAverage},
			expected: Metrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectMetrics(tt.sel, historicalYears, projectedYears)
			if math.Abs(got.Revenue-tt.expected.Revenue) > 0.01 ||
				math.Abs(got.Ebitda-tt.expected.Ebitda) > 0.01 ||
				math.Abs(got.Ebit-tt.expected.Ebit) > 0.01 {
				t.Errorf("SelectMetrics() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}
