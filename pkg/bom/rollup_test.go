package bom

import (
	"math"
	"testing"
)

func testEngine() *Engine {
	components := []Component{
		{
			ID: "comp-a",
			TierPrices: map[int]float64{
				50: 4.50, 100: 4.00, 200: 3.50, 500: 3.00, 1000: 2.80,
			},
		},
		{
			ID: "comp-b",
			TierPrices: map[int]float64{
				50: 7.00, 100: 6.50, 200: 6.00, 500: 5.00,
			},
		},
	}
	entries := []Entry{
		{ProductID: "widget", ComponentID: "comp-a", Quantity: 2},
		{ProductID: "widget", ComponentID: "comp-b", Quantity: 1},
		{ProductID: "orphan", ComponentID: "missing-comp", Quantity: 3},
	}
	products := map[string]CostConfig{
		"widget": RolledUpCost(1.3),
		"gadget": ManualCost(9.99),
		"orphan": RolledUpCost(1.0),
	}
	return NewEngine(nil, components, entries, products)
}

func TestNearestTier(t *testing.T) {
	tests := []struct {
		name     string
		volume   int
		expected int
	}{
		{name: "Exact tier", volume: 500, expected: 500},
		{name: "Below lowest tier", volume: 10, expected: 50},
		{name: "Above highest tier", volume: 50000, expected: 10000},
		{name: "Rounds down", volume: 480, expected: 500},
		{name: "Rounds up", volume: 130, expected: 100},
		{name: "Tie breaks toward lower tier", volume: 75, expected: 50},
		{name: "Tie between mid tiers", volume: 150, expected: 100},
		{name: "Zero volume", volume: 0, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestTier(tt.volume); got != tt.expected {
				t.Errorf("NearestTier(%d) = %d, expected %d", tt.volume, got, tt.expected)
			}
		})
	}
}

func TestUnitCostRollup(t *testing.T) {
	engine := testEngine()

	// 2 x comp-a (3.00 at tier 500) + 1 x comp-b (5.00 at tier 500),
	// overhead coefficient 1.3, volume 480 snaps to tier 500.
	got := engine.UnitCost("widget", 480)
	expected := (2*3.00 + 1*5.00) * 1.3
	if math.Abs(got-expected) > 0.001 {
		t.Errorf("UnitCost(widget, 480) = %.4f, expected %.4f", got, expected)
	}
}

func TestUnitCostManualMode(t *testing.T) {
	engine := testEngine()

	// Manual mode ignores volume entirely.
	for _, volume := range []int{1, 480, 10000} {
		if got := engine.UnitCost("gadget", volume); got != 9.99 {
			t.Errorf("UnitCost(gadget, %d) = %.2f, expected 9.99", volume, got)
		}
	}
}

func TestUnitCostLenientDefaults(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name      string
		productID string
		volume    int
		expected  float64
	}{
		{name: "Unknown product returns zero", productID: "nope", volume: 500, expected: 0},
		{name: "Missing component price contributes zero", productID: "orphan", volume: 500, expected: 0},
		{name: "Missing tier price contributes zero", productID: "widget", volume: 5000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.UnitCost(tt.productID, tt.volume); got != tt.expected {
				t.Errorf("UnitCost(%s, %d) = %.2f, expected %.2f", tt.productID, tt.volume, got, tt.expected)
			}
		})
	}
}

func TestUnitCostVolumeTierEffect(t *testing.T) {
	engine := testEngine()

	// Higher volume snaps to a cheaper tier for comp-a; comp-b has no price
	// at tier 1000 so it drops out of the roll-up there.
	atTier500 := engine.UnitCost("widget", 500)
	atTier1000 := engine.UnitCost("widget", 1000)
	if atTier1000 >= atTier500 {
		t.Errorf("expected unit cost at tier 1000 (%.2f) below tier 500 (%.2f)", atTier1000, atTier500)
	}
	expected := 2 * 2.80 * 1.3
	if math.Abs(atTier1000-expected) > 0.001 {
		t.Errorf("UnitCost(widget, 1000) = %.4f, expected %.4f", atTier1000, expected)
	}
}
