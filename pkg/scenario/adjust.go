// Package scenario applies multiplicative what-if adjustments to base
// business inputs before projection.
package scenario

import (
	"math"

	"github.com/venturecast/venturecast/pkg/constants"
)

// Config holds the signed fractional adjustments for one scenario variant.
// All three fields are independently editable; the presets below are only
// starting points.
type Config struct {
	Name             string
	VolumeAdjustment float64
	PriceAdjustment  float64
	OpexAdjustment   float64
}

// Conservative returns the pessimistic preset (-20% volume).
func Conservative() Config {
	return Config{Name: "conservative", VolumeAdjustment: constants.ConservativeVolumeAdjustment}
}

// Base returns the unadjusted preset.
func Base() Config {
	return Config{Name: "base"}
}

// Ambitious returns the optimistic preset (+25% volume).
func Ambitious() Config {
	return Config{Name: "ambitious", VolumeAdjustment: constants.AmbitiousVolumeAdjustment}
}

// Presets returns the three named scenario variants.
func Presets() []Config {
	return []Config{Conservative(), Base(), Ambitious()}
}

// AdjustVolume scales a unit volume and rounds to a whole unit count.
// Rounding happens here, before any price is applied; revenue derives from
// the rounded volume.
func (c Config) AdjustVolume(volume int) int {
	adjusted := math.Round(float64(volume) * (1 + c.VolumeAdjustment))
	if adjusted < 0 {
		return 0
	}
	return int(adjusted)
}

// AdjustPrice scales a unit price.
func (c Config) AdjustPrice(price float64) float64 {
	return price * (1 + c.PriceAdjustment)
}

// AdjustOpex scales an OPEX amount.
func (c Config) AdjustOpex(amount float64) float64 {
	return amount * (1 + c.OpexAdjustment)
}
