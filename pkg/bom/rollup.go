// Package bom provides bill-of-materials cost roll-up across volume tiers.
package bom

import (
	"fmt"

	"github.com/venturecast/venturecast/pkg/constants"
	"go.uber.org/zap"
)

// Component is a purchasable part with prices quoted at discrete volume tiers.
type Component struct {
	ID         string
	Name       string
	TierPrices map[int]float64 // volume tier -> unit price
}

// Entry is one line of a product's bill of materials.
type Entry struct {
	ProductID   string
	ComponentID string
	Quantity    float64 // quantity per finished unit
}

type costMode int

const (
	costModeRollup costMode = iota
	costModeManual
)

// CostConfig describes how one product's unit cost is resolved. The two modes
// are mutually exclusive: a manual cost bypasses the BOM entirely.
type CostConfig struct {
	mode     costMode
	manual   float64
	overhead float64
}

// ManualCost declares a fixed unit cost for a product.
func ManualCost(unitCost float64) CostConfig {
	return CostConfig{mode: costModeManual, manual: unitCost}
}

// RolledUpCost declares that a product's unit cost is derived from its BOM,
// scaled by a labor/assembly overhead coefficient.
func RolledUpCost(overheadCoefficient float64) CostConfig {
	if overheadCoefficient <= 0 {
		overheadCoefficient = constants.DefaultOverheadCoefficient
	}
	return CostConfig{mode: costModeRollup, overhead: overheadCoefficient}
}

// Engine resolves product unit costs from component price tables.
type Engine struct {
	logger     *zap.Logger
	components map[string]Component
	entries    map[string][]Entry
	products   map[string]CostConfig
}

// NewEngine creates a cost roll-up engine over the given catalog.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger, components []Component, entries []Entry, products map[string]CostConfig) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		logger:     logger,
		components: make(map[string]Component),
		entries:    make(map[string][]Entry),
		products:   make(map[string]CostConfig),
	}
	for _, component := range components {
		e.components[component.ID] = component
	}
	for _, entry := range entries {
		e.entries[entry.ProductID] = append(e.entries[entry.ProductID], entry)
	}
	for id, cfg := range products {
		e.products[id] = cfg
	}
	return e
}

// NearestTier snaps an arbitrary volume to the nearest quoted volume tier.
// Ties break toward the lower tier.
func NearestTier(volume int) int {
	tiers := constants.VolumeTiers
	nearest := tiers[0]
	for _, tier := range tiers[1:] {
		if abs(tier-volume) < abs(nearest-volume) {
			nearest = tier
		}
	}
	return nearest
}

// UnitCost resolves a product's unit cost at the given production volume.
// Unknown products and missing component prices contribute zero rather than
// an error; callers render zero-cost outputs as a dash.
func (e *Engine) UnitCost(productID string, volume int) float64 {
	cfg, ok := e.products[productID]
	if !ok {
		e.logger.Debug(fmt.Sprintf("unknown product %s, returning zero unit cost", productID),
			zap.String("op", "bom.UnitCost"),
		)
		return 0
	}

	if cfg.mode == costModeManual {
		return cfg.manual
	}

	tier := NearestTier(volume)
	total := 0.0
	for _, entry := range e.entries[productID] {
		total += entry.Quantity * e.componentPrice(entry.ComponentID, tier)
	}
	return total * cfg.overhead
}

// componentPrice returns the price of a component at a tier, or 0 when the
// component or the tier price is absent.
func (e *Engine) componentPrice(componentID string, tier int) float64 {
	component, ok := e.components[componentID]
	if !ok {
		e.logger.Debug(fmt.Sprintf("unknown component %s at tier %d, contributing zero", componentID, tier),
			zap.String("op", "bom.componentPrice"),
		)
		return 0
	}
	price, ok := component.TierPrices[tier]
	if !ok {
		return 0
	}
	return price
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
