package engine

import (
	"math"
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/models"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/refdata"
)

// growthFloorPct is the lower bound for reported growth rates.
const growthFloorPct = 0.1

// MarketDataEngine derives market size, volume and growth figures from
// baseline tables and the current conditions.
type MarketDataEngine struct {
	tables *refdata.Tables
}

// NewMarketDataEngine creates a market-data engine over the given
// reference tables.
func NewMarketDataEngine(tables *refdata.Tables) *MarketDataEngine {
	return &MarketDataEngine{tables: tables}
}

// Snapshot computes the condition-adjusted market picture for one
// country/product pair.
func (e *MarketDataEngine) Snapshot(country, product string, cond models.MarketConditions, now time.Time) models.MarketSnapshot {
	baseSize := refdata.DefaultMarketSizeUSD
	countryGrowth := refdata.DefaultGrowthPct
	if c, ok := e.tables.Country(country); ok {
		baseSize = c.MarketSizeUSD
		countryGrowth = c.GrowthRatePct
	}

	multiplier := 1.0
	growthBonus := 0.0
	if p, ok := e.tables.Product(product); ok {
		multiplier = p.SizeMultiplier
		growthBonus = p.GrowthBonusPct
	}

	size := baseSize * multiplier * (1 + conditionImpact(cond))

	growth := countryGrowth + growthBonus +
		(cond.GlobalGDPGrowthPct-2.8)*0.5 +
		(cond.TradeVolumeIndex-100)*0.02
	if growth < growthFloorPct {
		growth = growthFloorPct
	}
	growth = math.Round(growth*10) / 10

	return models.MarketSnapshot{
		Country:       country,
		Product:       product,
		MarketSizeUSD: size,
		VolumeUSD:     size * 1.2,
		GrowthRatePct: growth,
		Region:        e.tables.Region(country),
		ComputedAt:    now,
	}
}

// AllSnapshots computes the full cross product of known countries and
// products, used for dashboard bulk loads and the broadcast feed.
func (e *MarketDataEngine) AllSnapshots(cond models.MarketConditions, now time.Time) []models.MarketSnapshot {
	countries := e.tables.Countries()
	products := e.tables.Products()

	out := make([]models.MarketSnapshot, 0, len(countries)*len(products))
	for _, c := range countries {
		for _, p := range products {
			out = append(out, e.Snapshot(c, p, cond, now))
		}
	}
	return out
}

// conditionImpact is the additive size adjustment from the GDP and
// trade-volume checks.
func conditionImpact(cond models.MarketConditions) float64 {
	impact := 0.0
	switch {
	case cond.GlobalGDPGrowthPct > 3:
		impact += 0.05
	case cond.GlobalGDPGrowthPct < 2:
		impact -= 0.08
	}
	switch {
	case cond.TradeVolumeIndex > 105:
		impact += 0.03
	case cond.TradeVolumeIndex < 95:
		impact -= 0.05
	}
	return impact
}
