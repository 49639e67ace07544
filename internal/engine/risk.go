// Package engine holds the scoring engines that compose reference
// baselines with the current simulated market conditions. Engines are
// pure: unknown inputs resolve to documented defaults and never error.
package engine

import (
	"math"
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/models"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/refdata"
)

// Clamp bounds for risk scores.
const (
	overallRiskMin = 10
	overallRiskMax = 85
	subRiskMin     = 0
	subRiskMax     = 95
)

// RiskEngine scores country/product risk against market conditions.
type RiskEngine struct {
	tables *refdata.Tables
}

// NewRiskEngine creates a risk engine over the given reference tables.
func NewRiskEngine(tables *refdata.Tables) *RiskEngine {
	return &RiskEngine{tables: tables}
}

// Assess computes the full risk picture for a country and an optional
// product under the given market conditions.
func (e *RiskEngine) Assess(country, product string, cond models.MarketConditions, now time.Time) models.RiskAssessment {
	profile, known := e.tables.Country(country)
	if !known {
		profile.BaseRisk = refdata.DefaultBaseRisk
		profile.PoliticalRisk = refdata.DefaultSubRisk
		profile.EconomicRisk = refdata.DefaultSubRisk
		profile.CurrencyRisk = refdata.DefaultSubRisk
		profile.TradeRisk = refdata.DefaultSubRisk
	}

	base := profile.BaseRisk
	if product != "" {
		if p, ok := e.tables.Product(product); ok {
			base += p.RiskModifier
		}
	}
	base = clampInt(base, overallRiskMin, overallRiskMax)

	impact := e.marketImpact(country, cond)
	overall := clampInt(base+impact, overallRiskMin, overallRiskMax)

	return models.RiskAssessment{
		Country:         country,
		Product:         product,
		OverallRisk:     overall,
		PoliticalRisk:   politicalRisk(profile, cond),
		EconomicRisk:    economicRisk(profile, cond),
		CurrencyRisk:    currencyRisk(profile, cond),
		TradeRisk:       tradeRisk(profile, cond),
		Factors:         e.tables.Factors(country),
		Recommendations: e.tables.Recommendations(country),
		Trend:           Trend(cond),
		Source:          models.SourceSimulation,
		ComputedAt:      now,
	}
}

// Baseline produces a minimal assessment from the reference tables
// alone, used by the facade when a computation fault is recovered.
func (e *RiskEngine) Baseline(country, product string, now time.Time) models.RiskAssessment {
	profile, known := e.tables.Country(country)
	if !known {
		profile.BaseRisk = refdata.DefaultBaseRisk
		profile.PoliticalRisk = refdata.DefaultSubRisk
		profile.EconomicRisk = refdata.DefaultSubRisk
		profile.CurrencyRisk = refdata.DefaultSubRisk
		profile.TradeRisk = refdata.DefaultSubRisk
	}

	return models.RiskAssessment{
		Country:         country,
		Product:         product,
		OverallRisk:     clampInt(profile.BaseRisk, overallRiskMin, overallRiskMax),
		PoliticalRisk:   clampInt(profile.PoliticalRisk, subRiskMin, subRiskMax),
		EconomicRisk:    clampInt(profile.EconomicRisk, subRiskMin, subRiskMax),
		CurrencyRisk:    clampInt(profile.CurrencyRisk, subRiskMin, subRiskMax),
		TradeRisk:       clampInt(profile.TradeRisk, subRiskMin, subRiskMax),
		Factors:         e.tables.Factors(country),
		Recommendations: e.tables.Recommendations(country),
		Trend:           models.TrendStable,
		Source:          models.SourceBaselineFallback,
		ComputedAt:      now,
	}
}

// marketImpact sums the condition-driven contributions to overall risk.
// Each term only applies past its threshold; the constants are
// hand-tuned presentation values, not a derived economic model.
func (e *RiskEngine) marketImpact(country string, cond models.MarketConditions) int {
	impact := 0.0
	if cond.GlobalInflationPct > 4 {
		impact += (cond.GlobalInflationPct - 4) * 2
	}
	if cond.VIXIndex > 20 {
		impact += (cond.VIXIndex - 20) * 0.5
	}
	if cond.GlobalGDPGrowthPct < 2 {
		impact += (2 - cond.GlobalGDPGrowthPct) * 3
	}
	if e.tables.IsEnergyDependent(country) && cond.OilPriceUSD > 80 {
		impact += (cond.OilPriceUSD - 80) * 0.1
	}
	return int(math.Round(impact))
}

func politicalRisk(p refdata.CountryProfile, cond models.MarketConditions) int {
	adj := 0.0
	if cond.VIXIndex > 20 {
		adj = (cond.VIXIndex - 20) * 0.4
	}
	return clampInt(p.PoliticalRisk+int(math.Round(adj)), subRiskMin, subRiskMax)
}

func economicRisk(p refdata.CountryProfile, cond models.MarketConditions) int {
	adj := 0.0
	if cond.GlobalInflationPct > 4 {
		adj += (cond.GlobalInflationPct - 4) * 2
	}
	if cond.GlobalGDPGrowthPct < 2 {
		adj += (2 - cond.GlobalGDPGrowthPct) * 2.5
	}
	return clampInt(p.EconomicRisk+int(math.Round(adj)), subRiskMin, subRiskMax)
}

func currencyRisk(p refdata.CountryProfile, cond models.MarketConditions) int {
	// Dollar strength in either direction stresses non-USD settlement.
	adj := math.Abs(cond.USDIndex-103) * 0.6
	return clampInt(p.CurrencyRisk+int(math.Round(adj)), subRiskMin, subRiskMax)
}

func tradeRisk(p refdata.CountryProfile, cond models.MarketConditions) int {
	adj := 0.0
	if cond.TradeVolumeIndex < 100 {
		adj += (100 - cond.TradeVolumeIndex) * 0.3
	}
	if cond.VIXIndex > 25 {
		adj += (cond.VIXIndex - 25) * 0.2
	}
	return clampInt(p.TradeRisk+int(math.Round(adj)), subRiskMin, subRiskMax)
}

// Trend reduces the current conditions to a coarse label.
func Trend(cond models.MarketConditions) string {
	switch {
	case cond.GlobalGDPGrowthPct > 3 && cond.GlobalInflationPct < 3.5:
		return models.TrendImproving
	case cond.VIXIndex > 25 || cond.GlobalInflationPct > 4.5:
		return models.TrendDeteriorating
	default:
		return models.TrendStable
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
