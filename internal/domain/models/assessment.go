package models

import "time"

// Provenance markers for assessments. A degraded answer produced by the
// facade's fallback path carries SourceBaselineFallback so callers can
// tell it apart from a fully simulated one.
const (
	SourceSimulation       = "simulation"
	SourceBaselineFallback = "baseline-fallback"
)

// Trend labels derived from the current market conditions.
const (
	TrendImproving     = "improving"
	TrendStable        = "stable"
	TrendDeteriorating = "deteriorating"
)

// RiskAssessment is the composite risk picture for a country (and
// optionally a product). Scores are integers; overall is clamped to
// [10,85], sub-scores to [0,95].
type RiskAssessment struct {
	Country         string    `json:"country"`
	Product         string    `json:"product,omitempty"`
	OverallRisk     int       `json:"overallRisk"`
	PoliticalRisk   int       `json:"politicalRisk"`
	EconomicRisk    int       `json:"economicRisk"`
	CurrencyRisk    int       `json:"currencyRisk"`
	TradeRisk       int       `json:"tradeRisk"`
	Factors         []string  `json:"factors"`
	Recommendations []string  `json:"recommendations"`
	Trend           string    `json:"trend"`
	Source          string    `json:"source"`
	ComputedAt      time.Time `json:"computedAt"`
}

// TariffAssessment is the effective tariff quote for a product shipped
// between two countries.
type TariffAssessment struct {
	Product              string    `json:"product"`
	FromCountry          string    `json:"fromCountry"`
	ToCountry            string    `json:"toCountry"`
	HSCode               string    `json:"hsCode"`
	BaseTariffPct        float64   `json:"baseTariffPct"`
	AgreementDiscountPct float64   `json:"agreementDiscountPct"`
	FinalTariffPct       float64   `json:"finalTariffPct"`
	ComputedAt           time.Time `json:"computedAt"`
}

// MarketSnapshot carries condition-adjusted market size and growth for
// one country/product pair.
type MarketSnapshot struct {
	Country       string    `json:"country"`
	Product       string    `json:"product"`
	MarketSizeUSD float64   `json:"marketSizeUSD"`
	VolumeUSD     float64   `json:"volumeUSD"`
	GrowthRatePct float64   `json:"growthRatePct"`
	Region        string    `json:"region"`
	ComputedAt    time.Time `json:"computedAt"`
}
