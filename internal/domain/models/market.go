package models

import "time"

// MarketConditions is the shared snapshot of simulated macro indicators.
// It is fully derived from a single timestamp and never mutated after
// creation; the facade replaces the whole value on each refresh tick.
type MarketConditions struct {
	Timestamp          time.Time `json:"timestamp"`
	GlobalInflationPct float64   `json:"globalInflationPct"`
	OilPriceUSD        float64   `json:"oilPriceUSD"`
	GoldPriceUSD       float64   `json:"goldPriceUSD"`
	USDIndex           float64   `json:"usdIndex"`
	VIXIndex           float64   `json:"vixIndex"`
	GlobalGDPGrowthPct float64   `json:"globalGdpGrowthPct"`
	TradeVolumeIndex   float64   `json:"tradeVolumeIndex"`
}

// CommodityIndicators groups commodity prices in the indicator summary.
type CommodityIndicators struct {
	Oil  float64 `json:"oil"`
	Gold float64 `json:"gold"`
}

// CurrencyIndicators groups currency gauges in the indicator summary.
type CurrencyIndicators struct {
	USDIndex float64 `json:"usdIndex"`
}

// VolatilityIndicators groups volatility gauges in the indicator summary.
type VolatilityIndicators struct {
	VIX float64 `json:"vix"`
}

// TradeVolumeIndicators groups trade-volume gauges in the indicator summary.
type TradeVolumeIndicators struct {
	Index float64 `json:"index"`
}

// EconomicIndicators is the dashboard-facing summary of the current
// market conditions.
type EconomicIndicators struct {
	GlobalGDP   float64               `json:"globalGDP"`
	Inflation   float64               `json:"inflation"`
	Commodities CommodityIndicators   `json:"commodities"`
	Currencies  CurrencyIndicators    `json:"currencies"`
	Volatility  VolatilityIndicators  `json:"volatility"`
	TradeVolume TradeVolumeIndicators `json:"tradeVolume"`
	LastUpdated time.Time             `json:"lastUpdated"`
}

// MarketUpdate is the event pushed to broadcast subscribers on each
// broadcast tick.
type MarketUpdate struct {
	MarketData   []MarketSnapshot   `json:"marketData"`
	EconomicData EconomicIndicators `json:"economicData"`
	Timestamp    time.Time          `json:"timestamp"`
}
