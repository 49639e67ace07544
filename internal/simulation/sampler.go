// Package simulation produces deterministic, time-varying market
// conditions. Sample is a pure function of the supplied timestamp, so
// every process observing the same instant computes the same snapshot.
package simulation

import (
	"math"
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/models"
)

// Baselines and oscillation amplitudes for each indicator. Amplitudes
// are split across time granularities (day-of-year, hour-of-day,
// minute-of-hour, second-of-minute) so the series moves on several
// timescales at once.
const (
	inflationBase = 3.2
	oilBase       = 75.0
	goldBase      = 1950.0
	usdBase       = 103.0
	vixBase       = 18.0
	gdpBase       = 2.8
	tradeVolBase  = 100.0
)

// Sample derives a MarketConditions snapshot from now. The timestamp is
// normalized to UTC first; no clamping is applied here, downstream
// engines clamp their own derived scores.
func Sample(now time.Time) models.MarketConditions {
	now = now.UTC()

	day := float64(now.YearDay())
	hour := float64(now.Hour())
	minute := float64(now.Minute())
	second := float64(now.Second())

	return models.MarketConditions{
		Timestamp:          now,
		GlobalInflationPct: inflationBase + 0.8*wave(day, 365) + 0.3*wave(hour, 24),
		OilPriceUSD:        oilBase + 12*wave(day, 180) + 5*wave(hour, 24) + 3*wave(minute, 60),
		GoldPriceUSD:       goldBase + 60*cowave(day, 365) + 20*wave(hour, 12),
		USDIndex:           usdBase + 4*wave(day, 90) + 2*cowave(hour, 24),
		VIXIndex:           vixBase + 8*wave(day, 30) + 4*wave(hour, 6) + 1*wave(second, 60),
		GlobalGDPGrowthPct: gdpBase + 0.7*wave(day, 365) + 0.3*cowave(hour, 24),
		TradeVolumeIndex:   tradeVolBase + 10*wave(day, 120) + 3*cowave(hour, 24) + 1*wave(minute, 60),
	}
}

// wave is one full sine cycle over the given period.
func wave(x, period float64) float64 {
	return math.Sin(2 * math.Pi * x / period)
}

// cowave is the cosine counterpart, phase-shifted a quarter period.
func cowave(x, period float64) float64 {
	return math.Cos(2 * math.Pi * x / period)
}
