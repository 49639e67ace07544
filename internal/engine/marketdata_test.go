package engine

import (
	"testing"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotNeutralConditions(t *testing.T) {
	e := NewMarketDataEngine(refdata.Load())

	cond := calmConditions()
	cond.GlobalGDPGrowthPct = 2.8
	cond.TradeVolumeIndex = 100

	got := e.Snapshot("Germany", "Electronics", cond, testNow)

	// 95e9 baseline x 1.6 electronics multiplier, no condition impact.
	require.InDelta(t, 95e9*1.6, got.MarketSizeUSD, 1)
	require.InDelta(t, got.MarketSizeUSD*1.2, got.VolumeUSD, 1)
	// 1.6 country growth + 2.4 product bonus, zero condition terms.
	require.Equal(t, 4.0, got.GrowthRatePct)
	require.Equal(t, "Europe", got.Region)
}

func TestSnapshotConditionImpactAdditive(t *testing.T) {
	e := NewMarketDataEngine(refdata.Load())

	strong := calmConditions()
	strong.GlobalGDPGrowthPct = 3.5 // +5%
	strong.TradeVolumeIndex = 106  // +3%

	weak := calmConditions()
	weak.GlobalGDPGrowthPct = 1.5 // -8%
	weak.TradeVolumeIndex = 90    // -5%

	base := 95e9 * 1.6
	gotStrong := e.Snapshot("Germany", "Electronics", strong, testNow)
	require.InDelta(t, base*1.08, gotStrong.MarketSizeUSD, 1)

	gotWeak := e.Snapshot("Germany", "Electronics", weak, testNow)
	require.InDelta(t, base*0.87, gotWeak.MarketSizeUSD, 1)
}

func TestSnapshotGrowthFloor(t *testing.T) {
	e := NewMarketDataEngine(refdata.Load())

	cond := calmConditions()
	cond.GlobalGDPGrowthPct = -10 // drags growth far below zero

	got := e.Snapshot("Russia", "Furniture", cond, testNow)
	require.Equal(t, 0.1, got.GrowthRatePct)
}

func TestSnapshotGrowthRoundedToOneDecimal(t *testing.T) {
	e := NewMarketDataEngine(refdata.Load())

	cond := calmConditions()
	cond.GlobalGDPGrowthPct = 2.93 // adds 0.065 before rounding
	cond.TradeVolumeIndex = 100

	got := e.Snapshot("Germany", "Electronics", cond, testNow)
	require.Equal(t, 4.1, got.GrowthRatePct)
}

func TestSnapshotUnknownKeysUseDefaults(t *testing.T) {
	e := NewMarketDataEngine(refdata.Load())

	cond := calmConditions()
	cond.GlobalGDPGrowthPct = 2.8
	cond.TradeVolumeIndex = 100

	got := e.Snapshot("Atlantis", "Unobtainium", cond, testNow)
	require.InDelta(t, refdata.DefaultMarketSizeUSD, got.MarketSizeUSD, 1)
	require.Equal(t, refdata.DefaultGrowthPct, got.GrowthRatePct)
	require.Equal(t, refdata.DefaultRegion, got.Region)
}

func TestAllSnapshotsCoversCrossProduct(t *testing.T) {
	tables := refdata.Load()
	e := NewMarketDataEngine(tables)

	got := e.AllSnapshots(calmConditions(), testNow)
	require.Len(t, got, len(tables.Countries())*len(tables.Products()))

	seen := make(map[string]bool, len(got))
	for _, snap := range got {
		seen[snap.Country+"|"+snap.Product] = true
		assert.Positive(t, snap.MarketSizeUSD)
		assert.GreaterOrEqual(t, snap.GrowthRatePct, 0.1)
	}
	require.Len(t, seen, len(got), "cross product must not repeat pairs")
}
