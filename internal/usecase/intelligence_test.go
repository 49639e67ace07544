package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/models"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/engine"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/refdata"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 7, 9, 14, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestService(clk *testClock) *Intelligence {
	return NewIntelligence(refdata.Load(), logger.Nop(), nil,
		WithClock(clk.Now),
		WithCacheTTL(2*time.Minute),
	)
}

func TestGetRiskServedFromCacheWithinTTL(t *testing.T) {
	clk := newTestClock()
	svc := newTestService(clk)

	first := svc.GetRisk("Turkey", "Energy")

	// Later call inside the TTL and without a refresh must return the
	// cached assessment, not a re-simulation.
	clk.Advance(30 * time.Second)
	second := svc.GetRisk("Turkey", "Energy")
	require.Equal(t, first, second)
	require.Equal(t, first.ComputedAt, second.ComputedAt)
}

func TestRefreshInvalidatesCachedResults(t *testing.T) {
	clk := newTestClock()
	svc := newTestService(clk)

	first := svc.GetRisk("Turkey", "Energy")

	clk.Advance(60 * time.Second)
	svc.Refresh()

	second := svc.GetRisk("Turkey", "Energy")
	require.NotEqual(t, first.ComputedAt, second.ComputedAt)
}

func TestRefreshReplacesConditionSnapshot(t *testing.T) {
	clk := newTestClock()
	svc := newTestService(clk)

	before := svc.Conditions()
	clk.Advance(time.Hour)
	svc.Refresh()
	after := svc.Conditions()

	require.NotEqual(t, before.Timestamp, after.Timestamp)
	require.True(t, after.Timestamp.After(before.Timestamp))
}

func TestGetRiskFaultServesBaselineFallback(t *testing.T) {
	clk := newTestClock()
	svc := newTestService(clk)
	svc.assessRisk = func(string, string, models.MarketConditions, time.Time) models.RiskAssessment {
		panic("computation fault")
	}

	got := svc.GetRisk("Turkey", "Energy")
	require.Equal(t, models.SourceBaselineFallback, got.Source)
	require.Equal(t, models.TrendStable, got.Trend)
	require.Equal(t, 58, got.OverallRisk)
	require.NotEmpty(t, got.Factors)

	// Degraded answers are not cached; once the computation works again
	// callers get a simulated assessment.
	svc.assessRisk = engine.NewRiskEngine(refdata.Load()).Assess
	healthy := svc.GetRisk("Turkey", "Energy")
	require.Equal(t, models.SourceSimulation, healthy.Source)
}

func TestOptionOrderDoesNotMatter(t *testing.T) {
	clk := newTestClock()
	svc := NewIntelligence(refdata.Load(), logger.Nop(), nil,
		WithCacheTTL(2*time.Minute),
		WithClock(clk.Now),
	)

	first := svc.GetRisk("Turkey", "Energy")

	// With the injected clock honored, the entry is still live and the
	// cached assessment comes back unchanged.
	clk.Advance(30 * time.Second)
	second := svc.GetRisk("Turkey", "Energy")
	require.Equal(t, first.ComputedAt, second.ComputedAt)

	// And past the TTL it expires on the injected clock, not wall time.
	clk.Advance(2 * time.Minute)
	third := svc.GetRisk("Turkey", "Energy")
	require.NotEqual(t, first.ComputedAt, third.ComputedAt)
}

func TestGetRiskUnknownCountryNeverFails(t *testing.T) {
	svc := newTestService(newTestClock())

	got := svc.GetRisk("Atlantis", "")
	require.GreaterOrEqual(t, got.OverallRisk, 10)
	require.LessOrEqual(t, got.OverallRisk, 85)
	require.NotEmpty(t, got.Factors)
}

func TestGetTariffUnknownInputsNeverFail(t *testing.T) {
	svc := newTestService(newTestClock())

	got := svc.GetTariff("Unobtainium", "X", "Y")
	require.Equal(t, refdata.DefaultTariffPct, got.BaseTariffPct)
	require.Equal(t, refdata.DefaultTariffPct, got.FinalTariffPct)
	require.Equal(t, refdata.DefaultHSCode, got.HSCode)
}

func TestGetEconomicIndicatorsMirrorsConditions(t *testing.T) {
	svc := newTestService(newTestClock())

	cond := svc.Conditions()
	got := svc.GetEconomicIndicators()

	require.Equal(t, cond.GlobalGDPGrowthPct, got.GlobalGDP)
	require.Equal(t, cond.GlobalInflationPct, got.Inflation)
	require.Equal(t, cond.OilPriceUSD, got.Commodities.Oil)
	require.Equal(t, cond.GoldPriceUSD, got.Commodities.Gold)
	require.Equal(t, cond.USDIndex, got.Currencies.USDIndex)
	require.Equal(t, cond.VIXIndex, got.Volatility.VIX)
	require.Equal(t, cond.TradeVolumeIndex, got.TradeVolume.Index)
	require.Equal(t, cond.Timestamp, got.LastUpdated)
}

func TestGetAllMarketDataCachedUntilRefresh(t *testing.T) {
	clk := newTestClock()
	svc := newTestService(clk)

	first := svc.GetAllMarketData()
	require.NotEmpty(t, first)

	clk.Advance(10 * time.Second)
	second := svc.GetAllMarketData()
	require.Equal(t, first[0].ComputedAt, second[0].ComputedAt)

	svc.Refresh()
	third := svc.GetAllMarketData()
	require.NotEqual(t, first[0].ComputedAt, third[0].ComputedAt)
}

func TestMarketUpdateCarriesBothPayloads(t *testing.T) {
	svc := newTestService(newTestClock())

	update := svc.MarketUpdate()
	require.NotEmpty(t, update.MarketData)
	require.NotZero(t, update.EconomicData.LastUpdated)
	require.False(t, update.Timestamp.IsZero())
}

func TestConcurrentQueriesAndRefresh(t *testing.T) {
	svc := newTestService(newTestClock())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = svc.GetRisk("Turkey", "Energy")
				_ = svc.GetTariff("Electronics", "Germany", "France")
				_ = svc.GetMarketSnapshot("Japan", "Automotive")
				_ = svc.GetEconomicIndicators()
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			svc.Refresh()
		}
	}()
	wg.Wait()

	got := svc.GetRisk("Turkey", "Energy")
	assert.GreaterOrEqual(t, got.OverallRisk, 10)
	assert.LessOrEqual(t, got.OverallRisk, 85)
}
