// Package usecase hosts the intelligence facade, the single entry point
// HTTP handlers and the broadcast scheduler use to query the simulated
// market model.
package usecase

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/models"
	domrepo "github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/repository"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/engine"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/refdata"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/simulation"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/cache"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/pkg/logger"
)

const allMarketDataKey = "all"

// Intelligence wraps the scoring engines behind TTL caches and holds
// the current market-condition snapshot. One instance is shared by all
// HTTP handlers and the broadcast path; the snapshot is replaced, never
// mutated, on each refresh.
type Intelligence struct {
	tables *refdata.Tables
	risk   *engine.RiskEngine
	tariff *engine.TariffEngine
	market *engine.MarketDataEngine

	risks     *cache.Store[models.RiskAssessment]
	tariffs   *cache.Store[models.TariffAssessment]
	snapshots *cache.Store[models.MarketSnapshot]
	bulk      *cache.Store[[]models.MarketSnapshot]

	cond atomic.Pointer[models.MarketConditions]

	// assessRisk is the risk computation behind GetRisk. Kept as a field
	// so tests can stand in a faulting computation and exercise the
	// baseline fallback.
	assessRisk func(country, product string, cond models.MarketConditions, now time.Time) models.RiskAssessment

	now     func() time.Time
	log     *logger.Logger
	metrics domrepo.Metrics
}

type intelligenceOptions struct {
	now func() time.Time
	ttl time.Duration
}

// IntelligenceOption configures the facade.
type IntelligenceOption func(*intelligenceOptions)

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) IntelligenceOption {
	return func(o *intelligenceOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithCacheTTL overrides the per-entry cache TTL.
func WithCacheTTL(ttl time.Duration) IntelligenceOption {
	return func(o *intelligenceOptions) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// NewIntelligence creates the facade and primes the condition snapshot.
func NewIntelligence(tables *refdata.Tables, log *logger.Logger, metrics domrepo.Metrics, opts ...IntelligenceOption) *Intelligence {
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = domrepo.NopMetrics{}
	}
	o := intelligenceOptions{now: time.Now, ttl: cache.DefaultTTL}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Intelligence{
		tables:    tables,
		risk:      engine.NewRiskEngine(tables),
		tariff:    engine.NewTariffEngine(tables),
		market:    engine.NewMarketDataEngine(tables),
		risks:     cache.New[models.RiskAssessment](cache.WithTTL(o.ttl), cache.WithClock(o.now)),
		tariffs:   cache.New[models.TariffAssessment](cache.WithTTL(o.ttl), cache.WithClock(o.now)),
		snapshots: cache.New[models.MarketSnapshot](cache.WithTTL(o.ttl), cache.WithClock(o.now)),
		bulk:      cache.New[[]models.MarketSnapshot](cache.WithTTL(o.ttl), cache.WithClock(o.now)),
		now:       o.now,
		log:       log,
		metrics:   metrics,
	}
	s.assessRisk = s.risk.Assess
	s.Refresh()
	return s
}

// Refresh re-samples conditions at the current instant and drops every
// cached result. Called once per scheduler cycle.
func (s *Intelligence) Refresh() {
	cond := simulation.Sample(s.now())
	s.cond.Store(&cond)

	s.risks.InvalidateAll()
	s.tariffs.InvalidateAll()
	s.snapshots.InvalidateAll()
	s.bulk.InvalidateAll()

	s.log.Debug("market conditions refreshed",
		logger.Time("timestamp", cond.Timestamp),
		logger.Float64("inflation", cond.GlobalInflationPct),
		logger.Float64("vix", cond.VIXIndex),
	)
}

// Conditions returns the snapshot all computations currently use.
func (s *Intelligence) Conditions() models.MarketConditions {
	return *s.cond.Load()
}

// GetRisk returns the cached or freshly computed risk assessment for a
// country and optional product. A computation fault degrades to a
// baseline-only assessment instead of failing.
func (s *Intelligence) GetRisk(country, product string) (out models.RiskAssessment) {
	key := riskKey(country, product)
	if v, ok := s.risks.Get(key); ok {
		s.metrics.RecordCacheHit("risk")
		return v
	}
	s.metrics.RecordCacheMiss("risk")

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("risk computation fault, serving baseline",
				logger.String("country", country),
				logger.String("product", product),
				logger.Any("panic", r),
			)
			out = s.risk.Baseline(country, product, s.now())
			s.metrics.RecordQuery("risk", out.Source)
		}
	}()

	out = s.assessRisk(country, product, s.Conditions(), s.now())
	s.risks.Set(key, out)
	s.metrics.RecordQuery("risk", out.Source)
	return out
}

// GetTariff returns the cached or freshly computed tariff quote.
func (s *Intelligence) GetTariff(product, fromCountry, toCountry string) models.TariffAssessment {
	key := tariffKey(product, fromCountry, toCountry)
	if v, ok := s.tariffs.Get(key); ok {
		s.metrics.RecordCacheHit("tariff")
		return v
	}
	s.metrics.RecordCacheMiss("tariff")

	out := s.tariff.Quote(product, fromCountry, toCountry, s.now())
	s.tariffs.Set(key, out)
	s.metrics.RecordQuery("tariff", models.SourceSimulation)
	return out
}

// GetMarketSnapshot returns the cached or freshly computed snapshot for
// one country/product pair.
func (s *Intelligence) GetMarketSnapshot(country, product string) models.MarketSnapshot {
	key := marketKey(country, product)
	if v, ok := s.snapshots.Get(key); ok {
		s.metrics.RecordCacheHit("market")
		return v
	}
	s.metrics.RecordCacheMiss("market")

	out := s.market.Snapshot(country, product, s.Conditions(), s.now())
	s.snapshots.Set(key, out)
	s.metrics.RecordQuery("market", models.SourceSimulation)
	return out
}

// GetAllMarketData returns the full known-countries x known-products
// cross product.
func (s *Intelligence) GetAllMarketData() []models.MarketSnapshot {
	if v, ok := s.bulk.Get(allMarketDataKey); ok {
		s.metrics.RecordCacheHit("market_all")
		return v
	}
	s.metrics.RecordCacheMiss("market_all")

	start := s.now()
	out := s.market.AllSnapshots(s.Conditions(), start)
	s.bulk.Set(allMarketDataKey, out)
	s.metrics.RecordQuery("market_all", models.SourceSimulation)
	s.metrics.RecordLatency("market_all", time.Since(start).Seconds())
	return out
}

// GetEconomicIndicators summarizes the current conditions for
// dashboards and the broadcast feed.
func (s *Intelligence) GetEconomicIndicators() models.EconomicIndicators {
	cond := s.Conditions()
	s.metrics.RecordQuery("indicators", models.SourceSimulation)
	return models.EconomicIndicators{
		GlobalGDP:   cond.GlobalGDPGrowthPct,
		Inflation:   cond.GlobalInflationPct,
		Commodities: models.CommodityIndicators{Oil: cond.OilPriceUSD, Gold: cond.GoldPriceUSD},
		Currencies:  models.CurrencyIndicators{USDIndex: cond.USDIndex},
		Volatility:  models.VolatilityIndicators{VIX: cond.VIXIndex},
		TradeVolume: models.TradeVolumeIndicators{Index: cond.TradeVolumeIndex},
		LastUpdated: cond.Timestamp,
	}
}

// MarketUpdate assembles the event published to broadcast subscribers.
func (s *Intelligence) MarketUpdate() models.MarketUpdate {
	return models.MarketUpdate{
		MarketData:   s.GetAllMarketData(),
		EconomicData: s.GetEconomicIndicators(),
		Timestamp:    s.now(),
	}
}

func riskKey(country, product string) string {
	return fmt.Sprintf("risk:%s:%s", refdata.Normalize(country), refdata.Normalize(product))
}

func tariffKey(product, from, to string) string {
	return fmt.Sprintf("tariff:%s:%s:%s", refdata.Normalize(product), refdata.Normalize(from), refdata.Normalize(to))
}

func marketKey(country, product string) string {
	return fmt.Sprintf("market:%s:%s", refdata.Normalize(country), refdata.Normalize(product))
}
