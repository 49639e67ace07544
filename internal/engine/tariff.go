package engine

import (
	"time"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/domain/models"
	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/refdata"
)

// Trade-agreement discounts as a percentage of the base rate.
const (
	euDiscountPct       = 100.0
	usCanadaDiscountPct = 50.0
)

// TariffEngine quotes effective tariff rates from baseline tables and a
// fixed trade-agreement discount schedule.
type TariffEngine struct {
	tables *refdata.Tables
}

// NewTariffEngine creates a tariff engine over the given reference
// tables.
func NewTariffEngine(tables *refdata.Tables) *TariffEngine {
	return &TariffEngine{tables: tables}
}

// Quote computes the effective tariff for a product shipped between two
// countries. Unknown inputs degrade to defaults, never error.
func (e *TariffEngine) Quote(product, fromCountry, toCountry string, now time.Time) models.TariffAssessment {
	base := e.tables.BaseTariff(product, toCountry)
	discount := e.agreementDiscount(fromCountry, toCountry)

	final := base - discount/100*base
	if final < 0 {
		final = 0
	}

	return models.TariffAssessment{
		Product:              product,
		FromCountry:          fromCountry,
		ToCountry:            toCountry,
		HSCode:               e.tables.HSCode(product),
		BaseTariffPct:        base,
		AgreementDiscountPct: discount,
		FinalTariffPct:       final,
		ComputedAt:           now,
	}
}

// agreementDiscount returns the percentage reduction for qualifying
// country pairs: intra-EU trade is tariff free, the US/Canada pair gets
// half off, everything else pays the base rate.
func (e *TariffEngine) agreementDiscount(fromCountry, toCountry string) float64 {
	if e.tables.IsEUMember(fromCountry) && e.tables.IsEUMember(toCountry) {
		return euDiscountPct
	}
	if isUSCanadaPair(fromCountry, toCountry) {
		return usCanadaDiscountPct
	}
	return 0
}

func isUSCanadaPair(a, b string) bool {
	a, b = refdata.Normalize(a), refdata.Normalize(b)
	return (a == "united states" && b == "canada") || (a == "canada" && b == "united states")
}
