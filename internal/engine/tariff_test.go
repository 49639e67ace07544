package engine

import (
	"testing"

	"github.com/Sravyamissula/trade-Genie-Final-Do-sub000/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteIntraEUIsTariffFree(t *testing.T) {
	e := NewTariffEngine(refdata.Load())

	got := e.Quote("Electronics", "Germany", "France", testNow)
	require.Equal(t, 100.0, got.AgreementDiscountPct)
	require.Equal(t, 0.0, got.FinalTariffPct)
	require.Equal(t, 2.8, got.BaseTariffPct)
	require.Equal(t, "8517.62.00", got.HSCode)
}

func TestQuoteUSCanadaHalvesBase(t *testing.T) {
	e := NewTariffEngine(refdata.Load())

	got := e.Quote("Electronics", "United States", "Canada", testNow)
	require.Equal(t, 50.0, got.AgreementDiscountPct)
	require.Equal(t, 3.0, got.BaseTariffPct)
	require.Equal(t, 1.5, got.FinalTariffPct)

	// Symmetric in direction.
	back := e.Quote("Electronics", "Canada", "United States", testNow)
	require.Equal(t, 50.0, back.AgreementDiscountPct)
}

func TestQuoteNoAgreementPaysBase(t *testing.T) {
	e := NewTariffEngine(refdata.Load())

	got := e.Quote("Textiles", "China", "Brazil", testNow)
	require.Equal(t, 0.0, got.AgreementDiscountPct)
	require.Equal(t, got.BaseTariffPct, got.FinalTariffPct)
	require.Equal(t, 20.0, got.FinalTariffPct)
}

func TestQuoteUnknownInputsDegradeToDefaults(t *testing.T) {
	e := NewTariffEngine(refdata.Load())

	got := e.Quote("Unobtainium", "X", "Y", testNow)
	require.Equal(t, refdata.DefaultTariffPct, got.BaseTariffPct)
	require.Equal(t, refdata.DefaultTariffPct, got.FinalTariffPct)
	require.Equal(t, refdata.DefaultHSCode, got.HSCode)
	require.Equal(t, 0.0, got.AgreementDiscountPct)
}

func TestQuoteFloorAcrossAllPairs(t *testing.T) {
	tables := refdata.Load()
	e := NewTariffEngine(tables)

	for _, product := range tables.Products() {
		for _, from := range tables.Countries() {
			for _, to := range tables.Countries() {
				got := e.Quote(product, from, to, testNow)
				assert.GreaterOrEqual(t, got.FinalTariffPct, 0.0)
				if tables.IsEUMember(from) && tables.IsEUMember(to) {
					assert.Equal(t, 0.0, got.FinalTariffPct, "%s %s->%s", product, from, to)
				}
			}
		}
	}
}
