// Package refdata holds the static per-country and per-product baseline
// tables the intelligence engines compose with simulated market
// conditions. Tables are loaded once at startup and never mutated.
package refdata

import (
	"sort"
	"strings"
)

// Documented defaults for keys missing from the tables. Unknown inputs
// never error; they resolve to these constants.
const (
	DefaultBaseRisk      = 40
	DefaultSubRisk       = 40
	DefaultGrowthPct     = 3.0
	DefaultMarketSizeUSD = 5e9
	DefaultTariffPct     = 5.0
	DefaultHSCode        = "0000.00.00"
	DefaultRegion        = "Other"
)

// Tables is the read-only reference data set.
type Tables struct {
	countries map[string]CountryProfile
	products  map[string]ProductProfile

	countryNames []string
	productNames []string
}

// Load builds the reference tables from the embedded data. The result
// is safe for concurrent readers.
func Load() *Tables {
	t := &Tables{
		countries: countryProfiles,
		products:  productProfiles,
	}
	for name := range t.countries {
		t.countryNames = append(t.countryNames, name)
	}
	for name := range t.products {
		t.productNames = append(t.productNames, name)
	}
	sort.Strings(t.countryNames)
	sort.Strings(t.productNames)
	return t
}

// Normalize maps a user-supplied country or product name onto the table
// key space.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Country returns the profile for a country, reporting whether it is a
// known one.
func (t *Tables) Country(name string) (CountryProfile, bool) {
	p, ok := t.countries[Normalize(name)]
	return p, ok
}

// Product returns the profile for a product category, reporting whether
// it is a known one.
func (t *Tables) Product(name string) (ProductProfile, bool) {
	p, ok := t.products[Normalize(name)]
	return p, ok
}

// Countries lists known country keys in sorted order.
func (t *Tables) Countries() []string { return t.countryNames }

// Products lists known product keys in sorted order.
func (t *Tables) Products() []string { return t.productNames }

// Region returns the region for a country, or DefaultRegion.
func (t *Tables) Region(country string) string {
	if p, ok := t.Country(country); ok && p.Region != "" {
		return p.Region
	}
	return DefaultRegion
}

// IsEUMember reports membership in the fixed EU discount set.
func (t *Tables) IsEUMember(country string) bool {
	return euMembers[Normalize(country)]
}

// IsEnergyDependent reports membership in the fixed energy-dependent
// country set used by the risk engine's oil-price term.
func (t *Tables) IsEnergyDependent(country string) bool {
	return energyDependent[Normalize(country)]
}

// HSCode returns the HS classification for a product, or DefaultHSCode.
func (t *Tables) HSCode(product string) string {
	if p, ok := t.Product(product); ok && p.HSCode != "" {
		return p.HSCode
	}
	return DefaultHSCode
}

// BaseTariff returns the baseline tariff rate for a product shipped to
// a destination country, or DefaultTariffPct.
func (t *Tables) BaseTariff(product, toCountry string) float64 {
	p, ok := t.Product(product)
	if !ok {
		return DefaultTariffPct
	}
	if rate, ok := p.BaseTariffPct[Normalize(toCountry)]; ok {
		return rate
	}
	return DefaultTariffPct
}

// Factors returns the per-country risk factor text, falling back to the
// generic set for unknown countries.
func (t *Tables) Factors(country string) []string {
	if f, ok := countryFactors[Normalize(country)]; ok {
		return f
	}
	return genericFactors
}

// Recommendations returns the per-country recommendation text, falling
// back to the generic set for unknown countries.
func (t *Tables) Recommendations(country string) []string {
	if r, ok := countryRecommendations[Normalize(country)]; ok {
		return r
	}
	return genericRecommendations
}
