package models

// RiskRequest is the query shape for risk assessments. Product is
// optional; an empty product assesses the country alone.
type RiskRequest struct {
	Country string `query:"country" json:"country" validate:"required"`
	Product string `query:"product" json:"product"`
}

// TariffRequest is the query shape for tariff quotes.
type TariffRequest struct {
	Product     string `query:"product" json:"product" validate:"required"`
	FromCountry string `query:"from" json:"from" validate:"required"`
	ToCountry   string `query:"to" json:"to" validate:"required"`
}

// MarketRequest is the query shape for a single market snapshot.
type MarketRequest struct {
	Country string `query:"country" json:"country" validate:"required"`
	Product string `query:"product" json:"product" validate:"required"`
}
