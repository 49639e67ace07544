package refdata

// CountryProfile holds the static per-country baselines the engines
// start from before any condition-driven adjustment.
type CountryProfile struct {
	BaseRisk      int
	PoliticalRisk int
	EconomicRisk  int
	CurrencyRisk  int
	TradeRisk     int
	GrowthRatePct float64
	MarketSizeUSD float64
	Region        string
}

var countryProfiles = map[string]CountryProfile{
	"united states":  {BaseRisk: 25, PoliticalRisk: 20, EconomicRisk: 25, CurrencyRisk: 15, TradeRisk: 22, GrowthRatePct: 2.3, MarketSizeUSD: 180e9, Region: "North America"},
	"canada":         {BaseRisk: 22, PoliticalRisk: 15, EconomicRisk: 24, CurrencyRisk: 20, TradeRisk: 18, GrowthRatePct: 2.0, MarketSizeUSD: 45e9, Region: "North America"},
	"mexico":         {BaseRisk: 48, PoliticalRisk: 52, EconomicRisk: 45, CurrencyRisk: 42, TradeRisk: 38, GrowthRatePct: 2.6, MarketSizeUSD: 38e9, Region: "North America"},
	"germany":        {BaseRisk: 24, PoliticalRisk: 18, EconomicRisk: 28, CurrencyRisk: 18, TradeRisk: 20, GrowthRatePct: 1.6, MarketSizeUSD: 95e9, Region: "Europe"},
	"france":         {BaseRisk: 27, PoliticalRisk: 26, EconomicRisk: 29, CurrencyRisk: 18, TradeRisk: 22, GrowthRatePct: 1.5, MarketSizeUSD: 72e9, Region: "Europe"},
	"united kingdom": {BaseRisk: 28, PoliticalRisk: 24, EconomicRisk: 30, CurrencyRisk: 26, TradeRisk: 25, GrowthRatePct: 1.4, MarketSizeUSD: 68e9, Region: "Europe"},
	"italy":          {BaseRisk: 35, PoliticalRisk: 34, EconomicRisk: 40, CurrencyRisk: 18, TradeRisk: 28, GrowthRatePct: 1.1, MarketSizeUSD: 48e9, Region: "Europe"},
	"spain":          {BaseRisk: 32, PoliticalRisk: 28, EconomicRisk: 36, CurrencyRisk: 18, TradeRisk: 26, GrowthRatePct: 1.8, MarketSizeUSD: 36e9, Region: "Europe"},
	"netherlands":    {BaseRisk: 20, PoliticalRisk: 14, EconomicRisk: 22, CurrencyRisk: 18, TradeRisk: 15, GrowthRatePct: 1.9, MarketSizeUSD: 32e9, Region: "Europe"},
	"poland":         {BaseRisk: 34, PoliticalRisk: 36, EconomicRisk: 32, CurrencyRisk: 30, TradeRisk: 27, GrowthRatePct: 3.1, MarketSizeUSD: 22e9, Region: "Europe"},
	"china":          {BaseRisk: 42, PoliticalRisk: 55, EconomicRisk: 38, CurrencyRisk: 35, TradeRisk: 45, GrowthRatePct: 4.6, MarketSizeUSD: 160e9, Region: "Asia Pacific"},
	"japan":          {BaseRisk: 23, PoliticalRisk: 16, EconomicRisk: 30, CurrencyRisk: 24, TradeRisk: 19, GrowthRatePct: 1.2, MarketSizeUSD: 85e9, Region: "Asia Pacific"},
	"south korea":    {BaseRisk: 28, PoliticalRisk: 30, EconomicRisk: 26, CurrencyRisk: 25, TradeRisk: 24, GrowthRatePct: 2.4, MarketSizeUSD: 52e9, Region: "Asia Pacific"},
	"india":          {BaseRisk: 45, PoliticalRisk: 42, EconomicRisk: 44, CurrencyRisk: 40, TradeRisk: 46, GrowthRatePct: 6.2, MarketSizeUSD: 74e9, Region: "Asia Pacific"},
	"vietnam":        {BaseRisk: 50, PoliticalRisk: 48, EconomicRisk: 46, CurrencyRisk: 44, TradeRisk: 42, GrowthRatePct: 5.8, MarketSizeUSD: 26e9, Region: "Asia Pacific"},
	"australia":      {BaseRisk: 21, PoliticalRisk: 15, EconomicRisk: 23, CurrencyRisk: 22, TradeRisk: 17, GrowthRatePct: 2.2, MarketSizeUSD: 30e9, Region: "Asia Pacific"},
	"brazil":         {BaseRisk: 52, PoliticalRisk: 54, EconomicRisk: 50, CurrencyRisk: 55, TradeRisk: 44, GrowthRatePct: 2.1, MarketSizeUSD: 42e9, Region: "South America"},
	"turkey":         {BaseRisk: 58, PoliticalRisk: 60, EconomicRisk: 62, CurrencyRisk: 70, TradeRisk: 48, GrowthRatePct: 3.4, MarketSizeUSD: 28e9, Region: "Middle East"},
	"saudi arabia":   {BaseRisk: 46, PoliticalRisk: 50, EconomicRisk: 38, CurrencyRisk: 25, TradeRisk: 40, GrowthRatePct: 3.0, MarketSizeUSD: 40e9, Region: "Middle East"},
	"united arab emirates": {BaseRisk: 38, PoliticalRisk: 40, EconomicRisk: 32, CurrencyRisk: 22, TradeRisk: 30, GrowthRatePct: 3.6, MarketSizeUSD: 34e9, Region: "Middle East"},
	"russia":         {BaseRisk: 72, PoliticalRisk: 80, EconomicRisk: 68, CurrencyRisk: 72, TradeRisk: 75, GrowthRatePct: 1.0, MarketSizeUSD: 24e9, Region: "Europe"},
	"nigeria":        {BaseRisk: 62, PoliticalRisk: 65, EconomicRisk: 60, CurrencyRisk: 64, TradeRisk: 55, GrowthRatePct: 3.2, MarketSizeUSD: 14e9, Region: "Africa"},
	"south africa":   {BaseRisk: 50, PoliticalRisk: 52, EconomicRisk: 54, CurrencyRisk: 50, TradeRisk: 42, GrowthRatePct: 1.3, MarketSizeUSD: 16e9, Region: "Africa"},
	"egypt":          {BaseRisk: 56, PoliticalRisk: 58, EconomicRisk: 60, CurrencyRisk: 62, TradeRisk: 48, GrowthRatePct: 3.8, MarketSizeUSD: 12e9, Region: "Africa"},
}

// euMembers is the fixed set used for the intra-EU tariff discount.
var euMembers = map[string]bool{
	"germany": true, "france": true, "italy": true, "spain": true,
	"netherlands": true, "belgium": true, "austria": true, "ireland": true,
	"poland": true, "sweden": true, "denmark": true, "finland": true,
	"portugal": true, "greece": true, "czech republic": true, "romania": true,
	"hungary": true, "luxembourg": true,
}

// energyDependent is the fixed set of countries whose risk picks up an
// oil-price contribution.
var energyDependent = map[string]bool{
	"saudi arabia":         true,
	"russia":               true,
	"nigeria":              true,
	"united arab emirates": true,
	"venezuela":            true,
	"kazakhstan":           true,
}

var countryFactors = map[string][]string{
	"united states": {"Stable institutions and deep capital markets", "Trade policy shifts with election cycles", "Strong rule of law and contract enforcement"},
	"germany":       {"Export-oriented economy sensitive to global demand", "Energy transition raising input costs", "Highly skilled manufacturing base"},
	"france":        {"Periodic labor unrest affecting logistics", "Strong state involvement in strategic sectors", "Reliable EU regulatory framework"},
	"china":         {"Regulatory opacity and abrupt policy changes", "Concentrated supplier dependence", "Large and growing domestic demand"},
	"india":         {"Complex federal and state tax regimes", "Rapidly expanding consumer market", "Infrastructure bottlenecks at ports"},
	"brazil":        {"Currency volatility against the dollar", "Bureaucratic customs clearance", "Strong agricultural and commodity base"},
	"turkey":        {"High inflation eroding purchasing power", "Lira depreciation risk on receivables", "Strategic location bridging Europe and Asia"},
	"russia":        {"Sanctions exposure across sectors", "Payment channel restrictions", "State intervention in foreign assets"},
	"nigeria":       {"Foreign exchange scarcity", "Port congestion in Lagos", "Large consumer base with growing middle class"},
	"mexico":        {"Nearshoring tailwinds from North American demand", "Security concerns on inland routes", "USMCA preferential access"},
	"vietnam":       {"Fast-growing export manufacturing hub", "Customs procedures still maturing", "Rising labor costs in coastal zones"},
}

var countryRecommendations = map[string][]string{
	"united states": {"Standard payment terms are acceptable", "Review state-level regulations for your category"},
	"germany":       {"Certify products to EU norms before shipment", "Open settlement in euros to avoid conversion spread"},
	"france":        {"Build slack into delivery schedules around strike seasons", "Use EU-standard contracts"},
	"china":         {"Use confirmed letters of credit for new buyers", "Diversify suppliers across provinces"},
	"india":         {"Engage a local customs broker early", "Quote prices inclusive of GST to avoid disputes"},
	"brazil":        {"Hedge receivables against real volatility", "Allow extra lead time for customs clearance"},
	"turkey":        {"Invoice in hard currency with short payment terms", "Consider export credit insurance"},
	"russia":        {"Screen all counterparties against sanctions lists", "Seek legal review before contracting"},
	"nigeria":       {"Require advance payment or confirmed credit", "Route time-sensitive cargo through less congested ports"},
	"mexico":        {"Verify USMCA rules-of-origin paperwork", "Use bonded carriers for inland transport"},
	"vietnam":       {"Lock in freight rates during peak season", "Confirm HS classifications with local authorities"},
}

// genericFactors and genericRecommendations are the unknown-country
// fallbacks.
var genericFactors = []string{
	"Limited market intelligence available",
	"Standard emerging-market trade considerations apply",
}

var genericRecommendations = []string{
	"Start with small trial shipments",
	"Use secured payment instruments until a track record is established",
}
