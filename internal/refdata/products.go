package refdata

// ProductProfile holds the static per-product modifiers applied on top
// of country baselines.
type ProductProfile struct {
	RiskModifier   int
	GrowthBonusPct float64
	SizeMultiplier float64
	HSCode         string
	// BaseTariffPct is keyed by normalized destination country. Missing
	// destinations fall back to DefaultTariffPct.
	BaseTariffPct map[string]float64
}

var productProfiles = map[string]ProductProfile{
	"electronics": {
		RiskModifier:   5,
		GrowthBonusPct: 2.4,
		SizeMultiplier: 1.6,
		HSCode:         "8517.62.00",
		BaseTariffPct: map[string]float64{
			"united states": 3.5, "germany": 2.8, "france": 2.8, "china": 8.0,
			"india": 12.5, "brazil": 14.0, "canada": 3.0, "japan": 2.5,
			"turkey": 9.0, "mexico": 6.5,
		},
	},
	"textiles": {
		RiskModifier:   3,
		GrowthBonusPct: 0.8,
		SizeMultiplier: 0.9,
		HSCode:         "6204.62.00",
		BaseTariffPct: map[string]float64{
			"united states": 11.0, "germany": 9.5, "france": 9.5, "china": 10.0,
			"india": 18.0, "brazil": 20.0, "canada": 10.5, "japan": 7.5,
			"turkey": 12.0, "mexico": 15.0,
		},
	},
	"agriculture": {
		RiskModifier:   8,
		GrowthBonusPct: 0.5,
		SizeMultiplier: 1.1,
		HSCode:         "1006.30.00",
		BaseTariffPct: map[string]float64{
			"united states": 4.5, "germany": 6.0, "france": 6.0, "china": 15.0,
			"india": 30.0, "brazil": 9.0, "canada": 4.0, "japan": 22.0,
			"turkey": 18.0, "mexico": 8.0,
		},
	},
	"automotive": {
		RiskModifier:   6,
		GrowthBonusPct: 1.2,
		SizeMultiplier: 1.8,
		HSCode:         "8708.29.00",
		BaseTariffPct: map[string]float64{
			"united states": 2.5, "germany": 4.5, "france": 4.5, "china": 13.0,
			"india": 25.0, "brazil": 18.0, "canada": 2.5, "japan": 0.0,
			"turkey": 10.0, "mexico": 5.0,
		},
	},
	"pharmaceuticals": {
		RiskModifier:   -4,
		GrowthBonusPct: 3.1,
		SizeMultiplier: 1.4,
		HSCode:         "3004.90.00",
		BaseTariffPct: map[string]float64{
			"united states": 0.0, "germany": 0.0, "france": 0.0, "china": 4.0,
			"india": 10.0, "brazil": 8.0, "canada": 0.0, "japan": 0.0,
			"turkey": 4.5, "mexico": 3.0,
		},
	},
	"machinery": {
		RiskModifier:   2,
		GrowthBonusPct: 1.0,
		SizeMultiplier: 1.3,
		HSCode:         "8479.89.00",
		BaseTariffPct: map[string]float64{
			"united states": 2.0, "germany": 1.7, "france": 1.7, "china": 8.5,
			"india": 7.5, "brazil": 14.0, "canada": 2.0, "japan": 0.0,
			"turkey": 5.0, "mexico": 4.0,
		},
	},
	"chemicals": {
		RiskModifier:   7,
		GrowthBonusPct: 0.9,
		SizeMultiplier: 1.2,
		HSCode:         "2917.39.00",
		BaseTariffPct: map[string]float64{
			"united states": 3.7, "germany": 5.5, "france": 5.5, "china": 6.5,
			"india": 7.5, "brazil": 11.0, "canada": 3.5, "japan": 3.1,
			"turkey": 6.5, "mexico": 7.0,
		},
	},
	"energy": {
		RiskModifier:   12,
		GrowthBonusPct: 1.6,
		SizeMultiplier: 2.2,
		HSCode:         "2709.00.00",
		BaseTariffPct: map[string]float64{
			"united states": 0.5, "germany": 0.7, "france": 0.7, "china": 5.0,
			"india": 5.0, "brazil": 6.0, "canada": 0.0, "japan": 0.0,
			"turkey": 4.0, "mexico": 3.0,
		},
	},
	"food & beverage": {
		RiskModifier:   4,
		GrowthBonusPct: 1.4,
		SizeMultiplier: 1.0,
		HSCode:         "2106.90.00",
		BaseTariffPct: map[string]float64{
			"united states": 6.4, "germany": 8.0, "france": 8.0, "china": 12.0,
			"india": 30.0, "brazil": 16.0, "canada": 6.0, "japan": 15.0,
			"turkey": 14.0, "mexico": 10.0,
		},
	},
	"furniture": {
		RiskModifier:   1,
		GrowthBonusPct: 0.6,
		SizeMultiplier: 0.8,
		HSCode:         "9403.60.00",
		BaseTariffPct: map[string]float64{
			"united states": 0.0, "germany": 2.7, "france": 2.7, "china": 10.0,
			"india": 20.0, "brazil": 18.0, "canada": 9.5, "japan": 0.0,
			"turkey": 8.0, "mexico": 12.0,
		},
	},
}
