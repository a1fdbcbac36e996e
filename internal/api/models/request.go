package models

// SimulateRequest represents the request body for running a simulation.
// It mirrors the dashboard's widget values one-to-one.
type SimulateRequest struct {
	// ProfileFile optionally names an asset preset (by id, without the
	// .yaml extension) to use as the sizing baseline; explicit Assets
	// fields override the preset.
	ProfileFile string `json:"profile_file,omitempty"`

	Assets    AssetsConfig    `json:"assets"`
	Household HouseholdConfig `json:"household,omitempty"`

	// Markets in selection order. An empty selection is rejected before
	// any computation happens.
	Markets []string `json:"markets"`

	YearFrom int `json:"year_from"`
	YearTo   int `json:"year_to"`

	PriceScenario string `json:"price_scenario,omitempty"` // default: "Base"
	Optimization  string `json:"optimization,omitempty"`
	IncludeCosts  bool   `json:"include_costs,omitempty"`

	Options SimulateOptions `json:"options,omitempty"`
}

// AssetsConfig defines the household's asset sizing
type AssetsConfig struct {
	PVKw       float64 `json:"pv_kw"`
	BatteryKwh float64 `json:"battery_kwh"`
	BatteryKw  float64 `json:"battery_kw"`
	EVKwh      float64 `json:"ev_kwh"`
	HeatpumpKw float64 `json:"heatpump_kw"`
}

// HouseholdConfig carries the cost-baseline parameters of the extended variant
type HouseholdConfig struct {
	ConsumptionKwh float64 `json:"household_kwh"`
	RetailPrice    float64 `json:"retail_price"`
}

// SimulateOptions contains optional run parameters
type SimulateOptions struct {
	IncludeCharts bool  `json:"include_charts,omitempty"` // default: false
	Seed          int64 `json:"seed,omitempty"`           // 0 = unseeded
	DisableNoise  bool  `json:"disable_noise,omitempty"`
}

// CompareRequest represents a request to compare multiple simulations
type CompareRequest struct {
	Base       SimulateRequest `json:"base" binding:"required"`
	Variations []Variation     `json:"variations" binding:"required"`
	Options    SimulateOptions `json:"options,omitempty"`
}

// Variation defines a variation to run against the base input
type Variation struct {
	Name   string          `json:"name" binding:"required"`
	Config SimulateRequest `json:"config"`
}
