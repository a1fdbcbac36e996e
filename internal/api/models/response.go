package models

// SimulateResponse represents the result of one simulation run
type SimulateResponse struct {
	RunID   string     `json:"run_id"`
	Status  string     `json:"status"`
	Summary RunSummary `json:"summary"`
	Rows    []YearRow  `json:"rows"`
	Charts  *Charts    `json:"charts,omitempty"`
}

// RunSummary contains the aggregated view of a run
type RunSummary struct {
	Markets       []string `json:"markets"`
	YearFrom      int      `json:"year_from"`
	YearTo        int      `json:"year_to"`
	Years         int      `json:"years"`
	PriceScenario string   `json:"price_scenario"`
	Optimization  string   `json:"optimization,omitempty"`
	IncludeCosts  bool     `json:"include_costs"`
	TotalRevenue  float64  `json:"total_revenue"`
}

// YearRow is one projection year of the result table
type YearRow struct {
	Year    int                `json:"year"`
	Revenue map[string]float64 `json:"revenue"`
	Total   float64            `json:"total"`
	Costs   *CostSummary       `json:"costs,omitempty"`
}

// CostSummary is the extended-variant cost block of one year
type CostSummary struct {
	BaselineCost  float64 `json:"baseline_cost"`
	OptimizedCost float64 `json:"optimized_cost"`
	Savings       float64 `json:"savings"`
	SavingsPct    float64 `json:"savings_pct"`
}

// Charts bundles the chart-ready aggregates the dashboard plots
type Charts struct {
	RevenueShares []MarketShare  `json:"revenue_shares"`
	RevenueSeries []MarketSeries `json:"revenue_series"`
	TotalSeries   []SeriesPoint  `json:"total_series"`
	CostSeries    []CostPoint    `json:"cost_series,omitempty"`
	CostSplit     *CostSplit     `json:"cost_split,omitempty"`
}

// MarketShare is one slice of the revenue-composition donut
type MarketShare struct {
	Market  string  `json:"market"`
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Pct     float64 `json:"pct"`
}

// MarketSeries is one market's bars in the stacked revenue chart
type MarketSeries struct {
	Market string        `json:"market"`
	Points []SeriesPoint `json:"points"`
}

// SeriesPoint is one (year, value) chart sample
type SeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// CostPoint carries one year of the cost overlay chart
type CostPoint struct {
	Year          int     `json:"year"`
	TotalRevenue  float64 `json:"total_revenue"`
	BaselineCost  float64 `json:"baseline_cost"`
	OptimizedCost float64 `json:"optimized_cost"`
}

// CostSplit is the aggregate baseline-vs-savings donut
type CostSplit struct {
	BaselineCost  float64 `json:"baseline_cost"`
	OptimizedCost float64 `json:"optimized_cost"`
	Savings       float64 `json:"savings"`
	SavingsPct    float64 `json:"savings_pct"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name    string     `json:"name"`
	Summary RunSummary `json:"summary"`
}

// MarketInfo describes one selectable market for the dashboard widgets
type MarketInfo struct {
	Code   string  `json:"code"`
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

// ScenarioInfo describes one selectable price scenario
type ScenarioInfo struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// ProfileInfo represents information about an asset preset
type ProfileInfo struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	File  string       `json:"file"`
	Specs ProfileSpecs `json:"specs"`
}

// ProfileSpecs contains the preset's asset sizing
type ProfileSpecs struct {
	PVKw       float64 `json:"pv_kw"`
	BatteryKwh float64 `json:"battery_kwh"`
	BatteryKw  float64 `json:"battery_kw"`
	EVKwh      float64 `json:"ev_kwh"`
	HeatpumpKw float64 `json:"heatpump_kw"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
