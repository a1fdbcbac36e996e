package valuation

import "github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"

// YearRow is one row of per-year output.
// This is the primary artifact for "what the assets earn" in a projection.
type YearRow struct {
	Year int

	// Revenue holds the rounded value per selected market. Empty when the
	// run was started with no markets selected.
	Revenue map[model.Market]float64

	// Total is the rounded sum of the unrounded per-market values, so it can
	// differ from the sum of the displayed values by cents.
	Total float64

	// Costs is set only in the extended variant.
	Costs *CostSummary
}

// CostSummary derives the household bill impact for one year.
type CostSummary struct {
	BaselineCost  float64
	OptimizedCost float64
	Savings       float64
	SavingsPct    float64
}

// Result is the full projection table plus its display metadata.
type Result struct {
	// Markets records the selection order of the run; table and CSV columns
	// follow it.
	Markets []model.Market

	Rows []YearRow

	// TotalRevenue aggregates all years, rounded once at the end.
	TotalRevenue float64
}

// HasCosts reports whether the rows carry the extended cost block.
func (r *Result) HasCosts() bool {
	return len(r.Rows) > 0 && r.Rows[0].Costs != nil
}
