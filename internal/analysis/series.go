package analysis

import (
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/valuation"
)

// SeriesPoint is one (year, value) sample of a chart series.
type SeriesPoint struct {
	Year  int
	Value float64
}

// MarketSeries is the per-market slice behind the stacked revenue bar chart.
type MarketSeries struct {
	Market model.Market
	Points []SeriesPoint
}

// RevenueSeries returns one series per selected market, in selection order,
// with one point per projection year.
func RevenueSeries(res *valuation.Result) []MarketSeries {
	if res == nil {
		return nil
	}
	out := make([]MarketSeries, 0, len(res.Markets))
	for _, m := range res.Markets {
		points := make([]SeriesPoint, 0, len(res.Rows))
		for _, row := range res.Rows {
			points = append(points, SeriesPoint{Year: row.Year, Value: row.Revenue[m]})
		}
		out = append(out, MarketSeries{Market: m, Points: points})
	}
	return out
}

// TotalSeries returns the total-revenue line.
func TotalSeries(res *valuation.Result) []SeriesPoint {
	if res == nil {
		return nil
	}
	out := make([]SeriesPoint, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, SeriesPoint{Year: row.Year, Value: row.Total})
	}
	return out
}

// CostPoint carries the three lines of the cost overlay chart for one year.
type CostPoint struct {
	Year          int
	TotalRevenue  float64
	BaselineCost  float64
	OptimizedCost float64
}

// CostSeries returns the cost overlay points, or nil when the result has no
// cost block.
func CostSeries(res *valuation.Result) []CostPoint {
	if res == nil || !res.HasCosts() {
		return nil
	}
	out := make([]CostPoint, 0, len(res.Rows))
	for _, row := range res.Rows {
		if row.Costs == nil {
			continue
		}
		out = append(out, CostPoint{
			Year:          row.Year,
			TotalRevenue:  row.Total,
			BaselineCost:  row.Costs.BaselineCost,
			OptimizedCost: row.Costs.OptimizedCost,
		})
	}
	return out
}
