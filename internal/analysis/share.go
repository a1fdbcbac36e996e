package analysis

import (
	"math"
	"sort"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/valuation"
)

// MarketShare is the aggregate contribution of one market across the whole
// projection, used for the revenue-composition donut.
type MarketShare struct {
	Market  model.Market
	Label   string
	Revenue float64
	Pct     float64
}

// RevenueShares sums each market's revenue over all projection years and
// sorts descending by revenue. Percentages are taken of the summed total;
// a zero total leaves every share at 0% rather than dividing.
func RevenueShares(res *valuation.Result) []MarketShare {
	if res == nil {
		return nil
	}

	totals := make(map[model.Market]float64, len(res.Markets))
	grand := 0.0
	for _, row := range res.Rows {
		for m, v := range row.Revenue {
			totals[m] += v
			grand += v
		}
	}

	out := make([]MarketShare, 0, len(res.Markets))
	for _, m := range res.Markets {
		share := MarketShare{
			Market:  m,
			Label:   m.Label(),
			Revenue: round2(totals[m]),
		}
		if grand > 0 {
			share.Pct = round2(totals[m] / grand * 100)
		}
		out = append(out, share)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})
	return out
}

// CostSplit aggregates the extended-variant cost block across the projection
// for the baseline-vs-savings donut.
type CostSplit struct {
	BaselineCost  float64
	OptimizedCost float64
	Savings       float64
	SavingsPct    float64
}

// SplitCosts sums baseline cost, optimized cost, and savings over all years.
// The second return is false when the result carries no cost block.
func SplitCosts(res *valuation.Result) (CostSplit, bool) {
	if res == nil || !res.HasCosts() {
		return CostSplit{}, false
	}

	var split CostSplit
	for _, row := range res.Rows {
		if row.Costs == nil {
			continue
		}
		split.BaselineCost += row.Costs.BaselineCost
		split.OptimizedCost += row.Costs.OptimizedCost
		split.Savings += row.Costs.Savings
	}
	split.BaselineCost = round2(split.BaselineCost)
	split.OptimizedCost = round2(split.OptimizedCost)
	split.Savings = round2(split.Savings)
	if split.BaselineCost > 0 {
		split.SavingsPct = round2(split.Savings / split.BaselineCost * 100)
	}
	return split, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
