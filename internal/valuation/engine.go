package valuation

import (
	"fmt"
	"math"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"
)

// Annual growth applied to every value relative to the first projection
// year. Linear, not compounding.
const yearGrowthRate = 0.03

// Engine computes revenue projections. It holds no state apart from its
// noise source and may be reused across runs.
type Engine struct {
	noise NoiseSource
}

type Option func(*Engine)

// WithNoise replaces the default unseeded Gaussian source. Pass
// NewSeededGaussian for reproducible runs or None to disable the
// perturbation.
func WithNoise(n NoiseSource) Option {
	return func(e *Engine) {
		if n != nil {
			e.noise = n
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{noise: NewGaussian(DefaultNoiseStdDev)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run projects annual revenue for every (year, market) pair of the input.
//
// The engine trusts its caller for range sanity: an empty market selection
// yields rows with no revenue fields and a zero total, and an inverted year
// range yields an empty table. The one input it rejects itself is an
// unrecognized price scenario, which fails before any row is produced.
func (e *Engine) Run(in model.SimulationInput) (*Result, error) {
	multiplier, err := in.Scenario.Multiplier()
	if err != nil {
		return nil, fmt.Errorf("run valuation: %w", err)
	}

	base := in.Assets.FlexValue()
	rows := make([]YearRow, 0, in.YearCount())
	grand := 0.0

	for y := in.YearFrom; y <= in.YearTo; y++ {
		growth := 1.0 + yearGrowthRate*float64(y-in.YearFrom)

		revenue := make(map[model.Market]float64, len(in.Markets))
		total := 0.0
		for _, m := range in.Markets {
			value := base * m.Factor() * multiplier * growth * (1.0 + e.noise.Sample())
			revenue[m] = round2(value)
			total += value
		}

		row := YearRow{
			Year:    y,
			Revenue: revenue,
			Total:   round2(total),
		}
		if in.IncludeCosts {
			row.Costs = costSummary(in.Household, row.Total)
		}
		grand += total
		rows = append(rows, row)
	}

	return &Result{
		Markets:      append([]model.Market(nil), in.Markets...),
		Rows:         rows,
		TotalRevenue: round2(grand),
	}, nil
}

// costSummary derives the extended-variant cost block from the year's
// rounded total, so the stored savings figure matches the displayed revenue
// exactly. Optimized cost is deliberately not floored at zero: revenue above
// the baseline bill shows up as a negative bill.
func costSummary(h model.HouseholdParams, totalRevenue float64) *CostSummary {
	baseline := round2(h.BaselineCost())
	optimized := round2(baseline - totalRevenue)
	savings := round2(baseline - optimized)

	pct := 0.0
	if baseline > 0 {
		pct = round2(savings / baseline * 100)
	}

	return &CostSummary{
		BaselineCost:  baseline,
		OptimizedCost: optimized,
		Savings:       savings,
		SavingsPct:    pct,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
