package main

import (
	"flag"
	"fmt"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/analysis"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/data"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/valuation"
)

// Demo:
// - Build a typical household input (or load one from JSON)
// - Run the valuation engine across two markets
// - Print the projection table, the revenue split and the cost comparison
func main() {
	inputPath := flag.String("input", "", "Optional path to a simulation input JSON (e.g. examples/input.json)")
	seed := flag.Int64("seed", 0, "Seed for the price perturbation (0 = random)")
	noNoise := flag.Bool("no-noise", false, "Disable the price perturbation")
	outCSV := flag.String("out", "", "Optional path to write the table CSV (e.g. results/projection.csv)")
	flag.Parse()

	// Defaults: a PV plus battery household (can be overridden via --input).
	in := model.SimulationInput{
		Assets: model.AssetParams{
			PVKw:       5,
			BatteryKwh: 10,
			BatteryKw:  5,
		},
		Household: model.HouseholdParams{
			ConsumptionKwh: 4000,
			RetailPrice:    0.30,
		},
		Markets:      []model.Market{model.MarketDayAhead, model.MarketIntraday},
		YearFrom:     2026,
		YearTo:       2030,
		Scenario:     model.ScenarioBase,
		Optimization: model.OptimizeRevenue,
		IncludeCosts: true,
	}

	if *inputPath != "" {
		loaded, err := data.LoadSimulationInput(*inputPath)
		if err != nil {
			panic(err)
		}
		in = *loaded
	}
	if err := in.Validate(); err != nil {
		panic(err)
	}

	var noise valuation.NoiseSource
	switch {
	case *noNoise:
		noise = valuation.None{}
	case *seed != 0:
		noise = valuation.NewSeededGaussian(valuation.DefaultNoiseStdDev, *seed)
	default:
		noise = valuation.NewGaussian(valuation.DefaultNoiseStdDev)
	}

	engine := valuation.New(valuation.WithNoise(noise))
	res, err := engine.Run(in)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Projection %d-%d, scenario %s, noise=%s\n\n", in.YearFrom, in.YearTo, in.Scenario, noise.Name())

	for _, row := range res.Rows {
		fmt.Printf("%d", row.Year)
		for _, m := range res.Markets {
			fmt.Printf("  %s=%8.2f", string(m), row.Revenue[m])
		}
		fmt.Printf("  total=%8.2f", row.Total)
		if row.Costs != nil {
			fmt.Printf("  bill %8.2f -> %8.2f (saves %.2f, %.1f%%)",
				row.Costs.BaselineCost, row.Costs.OptimizedCost, row.Costs.Savings, row.Costs.SavingsPct)
		}
		fmt.Println()
	}

	fmt.Printf("\nTotal revenue: %.2f EUR\n", res.TotalRevenue)
	for _, share := range analysis.RevenueShares(res) {
		fmt.Printf("  %-5s %9.2f  (%.1f%%)\n", string(share.Market), share.Revenue, share.Pct)
	}
	if split, ok := analysis.SplitCosts(res); ok {
		fmt.Printf("\nBaseline cost %.2f, optimized %.2f, savings %.2f (%.1f%%)\n",
			split.BaselineCost, split.OptimizedCost, split.Savings, split.SavingsPct)
	}

	if *outCSV != "" {
		if err := valuation.WriteTableCSV(*outCSV, res); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
