package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/analysis"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/config"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/valuation"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "flexsim",
		Short: "Flex revenue simulator",
		Long:  "Projects annual revenue and cost savings for flexible home energy assets across electricity markets.",
	}
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newMarketsCmd())
	root.AddCommand(newScenariosCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type simulateCmd struct {
	cfgPath  string
	profile  string
	outPath  string
	markets  []string
	from     int
	to       int
	scenario string
	costs    bool
	seed     int64
	noNoise  bool
}

func newSimulateCmd() *cobra.Command {
	sc := &simulateCmd{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a revenue projection",
		RunE:  sc.run,
	}

	cmd.Flags().StringVarP(&sc.cfgPath, "config", "c", "", "Path to YAML run config")
	cmd.Flags().StringVar(&sc.profile, "profile", "", "Asset preset id (resolved in the profile directory)")
	cmd.Flags().StringVarP(&sc.outPath, "out", "o", "", "Optional: write the table as CSV to this path")
	cmd.Flags().StringSliceVar(&sc.markets, "markets", nil, "Markets to include, e.g. DA,ID,FCR")
	cmd.Flags().IntVar(&sc.from, "from", 0, "First projection year")
	cmd.Flags().IntVar(&sc.to, "to", 0, "Last projection year")
	cmd.Flags().StringVar(&sc.scenario, "scenario", "", "Price scenario: Base, High or Low")
	cmd.Flags().BoolVar(&sc.costs, "costs", false, "Include the household cost comparison")
	cmd.Flags().Int64Var(&sc.seed, "seed", 0, "Seed for the price perturbation (0 = random)")
	cmd.Flags().BoolVar(&sc.noNoise, "no-noise", false, "Disable the price perturbation")

	return cmd
}

func (sc *simulateCmd) run(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if sc.cfgPath != "" {
		loaded, err := config.LoadUnchecked(sc.cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if sc.profile != "" {
		preset, err := config.LoadProfile(config.ProfileDir(), sc.profile)
		if err != nil {
			return fmt.Errorf("load profile %q: %w", sc.profile, err)
		}
		cfg.Assets = config.MergeAssets(preset, cfg.Assets)
	}

	// Flags override the config file.
	if len(sc.markets) > 0 {
		cfg.Markets = sc.markets
	}
	if sc.from != 0 {
		cfg.Years.From = sc.from
	}
	if sc.to != 0 {
		cfg.Years.To = sc.to
	}
	if sc.scenario != "" {
		cfg.PriceScenario = sc.scenario
	}
	if cmd.Flags().Changed("costs") {
		cfg.IncludeCosts = sc.costs
	}
	if sc.seed != 0 {
		cfg.Noise.Seed = sc.seed
	}
	if sc.noNoise {
		cfg.Noise.Disabled = true
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	in := cfg.ToInput()
	engine := valuation.New(valuation.WithNoise(cfg.NoiseSource()))
	res, err := engine.Run(in)
	if err != nil {
		return err
	}

	printTable(res)
	printShares(res)
	printCostSplit(res)

	if sc.outPath != "" {
		if dir := filepath.Dir(sc.outPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := valuation.WriteTableCSV(sc.outPath, res); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), sc.outPath)
	}
	return nil
}

func printTable(res *valuation.Result) {
	withCosts := res.HasCosts()

	fmt.Printf("%-6s", "year")
	for _, m := range res.Markets {
		fmt.Printf(" %12s", string(m))
	}
	fmt.Printf(" %12s", "total")
	if withCosts {
		fmt.Printf(" %12s %12s %12s %12s", "baseline", "optimized", "savings", "savings%")
	}
	fmt.Println()

	for _, row := range res.Rows {
		fmt.Printf("%-6d", row.Year)
		for _, m := range res.Markets {
			fmt.Printf(" %12.2f", row.Revenue[m])
		}
		fmt.Printf(" %12.2f", row.Total)
		if withCosts {
			fmt.Printf(" %12.2f %12.2f %12.2f %12.2f", row.Costs.BaselineCost, row.Costs.OptimizedCost, row.Costs.Savings, row.Costs.SavingsPct)
		}
		fmt.Println()
	}
	fmt.Printf("\nTotal revenue %d-%d: %.2f EUR\n", firstYear(res), lastYear(res), res.TotalRevenue)
}

func printShares(res *valuation.Result) {
	shares := analysis.RevenueShares(res)
	if len(shares) == 0 {
		return
	}
	fmt.Println("\nRevenue by market:")
	for _, s := range shares {
		fmt.Printf("  %-6s %12.2f  (%.1f%%)\n", string(s.Market), s.Revenue, s.Pct)
	}
}

func printCostSplit(res *valuation.Result) {
	split, ok := analysis.SplitCosts(res)
	if !ok {
		return
	}
	fmt.Println("\nCost comparison:")
	fmt.Printf("  %-16s %12.2f\n", "baseline", split.BaselineCost)
	fmt.Printf("  %-16s %12.2f\n", "optimized", split.OptimizedCost)
	fmt.Printf("  %-16s %12.2f  (%.1f%%)\n", "savings", split.Savings, split.SavingsPct)
}

func firstYear(res *valuation.Result) int {
	if len(res.Rows) == 0 {
		return 0
	}
	return res.Rows[0].Year
}

func lastYear(res *valuation.Result) int {
	if len(res.Rows) == 0 {
		return 0
	}
	return res.Rows[len(res.Rows)-1].Year
}

func newMarketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markets",
		Short: "List the supported markets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%-6s %-42s %s\n", "code", "name", "factor")
			for _, m := range model.AllMarkets() {
				fmt.Printf("%-6s %-42s %.2f\n", string(m), m.Label(), m.Factor())
			}
		},
	}
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the price scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%-6s %s\n", "name", "multiplier")
			for _, s := range model.Scenarios() {
				mult, err := s.Multiplier()
				if err != nil {
					continue
				}
				fmt.Printf("%-6s %.2f\n", string(s), mult)
			}
		},
	}
}
