package model

import (
	"errors"
	"fmt"
)

// Supported year range for projections. The dashboard's year selectors are
// bounded to the same range.
const (
	MinYear = 2026
	MaxYear = 2035
)

// OptimizationGoal is the user-selected optimization objective. It is
// collected and echoed back but does not influence the valuation; both goals
// produce identical numbers.
type OptimizationGoal string

const (
	OptimizeRevenue OptimizationGoal = "Revenue maximizing"
	OptimizeCost    OptimizationGoal = "Cost minimizing"
)

// SimulationInput is the canonical "inputs to the system" object: one frozen
// snapshot of the user's asset sizing, market selection, and settings,
// consumed by a single valuation run.
type SimulationInput struct {
	Assets    AssetParams     `json:"assets"`
	Household HouseholdParams `json:"household"`

	// Markets holds the selection in the order the user picked it. Order
	// drives table and CSV columns only, never the computed values.
	Markets []Market `json:"markets"`

	YearFrom int `json:"year_from"`
	YearTo   int `json:"year_to"`

	Scenario     Scenario         `json:"price_scenario"`
	Optimization OptimizationGoal `json:"optimization,omitempty"`

	// IncludeCosts selects the extended variant: per-year baseline cost,
	// optimized cost, and savings derived from the household parameters.
	IncludeCosts bool `json:"include_costs,omitempty"`
}

// YearCount returns the number of projection rows the input spans.
// Zero when the range is inverted.
func (in SimulationInput) YearCount() int {
	if in.YearTo < in.YearFrom {
		return 0
	}
	return in.YearTo - in.YearFrom + 1
}

// Validate enforces the caller-side preconditions of a run. The engine
// itself trusts its input apart from the scenario lookup; surfaces that
// accept user input (API, CLI, config) must validate before calling it.
func (in SimulationInput) Validate() error {
	if err := in.Assets.Validate(); err != nil {
		return err
	}
	if err := in.Household.Validate(); err != nil {
		return err
	}
	if len(in.Markets) == 0 {
		return errors.New("at least one market must be selected")
	}
	if in.YearFrom > in.YearTo {
		return fmt.Errorf("year_from %d must not be after year_to %d", in.YearFrom, in.YearTo)
	}
	if in.YearFrom < MinYear || in.YearTo > MaxYear {
		return fmt.Errorf("years must be within [%d, %d]", MinYear, MaxYear)
	}
	if _, err := in.Scenario.Multiplier(); err != nil {
		return err
	}
	return nil
}
