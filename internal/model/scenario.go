package model

import (
	"errors"
	"fmt"
)

// Scenario is a named price-level preset applied to every computed value.
// Keep these values stable; they are intended for config files and the API.
type Scenario string

const (
	ScenarioBase Scenario = "Base"
	ScenarioHigh Scenario = "High"
	ScenarioLow  Scenario = "Low"
)

// ErrUnknownScenario is returned when a scenario is outside the fixed
// enumeration. Unlike market codes, scenarios have no fallback: a typo here
// would silently change every number, so the lookup fails fast instead.
var ErrUnknownScenario = errors.New("unknown price scenario")

var scenarioMultipliers = map[Scenario]float64{
	ScenarioBase: 1.0,
	ScenarioHigh: 1.25,
	ScenarioLow:  0.85,
}

// Scenarios returns the recognized scenarios in display order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioBase, ScenarioHigh, ScenarioLow}
}

// Multiplier returns the price multiplier for the scenario, or
// ErrUnknownScenario for values outside the enumeration.
func (s Scenario) Multiplier() (float64, error) {
	m, ok := scenarioMultipliers[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownScenario, string(s))
	}
	return m, nil
}
