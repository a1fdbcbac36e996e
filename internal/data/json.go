package data

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"
)

// LoadSimulationInput reads a run input snapshot from a JSON file, the same
// shape the API accepts. The input is returned as loaded; callers validate
// before running it.
func LoadSimulationInput(path string) (*model.SimulationInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in model.SimulationInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &in, nil
}
