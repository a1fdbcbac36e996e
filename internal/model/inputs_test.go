package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() SimulationInput {
	return SimulationInput{
		Assets:   AssetParams{PVKw: 5, BatteryKwh: 10, BatteryKw: 5},
		Markets:  []Market{MarketDayAhead, MarketIntraday},
		YearFrom: 2026,
		YearTo:   2030,
		Scenario: ScenarioBase,
	}
}

func TestSimulationInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimulationInput)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(in *SimulationInput) {},
		},
		{
			name: "valid single year with costs",
			mutate: func(in *SimulationInput) {
				in.YearTo = in.YearFrom
				in.IncludeCosts = true
				in.Household = HouseholdParams{ConsumptionKwh: 4000, RetailPrice: 0.30}
			},
		},
		{
			name:    "no markets selected",
			mutate:  func(in *SimulationInput) { in.Markets = nil },
			wantErr: "at least one market",
		},
		{
			name:    "inverted year range",
			mutate:  func(in *SimulationInput) { in.YearFrom = 2030; in.YearTo = 2026 },
			wantErr: "must not be after",
		},
		{
			name:    "year below supported range",
			mutate:  func(in *SimulationInput) { in.YearFrom = 2020 },
			wantErr: "within",
		},
		{
			name:    "year above supported range",
			mutate:  func(in *SimulationInput) { in.YearTo = 2040 },
			wantErr: "within",
		},
		{
			name:    "unknown scenario",
			mutate:  func(in *SimulationInput) { in.Scenario = "Medium" },
			wantErr: "unknown price scenario",
		},
		{
			name:    "negative asset size",
			mutate:  func(in *SimulationInput) { in.Assets.PVKw = -1 },
			wantErr: "pv_kw",
		},
		{
			name:    "negative retail price",
			mutate:  func(in *SimulationInput) { in.Household.RetailPrice = -0.3 },
			wantErr: "retail_price",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			err := in.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestSimulationInputYearCount(t *testing.T) {
	in := validInput()
	assert.Equal(t, 5, in.YearCount())

	in.YearTo = in.YearFrom
	assert.Equal(t, 1, in.YearCount())

	in.YearFrom, in.YearTo = 2030, 2026
	assert.Equal(t, 0, in.YearCount())
}
