package model

import "errors"

// Per-unit annual value weights for the flex-value proxy.
// Units:
// - PVKw: kWp installed PV
// - BatteryKwh: kWh usable battery capacity
// - BatteryKw: kW battery power (collected but not part of the proxy)
// - EVKwh: kWh of EV battery available for flexing
// - HeatpumpKw: kW heat pump power
const (
	pvWeightPerKw       = 10.0
	batteryWeightPerKwh = 8.0
	heatpumpWeightPerKw = 6.0
	evWeightPerKwh      = 5.0
)

// AssetParams defines the sizing of the household's flexible assets.
type AssetParams struct {
	PVKw       float64 `json:"pv_kw" yaml:"pv_kw"`
	BatteryKwh float64 `json:"battery_kwh" yaml:"battery_kwh"`
	BatteryKw  float64 `json:"battery_kw" yaml:"battery_kw"`
	EVKwh      float64 `json:"ev_kwh" yaml:"ev_kwh"`
	HeatpumpKw float64 `json:"heatpump_kw" yaml:"heatpump_kw"`
}

// FlexValue is the capacity-weighted proxy for the annual value of the
// household's flexibility, before market, scenario, and growth weighting.
//
// BatteryKw is intentionally absent: power sizing is collected from the
// user but does not enter the proxy.
func (a AssetParams) FlexValue() float64 {
	return a.PVKw*pvWeightPerKw +
		a.BatteryKwh*batteryWeightPerKwh +
		a.HeatpumpKw*heatpumpWeightPerKw +
		a.EVKwh*evWeightPerKwh
}

func (a AssetParams) Validate() error {
	if a.PVKw < 0 {
		return errors.New("pv_kw must be >= 0")
	}
	if a.BatteryKwh < 0 {
		return errors.New("battery_kwh must be >= 0")
	}
	if a.BatteryKw < 0 {
		return errors.New("battery_kw must be >= 0")
	}
	if a.EVKwh < 0 {
		return errors.New("ev_kwh must be >= 0")
	}
	if a.HeatpumpKw < 0 {
		return errors.New("heatpump_kw must be >= 0")
	}
	return nil
}

// HouseholdParams describes annual consumption and the retail tariff, used
// only for the cost/savings block of the extended variant.
type HouseholdParams struct {
	ConsumptionKwh float64 `json:"household_kwh" yaml:"consumption_kwh"`
	RetailPrice    float64 `json:"retail_price" yaml:"retail_price"`
}

// BaselineCost is the annual electricity bill without any flexibility
// revenue offsetting it.
func (h HouseholdParams) BaselineCost() float64 {
	return h.ConsumptionKwh * h.RetailPrice
}

func (h HouseholdParams) Validate() error {
	if h.ConsumptionKwh < 0 {
		return errors.New("household_kwh must be >= 0")
	}
	if h.RetailPrice < 0 {
		return errors.New("retail_price must be >= 0")
	}
	return nil
}
