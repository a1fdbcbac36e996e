package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/valuation"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	// Optional: load asset sizing from a separate YAML (e.g. examples/profiles/*.yaml).
	// If both ProfileFile and Assets are provided, Assets overrides ProfileFile.
	ProfileFile string `yaml:"profile_file"`

	Assets    AssetsConfig    `yaml:"assets"`
	Household HouseholdConfig `yaml:"household"`

	Markets []string    `yaml:"markets"`
	Years   YearsConfig `yaml:"years"`

	PriceScenario string `yaml:"price_scenario"`
	Optimization  string `yaml:"optimization"`
	IncludeCosts  bool   `yaml:"include_costs"`

	Noise NoiseConfig `yaml:"noise"`
}

type AssetsConfig struct {
	Name       string  `yaml:"name"`
	PVKw       float64 `yaml:"pv_kw"`
	BatteryKwh float64 `yaml:"battery_kwh"`
	BatteryKw  float64 `yaml:"battery_kw"`
	EVKwh      float64 `yaml:"ev_kwh"`
	HeatpumpKw float64 `yaml:"heatpump_kw"`
}

type HouseholdConfig struct {
	ConsumptionKwh float64 `yaml:"consumption_kwh"`
	RetailPrice    float64 `yaml:"retail_price"`
}

type YearsConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// NoiseConfig controls the engine's random perturbation. A zero seed keeps
// the unseeded default; Disabled wins over everything else.
type NoiseConfig struct {
	Seed     int64   `yaml:"seed"`
	StdDev   float64 `yaml:"stddev"`
	Disabled bool    `yaml:"disabled"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not default or validate it.
// Useful when flags still get to override fields afterwards.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If profile_file is set, load it and merge in any explicit overrides from c.Assets.
	if c.ProfileFile != "" {
		profilePath := c.ProfileFile
		if !filepath.IsAbs(profilePath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), profilePath)
			if _, err := os.Stat(cand); err == nil {
				profilePath = cand
			}
		}
		loaded, err := loadProfileYAML(profilePath)
		if err != nil {
			return nil, err
		}
		c.Assets = MergeAssets(loaded, c.Assets)
	}
	return &c, nil
}

// ApplyDefaults fills the optional fields: years default to the first
// supported year (a missing "to" makes it a single-year run), and the
// scenario defaults to Base.
func (c *Config) ApplyDefaults() {
	if c.Years.From == 0 {
		c.Years.From = model.MinYear
	}
	if c.Years.To == 0 {
		c.Years.To = c.Years.From
	}
	if c.PriceScenario == "" {
		c.PriceScenario = string(model.ScenarioBase)
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate by constructing the engine input; it owns the rules.
	return c.ToInput().Validate()
}

// ToInput converts the config into the engine's input record.
func (c *Config) ToInput() model.SimulationInput {
	return model.SimulationInput{
		Assets:       c.Assets.ToParams(),
		Household:    model.HouseholdParams{ConsumptionKwh: c.Household.ConsumptionKwh, RetailPrice: c.Household.RetailPrice},
		Markets:      model.ParseMarkets(c.Markets),
		YearFrom:     c.Years.From,
		YearTo:       c.Years.To,
		Scenario:     model.Scenario(c.PriceScenario),
		Optimization: model.OptimizationGoal(c.Optimization),
		IncludeCosts: c.IncludeCosts,
	}
}

// NoiseSource builds the noise source the config asks for. The std dev
// defaults to the engine's 0.02 when left at zero; use Disabled for a
// deterministic run.
func (c *Config) NoiseSource() valuation.NoiseSource {
	if c.Noise.Disabled {
		return valuation.None{}
	}
	stdDev := c.Noise.StdDev
	if stdDev == 0 {
		stdDev = valuation.DefaultNoiseStdDev
	}
	if c.Noise.Seed != 0 {
		return valuation.NewSeededGaussian(stdDev, c.Noise.Seed)
	}
	return valuation.NewGaussian(stdDev)
}

func (a AssetsConfig) ToParams() model.AssetParams {
	return model.AssetParams{
		PVKw:       a.PVKw,
		BatteryKwh: a.BatteryKwh,
		BatteryKw:  a.BatteryKw,
		EVKwh:      a.EVKwh,
		HeatpumpKw: a.HeatpumpKw,
	}
}

// MergeAssets overlays non-zero fields from override onto base.
// This is used when a profile file provides the baseline sizing and the
// config or request carries explicit overrides.
// Note: a zero override cannot shrink a preset value to 0; drop the profile
// instead when that is wanted.
func MergeAssets(base, override AssetsConfig) AssetsConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.PVKw != 0 {
		out.PVKw = override.PVKw
	}
	if override.BatteryKwh != 0 {
		out.BatteryKwh = override.BatteryKwh
	}
	if override.BatteryKw != 0 {
		out.BatteryKw = override.BatteryKw
	}
	if override.EVKwh != 0 {
		out.EVKwh = override.EVKwh
	}
	if override.HeatpumpKw != 0 {
		out.HeatpumpKw = override.HeatpumpKw
	}
	return out
}

// ProfileDir resolves the asset-preset directory: PROFILE_DIR when set,
// otherwise examples/profiles under the working directory.
func ProfileDir() string {
	dir := os.Getenv("PROFILE_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "profiles")
		} else {
			dir = "./examples/profiles"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// LoadProfile loads one asset preset by id from dir (id maps to <id>.yaml).
func LoadProfile(dir, id string) (AssetsConfig, error) {
	return loadProfileYAML(filepath.Join(dir, id+".yaml"))
}

type profileFileWrapper struct {
	Assets AssetsConfig `yaml:"assets"`
}

func loadProfileYAML(path string) (AssetsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return AssetsConfig{}, err
	}
	var w profileFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return AssetsConfig{}, err
	}
	return w.Assets, nil
}
