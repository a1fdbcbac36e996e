package handlers

import (
	"errors"
	"net/http"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/analysis"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/api/models"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/config"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/runs"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/valuation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SimulateHandler runs valuations on behalf of the dashboard
type SimulateHandler struct {
	store      *runs.Store
	profileDir string
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler(store *runs.Store) *SimulateHandler {
	return &SimulateHandler{
		store:      store,
		profileDir: config.ProfileDir(),
	}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	// Dashboard guard: a run with no market selected gets the user-visible
	// warning and no computation.
	if len(req.Markets) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EMPTY_MARKETS",
				Message: "Please select at least one market.",
			},
		})
		return
	}

	in, err := buildInput(c, h.profileDir, req)
	if err != nil {
		respondInvalidInput(c, err)
		return
	}

	engine := valuation.New(valuation.WithNoise(noiseSource(req.Options)))
	result, err := engine.Run(in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	id := h.store.Put(in, result)

	response := models.SimulateResponse{
		RunID:   id,
		Status:  "completed",
		Summary: buildSummary(in, result),
		Rows:    convertRows(result),
	}
	if req.Options.IncludeCharts {
		response.Charts = buildCharts(result)
	}
	c.JSON(http.StatusOK, response)
}

// CompareSimulations handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeRequest(req.Base, variation.Config)
		merged.Options = req.Options

		if len(merged.Markets) == 0 {
			continue // Skip variations without a selection
		}
		in, err := buildInput(c, h.profileDir, merged)
		if err != nil {
			continue // Skip invalid variations
		}

		// Each variation gets its own noise source, so a fixed seed makes
		// the runs comparable.
		engine := valuation.New(valuation.WithNoise(noiseSource(req.Options)))
		result, err := engine.Run(in)
		if err != nil {
			continue // Skip failed runs
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Summary: buildSummary(in, result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Comparison: comparison,
	})
}

// Helper functions shared by the simulate and export handlers

// buildInput assembles the engine input from a request, loading and merging
// the asset preset when profile_file is set.
func buildInput(c *gin.Context, profileDir string, req models.SimulateRequest) (model.SimulationInput, error) {
	assets := config.AssetsConfig{
		PVKw:       req.Assets.PVKw,
		BatteryKwh: req.Assets.BatteryKwh,
		BatteryKw:  req.Assets.BatteryKw,
		EVKwh:      req.Assets.EVKwh,
		HeatpumpKw: req.Assets.HeatpumpKw,
	}

	if req.ProfileFile != "" {
		loaded, err := config.LoadProfile(profileDir, req.ProfileFile)
		if err == nil {
			// Preset is the base, request fields are overrides.
			assets = config.MergeAssets(loaded, assets)
		} else {
			zerolog.Ctx(c.Request.Context()).Warn().
				Err(err).
				Str("profile", req.ProfileFile).
				Msg("failed to load asset preset, using request assets as-is")
		}
	}

	scenario := req.PriceScenario
	if scenario == "" {
		scenario = string(model.ScenarioBase)
	}

	in := model.SimulationInput{
		Assets: assets.ToParams(),
		Household: model.HouseholdParams{
			ConsumptionKwh: req.Household.ConsumptionKwh,
			RetailPrice:    req.Household.RetailPrice,
		},
		Markets:      model.ParseMarkets(req.Markets),
		YearFrom:     req.YearFrom,
		YearTo:       req.YearTo,
		Scenario:     model.Scenario(scenario),
		Optimization: model.OptimizationGoal(req.Optimization),
		IncludeCosts: req.IncludeCosts,
	}
	if err := in.Validate(); err != nil {
		return model.SimulationInput{}, err
	}
	return in, nil
}

func respondInvalidInput(c *gin.Context, err error) {
	code := "INVALID_INPUT"
	if errors.Is(err, model.ErrUnknownScenario) {
		code = "INVALID_SCENARIO"
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func noiseSource(opts models.SimulateOptions) valuation.NoiseSource {
	switch {
	case opts.DisableNoise:
		return valuation.None{}
	case opts.Seed != 0:
		return valuation.NewSeededGaussian(valuation.DefaultNoiseStdDev, opts.Seed)
	default:
		return valuation.NewGaussian(valuation.DefaultNoiseStdDev)
	}
}

// mergeRequest overlays non-zero fields from override onto base.
func mergeRequest(base, override models.SimulateRequest) models.SimulateRequest {
	merged := base
	if override.ProfileFile != "" {
		merged.ProfileFile = override.ProfileFile
	}
	if override.Assets.PVKw != 0 {
		merged.Assets.PVKw = override.Assets.PVKw
	}
	if override.Assets.BatteryKwh != 0 {
		merged.Assets.BatteryKwh = override.Assets.BatteryKwh
	}
	if override.Assets.BatteryKw != 0 {
		merged.Assets.BatteryKw = override.Assets.BatteryKw
	}
	if override.Assets.EVKwh != 0 {
		merged.Assets.EVKwh = override.Assets.EVKwh
	}
	if override.Assets.HeatpumpKw != 0 {
		merged.Assets.HeatpumpKw = override.Assets.HeatpumpKw
	}
	if override.Household.ConsumptionKwh != 0 {
		merged.Household.ConsumptionKwh = override.Household.ConsumptionKwh
	}
	if override.Household.RetailPrice != 0 {
		merged.Household.RetailPrice = override.Household.RetailPrice
	}
	if len(override.Markets) > 0 {
		merged.Markets = override.Markets
	}
	if override.YearFrom != 0 {
		merged.YearFrom = override.YearFrom
	}
	if override.YearTo != 0 {
		merged.YearTo = override.YearTo
	}
	if override.PriceScenario != "" {
		merged.PriceScenario = override.PriceScenario
	}
	if override.Optimization != "" {
		merged.Optimization = override.Optimization
	}
	if override.IncludeCosts {
		merged.IncludeCosts = true
	}
	return merged
}

func buildSummary(in model.SimulationInput, result *valuation.Result) models.RunSummary {
	markets := make([]string, len(result.Markets))
	for i, m := range result.Markets {
		markets[i] = string(m)
	}
	return models.RunSummary{
		Markets:       markets,
		YearFrom:      in.YearFrom,
		YearTo:        in.YearTo,
		Years:         len(result.Rows),
		PriceScenario: string(in.Scenario),
		Optimization:  string(in.Optimization),
		IncludeCosts:  in.IncludeCosts,
		TotalRevenue:  result.TotalRevenue,
	}
}

func convertRows(result *valuation.Result) []models.YearRow {
	rows := make([]models.YearRow, len(result.Rows))
	for i, row := range result.Rows {
		revenue := make(map[string]float64, len(row.Revenue))
		for m, v := range row.Revenue {
			revenue[string(m)] = v
		}
		rows[i] = models.YearRow{
			Year:    row.Year,
			Revenue: revenue,
			Total:   row.Total,
		}
		if row.Costs != nil {
			rows[i].Costs = &models.CostSummary{
				BaselineCost:  row.Costs.BaselineCost,
				OptimizedCost: row.Costs.OptimizedCost,
				Savings:       row.Costs.Savings,
				SavingsPct:    row.Costs.SavingsPct,
			}
		}
	}
	return rows
}

func buildCharts(result *valuation.Result) *models.Charts {
	charts := &models.Charts{
		RevenueShares: convertShares(analysis.RevenueShares(result)),
		RevenueSeries: convertMarketSeries(analysis.RevenueSeries(result)),
		TotalSeries:   convertPoints(analysis.TotalSeries(result)),
	}
	if split, ok := analysis.SplitCosts(result); ok {
		charts.CostSplit = &models.CostSplit{
			BaselineCost:  split.BaselineCost,
			OptimizedCost: split.OptimizedCost,
			Savings:       split.Savings,
			SavingsPct:    split.SavingsPct,
		}
		charts.CostSeries = convertCostPoints(analysis.CostSeries(result))
	}
	return charts
}

func convertShares(shares []analysis.MarketShare) []models.MarketShare {
	out := make([]models.MarketShare, len(shares))
	for i, s := range shares {
		out[i] = models.MarketShare{
			Market:  string(s.Market),
			Label:   s.Label,
			Revenue: s.Revenue,
			Pct:     s.Pct,
		}
	}
	return out
}

func convertMarketSeries(series []analysis.MarketSeries) []models.MarketSeries {
	out := make([]models.MarketSeries, len(series))
	for i, s := range series {
		out[i] = models.MarketSeries{
			Market: string(s.Market),
			Points: convertPoints(s.Points),
		}
	}
	return out
}

func convertPoints(points []analysis.SeriesPoint) []models.SeriesPoint {
	out := make([]models.SeriesPoint, len(points))
	for i, p := range points {
		out[i] = models.SeriesPoint{Year: p.Year, Value: p.Value}
	}
	return out
}

func convertCostPoints(points []analysis.CostPoint) []models.CostPoint {
	out := make([]models.CostPoint, len(points))
	for i, p := range points {
		out[i] = models.CostPoint{
			Year:          p.Year,
			TotalRevenue:  p.TotalRevenue,
			BaselineCost:  p.BaselineCost,
			OptimizedCost: p.OptimizedCost,
		}
	}
	return out
}
