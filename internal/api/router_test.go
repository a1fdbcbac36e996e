package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/api/models"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/runs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, *runs.Store) {
	t.Helper()
	store := runs.NewStore(time.Minute)
	logger := zerolog.New(zerolog.NewTestWriter(t))
	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Runs:   store,
			Logger: logger,
		},
	})
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func referenceRequest() models.SimulateRequest {
	return models.SimulateRequest{
		Assets:   models.AssetsConfig{PVKw: 5, BatteryKwh: 10},
		Markets:  []string{"DA"},
		YearFrom: 2026,
		YearTo:   2026,
		Options:  models.SimulateOptions{DisableNoise: true},
	}
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSimulate_ReferenceRun(t *testing.T) {
	router, store := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", referenceRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, []string{"DA"}, resp.Summary.Markets)
	assert.Equal(t, 1, resp.Summary.Years)
	assert.Equal(t, "Base", resp.Summary.PriceScenario)
	assert.Equal(t, 130.0, resp.Summary.TotalRevenue)

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 2026, resp.Rows[0].Year)
	assert.Equal(t, 130.0, resp.Rows[0].Revenue["DA"])
	assert.Equal(t, 130.0, resp.Rows[0].Total)
	assert.Nil(t, resp.Rows[0].Costs)
	assert.Nil(t, resp.Charts)

	// The run is retrievable afterwards.
	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(resp.RunID)
	assert.True(t, ok)
}

func TestSimulate_ExtendedVariant(t *testing.T) {
	router, _ := newTestRouter(t)

	req := referenceRequest()
	req.IncludeCosts = true
	req.Household = models.HouseholdConfig{ConsumptionKwh: 4000, RetailPrice: 0.30}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Rows, 1)
	costs := resp.Rows[0].Costs
	require.NotNil(t, costs)
	assert.Equal(t, 1200.0, costs.BaselineCost)
	assert.Equal(t, 1070.0, costs.OptimizedCost)
	assert.Equal(t, 130.0, costs.Savings)
	assert.Equal(t, 10.83, costs.SavingsPct)
	assert.True(t, resp.Summary.IncludeCosts)
}

func TestSimulate_EmptyMarkets(t *testing.T) {
	router, store := newTestRouter(t)

	for name, markets := range map[string][]string{
		"missing": nil,
		"empty":   {},
	} {
		t.Run(name, func(t *testing.T) {
			req := referenceRequest()
			req.Markets = markets

			rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decodeErrorResponse(t, rec)
			assert.Equal(t, "EMPTY_MARKETS", resp.Error.Code)
			assert.Equal(t, "Please select at least one market.", resp.Error.Message)
		})
	}
	assert.Zero(t, store.Len(), "rejected runs must not be stored")
}

func TestSimulate_UnknownScenario(t *testing.T) {
	router, _ := newTestRouter(t)

	req := referenceRequest()
	req.PriceScenario = "Stress"

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "INVALID_SCENARIO", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Stress")
}

func TestSimulate_InvalidYears(t *testing.T) {
	router, _ := newTestRouter(t)

	req := referenceRequest()
	req.YearFrom = 2040
	req.YearTo = 2041

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestSimulate_MalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", `{"assets": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestSimulate_WithCharts(t *testing.T) {
	router, _ := newTestRouter(t)

	req := referenceRequest()
	req.Markets = []string{"DA", "ID"}
	req.YearTo = 2028
	req.IncludeCosts = true
	req.Household = models.HouseholdConfig{ConsumptionKwh: 4000, RetailPrice: 0.30}
	req.Options.IncludeCharts = true

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	charts := resp.Charts
	require.NotNil(t, charts)

	require.Len(t, charts.RevenueShares, 2)
	pctSum := 0.0
	for _, share := range charts.RevenueShares {
		pctSum += share.Pct
	}
	assert.InDelta(t, 100.0, pctSum, 0.05)
	// Shares are sorted by revenue, and DA pays more than ID.
	assert.Equal(t, "DA", charts.RevenueShares[0].Market)

	require.Len(t, charts.RevenueSeries, 2)
	assert.Equal(t, "DA", charts.RevenueSeries[0].Market, "series keep selection order")
	assert.Len(t, charts.RevenueSeries[0].Points, 3)
	assert.Len(t, charts.TotalSeries, 3)

	require.NotNil(t, charts.CostSplit)
	assert.Equal(t, 3600.0, charts.CostSplit.BaselineCost)
	assert.Len(t, charts.CostSeries, 3)
}

func TestSimulate_ProfilePreset(t *testing.T) {
	dir := t.TempDir()
	profile := "assets:\n  name: Starter PV\n  pv_kw: 5\n  battery_kwh: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "starter_pv.yaml"), []byte(profile), 0o644))
	t.Setenv("PROFILE_DIR", dir)

	router, _ := newTestRouter(t)

	req := referenceRequest()
	req.Assets = models.AssetsConfig{}
	req.ProfileFile = "starter_pv"

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 130.0, resp.Summary.TotalRevenue, "preset sizing should drive the run")
}

func TestSimulate_ProfilePresetOverride(t *testing.T) {
	dir := t.TempDir()
	profile := "assets:\n  pv_kw: 5\n  battery_kwh: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "starter_pv.yaml"), []byte(profile), 0o644))
	t.Setenv("PROFILE_DIR", dir)

	router, _ := newTestRouter(t)

	req := referenceRequest()
	// Explicit sizing wins over the preset: pv 10*10 + battery 10*8 = 180.
	req.Assets = models.AssetsConfig{PVKw: 10}
	req.ProfileFile = "starter_pv"

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 180.0, resp.Summary.TotalRevenue)
}

func TestCompare(t *testing.T) {
	router, _ := newTestRouter(t)

	req := models.CompareRequest{
		Base: referenceRequest(),
		Variations: []models.Variation{
			{Name: "Base prices"},
			{Name: "High prices", Config: models.SimulateRequest{PriceScenario: "High"}},
			{Name: "Broken", Config: models.SimulateRequest{PriceScenario: "Bogus"}},
		},
		Options: models.SimulateOptions{DisableNoise: true},
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate/compare", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Comparison, 2, "invalid variations are skipped")
	assert.Equal(t, "Base prices", resp.Comparison[0].Name)
	assert.Equal(t, 130.0, resp.Comparison[0].Summary.TotalRevenue)
	assert.Equal(t, "High prices", resp.Comparison[1].Name)
	assert.Equal(t, 162.5, resp.Comparison[1].Summary.TotalRevenue)
}

func TestCompare_MissingVariations(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate/compare", `{"base": {}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestExportCSV(t *testing.T) {
	router, _ := newTestRouter(t)

	req := referenceRequest()
	req.IncludeCosts = true
	req.Household = models.HouseholdConfig{ConsumptionKwh: 4000, RetailPrice: 0.30}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate/export", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="flex_revenue_costs.csv"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "year,DA,total,baseline_cost,optimized_cost,savings,savings_pct", lines[0])
	assert.Equal(t, "2026,130.00,130.00,1200.00,1070.00,130.00,10.83", lines[1])
}

func TestExportCSV_EmptyMarkets(t *testing.T) {
	router, _ := newTestRouter(t)

	req := referenceRequest()
	req.Markets = nil

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate/export", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_MARKETS", decodeErrorResponse(t, rec).Error.Code)
}

func TestExportRun(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/simulate", referenceRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	exportRec := doJSON(t, router, http.MethodGet, "/api/v1/runs/"+resp.RunID+"/export", nil)
	require.Equal(t, http.StatusOK, exportRec.Code)
	assert.Equal(t, `attachment; filename="flex_revenue.csv"`, exportRec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(exportRec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "year,DA,total", lines[0])
	assert.Equal(t, "2026,130.00,130.00", lines[1])
}

func TestExportRun_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/runs/deadbeef/export", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "RUN_NOT_FOUND", decodeErrorResponse(t, rec).Error.Code)
}

func TestListMarkets(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/markets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Markets []models.MarketInfo `json:"markets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Markets, 5)
	assert.Equal(t, models.MarketInfo{Code: "DA", Label: "Day-ahead", Factor: 1.0}, resp.Markets[0])
	codes := make([]string, len(resp.Markets))
	for i, m := range resp.Markets {
		codes[i] = m.Code
	}
	assert.Equal(t, []string{"DA", "ID", "FCR", "aFRR", "mFRR"}, codes)
}

func TestListScenarios(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/scenarios", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, []models.ScenarioInfo{
		{Name: "Base", Multiplier: 1.0},
		{Name: "High", Multiplier: 1.25},
		{Name: "Low", Multiplier: 0.85},
	}, resp.Scenarios)
}

func TestListProfiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "starter_pv.yaml"),
		[]byte("assets:\n  name: Starter PV\n  pv_kw: 5\n  battery_kwh: 10\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a preset"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))
	t.Setenv("PROFILE_DIR", dir)

	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Profiles []models.ProfileInfo `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Profiles, 1)
	profile := resp.Profiles[0]
	assert.Equal(t, "starter_pv", profile.ID)
	assert.Equal(t, "Starter PV", profile.Name)
	assert.Equal(t, 5.0, profile.Specs.PVKw)
	assert.Equal(t, 10.0, profile.Specs.BatteryKwh)
}

func TestListProfiles_MissingDir(t *testing.T) {
	t.Setenv("PROFILE_DIR", filepath.Join(t.TempDir(), "nope"))

	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/profiles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"profiles":[]}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/simulate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
