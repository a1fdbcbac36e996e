package handlers

import (
	"fmt"
	"net/http"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/api/models"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/config"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/runs"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/valuation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ExportHandler streams projection tables as CSV downloads
type ExportHandler struct {
	store      *runs.Store
	profileDir string
}

// NewExportHandler creates a new export handler
func NewExportHandler(store *runs.Store) *ExportHandler {
	return &ExportHandler{
		store:      store,
		profileDir: config.ProfileDir(),
	}
}

// ExportCSV handles POST /api/v1/simulate/export
//
// Runs the simulation for the posted request and streams the table without
// storing the run.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
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

	writeCSV(c, result, in.IncludeCosts)
}

// ExportRun handles GET /api/v1/runs/:id/export
//
// Streams the table for a previously stored run.
func (h *ExportHandler) ExportRun(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RUN_NOT_FOUND",
				Message: fmt.Sprintf("no run with id %s", id),
			},
		})
		return
	}

	writeCSV(c, entry.Result, entry.Input.IncludeCosts)
}

func writeCSV(c *gin.Context, result *valuation.Result, includeCosts bool) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", valuation.FileName(includeCosts)))
	c.Status(http.StatusOK)
	if err := valuation.WriteTable(c.Writer, result); err != nil {
		// Headers are already out, all we can do is log.
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("failed to stream csv export")
	}
}
