package api

import (
	"net/http"
	"os"
	"strings"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/api/handlers"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/api/middleware"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/runs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Dependencies carries the shared state the handlers need.
type Dependencies struct {
	Runs   *runs.Store
	Logger zerolog.Logger
}

// Config configures the HTTP router.
type Config struct {
	// StaticDir holds the built dashboard. Empty or missing disables
	// static serving, which is the normal mode in tests and the CLI.
	StaticDir    string
	Dependencies Dependencies
}

// ConfigureRouter builds the gin engine with all routes and middleware
// attached. The caller owns listening.
func ConfigureRouter(cfg Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(cfg.Dependencies.Logger))
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler(cfg.Dependencies.Runs)
	exportHandler := handlers.NewExportHandler(cfg.Dependencies.Runs)
	profilesHandler := handlers.NewProfilesHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/compare", simulateHandler.CompareSimulations)
		api.POST("/simulate/export", exportHandler.ExportCSV)

		api.GET("/runs/:id/export", exportHandler.ExportRun)

		api.GET("/markets", handlers.ListMarkets)
		api.GET("/scenarios", handlers.ListScenarios)
		api.GET("/profiles", profilesHandler.ListProfiles)
	}

	// Serve the built dashboard when present (SPA routing: unknown
	// non-API paths all get index.html).
	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			router.Static("/assets", cfg.StaticDir+"/assets")
			router.StaticFile("/favicon.ico", cfg.StaticDir+"/favicon.ico")
			router.NoRoute(func(c *gin.Context) {
				if strings.HasPrefix(c.Request.URL.Path, "/api") {
					c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
					return
				}
				c.File(cfg.StaticDir + "/index.html")
			})
			cfg.Dependencies.Logger.Info().Str("dir", cfg.StaticDir).Msg("serving static files")
		} else {
			cfg.Dependencies.Logger.Warn().Str("dir", cfg.StaticDir).Msg("static directory not found, skipping static file serving")
		}
	}

	return router
}
