package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/api"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/runs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// Local development keeps its settings in a .env file; a missing file
	// is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ttl := runs.DefaultTTL
	if raw := os.Getenv("RUN_CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logger.Warn().Str("value", raw).Msg("invalid RUN_CACHE_TTL, using default")
		} else {
			ttl = parsed
		}
	}
	store := runs.NewStore(ttl)

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	router := api.ConfigureRouter(api.Config{
		StaticDir: staticDir,
		Dependencies: api.Dependencies{
			Runs:   store,
			Logger: logger,
		},
	})

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)

	logger.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
