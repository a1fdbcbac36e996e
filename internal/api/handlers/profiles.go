package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/api/models"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProfilesHandler lists the asset presets available on disk
type ProfilesHandler struct {
	profileDir string
}

// NewProfilesHandler creates a new profiles handler
func NewProfilesHandler() *ProfilesHandler {
	return &ProfilesHandler{
		profileDir: config.ProfileDir(),
	}
}

// ListProfiles handles GET /api/v1/profiles
func (h *ProfilesHandler) ListProfiles(c *gin.Context) {
	entries, err := os.ReadDir(h.profileDir)
	if err != nil {
		// No preset directory just means no presets.
		c.JSON(http.StatusOK, gin.H{"profiles": []models.ProfileInfo{}})
		return
	}

	profiles := make([]models.ProfileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".yaml")
		assets, err := config.LoadProfile(h.profileDir, id)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().
				Err(err).
				Str("profile", id).
				Msg("skipping unreadable asset preset")
			continue
		}
		name := assets.Name
		if name == "" {
			name = id
		}
		profiles = append(profiles, models.ProfileInfo{
			ID:   id,
			Name: name,
			File: filepath.Join(h.profileDir, entry.Name()),
			Specs: models.ProfileSpecs{
				PVKw:       assets.PVKw,
				BatteryKwh: assets.BatteryKwh,
				BatteryKw:  assets.BatteryKw,
				EVKwh:      assets.EVKwh,
				HeatpumpKw: assets.HeatpumpKw,
			},
		})
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}
