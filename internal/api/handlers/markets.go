package handlers

import (
	"net/http"

	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/api/models"
	"github.com/Naveenbadarla/Flex-revenue-simulator/internal/model"

	"github.com/gin-gonic/gin"
)

// ListMarkets handles GET /api/v1/markets
func ListMarkets(c *gin.Context) {
	all := model.AllMarkets()
	markets := make([]models.MarketInfo, len(all))
	for i, m := range all {
		markets[i] = models.MarketInfo{
			Code:   string(m),
			Label:  m.Label(),
			Factor: m.Factor(),
		}
	}

	c.JSON(http.StatusOK, gin.H{"markets": markets})
}

// ListScenarios handles GET /api/v1/scenarios
func ListScenarios(c *gin.Context) {
	all := model.Scenarios()
	scenarios := make([]models.ScenarioInfo, 0, len(all))
	for _, s := range all {
		multiplier, err := s.Multiplier()
		if err != nil {
			continue
		}
		scenarios = append(scenarios, models.ScenarioInfo{
			Name:       string(s),
			Multiplier: multiplier,
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
