package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqardash/aqardash/internal/database/stats"
)

// StatsStore defines the dashboard aggregation operations.
type StatsStore interface {
	GetDashboard(adminID uint) (*stats.Dashboard, error)
}

// StatsController handles the dashboard endpoint.
type StatsController struct {
	store StatsStore
}

// NewStatsController creates a new StatsController.
func NewStatsController(store StatsStore) *StatsController {
	return &StatsController{store: store}
}

// GetDashboard handles GET /api/dashboard.
func (sc *StatsController) GetDashboard(c *gin.Context) {
	dashboard, err := sc.store.GetDashboard(GetAdminID(c))
	if err != nil {
		respondStorageError(c, err, "dashboard", "get dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
