package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/services"
	"hostel-backend/utils"
)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

// GetOccupancy returns the per-type breakdown plus the hostel aggregate, raw
// and display-clamped.
func (dc *DashboardController) GetOccupancy(c *gin.Context) {
	summary, err := dc.Service.Occupancy()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	clampedPerType := make(map[string]services.OccupancyResult, len(summary.PerType))
	for id, result := range summary.PerType {
		clampedPerType[id] = result.Clamped()
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"per_type":          summary.PerType,
		"aggregate":         summary.Aggregate,
		"unmatched_count":   summary.UnmatchedCount,
		"per_type_display":  clampedPerType,
		"aggregate_display": summary.Aggregate.Clamped(),
	})
}

func (dc *DashboardController) GetSummary(c *gin.Context) {
	summary, err := dc.Service.Summary(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

func (dc *DashboardController) GetTrends(c *gin.Context) {
	points, err := dc.Service.Trends()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, points)
}
