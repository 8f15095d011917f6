package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type TenantController struct {
	Service   *services.TenantService
	Dashboard *services.DashboardService
}

func NewTenantController(service *services.TenantService, dashboard *services.DashboardService) *TenantController {
	return &TenantController{Service: service, Dashboard: dashboard}
}

func (tc *TenantController) GetTenants(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	tenants, err := tc.Service.GetAll(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tenants)
}

func (tc *TenantController) CreateTenant(c *gin.Context) {
	var t models.Tenant
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := tc.Service.Create(t)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	tc.Dashboard.InvalidateSummary(c.Request.Context())
	utils.JSONSuccess(c, http.StatusCreated, created)
}

// SyncTenants pulls the upstream feed and upserts the roster.
func (tc *TenantController) SyncTenants(c *gin.Context) {
	synced, err := tc.Service.Sync(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, err.Error())
		return
	}
	tc.Dashboard.InvalidateSummary(c.Request.Context())
	utils.JSONSuccess(c, http.StatusOK, gin.H{"synced": synced})
}
