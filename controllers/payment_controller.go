package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type PaymentController struct {
	Service   *services.PaymentService
	Dashboard *services.DashboardService
}

func NewPaymentController(service *services.PaymentService, dashboard *services.DashboardService) *PaymentController {
	return &PaymentController{Service: service, Dashboard: dashboard}
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	payments, err := pc.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := pc.Service.Create(p)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	pc.Dashboard.InvalidateSummary(c.Request.Context())
	utils.JSONSuccess(c, http.StatusCreated, created)
}
