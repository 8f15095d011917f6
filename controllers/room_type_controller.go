package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type RoomTypeController struct {
	Service   *services.RoomTypeService
	Dashboard *services.DashboardService
}

func NewRoomTypeController(service *services.RoomTypeService, dashboard *services.DashboardService) *RoomTypeController {
	return &RoomTypeController{Service: service, Dashboard: dashboard}
}

func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rc.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (rc *RoomTypeController) GetRoomType(c *gin.Context) {
	rt, err := rc.Service.GetByUUID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (rc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := rc.Service.Create(rt)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	rc.Dashboard.InvalidateSummary(c.Request.Context())
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func (rc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	var edit services.RoomTypeEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := rc.Service.Update(c.Param("id"), edit)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomTypeNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrRoomCountBelowMinimum):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	rc.Dashboard.InvalidateSummary(c.Request.Context())
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (rc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	force := c.Query("force") == "true"
	if err := rc.Service.Delete(c.Param("id"), force); err != nil {
		switch {
		case errors.Is(err, services.ErrRoomTypeNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrRoomTypeOccupied):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	rc.Dashboard.InvalidateSummary(c.Request.Context())
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room type deleted"})
}

// GetMinimumRooms exposes the floor used to gate room-count edits.
func (rc *RoomTypeController) GetMinimumRooms(c *gin.Context) {
	min, err := rc.Service.MinimumRooms(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRoomTypeNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"minimum_rooms": min})
}
