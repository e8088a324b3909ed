package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type RoomHandler struct {
	db *gorm.DB
}

func NewRoomHandler(db *gorm.DB) *RoomHandler {
	return &RoomHandler{db: db}
}

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity"`
}

type UpdateRoomRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
}

func (h *RoomHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var rooms []models.Room
	if err := h.db.
		Where("clinic_id = ?", clinicID).
		Order("name ASC").
		Find(&rooms).Error; err != nil {

		httperr.Internal(c, "failed_to_list_rooms", "Erro ao listar salas.")
		return
	}

	httpresp.List(c, rooms)
}

func (h *RoomHandler) Create(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	room := models.Room{
		ClinicID:    clinicID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Capacity:    2,
	}

	if req.Capacity != nil {
		if *req.Capacity < 1 {
			httperr.BadRequest(c, "invalid_capacity", "Capacidade mínima é 1.")
			return
		}
		room.Capacity = *req.Capacity
	}

	if err := h.db.Create(&room).Error; err != nil {
		httperr.Internal(c, "failed_to_create_room", "Erro ao cadastrar sala.")
		return
	}

	c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	id := c.Param("id")

	var room models.Room
	if err := h.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&room).Error; err != nil {

		httperr.NotFound(c, "room_not_found", "Sala não encontrada.")
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil && *req.Name != "" {
		room.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			httperr.BadRequest(c, "invalid_capacity", "Capacidade mínima é 1.")
			return
		}
		room.Capacity = *req.Capacity
	}

	if err := h.db.Save(&room).Error; err != nil {
		httperr.Internal(c, "failed_to_update_room", "Erro ao atualizar sala.")
		return
	}

	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	id := c.Param("id")

	var room models.Room
	if err := h.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&room).Error; err != nil {

		httperr.NotFound(c, "room_not_found", "Sala não encontrada.")
		return
	}

	// Agendamentos futuros na sala impedem a remoção.
	var count int64
	h.db.Model(&models.Appointment{}).
		Where("room_id = ? AND status = ? AND start_time > NOW()", room.ID, "scheduled").
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "room_in_use", "A sala tem agendamentos futuros.")
		return
	}

	if err := h.db.Delete(&room).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_room", "Erro ao remover sala.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
