package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type VacationsHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewVacationsHandler(db *gorm.DB, cache *cache.Cache) *VacationsHandler {
	return &VacationsHandler{db: db, cache: cache}
}

type CreateVacationRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *VacationsHandler) List(c *gin.Context) {
	scope, ownerID, ok := resolveScheduleScope(c, h.db)
	if !ok {
		return
	}

	var vacations []models.Vacation
	if err := h.db.
		Where("scope = ? AND owner_id = ?", scope, ownerID).
		Order("start_date ASC").
		Find(&vacations).Error; err != nil {

		httperr.Internal(c, "failed_to_get_vacations", "Erro ao buscar afastamentos.")
		return
	}

	c.JSON(http.StatusOK, vacations)
}

func (h *VacationsHandler) Create(c *gin.Context) {
	scope, ownerID, ok := resolveScheduleScope(c, h.db)
	if !ok {
		return
	}

	var req CreateVacationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inicial inválida (use AAAA-MM-DD).")
		return
	}

	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data final inválida (use AAAA-MM-DD).")
		return
	}

	// intervalo fechado: início e fim contam como dias excluídos
	if end.Before(start) {
		httperr.BadRequest(c, "invalid_date_range", "Data final deve ser igual ou posterior à inicial.")
		return
	}

	vacation := models.Vacation{
		Scope:     scope,
		OwnerID:   ownerID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&vacation).Error; err != nil {
		httperr.Internal(c, "failed_to_create_vacation", "Erro ao registrar afastamento.")
		return
	}

	h.cache.Delete(c.Request.Context(), cache.VacationsKey(scope, ownerID))

	c.JSON(http.StatusCreated, vacation)
}

func (h *VacationsHandler) Delete(c *gin.Context) {
	scope, ownerID, ok := resolveScheduleScope(c, h.db)
	if !ok {
		return
	}

	id := c.Param("id")

	var vacation models.Vacation
	if err := h.db.
		Where("id = ? AND scope = ? AND owner_id = ?", id, scope, ownerID).
		First(&vacation).Error; err != nil {

		httperr.NotFound(c, "vacation_not_found", "Afastamento não encontrado.")
		return
	}

	if err := h.db.Delete(&vacation).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_vacation", "Erro ao remover afastamento.")
		return
	}

	h.cache.Delete(c.Request.Context(), cache.VacationsKey(scope, ownerID))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
