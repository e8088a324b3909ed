package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type BreaksHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewBreaksHandler(db *gorm.DB, cache *cache.Cache) *BreaksHandler {
	return &BreaksHandler{db: db, cache: cache}
}

type BreakConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type BreaksUpdateRequest struct {
	Breaks []BreakConfig `json:"breaks" binding:"required"`
}

func (h *BreaksHandler) Get(c *gin.Context) {
	scope, ownerID, ok := resolveScheduleScope(c, h.db)
	if !ok {
		return
	}

	var breaks []models.ScheduleBreak
	if err := h.db.
		Where("scope = ? AND owner_id = ?", scope, ownerID).
		Order("weekday ASC, start_time ASC").
		Find(&breaks).Error; err != nil {

		httperr.Internal(c, "failed_to_get_breaks", "Erro ao buscar pausas.")
		return
	}

	c.JSON(http.StatusOK, breaks)
}

// Update substitui o conjunto de pausas do escopo, igual ao expediente.
func (h *BreaksHandler) Update(c *gin.Context) {
	scope, ownerID, ok := resolveScheduleScope(c, h.db)
	if !ok {
		return
	}

	var req BreaksUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, b := range req.Breaks {
		if !isHM(b.StartTime) || !isHM(b.EndTime) {
			httperr.BadRequest(c, "invalid_time_format", "Horários devem estar no formato HH:MM.")
			return
		}
		if b.StartTime >= b.EndTime {
			httperr.BadRequest(c, "invalid_break_window", "Início da pausa deve vir antes do fim.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("scope = ? AND owner_id = ?", scope, ownerID).
			Delete(&models.ScheduleBreak{}).Error; err != nil {
			return err
		}

		var toCreate []models.ScheduleBreak
		for _, b := range req.Breaks {
			toCreate = append(toCreate, models.ScheduleBreak{
				Scope:     scope,
				OwnerID:   ownerID,
				Weekday:   b.Weekday,
				StartTime: b.StartTime,
				EndTime:   b.EndTime,
			})
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_breaks", "Erro ao salvar pausas.")
		return
	}

	h.cache.Delete(c.Request.Context(), cache.BreaksKey(scope, ownerID))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
