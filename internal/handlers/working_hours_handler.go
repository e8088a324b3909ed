package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewWorkingHoursHandler(db *gorm.DB, cache *cache.Cache) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, cache: cache}
}

type WorkingDayConfig struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Open    bool   `json:"open"`
	Opening string `json:"opening"`
	Closing string `json:"closing"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// validateWorkingDays checa formato e ordem dos horários dos dias
// abertos. Dia fechado não carrega horários e passa direto.
func validateWorkingDays(days []WorkingDayConfig) (code, msg string) {
	for _, d := range days {
		if !d.Open {
			continue
		}
		if !isHM(d.Opening) || !isHM(d.Closing) {
			return "invalid_time_format", "Horários devem estar no formato HH:MM."
		}
		if d.Opening > d.Closing {
			return "invalid_time_window", "Abertura deve ser anterior ao fechamento."
		}
	}
	return "", ""
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	scope, ownerID, ok := resolveScheduleScope(c, h.db)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("scope = ? AND owner_id = ?", scope, ownerID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar expediente.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update substitui a semana inteira: apaga e recria. Dias ausentes do
// payload ficam sem registro e caem no padrão permissivo do motor.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	scope, ownerID, ok := resolveScheduleScope(c, h.db)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code, msg := validateWorkingDays(req.Days); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("scope = ? AND owner_id = ?", scope, ownerID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		var toCreate []models.WorkingHours
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WorkingHours{
				Scope:   scope,
				OwnerID: ownerID,
				Weekday: d.Weekday,
				Open:    d.Open,
				Opening: d.Opening,
				Closing: d.Closing,
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
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar expediente.")
		return
	}

	h.cache.Delete(c.Request.Context(), cache.HoursKey(scope, ownerID))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
