package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// A configuração de agenda (expediente, pausas, férias) existe em dois
// escopos: o da clínica (dona = clinic_id) e o de cada profissional
// (dona = professional_id). Os handlers recebem ?scope= e, no escopo
// de profissional, ?professional_id= — sempre validado contra a clínica
// do token.
func resolveScheduleScope(c *gin.Context, db *gorm.DB) (string, uint, bool) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	scope := c.DefaultQuery("scope", models.ScopeClinic)

	switch scope {
	case models.ScopeClinic:
		return models.ScopeClinic, clinicID, true

	case models.ScopeProfessional:
		idStr := c.Query("professional_id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil || id == 0 {
			httperr.BadRequest(c, "missing_professional_id", "Informe professional_id para o escopo de profissional.")
			return "", 0, false
		}

		var professional models.Professional
		if err := db.
			Where("id = ? AND clinic_id = ?", id, clinicID).
			First(&professional).Error; err != nil {

			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return "", 0, false
		}

		return models.ScopeProfessional, uint(id), true

	default:
		httperr.BadRequest(c, "invalid_scope", "Escopo deve ser clinic ou professional.")
		return "", 0, false
	}
}
