package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// auditActions são as ações gravadas pelo ciclo de vida dos
// agendamentos. Filtro fora da lista é erro de digitação do chamador,
// não um resultado vazio legítimo.
var auditActions = map[string]bool{
	"appointment_created":   true,
	"appointment_completed": true,
	"appointment_cancelled": true,
	"appointment_reverted":  true,
}

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve a trilha de auditoria da clínica, mais recente
// primeiro. Filtros: action, appointment_id (histórico de um
// agendamento), user_id (quem fez) e from/to (YYYY-MM-DD).
func (h *AuditLogsHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Query base (sempre protegido por clínica)
	// --------------------------------------------------

	q := h.db.
		Model(&models.AuditLog{}).
		Where("clinic_id = ?", clinicID)

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if action := c.Query("action"); action != "" {
		if !auditActions[action] {
			httperr.BadRequest(c, "invalid_action", "Ação de auditoria desconhecida.")
			return
		}
		q = q.Where("action = ?", action)
	}

	if id, ok := queryUint(c, "appointment_id"); ok {
		q = q.Where("entity = ? AND entity_id = ?", "appointment", id)
	}

	if id, ok := queryUint(c, "user_id"); ok {
		q = q.Where("user_id = ?", id)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	// --------------------------------------------------
	// Total + listagem
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
