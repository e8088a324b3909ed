package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	FullName       string `json:"full_name" binding:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BirthDate      string `json:"birth_date"`
	Notes          string `json:"notes"`

	SessionFee           *float64 `json:"session_fee"`
	ProfessionalSharePct *float64 `json:"professional_share_percentage"`
	ClinicSharePct       *float64 `json:"clinic_share_percentage"`
}

type UpdateClientRequest struct {
	ProfessionalID *uint   `json:"professional_id"`
	FullName       *string `json:"full_name"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	BirthDate      *string `json:"birth_date"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status"`

	SessionFee           *float64 `json:"session_fee"`
	ProfessionalSharePct *float64 `json:"professional_share_percentage"`
	ClinicSharePct       *float64 `json:"clinic_share_percentage"`
}

// Os percentuais são usados ao concluir a sessão; precisam fechar 100
// para a repartição do pagamento não deixar resto.
func validShareSplit(prof, clinic float64) bool {
	if prof < 0 || clinic < 0 {
		return false
	}
	return prof+clinic == 100
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("clinic_id = ?", clinicID)

	if professionalID := c.Query("professional_id"); professionalID != "" {
		q = q.Where("professional_id = ?", professionalID)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar pacientes.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var professional models.Professional
	if err := h.db.
		Where("id = ? AND clinic_id = ?", req.ProfessionalID, clinicID).
		First(&professional).Error; err != nil {

		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	client := models.Client{
		ClinicID:       clinicID,
		ProfessionalID: req.ProfessionalID,
		FullName:       strings.TrimSpace(req.FullName),
		Phone:          req.Phone,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Notes:          req.Notes,
		Status:         "active",

		ProfessionalSharePct: 60,
		ClinicSharePct:       40,
	}

	if req.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida (use AAAA-MM-DD).")
			return
		}
		client.BirthDate = &birth
	}

	if req.SessionFee != nil {
		if *req.SessionFee < 0 {
			httperr.BadRequest(c, "invalid_session_fee", "Valor da sessão deve ser zero ou positivo.")
			return
		}
		client.SessionFee = *req.SessionFee
	}

	if req.ProfessionalSharePct != nil || req.ClinicSharePct != nil {
		if req.ProfessionalSharePct == nil || req.ClinicSharePct == nil ||
			!validShareSplit(*req.ProfessionalSharePct, *req.ClinicSharePct) {
			httperr.BadRequest(c, "invalid_share_split", "Percentuais de repartição devem somar 100.")
			return
		}
		client.ProfessionalSharePct = *req.ProfessionalSharePct
		client.ClinicSharePct = *req.ClinicSharePct
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao cadastrar paciente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&client).Error; err != nil {

		httperr.NotFound(c, "client_not_found", "Paciente não encontrado.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.ProfessionalID != nil {
		var professional models.Professional
		if err := h.db.
			Where("id = ? AND clinic_id = ?", *req.ProfessionalID, clinicID).
			First(&professional).Error; err != nil {

			httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
			return
		}
		client.ProfessionalID = *req.ProfessionalID
	}

	if req.FullName != nil && *req.FullName != "" {
		client.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			client.BirthDate = nil
		} else {
			birth, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida (use AAAA-MM-DD).")
				return
			}
			client.BirthDate = &birth
		}
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.Status != nil {
		if *req.Status != "active" && *req.Status != "inactive" {
			httperr.BadRequest(c, "invalid_status", "Status deve ser active ou inactive.")
			return
		}
		client.Status = *req.Status
	}

	if req.SessionFee != nil {
		if *req.SessionFee < 0 {
			httperr.BadRequest(c, "invalid_session_fee", "Valor da sessão deve ser zero ou positivo.")
			return
		}
		client.SessionFee = *req.SessionFee
	}

	if req.ProfessionalSharePct != nil || req.ClinicSharePct != nil {
		prof := client.ProfessionalSharePct
		clin := client.ClinicSharePct
		if req.ProfessionalSharePct != nil {
			prof = *req.ProfessionalSharePct
		}
		if req.ClinicSharePct != nil {
			clin = *req.ClinicSharePct
		}
		if !validShareSplit(prof, clin) {
			httperr.BadRequest(c, "invalid_share_split", "Percentuais de repartição devem somar 100.")
			return
		}
		client.ProfessionalSharePct = prof
		client.ClinicSharePct = clin
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar paciente.")
		return
	}

	c.JSON(http.StatusOK, client)
}
