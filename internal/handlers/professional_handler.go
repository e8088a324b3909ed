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

type ProfessionalHandler struct {
	db *gorm.DB
}

func NewProfessionalHandler(db *gorm.DB) *ProfessionalHandler {
	return &ProfessionalHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateProfessionalRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Title          string `json:"title"`
	Specialization string `json:"specialization"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type UpdateProfessionalRequest struct {
	FullName       *string `json:"full_name"`
	Title          *string `json:"title"`
	Specialization *string `json:"specialization"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Status         *string `json:"status"`
}

// ======================================================
// LIST
// ======================================================

func (h *ProfessionalHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	q := h.db.Where("clinic_id = ?", clinicID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var professionals []models.Professional
	if err := q.
		Order("full_name ASC").
		Find(&professionals).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, professionals)
}

// ======================================================
// CREATE
// ======================================================

func (h *ProfessionalHandler) Create(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	professional := models.Professional{
		ClinicID:       clinicID,
		FullName:       strings.TrimSpace(req.FullName),
		Title:          req.Title,
		Specialization: req.Specialization,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          req.Phone,
		Status:         "active",
	}

	if err := h.db.Create(&professional).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao cadastrar profissional.")
		return
	}

	c.JSON(http.StatusCreated, professional)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ProfessionalHandler) Update(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	id := c.Param("id")

	var professional models.Professional
	if err := h.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&professional).Error; err != nil {

		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.FullName != nil && *req.FullName != "" {
		professional.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Title != nil {
		professional.Title = *req.Title
	}
	if req.Specialization != nil {
		professional.Specialization = *req.Specialization
	}
	if req.Email != nil {
		professional.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		professional.Phone = *req.Phone
	}
	if req.Status != nil {
		if *req.Status != "active" && *req.Status != "inactive" {
			httperr.BadRequest(c, "invalid_status", "Status deve ser active ou inactive.")
			return
		}
		professional.Status = *req.Status
	}

	if err := h.db.Save(&professional).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	c.JSON(http.StatusOK, professional)
}
