package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Pagamentos de sessão são derivados da conclusão do atendimento; este
// handler só lista e marca como pago, nunca cria.
type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type MarkPaymentPaidRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	CollectedBy   string `json:"collected_by"`
	Notes         string `json:"notes"`
}

func (h *PaymentHandler) List(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	q := h.db.
		Model(&models.Payment{}).
		Where("clinic_id = ?", clinicID)

	if professionalID := c.Query("professional_id"); professionalID != "" {
		q = q.Where("professional_id = ?", professionalID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var payments []models.Payment
	if err := q.
		Preload("Appointment").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_payments", "Erro ao listar pagamentos.")
		return
	}

	var totals struct {
		Amount             float64
		ProfessionalAmount float64
		ClinicAmount       float64
	}
	for _, p := range payments {
		totals.Amount += p.Amount
		totals.ProfessionalAmount += p.ProfessionalAmount
		totals.ClinicAmount += p.ClinicAmount
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"totals": gin.H{
			"amount":              totals.Amount,
			"professional_amount": totals.ProfessionalAmount,
			"clinic_amount":       totals.ClinicAmount,
		},
	})
}

func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	id := c.Param("id")

	var payment models.Payment
	if err := h.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&payment).Error; err != nil {

		httperr.NotFound(c, "payment_not_found", "Pagamento não encontrado.")
		return
	}

	if payment.PaymentStatus != "pending" {
		httperr.BadRequest(c, "already_paid", "Pagamento já registrado como pago.")
		return
	}

	var req MarkPaymentPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// quem recebeu define o status final
	collectedBy := req.CollectedBy
	if collectedBy == "" {
		collectedBy = "clinic"
	}
	if collectedBy != "clinic" && collectedBy != "professional" {
		httperr.BadRequest(c, "invalid_collected_by", "collected_by deve ser clinic ou professional.")
		return
	}

	now := time.Now()
	payment.PaymentStatus = "paid_to_" + collectedBy
	payment.PaymentMethod = req.PaymentMethod
	payment.PaymentDate = &now
	payment.CollectedBy = collectedBy
	if req.Notes != "" {
		payment.Notes = req.Notes
	}

	if err := h.db.Save(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_payment", "Erro ao atualizar pagamento.")
		return
	}

	c.JSON(http.StatusOK, payment)
}
