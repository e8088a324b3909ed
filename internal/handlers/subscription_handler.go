package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/billing"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type SubscriptionHandler struct {
	db      *gorm.DB
	billing *billing.Client
}

// billing nil = cobrança online desabilitada; assinar ainda funciona
// por transferência bancária com verificação manual.
func NewSubscriptionHandler(db *gorm.DB, billing *billing.Client) *SubscriptionHandler {
	return &SubscriptionHandler{db: db, billing: billing}
}

type SubscribeRequest struct {
	PlanType     string `json:"plan_type" binding:"required"`
	BillingCycle string `json:"billing_cycle"`
}

func (h *SubscriptionHandler) Get(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var sub models.Subscription
	if err := h.db.
		Where("clinic_id = ?", clinicID).
		Order("created_at DESC").
		First(&sub).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"subscription": nil})
			return
		}
		httperr.Internal(c, "failed_to_get_subscription", "Erro ao buscar assinatura.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cycle := req.BillingCycle
	if cycle == "" {
		cycle = "monthly"
	}
	if cycle != "monthly" && cycle != "annual" {
		httperr.BadRequest(c, "invalid_billing_cycle", "Ciclo deve ser monthly ou annual.")
		return
	}

	amount, err := billing.PlanAmount(req.PlanType, cycle)
	if err != nil {
		httperr.BadRequest(c, "invalid_plan", "Plano desconhecido.")
		return
	}

	var clinic models.Clinic
	if err := h.db.First(&clinic, clinicID).Error; err != nil {
		httperr.Internal(c, "clinic_not_found", "Clínica não encontrada.")
		return
	}

	now := time.Now()
	periodEnd := now.AddDate(0, 1, 0)
	if cycle == "annual" {
		periodEnd = now.AddDate(1, 0, 0)
	}

	sub := models.Subscription{
		ClinicID:           clinicID,
		PlanType:           req.PlanType,
		Status:             "pending_payment",
		BillingCycle:       cycle,
		CurrentPeriodStart: &now,
		CurrentPeriodEnd:   &periodEnd,
	}

	subPayment := models.SubscriptionPayment{
		Amount:   amount,
		Currency: "BRL",
		Status:   "pending_verification",
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		subPayment.SubscriptionID = sub.ID
		return tx.Create(&subPayment).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_subscription", "Erro ao criar assinatura.")
		return
	}

	// Checkout online quando há credencial configurada.
	if h.billing != nil {
		checkout, err := h.billing.CreateCheckout(
			c.Request.Context(),
			clinic.Name,
			req.PlanType,
			cycle,
			fmt.Sprintf("subscription-payment-%d", subPayment.ID),
		)
		if err != nil {
			httperr.Internal(c, "checkout_failed", "Erro ao gerar link de pagamento.")
			return
		}

		subPayment.PaymentMethod = "mercadopago"
		subPayment.CheckoutURL = checkout.URL
		subPayment.PreferenceID = checkout.PreferenceID
		h.db.Save(&subPayment)
	} else {
		subPayment.PaymentMethod = "bank_transfer"
		h.db.Save(&subPayment)
	}

	c.JSON(http.StatusCreated, gin.H{
		"subscription": sub,
		"payment":      subPayment,
	})
}

// VerifyPayment confirma manualmente um pagamento por transferência
// e ativa a assinatura.
func (h *SubscriptionHandler) VerifyPayment(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var subPayment models.SubscriptionPayment
	if err := h.db.
		Joins("JOIN subscriptions ON subscriptions.id = subscription_payments.subscription_id").
		Where("subscription_payments.id = ? AND subscriptions.clinic_id = ?", id, clinicID).
		First(&subPayment).Error; err != nil {

		httperr.NotFound(c, "payment_not_found", "Pagamento não encontrado.")
		return
	}

	if subPayment.Status == "verified" {
		httperr.BadRequest(c, "already_verified", "Pagamento já verificado.")
		return
	}

	now := time.Now()
	subPayment.Status = "verified"
	subPayment.VerifiedByUserID = &userID
	subPayment.VerifiedAt = &now
	subPayment.PaymentDate = &now

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&subPayment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Subscription{}).
			Where("id = ?", subPayment.SubscriptionID).
			Update("status", "active").Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_verify_payment", "Erro ao verificar pagamento.")
		return
	}

	c.JSON(http.StatusOK, subPayment)
}
