package models

import "time"

type Subscription struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClinicID uint `gorm:"index" json:"clinic_id"`

	PlanType     string `gorm:"size:20;not null" json:"plan_type"`
	Status       string `gorm:"size:20;default:'trial'" json:"status"`
	BillingCycle string `gorm:"size:10;default:'monthly'" json:"billing_cycle"`

	CurrentPeriodStart *time.Time `json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end"`
	TrialEnd           *time.Time `json:"trial_end"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
	CancelledAt        *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SubscriptionPayment struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	SubscriptionID uint `gorm:"index" json:"subscription_id"`

	Amount   float64 `json:"amount"`
	Currency string  `gorm:"size:3;default:'BRL'" json:"currency"`

	PaymentMethod string `gorm:"size:20" json:"payment_method"`
	Status        string `gorm:"size:30;default:'pending_verification'" json:"status"`

	// Referência externa do provedor de pagamento (link de checkout)
	CheckoutURL  string `gorm:"size:512" json:"checkout_url"`
	PreferenceID string `gorm:"size:100" json:"preference_id"`

	BankTransferReference string     `gorm:"size:100" json:"bank_transfer_reference"`
	VerifiedByUserID      *uint      `json:"verified_by_user_id"`
	VerifiedAt            *time.Time `json:"verified_at"`

	PaymentDate *time.Time `json:"payment_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
