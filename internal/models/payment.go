package models

import "time"

// Registro financeiro derivado de uma sessão concluída.
// Os valores são congelados no momento da conclusão.
type Payment struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClinicID uint `json:"clinic_id"`

	AppointmentID uint        `gorm:"uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"appointment"`

	ProfessionalID uint `json:"professional_id"`

	Amount             float64 `json:"amount"`
	ProfessionalAmount float64 `json:"professional_amount"`
	ClinicAmount       float64 `json:"clinic_amount"`

	PaymentMethod string     `gorm:"size:20" json:"payment_method"`
	PaymentStatus string     `gorm:"size:30;default:'pending'" json:"payment_status"`
	CollectedBy   string     `gorm:"size:20;default:'clinic'" json:"collected_by"`
	PaymentDate   *time.Time `json:"payment_date"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
