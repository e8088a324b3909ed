package models

import "time"

// Paciente da clínica, sempre vinculado a um profissional responsável.
type Client struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClinicID uint `json:"clinic_id"`

	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	FullName  string     `gorm:"size:100;not null" json:"full_name"`
	Phone     string     `gorm:"size:20" json:"phone"`
	Email     string     `gorm:"size:100" json:"email"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `gorm:"size:500" json:"notes"`
	Status    string     `gorm:"size:20;default:'active'" json:"status"`

	// Valores usados ao gerar o registro de pagamento quando a sessão é concluída
	SessionFee           float64 `json:"session_fee"`
	ProfessionalSharePct float64 `gorm:"default:60" json:"professional_share_percentage"`
	ClinicSharePct       float64 `gorm:"default:40" json:"clinic_share_percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
