package models

import "time"

// Escopos de configuração de agenda. A mesma tabela guarda o
// expediente da clínica (OwnerID = clinic_id) e o de cada
// profissional (OwnerID = professional_id).
const (
	ScopeClinic       = "clinic"
	ScopeProfessional = "professional"
)

type WorkingHours struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Scope   string `gorm:"size:20;index:idx_wh_owner" json:"scope"`
	OwnerID uint   `gorm:"index:idx_wh_owner" json:"owner_id"`

	Weekday int `json:"weekday"`

	Opening string `gorm:"size:5" json:"opening"`
	Closing string `gorm:"size:5" json:"closing"`
	Open    bool   `json:"open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
