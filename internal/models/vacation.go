package models

import "time"

// Férias / afastamento por intervalo de datas (inclusivo nas duas pontas).
type Vacation struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Scope   string `gorm:"size:20;index:idx_vacation_owner" json:"scope"`
	OwnerID uint   `gorm:"index:idx_vacation_owner" json:"owner_id"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
