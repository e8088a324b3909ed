package models

import "time"

// Pausa recorrente (almoço, intervalo) por dia da semana.
type ScheduleBreak struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Scope   string `gorm:"size:20;index:idx_break_owner" json:"scope"`
	OwnerID uint   `gorm:"index:idx_break_owner" json:"owner_id"`

	Weekday   int    `json:"weekday"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
