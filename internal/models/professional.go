package models

import "time"

type Professional struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ClinicID uint   `json:"clinic_id"`
	Clinic   Clinic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"clinic"`

	UserID *uint `json:"user_id"`

	FullName        string `gorm:"size:100;not null" json:"full_name"`
	Title           string `gorm:"size:100" json:"title"`
	Specialization  string `gorm:"size:100" json:"specialization"`
	Email           string `gorm:"size:100" json:"email"`
	Phone           string `gorm:"size:20" json:"phone"`
	Status          string `gorm:"size:20;default:'active'" json:"status"`
	ProfileImageURL string `gorm:"size:255" json:"profile_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
