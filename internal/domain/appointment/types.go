package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AvailabilityInput struct {
	ClinicID       uint
	ProfessionalID uint
	Date           time.Time
	DurationMin    int
}

type RoomAvailabilityInput struct {
	ClinicID       uint
	ProfessionalID uint
	Start          time.Time
	DurationMin    int
}

type Availability struct {
	Slots []string `json:"slots"`
}

type RoomAvailability struct {
	Rooms []models.Room `json:"rooms"`
}
