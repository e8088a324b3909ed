package handlers

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por clínica
// --------------------------------------------------

func locationFromClinic(clinic *models.Clinic) *time.Location {
	if clinic != nil {
		return timezone.Location(clinic.Timezone)
	}
	return timezone.Location("")
}

func parseDateInClinic(clinic *models.Clinic, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromClinic(clinic),
	)
}

func parseDateTimeInClinic(
	clinic *models.Clinic,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromClinic(clinic),
	)
}

// isHM valida "HH:MM" (24h) sem aceitar formatos alternativos.
func isHM(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
