package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWorkingDaysAccepts(t *testing.T) {
	code, _ := validateWorkingDays([]WorkingDayConfig{
		{Weekday: 1, Open: true, Opening: "08:00", Closing: "18:00"},
		{Weekday: 2, Open: false},
		{Weekday: 3, Open: true, Opening: "12:00", Closing: "12:00"},
	})
	assert.Empty(t, code)
}

func TestValidateWorkingDaysRejectsBadFormat(t *testing.T) {
	code, _ := validateWorkingDays([]WorkingDayConfig{
		{Weekday: 1, Open: true, Opening: "8h00", Closing: "18:00"},
	})
	assert.Equal(t, "invalid_time_format", code)
}

func TestValidateWorkingDaysRejectsInvertedWindow(t *testing.T) {
	code, _ := validateWorkingDays([]WorkingDayConfig{
		{Weekday: 1, Open: true, Opening: "18:00", Closing: "08:00"},
	})
	assert.Equal(t, "invalid_time_window", code)
}

func TestValidateWorkingDaysIgnoresClosedDay(t *testing.T) {
	// dia fechado pode vir sem horários no payload
	code, _ := validateWorkingDays([]WorkingDayConfig{
		{Weekday: 0, Open: false, Opening: "", Closing: ""},
	})
	assert.Empty(t, code)
}
