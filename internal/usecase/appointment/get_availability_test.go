package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// 2030-01-07 é uma segunda-feira.
var monday = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func availabilityInput() domain.AvailabilityInput {
	return domain.AvailabilityInput{
		ClinicID:       1,
		ProfessionalID: 5,
		Date:           monday,
		DurationMin:    45,
	}
}

func TestGetAvailabilityIntersectsSchedules(t *testing.T) {
	repo := newFakeRepo()
	repo.hours[models.ScopeClinic] = domain.WeeklyHours{
		1: {Opening: "09:00", Closing: "18:00", Open: true},
	}
	repo.hours[models.ScopeProfessional] = domain.WeeklyHours{
		1: {Opening: "10:00", Closing: "16:00", Open: true},
	}
	uc := NewGetAvailability(repo)

	out, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	require.NotEmpty(t, out.Slots)
	assert.Equal(t, "10:00", out.Slots[0])
	assert.Equal(t, "15:15", out.Slots[len(out.Slots)-1])
}

func TestGetAvailabilityVacationReturnsEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.vacations[models.ScopeClinic] = []models.Vacation{
		{StartDate: monday.AddDate(0, 0, -2), EndDate: monday.AddDate(0, 0, 2)},
	}
	uc := NewGetAvailability(repo)

	out, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)
	assert.Empty(t, out.Slots)
	assert.NotNil(t, out.Slots)
}

func TestGetAvailabilityClosedDayReturnsEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.hours[models.ScopeProfessional] = domain.WeeklyHours{
		1: {Opening: "09:00", Closing: "18:00", Open: false},
	}
	uc := NewGetAvailability(repo)

	out, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)
	assert.Empty(t, out.Slots)
}

func TestGetAvailabilityExcludesBookedSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.hours[models.ScopeClinic] = domain.WeeklyHours{
		1: {Opening: "09:00", Closing: "12:00", Open: true},
	}
	repo.dayAppointments = []models.Appointment{
		{
			StartTime: time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2030, 1, 7, 10, 45, 0, 0, time.UTC),
		},
	}
	uc := NewGetAvailability(repo)

	out, err := uc.Execute(context.Background(), availabilityInput())
	require.NoError(t, err)

	assert.NotContains(t, out.Slots, "10:00")
	assert.Contains(t, out.Slots, "10:45")
}

func TestGetAvailabilityUnknownProfessional(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	in := availabilityInput()
	in.ProfessionalID = 99

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))
}

func TestGetAvailableRoomsFiltersByWindow(t *testing.T) {
	repo := newFakeRepo()
	repo.rooms = []models.Room{
		{ID: 1, Name: "Sala A"},
		{ID: 2, Name: "Sala B"},
	}
	roomA := uint(1)
	repo.roomBookings = []models.Appointment{
		{
			RoomID:    &roomA,
			StartTime: time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2030, 1, 7, 11, 0, 0, 0, time.UTC),
		},
	}
	uc := NewGetAvailableRooms(repo)

	out, err := uc.Execute(context.Background(), domain.RoomAvailabilityInput{
		ClinicID:       1,
		ProfessionalID: 5,
		Start:          time.Date(2030, 1, 7, 10, 30, 0, 0, time.UTC),
		DurationMin:    45,
	})
	require.NoError(t, err)

	require.Len(t, out.Rooms, 1)
	assert.Equal(t, "Sala B", out.Rooms[0].Name)
}

func TestGetAvailableRoomsRejectsInvalidDuration(t *testing.T) {
	uc := NewGetAvailableRooms(newFakeRepo())

	_, err := uc.Execute(context.Background(), domain.RoomAvailabilityInput{
		ClinicID:       1,
		ProfessionalID: 5,
		Start:          monday,
		DurationMin:    0,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))
}
