package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestListByDateBuildsDTOs(t *testing.T) {
	roomID := uint(3)
	repo := newFakeRepo()
	repo.period = []models.Appointment{
		{
			ID:           1,
			Status:       "scheduled",
			Client:       models.Client{FullName: "João"},
			Professional: models.Professional{FullName: "Dra. Ana"},
			RoomID:       &roomID,
			Room:         &models.Room{ID: 3, Name: "Sala A"},
		},
		{
			ID:           2,
			Status:       "scheduled",
			Client:       models.Client{FullName: "Maria"},
			Professional: models.Professional{FullName: "Dra. Ana"},
			IsOnline:     true,
			MeetingURL:   "https://meet.jit.si/boa-vista-abc123",
		},
	}
	uc := NewListAppointmentsByDate(repo)

	items, err := uc.Execute(context.Background(), 1, 5, time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Sala A", items[0].RoomName)
	assert.Empty(t, items[0].MeetingRoom)

	assert.True(t, items[1].IsOnline)
	assert.Empty(t, items[1].RoomName)
	assert.Equal(t, "boa-vista-abc123", items[1].MeetingRoom)
}

func TestListByMonthDelegatesPeriod(t *testing.T) {
	repo := newFakeRepo()
	repo.period = []models.Appointment{{ID: 1, Status: "scheduled"}}
	uc := NewListAppointmentsByMonth(repo)

	items, err := uc.Execute(context.Background(), 1, 0, 2030, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
