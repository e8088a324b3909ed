package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func noopDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func TestCompleteGeneratesPayment(t *testing.T) {
	repo := newFakeRepo()
	repo.appointment = &models.Appointment{
		ID:             7,
		ClinicID:       1,
		ProfessionalID: 5,
		ClientID:       9,
		Status:         "scheduled",
	}
	uc := NewCompleteAppointment(repo, noopDispatcher())

	ap, err := uc.Execute(context.Background(), 1, 10, 7)
	require.NoError(t, err)

	assert.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.CompletedAt)

	require.NotNil(t, repo.savedPayment)
	assert.Equal(t, 200.0, repo.savedPayment.Amount)
	assert.Equal(t, 120.0, repo.savedPayment.ProfessionalAmount)
	assert.Equal(t, 80.0, repo.savedPayment.ClinicAmount)
	assert.Equal(t, uint(7), repo.savedPayment.AppointmentID)
}

func TestCompleteRejectsNonScheduled(t *testing.T) {
	repo := newFakeRepo()
	repo.appointment = &models.Appointment{ID: 7, ClinicID: 1, ClientID: 9, Status: "cancelled"}
	uc := NewCompleteAppointment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 1, 10, 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, repo.savedPayment)
}

func TestCompleteUnknownAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCompleteAppointment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 1, 10, 99)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestRevertDeletesPayment(t *testing.T) {
	repo := newFakeRepo()
	now := repo.clinic.CreatedAt
	repo.appointment = &models.Appointment{
		ID:          7,
		ClinicID:    1,
		ClientID:    9,
		Status:      "completed",
		CompletedAt: &now,
	}
	uc := NewRevertAppointment(repo, noopDispatcher())

	ap, err := uc.Execute(context.Background(), 1, 10, 7)
	require.NoError(t, err)

	assert.Equal(t, "scheduled", ap.Status)
	assert.Nil(t, ap.CompletedAt)
	assert.True(t, repo.deletedPayment)
}

func TestRevertRejectsScheduled(t *testing.T) {
	repo := newFakeRepo()
	repo.appointment = &models.Appointment{ID: 7, ClinicID: 1, Status: "scheduled"}
	uc := NewRevertAppointment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 1, 10, 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.False(t, repo.deletedPayment)
}

func TestCancelUpdatesStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.appointment = &models.Appointment{ID: 7, ClinicID: 1, Status: "scheduled"}
	uc := NewCancelAppointment(repo, noopDispatcher())

	ap, err := uc.Execute(context.Background(), 1, 10, 7)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.True(t, repo.updated)
}

func TestCancelRejectsCompleted(t *testing.T) {
	repo := newFakeRepo()
	repo.appointment = &models.Appointment{ID: 7, ClinicID: 1, Status: "completed"}
	uc := NewCancelAppointment(repo, noopDispatcher())

	_, err := uc.Execute(context.Background(), 1, 10, 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
