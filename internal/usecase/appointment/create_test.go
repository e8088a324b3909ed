package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	return NewCreateAppointment(repo, audit.NewDispatcher(audit.New(nil)))
}

func baseInput() CreateAppointmentInput {
	roomID := uint(2)
	return CreateAppointmentInput{
		ClinicID:       1,
		UserID:         10,
		ProfessionalID: 5,
		ClientID:       9,
		Date:           "2030-05-20",
		Time:           "10:00",
		RoomID:         &roomID,
	}
}

func TestCreateRequiresFields(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.ClientID = 0
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_required_field"))

	in = baseInput()
	in.Time = ""
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_required_field"))
}

func TestCreateRequiresRoomWhenInPerson(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.RoomID = nil
	in.IsOnline = false

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_room"))
}

func TestCreateRejectsInvalidDate(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.Date = "20/05/2030"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateRejectsPastStart(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.Date = "2020-01-06"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "past_start"))
}

func TestCreateHonorsMinAdvance(t *testing.T) {
	repo := newFakeRepo()
	repo.clinic.MinAdvanceMinutes = 24 * 60 * 365 * 20 // ~20 anos
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "past_start"))
}

func TestCreateSingleInPerson(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	aps, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)
	require.Len(t, aps, 1)

	ap := aps[0]
	assert.Equal(t, "scheduled", ap.Status)
	require.NotNil(t, ap.RoomID)
	assert.Equal(t, uint(2), *ap.RoomID)
	assert.Empty(t, ap.MeetingURL)

	// duração padrão de sessão
	assert.Equal(t, 45*time.Minute, ap.EndTime.Sub(ap.StartTime))

	require.Len(t, repo.createdBatches, 1)
}

func TestCreateOnlineGeneratesMeetingURL(t *testing.T) {
	repo := newFakeRepo()
	repo.clinic.MeetingDomain = "meet.exemplo.com.br"
	uc := newCreateUC(repo)

	in := baseInput()
	in.RoomID = nil
	in.IsOnline = true

	aps, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, aps, 1)

	assert.Nil(t, aps[0].RoomID)
	assert.Contains(t, aps[0].MeetingURL, "https://meet.exemplo.com.br/boa-vista-")
}

func TestCreateWeeklyRecurrence(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.Recurring = true
	in.RecurrenceFrequency = RecurrenceWeekly
	in.RecurrenceCount = 3

	aps, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, aps, 3)

	for i := 1; i < len(aps); i++ {
		assert.Equal(t, aps[i-1].StartTime.AddDate(0, 0, 7), aps[i].StartTime)
	}

	// lote único: tudo ou nada
	require.Len(t, repo.createdBatches, 1)
	assert.Len(t, repo.createdBatches[0], 3)
}

func TestCreateMonthlyRecurrence(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.Recurring = true
	in.RecurrenceFrequency = RecurrenceMonthly
	in.RecurrenceCount = 2

	aps, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, aps, 2)
	assert.Equal(t, aps[0].StartTime.AddDate(0, 1, 0), aps[1].StartTime)
}

func TestCreateInvalidRecurrence(t *testing.T) {
	uc := newCreateUC(newFakeRepo())

	in := baseInput()
	in.Recurring = true
	in.RecurrenceFrequency = "daily"
	in.RecurrenceCount = 4
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_recurrence"))

	in = baseInput()
	in.Recurring = true
	in.RecurrenceFrequency = RecurrenceWeekly
	in.RecurrenceCount = 1
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_recurrence"))

	in.RecurrenceCount = 53
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_recurrence"))
}

func TestCreateRejectsVacationDate(t *testing.T) {
	repo := newFakeRepo()
	repo.vacations[models.ScopeProfessional] = []models.Vacation{
		{
			StartDate: time.Date(2030, 5, 15, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2030, 5, 25, 0, 0, 0, 0, time.UTC),
		},
	}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "date_excluded"))
}

func TestCreateRejectsOutsideWorkingHours(t *testing.T) {
	repo := newFakeRepo()
	// 2030-05-20 é segunda-feira (weekday 1)
	repo.hours[models.ScopeClinic] = domain.WeeklyHours{
		1: {Opening: "13:00", Closing: "18:00", Open: true},
	}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateRejectsEndPastMidnight(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	// Janela permissiva padrão (00:00–23:59): o término 00:30 do dia
	// seguinte não pode escapar pela comparação de "HH:MM".
	in := baseInput()
	in.Time = "23:45"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateRejectsEndAfterClosing(t *testing.T) {
	repo := newFakeRepo()
	repo.hours[models.ScopeClinic] = domain.WeeklyHours{
		1: {Opening: "09:00", Closing: "18:00", Open: true},
	}
	uc := newCreateUC(repo)

	in := baseInput()
	in.Time = "17:30" // 45min terminam 18:15

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateRejectsClosedDay(t *testing.T) {
	repo := newFakeRepo()
	repo.hours[models.ScopeProfessional] = domain.WeeklyHours{
		1: {Opening: "09:00", Closing: "18:00", Open: false},
	}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateRejectsInsideBreak(t *testing.T) {
	repo := newFakeRepo()
	repo.breaks[models.ScopeClinic] = []models.ScheduleBreak{
		{Weekday: 1, StartTime: "10:00", EndTime: "11:00"},
	}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "inside_break"))
}

func TestCreatePropagatesConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = httperr.ErrBusiness("professional_conflict")
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.True(t, httperr.IsBusiness(err, "professional_conflict"))
	assert.Empty(t, repo.createdBatches)
}

func TestCreateUnknownProfessionalAndClient(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	in := baseInput()
	in.ProfessionalID = 99
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))

	in = baseInput()
	in.ClientID = 99
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
}
