package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// fakeRepo implementa domain.Repository em memória para os testes
// de caso de uso. Campos não configurados respondem vazio.
type fakeRepo struct {
	clinic       *models.Clinic
	professional *models.Professional
	client       *models.Client
	rooms        []models.Room

	hours     map[string]domain.WeeklyHours
	breaks    map[string][]models.ScheduleBreak
	vacations map[string][]models.Vacation

	dayAppointments []models.Appointment
	roomBookings    []models.Appointment
	period          []models.Appointment

	createErr      error
	createdBatches [][]*models.Appointment

	appointment    *models.Appointment
	savedPayment   *models.Payment
	deletedPayment bool
	updated        bool
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clinic: &models.Clinic{
			ID:       1,
			Name:     "Clínica Boa Vista",
			Slug:     "boa-vista",
			Timezone: "UTC",
		},
		professional: &models.Professional{ID: 5, ClinicID: 1, FullName: "Dra. Ana"},
		client: &models.Client{
			ID:                   9,
			ClinicID:             1,
			ProfessionalID:       5,
			FullName:             "João",
			SessionFee:           200,
			ProfessionalSharePct: 60,
			ClinicSharePct:       40,
		},
		hours:     map[string]domain.WeeklyHours{},
		breaks:    map[string][]models.ScheduleBreak{},
		vacations: map[string][]models.Vacation{},
	}
}

func (f *fakeRepo) GetClinicByID(ctx context.Context, id uint) (*models.Clinic, error) {
	if f.clinic == nil || f.clinic.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.clinic, nil
}

func (f *fakeRepo) GetProfessional(ctx context.Context, clinicID, professionalID uint) (*models.Professional, error) {
	if f.professional == nil || f.professional.ID != professionalID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.professional, nil
}

func (f *fakeRepo) GetClient(ctx context.Context, clinicID, clientID uint) (*models.Client, error) {
	if f.client == nil || f.client.ID != clientID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.client, nil
}

func (f *fakeRepo) ListRooms(ctx context.Context, clinicID uint) ([]models.Room, error) {
	return f.rooms, nil
}

func (f *fakeRepo) GetWeeklyHours(ctx context.Context, scope string, ownerID uint) (domain.WeeklyHours, error) {
	return f.hours[scope], nil
}

func (f *fakeRepo) ListBreaks(ctx context.Context, scope string, ownerID uint) ([]models.ScheduleBreak, error) {
	return f.breaks[scope], nil
}

func (f *fakeRepo) ListVacations(ctx context.Context, scope string, ownerID uint) ([]models.Vacation, error) {
	return f.vacations[scope], nil
}

func (f *fakeRepo) ListProfessionalAppointmentsForDay(ctx context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	return f.dayAppointments, nil
}

func (f *fakeRepo) ListRoomBookingsForDay(ctx context.Context, clinicID, excludeProfessionalID uint, start, end time.Time) ([]models.Appointment, error) {
	return f.roomBookings, nil
}

func (f *fakeRepo) CreateAppointmentsBatch(ctx context.Context, aps []*models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	for i, ap := range aps {
		ap.ID = uint(i + 1)
	}
	f.createdBatches = append(f.createdBatches, aps)
	return nil
}

func (f *fakeRepo) GetAppointmentForClinic(ctx context.Context, appointmentID, clinicID uint) (*models.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != appointmentID {
		return nil, gorm.ErrRecordNotFound
	}
	return f.appointment, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.updated = true
	return nil
}

func (f *fakeRepo) SaveStatusWithPayment(ctx context.Context, ap *models.Appointment, payment *models.Payment) error {
	f.savedPayment = payment
	return nil
}

func (f *fakeRepo) SaveStatusDeletePayment(ctx context.Context, ap *models.Appointment) error {
	f.deletedPayment = true
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, clinicID, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	return f.period, nil
}
