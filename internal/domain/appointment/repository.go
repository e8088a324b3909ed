package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Clinic --------
	GetClinicByID(
		ctx context.Context,
		id uint,
	) (*models.Clinic, error)

	// -------- Directory --------
	GetProfessional(
		ctx context.Context,
		clinicID uint,
		professionalID uint,
	) (*models.Professional, error)

	GetClient(
		ctx context.Context,
		clinicID uint,
		clientID uint,
	) (*models.Client, error)

	ListRooms(
		ctx context.Context,
		clinicID uint,
	) ([]models.Room, error)

	// -------- Schedule configuration --------
	GetWeeklyHours(
		ctx context.Context,
		scope string,
		ownerID uint,
	) (WeeklyHours, error)

	ListBreaks(
		ctx context.Context,
		scope string,
		ownerID uint,
	) ([]models.ScheduleBreak, error)

	ListVacations(
		ctx context.Context,
		scope string,
		ownerID uint,
	) ([]models.Vacation, error)

	// -------- Availability reads --------
	ListProfessionalAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListRoomBookingsForDay(
		ctx context.Context,
		clinicID uint,
		excludeProfessionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create / conflict) --------
	//
	// Insere o lote em UMA transação com checagem de conflito por
	// ocorrência (lock de linha). Qualquer conflito desfaz o lote
	// inteiro: tudo ou nada.
	CreateAppointmentsBatch(
		ctx context.Context,
		aps []*models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForClinic(
		ctx context.Context,
		appointmentID uint,
		clinicID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Atualiza status e cria o pagamento derivado na mesma transação.
	SaveStatusWithPayment(
		ctx context.Context,
		ap *models.Appointment,
		payment *models.Payment,
	) error

	// Atualiza status e remove o pagamento derivado na mesma transação.
	SaveStatusDeletePayment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		clinicID uint,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
