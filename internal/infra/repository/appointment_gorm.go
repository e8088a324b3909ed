package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAppointmentGormRepository(db *gorm.DB, c *cache.Cache) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, cache: c}
}

// --------------------------------------------------
// Clinic
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClinicByID(
	ctx context.Context,
	id uint,
) (*models.Clinic, error) {

	var clinic models.Clinic
	if err := r.db.WithContext(ctx).First(&clinic, id).Error; err != nil {
		return nil, err
	}
	return &clinic, nil
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	clinicID uint,
	professionalID uint,
) (*models.Professional, error) {

	var professional models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND clinic_id = ?", professionalID, clinicID).
		First(&professional).Error; err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	clinicID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND clinic_id = ?", clientID, clinicID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) ListRooms(
	ctx context.Context,
	clinicID uint,
) ([]models.Room, error) {

	var rooms []models.Room
	if err := r.db.WithContext(ctx).
		Where("clinic_id = ?", clinicID).
		Order("name ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// --------------------------------------------------
// Schedule configuration (com cache)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWeeklyHours(
	ctx context.Context,
	scope string,
	ownerID uint,
) (domain.WeeklyHours, error) {

	key := cache.HoursKey(scope, ownerID)

	var cached domain.WeeklyHours
	if r.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("scope = ? AND owner_id = ?", scope, ownerID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	weekly := domain.WeeklyHours{}
	for _, row := range rows {
		weekly[row.Weekday] = domain.DayHours{
			Opening: row.Opening,
			Closing: row.Closing,
			Open:    row.Open,
		}
	}

	r.cache.SetJSON(ctx, key, weekly)
	return weekly, nil
}

func (r *AppointmentGormRepository) ListBreaks(
	ctx context.Context,
	scope string,
	ownerID uint,
) ([]models.ScheduleBreak, error) {

	key := cache.BreaksKey(scope, ownerID)

	var cached []models.ScheduleBreak
	if r.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	var breaks []models.ScheduleBreak
	if err := r.db.WithContext(ctx).
		Where("scope = ? AND owner_id = ?", scope, ownerID).
		Find(&breaks).Error; err != nil {
		return nil, err
	}

	r.cache.SetJSON(ctx, key, breaks)
	return breaks, nil
}

func (r *AppointmentGormRepository) ListVacations(
	ctx context.Context,
	scope string,
	ownerID uint,
) ([]models.Vacation, error) {

	key := cache.VacationsKey(scope, ownerID)

	var cached []models.Vacation
	if r.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	var vacations []models.Vacation
	if err := r.db.WithContext(ctx).
		Where("scope = ? AND owner_id = ?", scope, ownerID).
		Find(&vacations).Error; err != nil {
		return nil, err
	}

	r.cache.SetJSON(ctx, key, vacations)
	return vacations, nil
}

// --------------------------------------------------
// Availability reads
// --------------------------------------------------

func (r *AppointmentGormRepository) ListProfessionalAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "professional_id", "room_id", "start_time", "end_time", "status").
		Where(
			"professional_id = ? AND status <> 'cancelled' AND start_time >= ? AND start_time < ?",
			professionalID, start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListRoomBookingsForDay(
	ctx context.Context,
	clinicID uint,
	excludeProfessionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "professional_id", "room_id", "start_time", "end_time", "status").
		Where(
			"clinic_id = ? AND room_id IS NOT NULL AND status <> 'cancelled' AND professional_id <> ? AND start_time >= ? AND start_time < ?",
			clinicID, excludeProfessionalID, start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointmentsBatch insere todas as ocorrências em uma
// transação, checando conflito de profissional e de sala por
// ocorrência com lock de linha. Conflito em qualquer ocorrência
// desfaz o lote inteiro.
func (r *AppointmentGormRepository) CreateAppointmentsBatch(
	ctx context.Context,
	aps []*models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ap := range aps {

			var count int64
			if err := tx.
				Model(&models.Appointment{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(
					"professional_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
					ap.ProfessionalID,
					ap.EndTime,
					ap.StartTime,
				).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return httperr.ErrBusiness("professional_conflict")
			}

			if ap.RoomID != nil {
				if err := tx.
					Model(&models.Appointment{}).
					Clauses(clause.Locking{Strength: "UPDATE"}).
					Where(
						"room_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
						*ap.RoomID,
						ap.EndTime,
						ap.StartTime,
					).
					Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					return httperr.ErrBusiness("room_conflict")
				}
			}

			if err := tx.Create(ap).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForClinic(
	ctx context.Context,
	appointmentID uint,
	clinicID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND clinic_id = ?", appointmentID, clinicID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) SaveStatusWithPayment(
	ctx context.Context,
	ap *models.Appointment,
	payment *models.Payment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}
		return tx.Create(payment).Error
	})
}

func (r *AppointmentGormRepository) SaveStatusDeletePayment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}
		return tx.
			Where("appointment_id = ?", ap.ID).
			Delete(&models.Payment{}).Error
	})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	clinicID uint,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Preload("Room").
		Where(
			"clinic_id = ? AND start_time >= ? AND start_time < ?",
			clinicID, start, end,
		)

	if professionalID != 0 {
		q = q.Where("professional_id = ?", professionalID)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
