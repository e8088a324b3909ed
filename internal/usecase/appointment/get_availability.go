package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute monta os insumos do motor de disponibilidade e devolve os
// horários de início possíveis do dia.
//
// Falha de leitura de configuração de agenda degrada para o padrão
// permissivo (aviso no log), nunca derruba a consulta inteira: a
// validação definitiva acontece na escrita.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	clinic, err := uc.repo.GetClinicByID(ctx, in.ClinicID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetProfessional(ctx, in.ClinicID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	duration := in.DurationMin
	if duration == 0 {
		duration = domain.DefaultSessionMin
	}

	loc := timezone.Location(clinic.Timezone)
	date := timezone.StartOfDay(in.Date.In(loc), loc)

	// férias: dia inteiro excluído
	clinicVacations := uc.listVacations(ctx, models.ScopeClinic, in.ClinicID)
	profVacations := uc.listVacations(ctx, models.ScopeProfessional, in.ProfessionalID)

	if domain.IsDateExcluded(date, clinicVacations, profVacations) {
		return &domain.Availability{Slots: []string{}}, nil
	}

	// janela efetiva do dia
	weekday := int(date.Weekday())
	clinicDay := uc.dayHours(ctx, models.ScopeClinic, in.ClinicID, weekday)
	profDay := uc.dayHours(ctx, models.ScopeProfessional, in.ProfessionalID, weekday)

	window, open := domain.EffectiveWindow(clinicDay, profDay)
	if !open {
		return &domain.Availability{Slots: []string{}}, nil
	}

	breaks := append(
		uc.listBreaks(ctx, models.ScopeClinic, in.ClinicID),
		uc.listBreaks(ctx, models.ScopeProfessional, in.ProfessionalID)...,
	)

	dayStart := date
	dayEnd := date.Add(24 * time.Hour)

	appointments, err := uc.repo.ListProfessionalAppointmentsForDay(
		ctx, in.ProfessionalID, dayStart, dayEnd,
	)
	if err != nil {
		logger.Get().Warn("availability: failed to load day appointments",
			zap.Uint("professional_id", in.ProfessionalID), zap.Error(err))
		appointments = nil
	}

	slots, err := domain.Slots(domain.SlotInput{
		Date:           date,
		Window:         window,
		DurationMin:    duration,
		GranularityMin: domain.DefaultGranularityMin,
		Breaks:         breaks,
		Appointments:   appointments,
		Now:            timezone.NowIn(clinic.Timezone),
	})
	if err != nil {
		return nil, err
	}

	metrics.AvailabilityRequests.Inc()

	return &domain.Availability{Slots: slots}, nil
}

// --------------------------------------------------
// Leituras permissivas de configuração
// --------------------------------------------------

func (uc *GetAvailability) dayHours(
	ctx context.Context,
	scope string,
	ownerID uint,
	weekday int,
) *domain.DayHours {

	weekly, err := uc.repo.GetWeeklyHours(ctx, scope, ownerID)
	if err != nil {
		logger.Get().Warn("availability: failed to load working hours, assuming open",
			zap.String("scope", scope), zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil
	}

	day, ok := weekly[weekday]
	if !ok {
		return nil
	}
	return &day
}

func (uc *GetAvailability) listVacations(
	ctx context.Context,
	scope string,
	ownerID uint,
) []models.Vacation {

	vacations, err := uc.repo.ListVacations(ctx, scope, ownerID)
	if err != nil {
		logger.Get().Warn("availability: failed to load vacations, assuming none",
			zap.String("scope", scope), zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil
	}
	return vacations
}

func (uc *GetAvailability) listBreaks(
	ctx context.Context,
	scope string,
	ownerID uint,
) []models.ScheduleBreak {

	breaks, err := uc.repo.ListBreaks(ctx, scope, ownerID)
	if err != nil {
		logger.Get().Warn("availability: failed to load breaks, assuming none",
			zap.String("scope", scope), zap.Uint("owner_id", ownerID), zap.Error(err))
		return nil
	}
	return breaks
}
