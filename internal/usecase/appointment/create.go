package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/meeting"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

const (
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"

	maxRecurrenceCount = 52
)

type CreateAppointmentInput struct {
	ClinicID       uint
	UserID         uint
	ProfessionalID uint
	ClientID       uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	DurationMin int

	RoomID   *uint
	IsOnline bool

	Notes string

	Recurring           bool
	RecurrenceFrequency string
	RecurrenceCount     int
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) ([]*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if in.ClientID == 0 || in.ProfessionalID == 0 || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_required_field")
	}

	// sala obrigatória em atendimento presencial
	if !in.IsOnline && in.RoomID == nil {
		return nil, httperr.ErrBusiness("missing_room")
	}

	duration := in.DurationMin
	if duration == 0 {
		duration = domain.DefaultSessionMin
	}
	if duration < 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	// --------------------------------------------------
	// 2️⃣ Clínica / data e hora no fuso da clínica
	// --------------------------------------------------
	clinic, err := uc.repo.GetClinicByID(ctx, in.ClinicID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(clinic.Timezone)
	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	// --------------------------------------------------
	// 3️⃣ Não agendar no passado
	// --------------------------------------------------
	now := timezone.NowIn(clinic.Timezone)
	minStart := now.Add(time.Duration(clinic.MinAdvanceMinutes) * time.Minute)
	if start.Before(minStart) {
		return nil, httperr.ErrBusiness("past_start")
	}

	// --------------------------------------------------
	// 4️⃣ Profissional e paciente da clínica
	// --------------------------------------------------
	if _, err := uc.repo.GetProfessional(ctx, in.ClinicID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	if _, err := uc.repo.GetClient(ctx, in.ClinicID, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// --------------------------------------------------
	// 5️⃣ Férias e janela efetiva do dia âncora
	// --------------------------------------------------
	if err := uc.validateSchedule(ctx, in, clinic, start, end); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Ocorrências (recorrência semanal / mensal)
	// --------------------------------------------------
	occurrences, err := expandRecurrence(in, start, duration)
	if err != nil {
		return nil, err
	}

	aps := make([]*models.Appointment, 0, len(occurrences))
	for _, occStart := range occurrences {
		ap := &models.Appointment{
			ClinicID:       in.ClinicID,
			ProfessionalID: in.ProfessionalID,
			ClientID:       in.ClientID,
			RoomID:         nil,
			StartTime:      occStart,
			EndTime:        occStart.Add(time.Duration(duration) * time.Minute),
			Status:         string(domain.InitialStatus()),
			IsOnline:       in.IsOnline,
			Notes:          in.Notes,
		}

		if in.IsOnline {
			ap.MeetingURL = meeting.NewURL(clinic.MeetingDomain, clinic.Slug)
		} else {
			ap.RoomID = in.RoomID
		}

		aps = append(aps, ap)
	}

	// --------------------------------------------------
	// 7️⃣ Inserção em lote: tudo ou nada
	// --------------------------------------------------
	if err := uc.repo.CreateAppointmentsBatch(ctx, aps); err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			metrics.BookingConflicts.WithLabelValues(code).Inc()
		}
		return nil, err
	}

	metrics.AppointmentsCreated.Add(float64(len(aps)))

	// --------------------------------------------------
	// 8️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ClinicID: in.ClinicID,
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &aps[0].ID,
		Metadata: map[string]any{
			"occurrences": len(aps),
			"online":      in.IsOnline,
		},
	})

	return aps, nil
}

// validateSchedule confere férias, janela efetiva e pausas para a
// ocorrência âncora. O conflito com outros agendamentos fica por
// conta da inserção em lote, que trava as linhas envolvidas.
func (uc *CreateAppointment) validateSchedule(
	ctx context.Context,
	in CreateAppointmentInput,
	clinic *models.Clinic,
	start time.Time,
	end time.Time,
) error {

	clinicVacations, _ := uc.repo.ListVacations(ctx, models.ScopeClinic, in.ClinicID)
	profVacations, _ := uc.repo.ListVacations(ctx, models.ScopeProfessional, in.ProfessionalID)
	if domain.IsDateExcluded(start, clinicVacations, profVacations) {
		return httperr.ErrBusiness("date_excluded")
	}

	weekday := int(start.Weekday())

	clinicDay := weeklyDay(uc.repo, ctx, models.ScopeClinic, in.ClinicID, weekday)
	profDay := weeklyDay(uc.repo, ctx, models.ScopeProfessional, in.ProfessionalID, weekday)

	window, open := domain.EffectiveWindow(clinicDay, profDay)
	if !open {
		return httperr.ErrBusiness("outside_working_hours")
	}

	// Compara instantes, não "HH:MM": um término depois da meia-noite
	// formataria como "00:xx" e passaria na comparação lexical.
	loc := start.Location()
	openingAt := domain.At(start, window.Opening, loc)
	closingAt := domain.At(start, window.Closing, loc)
	if start.Before(openingAt) || end.After(closingAt) {
		return httperr.ErrBusiness("outside_working_hours")
	}

	startHM := start.Format("15:04")

	clinicBreaks, _ := uc.repo.ListBreaks(ctx, models.ScopeClinic, in.ClinicID)
	profBreaks, _ := uc.repo.ListBreaks(ctx, models.ScopeProfessional, in.ProfessionalID)
	if domain.InBreak(append(clinicBreaks, profBreaks...), weekday, startHM) {
		return httperr.ErrBusiness("inside_break")
	}

	return nil
}

func weeklyDay(
	repo domain.Repository,
	ctx context.Context,
	scope string,
	ownerID uint,
	weekday int,
) *domain.DayHours {

	weekly, err := repo.GetWeeklyHours(ctx, scope, ownerID)
	if err != nil {
		return nil
	}
	day, ok := weekly[weekday]
	if !ok {
		return nil
	}
	return &day
}

// expandRecurrence gera os inícios de cada ocorrência: semanal
// avança 7 dias; mensal avança um mês de calendário.
func expandRecurrence(
	in CreateAppointmentInput,
	start time.Time,
	duration int,
) ([]time.Time, error) {

	if !in.Recurring {
		return []time.Time{start}, nil
	}

	if in.RecurrenceFrequency != RecurrenceWeekly && in.RecurrenceFrequency != RecurrenceMonthly {
		return nil, httperr.ErrBusiness("invalid_recurrence")
	}
	if in.RecurrenceCount < 2 || in.RecurrenceCount > maxRecurrenceCount {
		return nil, httperr.ErrBusiness("invalid_recurrence")
	}

	out := make([]time.Time, 0, in.RecurrenceCount)
	cur := start
	for i := 0; i < in.RecurrenceCount; i++ {
		out = append(out, cur)

		if in.RecurrenceFrequency == RecurrenceWeekly {
			cur = cur.AddDate(0, 0, 7)
		} else {
			cur = cur.AddDate(0, 1, 0)
		}
	}

	return out, nil
}
