package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC       *ucAppointment.CreateAppointment
	completeUC     *ucAppointment.CompleteAppointment
	cancelUC       *ucAppointment.CancelAppointment
	revertUC       *ucAppointment.RevertAppointment
	availabilityUC *ucAppointment.GetAvailability
	roomsUC        *ucAppointment.GetAvailableRooms
	listByDateUC   *ucAppointment.ListAppointmentsByDate
	listByMonthUC  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	revertUC *ucAppointment.RevertAppointment,
	availabilityUC *ucAppointment.GetAvailability,
	roomsUC *ucAppointment.GetAvailableRooms,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:             db,
		createUC:       createUC,
		completeUC:     completeUC,
		cancelUC:       cancelUC,
		revertUC:       revertUC,
		availabilityUC: availabilityUC,
		roomsUC:        roomsUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ClientID       uint   `json:"client_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	DurationMin    int    `json:"duration_min"`

	RoomID   *uint `json:"room_id"`
	IsOnline bool  `json:"is_online"`

	Notes string `json:"notes"`

	Recurring           bool   `json:"recurring"`
	RecurrenceFrequency string `json:"recurrence_frequency"`
	RecurrenceCount     int    `json:"recurrence_count"`
}

// ======================================================
// ERROS DE NEGÓCIO → HTTP
// ======================================================

var businessMessages = map[string]string{
	"missing_required_field": "Preencha profissional, paciente, data e hora.",
	"missing_room":           "Atendimento presencial exige uma sala.",
	"invalid_duration":       "Duração inválida.",
	"invalid_date_or_time":   "Data ou hora inválida.",
	"past_start":             "O horário escolhido já passou ou fere a antecedência mínima.",
	"professional_not_found": "Profissional não encontrado.",
	"client_not_found":       "Paciente não encontrado.",
	"date_excluded":          "O profissional ou a clínica está de férias nessa data.",
	"outside_working_hours":  "Fora do horário de atendimento.",
	"inside_break":           "O horário cai dentro de uma pausa.",
	"invalid_recurrence":     "Configuração de recorrência inválida.",
	"professional_conflict":  "O profissional já tem agendamento nesse horário.",
	"room_conflict":          "A sala já está ocupada nesse horário.",
	"appointment_not_found":  "Agendamento não encontrado.",
	"invalid_state":          "O agendamento não permite essa operação no estado atual.",
}

// writeBusinessError devolve true se o erro era de negócio e já foi
// respondido; false deixa o chamador tratar como erro interno.
func writeBusinessError(c *gin.Context, err error) bool {
	code := httperr.BusinessCode(err)
	if code == "" {
		return false
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Operação inválida."
	}

	switch code {
	case "professional_conflict", "room_conflict":
		httperr.Conflict(c, code, msg)
	case "appointment_not_found", "professional_not_found", "client_not_found":
		httperr.NotFound(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
	return true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	aps, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClinicID:       clinicID,
		UserID:         userID,
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		Date:           req.Date,
		Time:           req.Time,
		DurationMin:    req.DurationMin,
		RoomID:         req.RoomID,
		IsOnline:       req.IsOnline,
		Notes:          req.Notes,

		Recurring:           req.Recurring,
		RecurrenceFrequency: req.RecurrenceFrequency,
		RecurrenceCount:     req.RecurrenceCount,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointments": aps,
		"occurrences":  len(aps),
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	professionalID, ok := queryUint(c, "professional_id")
	if !ok {
		httperr.BadRequest(c, "missing_professional_id", "Informe professional_id.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	clinic, ok := h.loadClinic(c, clinicID)
	if !ok {
		return
	}

	date, err := parseDateInClinic(clinic, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida (use AAAA-MM-DD).")
		return
	}

	duration, _ := strconv.Atoi(c.DefaultQuery("duration", "0"))

	result, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		ClinicID:       clinicID,
		ProfessionalID: professionalID,
		Date:           date,
		DurationMin:    duration,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao consultar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": result.Slots,
	})
}

// ======================================================
// AVAILABLE ROOMS
// ======================================================

func (h *AppointmentHandler) AvailableRooms(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	professionalID, ok := queryUint(c, "professional_id")
	if !ok {
		httperr.BadRequest(c, "missing_professional_id", "Informe professional_id.")
		return
	}

	dateStr := c.Query("date")
	timeStr := c.Query("time")
	if dateStr == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_date_or_time", "Data e hora obrigatórias.")
		return
	}

	clinic, ok := h.loadClinic(c, clinicID)
	if !ok {
		return
	}

	start, err := parseDateTimeInClinic(clinic, dateStr, timeStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	duration, _ := strconv.Atoi(c.DefaultQuery("duration", "45"))

	result, err := h.roomsUC.Execute(c.Request.Context(), domain.RoomAvailabilityInput{
		ClinicID:       clinicID,
		ProfessionalID: professionalID,
		Start:          start,
		DurationMin:    duration,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_rooms", "Erro ao consultar salas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": result.Rooms})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	clinic, ok := h.loadClinic(c, clinicID)
	if !ok {
		return
	}

	date, err := parseDateInClinic(clinic, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// professional_id ausente lista a clínica inteira (recepção)
	professionalID, _ := queryUint(c, "professional_id")

	items, err := h.listByDateUC.Execute(c.Request.Context(), clinicID, professionalID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	professionalID, _ := queryUint(c, "professional_id")

	items, err := h.listByMonthUC.Execute(c.Request.Context(), clinicID, professionalID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": items,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeState(c, func(clinicID, userID, apID uint) (*models.Appointment, error) {
		return h.completeUC.Execute(c.Request.Context(), clinicID, userID, apID)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeState(c, func(clinicID, userID, apID uint) (*models.Appointment, error) {
		return h.cancelUC.Execute(c.Request.Context(), clinicID, userID, apID)
	})
}

func (h *AppointmentHandler) Revert(c *gin.Context) {
	h.changeState(c, func(clinicID, userID, apID uint) (*models.Appointment, error) {
		return h.revertUC.Execute(c.Request.Context(), clinicID, userID, apID)
	})
}

func (h *AppointmentHandler) changeState(
	c *gin.Context,
	exec func(clinicID, userID, apID uint) (*models.Appointment, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := exec(clinicID, userID, uint(id))
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_change_appointment", "Erro ao atualizar agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// HELPERS
// ======================================================

func (h *AppointmentHandler) loadClinic(c *gin.Context, clinicID uint) (*models.Clinic, bool) {
	var clinic models.Clinic
	if err := h.db.First(&clinic, clinicID).Error; err != nil {
		httperr.Internal(c, "clinic_not_found", "Clínica não encontrada.")
		return nil, false
	}
	return &clinic, true
}

func queryUint(c *gin.Context, key string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
