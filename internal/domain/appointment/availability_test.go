package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return d
}

func at(t *testing.T, date, hm string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02 15:04", date+" "+hm)
	require.NoError(t, err)
	return d
}

// ------------------------------------------------------
// EffectiveWindow
// ------------------------------------------------------

func TestEffectiveWindowIntersection(t *testing.T) {
	clinic := &DayHours{Opening: "09:00", Closing: "18:00", Open: true}
	prof := &DayHours{Opening: "10:00", Closing: "16:00", Open: true}

	w, open := EffectiveWindow(clinic, prof)
	require.True(t, open)
	assert.Equal(t, "10:00", w.Opening)
	assert.Equal(t, "16:00", w.Closing)
}

func TestEffectiveWindowMissingSideIsPermissive(t *testing.T) {
	prof := &DayHours{Opening: "10:00", Closing: "16:00", Open: true}

	w, open := EffectiveWindow(nil, prof)
	require.True(t, open)
	assert.Equal(t, "10:00", w.Opening)
	assert.Equal(t, "16:00", w.Closing)

	w, open = EffectiveWindow(nil, nil)
	require.True(t, open)
	assert.Equal(t, DefaultOpening, w.Opening)
	assert.Equal(t, DefaultClosing, w.Closing)
}

func TestEffectiveWindowClosedDay(t *testing.T) {
	clinic := &DayHours{Opening: "09:00", Closing: "18:00", Open: true}
	closed := &DayHours{Opening: "10:00", Closing: "16:00", Open: false}

	_, open := EffectiveWindow(clinic, closed)
	assert.False(t, open)

	_, open = EffectiveWindow(closed, nil)
	assert.False(t, open)
}

func TestEffectiveWindowEmptyIntersection(t *testing.T) {
	morning := &DayHours{Opening: "08:00", Closing: "12:00", Open: true}
	evening := &DayHours{Opening: "14:00", Closing: "20:00", Open: true}

	_, open := EffectiveWindow(morning, evening)
	assert.False(t, open)
}

func TestEffectiveWindowMalformedTimesFallBack(t *testing.T) {
	broken := &DayHours{Opening: "9h00", Closing: "25:99", Open: true}
	prof := &DayHours{Opening: "10:00", Closing: "16:00", Open: true}

	w, open := EffectiveWindow(broken, prof)
	require.True(t, open)
	assert.Equal(t, "10:00", w.Opening)
	assert.Equal(t, "16:00", w.Closing)
}

// ------------------------------------------------------
// IsDateExcluded
// ------------------------------------------------------

func TestIsDateExcludedClosedInterval(t *testing.T) {
	vacations := []models.Vacation{
		{StartDate: day(t, "2030-01-10"), EndDate: day(t, "2030-01-20")},
	}

	assert.True(t, IsDateExcluded(day(t, "2030-01-10"), vacations, nil))
	assert.True(t, IsDateExcluded(day(t, "2030-01-15"), nil, vacations))
	assert.True(t, IsDateExcluded(day(t, "2030-01-20"), vacations, nil))

	assert.False(t, IsDateExcluded(day(t, "2030-01-09"), vacations, nil))
	assert.False(t, IsDateExcluded(day(t, "2030-01-21"), vacations, nil))
	assert.False(t, IsDateExcluded(day(t, "2030-01-15"), nil, nil))
}

// ------------------------------------------------------
// Slots
// ------------------------------------------------------

func TestSlotsStopAtClosing(t *testing.T) {
	// 10:00–16:00, sessão de 45min: o último início que cabe é 15:15.
	slots, err := Slots(SlotInput{
		Date:           day(t, "2030-01-07"),
		Window:         Window{Opening: "10:00", Closing: "16:00"},
		DurationMin:    45,
		GranularityMin: 15,
	})
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "15:15", slots[len(slots)-1])
	assert.NotContains(t, slots, "15:30")
	assert.Len(t, slots, 22)
}

func TestSlotsHalfOpenConflict(t *testing.T) {
	date := "2030-01-07"

	slots, err := Slots(SlotInput{
		Date:           day(t, date),
		Window:         Window{Opening: "09:00", Closing: "12:00"},
		DurationMin:    45,
		GranularityMin: 15,
		Appointments: []models.Appointment{
			{StartTime: at(t, date, "10:00"), EndTime: at(t, date, "10:45")},
		},
	})
	require.NoError(t, err)

	// 09:45–10:30 invade o agendamento; 10:00/10:15/10:30 idem.
	assert.NotContains(t, slots, "09:45")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:15")
	assert.NotContains(t, slots, "10:30")

	// 09:00–09:45 encosta no início e 10:45 começa no fim: ambos valem.
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "10:45")
}

func TestSlotsSkipBreaks(t *testing.T) {
	date := day(t, "2030-01-07") // segunda-feira
	weekday := int(date.Weekday())

	slots, err := Slots(SlotInput{
		Date:           date,
		Window:         Window{Opening: "09:00", Closing: "18:00"},
		DurationMin:    45,
		GranularityMin: 15,
		Breaks: []models.ScheduleBreak{
			{Weekday: weekday, StartTime: "12:00", EndTime: "13:00"},
		},
	})
	require.NoError(t, err)

	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:45")
	// início exatamente no fim da pausa é permitido
	assert.Contains(t, slots, "13:00")
	// só o início do slot é testado contra a pausa
	assert.Contains(t, slots, "11:45")
}

func TestSlotsBreakOtherWeekdayIgnored(t *testing.T) {
	date := day(t, "2030-01-07")

	slots, err := Slots(SlotInput{
		Date:           date,
		Window:         Window{Opening: "09:00", Closing: "14:00"},
		DurationMin:    45,
		GranularityMin: 15,
		Breaks: []models.ScheduleBreak{
			{Weekday: int(date.Weekday()) + 1, StartTime: "09:00", EndTime: "14:00"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, slots, "09:00")
}

func TestSlotsCutPastOnlyToday(t *testing.T) {
	date := day(t, "2030-01-07")
	now := at(t, "2030-01-07", "11:10")

	slots, err := Slots(SlotInput{
		Date:           date,
		Window:         Window{Opening: "09:00", Closing: "16:00"},
		DurationMin:    45,
		GranularityMin: 15,
		Now:            now,
	})
	require.NoError(t, err)

	assert.NotContains(t, slots, "11:00")
	assert.Contains(t, slots, "11:15")

	// outro dia: nada é cortado
	slots, err = Slots(SlotInput{
		Date:           day(t, "2030-01-08"),
		Window:         Window{Opening: "09:00", Closing: "16:00"},
		DurationMin:    45,
		GranularityMin: 15,
		Now:            now,
	})
	require.NoError(t, err)
	assert.Contains(t, slots, "09:00")
}

func TestSlotsInvalidDuration(t *testing.T) {
	_, err := Slots(SlotInput{
		Date:           day(t, "2030-01-07"),
		Window:         Window{Opening: "09:00", Closing: "16:00"},
		DurationMin:    0,
		GranularityMin: 15,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = Slots(SlotInput{
		Date:           day(t, "2030-01-07"),
		Window:         Window{Opening: "09:00", Closing: "16:00"},
		DurationMin:    -30,
		GranularityMin: 15,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))
}

func TestSlotsEmptyResultIsNotError(t *testing.T) {
	// janela menor que a sessão: nenhum slot cabe
	slots, err := Slots(SlotInput{
		Date:           day(t, "2030-01-07"),
		Window:         Window{Opening: "10:00", Closing: "10:30"},
		DurationMin:    45,
		GranularityMin: 15,
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestSlotsDeterministic(t *testing.T) {
	in := SlotInput{
		Date:           day(t, "2030-01-07"),
		Window:         Window{Opening: "09:00", Closing: "12:00"},
		DurationMin:    45,
		GranularityMin: 15,
	}

	a, err := Slots(in)
	require.NoError(t, err)
	b, err := Slots(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// ------------------------------------------------------
// AvailableRooms
// ------------------------------------------------------

func TestAvailableRoomsFiltersConflicts(t *testing.T) {
	date := "2030-01-07"
	roomA := models.Room{ID: 1, Name: "Sala A"}
	roomB := models.Room{ID: 2, Name: "Sala B"}

	roomAID := roomA.ID
	bookings := []models.Appointment{
		{
			RoomID:    &roomAID,
			StartTime: at(t, date, "10:00"),
			EndTime:   at(t, date, "11:00"),
		},
	}

	rooms := AvailableRooms(
		at(t, date, "10:30"), at(t, date, "11:15"),
		[]models.Room{roomA, roomB},
		bookings,
	)

	require.Len(t, rooms, 1)
	assert.Equal(t, roomB.ID, rooms[0].ID)
}

func TestAvailableRoomsBackToBack(t *testing.T) {
	date := "2030-01-07"
	roomA := models.Room{ID: 1, Name: "Sala A"}
	roomAID := roomA.ID

	bookings := []models.Appointment{
		{
			RoomID:    &roomAID,
			StartTime: at(t, date, "10:00"),
			EndTime:   at(t, date, "11:00"),
		},
	}

	// começa exatamente quando a reserva termina
	rooms := AvailableRooms(
		at(t, date, "11:00"), at(t, date, "11:45"),
		[]models.Room{roomA},
		bookings,
	)
	assert.Len(t, rooms, 1)
}

func TestAvailableRoomsOnlineBookingsIgnored(t *testing.T) {
	date := "2030-01-07"
	roomA := models.Room{ID: 1, Name: "Sala A"}

	// agendamento online não ocupa sala (RoomID nulo)
	bookings := []models.Appointment{
		{
			RoomID:    nil,
			StartTime: at(t, date, "10:00"),
			EndTime:   at(t, date, "11:00"),
		},
	}

	rooms := AvailableRooms(
		at(t, date, "10:00"), at(t, date, "10:45"),
		[]models.Room{roomA},
		bookings,
	)
	assert.Len(t, rooms, 1)
}

// ------------------------------------------------------
// Overlaps / InBreak
// ------------------------------------------------------

func TestOverlapsHalfOpen(t *testing.T) {
	date := "2030-01-07"

	// coincidência exata
	assert.True(t, Overlaps(
		at(t, date, "10:00"), at(t, date, "11:00"),
		at(t, date, "10:00"), at(t, date, "11:00"),
	))

	// contenção
	assert.True(t, Overlaps(
		at(t, date, "10:15"), at(t, date, "10:30"),
		at(t, date, "10:00"), at(t, date, "11:00"),
	))

	// encostados não conflitam
	assert.False(t, Overlaps(
		at(t, date, "09:00"), at(t, date, "10:00"),
		at(t, date, "10:00"), at(t, date, "11:00"),
	))
	assert.False(t, Overlaps(
		at(t, date, "11:00"), at(t, date, "12:00"),
		at(t, date, "10:00"), at(t, date, "11:00"),
	))
}

func TestInBreakBoundaries(t *testing.T) {
	breaks := []models.ScheduleBreak{
		{Weekday: 1, StartTime: "12:00", EndTime: "13:00"},
	}

	assert.True(t, InBreak(breaks, 1, "12:00"))
	assert.True(t, InBreak(breaks, 1, "12:59"))
	assert.False(t, InBreak(breaks, 1, "13:00"))
	assert.False(t, InBreak(breaks, 1, "11:59"))
	assert.False(t, InBreak(breaks, 2, "12:30"))
}
