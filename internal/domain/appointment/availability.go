package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// MOTOR DE DISPONIBILIDADE
// ======================================================
//
// Funções puras: todo dado necessário (expediente, pausas, férias,
// agendamentos do dia) chega pronto via parâmetro. Nenhuma consulta
// ao banco acontece aqui.

const (
	// Janela permissiva usada quando a configuração de expediente
	// está ausente ou malformada. Configuração faltando nunca
	// bloqueia agendamento.
	DefaultOpening = "00:00"
	DefaultClosing = "23:59"

	DefaultGranularityMin = 15
	DefaultSessionMin     = 45
)

// Expediente de um dia da semana, horários no formato "HH:MM".
type DayHours struct {
	Opening string `json:"opening"`
	Closing string `json:"closing"`
	Open    bool   `json:"open"`
}

// WeeklyHours indexa DayHours por time.Weekday (0 = domingo).
type WeeklyHours map[int]DayHours

// Janela efetiva de atendimento de um dia (interseção clínica ∩ profissional).
type Window struct {
	Opening string `json:"opening"`
	Closing string `json:"closing"`
}

// ------------------------------------------------------
// Interseção de expediente
// ------------------------------------------------------

// EffectiveWindow calcula a janela efetiva do dia: abertura mais
// tardia e fechamento mais cedo entre clínica e profissional.
// Lado ausente conta como aberto 00:00–23:59. Retorna false quando
// o dia está fechado (qualquer lado fechado, ou interseção vazia).
//
// "HH:MM" com largura fixa é comparável lexicograficamente, então
// max/min são comparações de string diretas.
func EffectiveWindow(clinicDay, professionalDay *DayHours) (Window, bool) {
	c := normalizeDay(clinicDay)
	p := normalizeDay(professionalDay)

	if !c.Open || !p.Open {
		return Window{}, false
	}

	w := Window{Opening: c.Opening, Closing: c.Closing}
	if p.Opening > w.Opening {
		w.Opening = p.Opening
	}
	if p.Closing < w.Closing {
		w.Closing = p.Closing
	}

	if w.Opening > w.Closing {
		return Window{}, false
	}

	return w, true
}

// normalizeDay aplica o fallback permissivo: dia ausente ou com
// horário malformado vira 00:00–23:59 aberto.
func normalizeDay(d *DayHours) DayHours {
	if d == nil {
		return DayHours{Opening: DefaultOpening, Closing: DefaultClosing, Open: true}
	}

	out := *d
	if !isHM(out.Opening) {
		out.Opening = DefaultOpening
	}
	if !isHM(out.Closing) {
		out.Closing = DefaultClosing
	}
	return out
}

func isHM(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for i, r := range s {
		if i == 2 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return s >= "00:00" && s <= "23:59"
}

// ------------------------------------------------------
// Férias / afastamentos
// ------------------------------------------------------

// IsDateExcluded verifica se a data cai dentro de alguma férias da
// clínica ou do profissional. Comparação só por data, intervalo
// fechado nas duas pontas. Listas vazias significam "sem exclusão".
func IsDateExcluded(
	date time.Time,
	clinicVacations []models.Vacation,
	professionalVacations []models.Vacation,
) bool {

	day := date.Format("2006-01-02")

	inAny := func(vacations []models.Vacation) bool {
		for _, v := range vacations {
			start := v.StartDate.Format("2006-01-02")
			end := v.EndDate.Format("2006-01-02")
			if day >= start && day <= end {
				return true
			}
		}
		return false
	}

	return inAny(clinicVacations) || inAny(professionalVacations)
}

// ------------------------------------------------------
// Geração de slots
// ------------------------------------------------------

type SlotInput struct {
	Date   time.Time
	Window Window

	DurationMin    int
	GranularityMin int

	// Pausas recorrentes (clínica + profissional) já filtráveis
	// pelo weekday da data.
	Breaks []models.ScheduleBreak

	// Agendamentos não cancelados do profissional no dia,
	// usados no teste de conflito.
	Appointments []models.Appointment

	// Corte de horários passados quando a data é hoje.
	// Zero desliga o corte (útil em testes).
	Now time.Time
}

// Slots enumera os horários de início possíveis dentro da janela
// efetiva, no passo de granularidade, descartando candidatos que:
// não cabem até o fechamento, caem em pausa, já passaram (hoje) ou
// conflitam com agendamento existente do profissional.
//
// Conflito usa intervalo semiaberto [início, fim): um slot que
// termina exatamente quando outro agendamento começa não conflita.
// Lista vazia é resultado válido, não erro.
func Slots(in SlotInput) ([]string, error) {
	if in.DurationMin <= 0 || in.GranularityMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	loc := in.Date.Location()
	opening := At(in.Date, in.Window.Opening, loc)
	closing := At(in.Date, in.Window.Closing, loc)

	duration := time.Duration(in.DurationMin) * time.Minute
	step := time.Duration(in.GranularityMin) * time.Minute

	weekday := int(in.Date.Weekday())
	cutPast := !in.Now.IsZero() && sameDay(in.Now, in.Date)

	slots := []string{}

	for cur := opening; !cur.After(closing); cur = cur.Add(step) {
		slotStart := cur
		slotEnd := cur.Add(duration)

		// não cabe até o fechamento
		if slotEnd.After(closing) {
			break
		}

		if cutPast && slotStart.Before(in.Now) {
			continue
		}

		if InBreak(in.Breaks, weekday, slotStart.Format("15:04")) {
			continue
		}

		conflict := false
		for _, ap := range in.Appointments {
			if Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, slotStart.Format("15:04"))
	}

	return slots, nil
}

// InBreak testa se o horário de início cai dentro de alguma pausa
// do dia: start_time <= t < end_time.
func InBreak(breaks []models.ScheduleBreak, weekday int, hm string) bool {
	for _, b := range breaks {
		if b.Weekday != weekday {
			continue
		}
		if hm >= b.StartTime && hm < b.EndTime {
			return true
		}
	}
	return false
}

// ------------------------------------------------------
// Salas disponíveis
// ------------------------------------------------------

// AvailableRooms filtra as salas sem reserva conflitante na janela
// [start, end), preservando a ordem de entrada. Os agendamentos
// recebidos devem excluir os do próprio profissional (já cobertos
// pela geração de slots) e os cancelados.
func AvailableRooms(
	start time.Time,
	end time.Time,
	rooms []models.Room,
	appointments []models.Appointment,
) []models.Room {

	available := []models.Room{}

	for _, room := range rooms {
		conflict := false
		for _, ap := range appointments {
			if ap.RoomID == nil || *ap.RoomID != room.ID {
				continue
			}
			if Overlaps(start, end, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}
		if !conflict {
			available = append(available, room)
		}
	}

	return available
}

// ------------------------------------------------------
// Helpers
// ------------------------------------------------------

// Overlaps é o teste de interseção de intervalos semiabertos:
// cobre contenção, sobreposição parcial e coincidência exata.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// At posiciona um "HH:MM" no dia da data, no fuso dado.
func At(date time.Time, hm string, loc *time.Location) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
