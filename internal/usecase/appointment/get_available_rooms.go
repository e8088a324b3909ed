package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type GetAvailableRooms struct {
	repo domain.Repository
}

func NewGetAvailableRooms(repo domain.Repository) *GetAvailableRooms {
	return &GetAvailableRooms{repo: repo}
}

// Execute devolve as salas livres na janela escolhida. Agendamentos
// do próprio profissional ficam de fora do teste: a agenda dele já
// foi coberta pela geração de slots, e salas são disputadas entre
// profissionais diferentes.
func (uc *GetAvailableRooms) Execute(
	ctx context.Context,
	in domain.RoomAvailabilityInput,
) (*domain.RoomAvailability, error) {

	if in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	clinic, err := uc.repo.GetClinicByID(ctx, in.ClinicID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(clinic.Timezone)
	start := in.Start.In(loc)
	end := start.Add(time.Duration(in.DurationMin) * time.Minute)

	rooms, err := uc.repo.ListRooms(ctx, in.ClinicID)
	if err != nil {
		return nil, err
	}

	dayStart := timezone.StartOfDay(start, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	bookings, err := uc.repo.ListRoomBookingsForDay(
		ctx, in.ClinicID, in.ProfessionalID, dayStart, dayEnd,
	)
	if err != nil {
		logger.Get().Warn("availability: failed to load room bookings",
			zap.Uint("clinic_id", in.ClinicID), zap.Error(err))
		bookings = nil
	}

	available := domain.AvailableRooms(start, end, rooms, bookings)

	return &domain.RoomAvailability{Rooms: available}, nil
}
