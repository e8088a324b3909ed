package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type RevertAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRevertAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RevertAppointment {
	return &RevertAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute desfaz a conclusão da sessão, removendo o pagamento
// derivado na mesma transação. A confirmação do usuário ("isso
// apaga o registro de pagamento") é responsabilidade do front.
func (uc *RevertAppointment) Execute(
	ctx context.Context,
	clinicID uint,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForClinic(ctx, appointmentID, clinicID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Revert(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveStatusDeletePayment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ClinicID: clinicID,
		UserID:   &userID,
		Action:   "appointment_reverted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
