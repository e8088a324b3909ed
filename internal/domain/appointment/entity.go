package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Revert desfaz a conclusão: o registro de pagamento derivado deve
// ser removido pelo chamador na mesma transação.
func Revert(ap *models.Appointment) error {
	if err := CanRevert(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusScheduled)
	ap.CompletedAt = nil
	return nil
}

// ===============================
// Payment derivation
// ===============================

// NewPaymentFor congela os valores financeiros da sessão concluída.
// Percentuais são aplicados sobre o valor da sessão do paciente.
func NewPaymentFor(ap *models.Appointment, client *models.Client, now time.Time) models.Payment {
	professionalAmount := client.SessionFee * client.ProfessionalSharePct / 100
	clinicAmount := client.SessionFee * client.ClinicSharePct / 100

	return models.Payment{
		ClinicID:           ap.ClinicID,
		AppointmentID:      ap.ID,
		ProfessionalID:     ap.ProfessionalID,
		Amount:             client.SessionFee,
		ProfessionalAmount: professionalAmount,
		ClinicAmount:       clinicAmount,
		PaymentStatus:      "pending",
		CollectedBy:        "clinic",
		PaymentDate:        &now,
	}
}
