package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AppointmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clinic_appointments_created_total",
		Help: "Agendamentos criados com sucesso (ocorrências de recorrência contam individualmente).",
	})

	AppointmentsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clinic_appointments_completed_total",
		Help: "Sessões concluídas.",
	})

	AppointmentsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clinic_appointments_cancelled_total",
		Help: "Agendamentos cancelados.",
	})

	BookingConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clinic_booking_conflicts_total",
		Help: "Tentativas de agendamento rejeitadas por conflito.",
	}, []string{"kind"})

	AvailabilityRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clinic_availability_requests_total",
		Help: "Consultas de disponibilidade atendidas.",
	})
)

func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
