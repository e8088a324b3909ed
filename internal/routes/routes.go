package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/billing"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/storage"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleCache := cache.New(cfg)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db, scheduleCache)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	billingClient, err := billing.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		logger.Get().Warn("billing disabled: invalid credentials", zap.Error(err))
		billingClient = nil
	}

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	revertAppointmentUC := ucAppointment.NewRevertAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	getAvailableRoomsUC := ucAppointment.NewGetAvailableRooms(appointmentRepo)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clinicHandler := handlers.NewClinicHandler(db)

	professionalHandler := handlers.NewProfessionalHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	roomHandler := handlers.NewRoomHandler(db)

	workingHoursHandler := handlers.NewWorkingHoursHandler(db, scheduleCache)
	breaksHandler := handlers.NewBreaksHandler(db, scheduleCache)
	vacationsHandler := handlers.NewVacationsHandler(db, scheduleCache)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		revertAppointmentUC,
		getAvailabilityUC,
		getAvailableRoomsUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	paymentHandler := handlers.NewPaymentHandler(db)
	subscriptionHandler := handlers.NewSubscriptionHandler(db, billingClient)
	profileImageHandler := handlers.NewProfileImageHandler(db, uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 📈 OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", metrics.Handler())

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/clinic", clinicHandler.GetMeClinic)
			secured.PATCH("/me/clinic", clinicHandler.UpdateMeClinic)

			// ------------------------------
			// CADASTROS
			// ------------------------------
			secured.GET("/me/professionals", professionalHandler.List)
			secured.POST("/me/professionals", professionalHandler.Create)
			secured.PATCH("/me/professionals/:id", professionalHandler.Update)
			secured.POST("/me/professionals/:id/profile-image", profileImageHandler.Upload)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)

			secured.GET("/me/rooms", roomHandler.List)
			secured.POST("/me/rooms", roomHandler.Create)
			secured.PATCH("/me/rooms/:id", roomHandler.Update)
			secured.DELETE("/me/rooms/:id", roomHandler.Delete)

			// ------------------------------
			// CONFIGURAÇÃO DE AGENDA
			// ------------------------------
			secured.GET("/me/schedule/hours", workingHoursHandler.Get)
			secured.PUT("/me/schedule/hours", workingHoursHandler.Update)

			secured.GET("/me/schedule/breaks", breaksHandler.Get)
			secured.PUT("/me/schedule/breaks", breaksHandler.Update)

			secured.GET("/me/schedule/vacations", vacationsHandler.List)
			secured.POST("/me/schedule/vacations", vacationsHandler.Create)
			secured.DELETE("/me/schedule/vacations/:id", vacationsHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/availability", appointmentHandler.Availability)
			secured.GET("/me/availability/rooms", appointmentHandler.AvailableRooms)

			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/revert", appointmentHandler.Revert)

			// ------------------------------
			// FINANCEIRO
			// ------------------------------
			secured.GET("/me/payments", paymentHandler.List)
			secured.PATCH("/me/payments/:id/pay", paymentHandler.MarkPaid)

			// ------------------------------
			// ASSINATURA (DONO)
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireOwner())
			{
				owner.GET("/me/subscription", subscriptionHandler.Get)
				owner.POST("/me/subscription", subscriptionHandler.Subscribe)
				owner.PATCH("/me/subscription/payments/:id/verify", subscriptionHandler.VerifyPayment)

				owner.GET("/me/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
