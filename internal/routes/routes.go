package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/audit"
	"github.com/barberbook/barbershop-api/internal/cache"
	"github.com/barberbook/barbershop-api/internal/config"
	"github.com/barberbook/barbershop-api/internal/handlers"
	infraRepo "github.com/barberbook/barbershop-api/internal/infra/repository"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/models"
	ucAppointment "github.com/barberbook/barbershop-api/internal/usecase/appointment"
	ucReview "github.com/barberbook/barbershop-api/internal/usecase/review"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	tokens *cache.TokenStore,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(scheduleRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(scheduleRepo, auditDispatcher)
	setStatusUC := ucAppointment.NewSetAppointmentStatus(scheduleRepo, auditDispatcher)
	listClientUC := ucAppointment.NewListClientAppointments(scheduleRepo)
	agendaDayUC := ucAppointment.NewAgendaByDate(scheduleRepo)
	agendaMonthUC := ucAppointment.NewAgendaByMonth(scheduleRepo)
	availabilityUC := ucAppointment.NewGetAvailability(scheduleRepo)
	submitReviewUC := ucReview.NewSubmitReview(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tokens)
	meHandler := handlers.NewMeHandler(db)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC)
	serviceHandler := handlers.NewServiceHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		setStatusUC,
		listClientUC,
		agendaDayUC,
		agendaMonthUC,
		submitReviewUC,
	)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barbers", publicHandler.ListBarbers)
		api.GET("/barbers/:id", publicHandler.GetBarber)
		api.GET("/barbers/:id/availability", publicHandler.Availability)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register/client", authHandler.RegisterClient)
		api.POST("/auth/register/barber", authHandler.RegisterBarber)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, tokens))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// CLIENT
			// ------------------------------
			client := secured.Group("/")
			client.Use(middleware.RequireRole(models.RoleClient))
			{
				client.POST("/me/appointments", appointmentHandler.Book)
				client.GET("/me/appointments", appointmentHandler.ListMine)
				client.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
				client.POST("/me/appointments/:id/review", appointmentHandler.SubmitReview)
			}

			// ------------------------------
			// BARBER
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireRole(models.RoleBarber))
			{
				barber.GET("/me/services", serviceHandler.List)
				barber.POST("/me/services", serviceHandler.Create)
				barber.PATCH("/me/services/:id", serviceHandler.Update)
				barber.DELETE("/me/services/:id", serviceHandler.Delete)

				barber.GET("/me/working-hours", workingHoursHandler.Get)
				barber.PUT("/me/working-hours", workingHoursHandler.Update)

				barber.GET("/me/agenda", appointmentHandler.AgendaByDate)
				barber.GET("/me/agenda/month", appointmentHandler.AgendaByMonth)
				barber.PATCH("/me/appointments/:id/status", appointmentHandler.SetStatus)
			}
		}
	}
}
