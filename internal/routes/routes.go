package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	availCache := cache.NewAvailability(cfg.RedisAddr)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := notify.NewSMTPMailer(cfg.SMTPAddr, cfg.MailFrom)
	notifyDispatcher := notify.NewDispatcher(mailer, cfg.AdminEmail)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	slotsUC := ucBooking.NewGetAvailableSlots(bookingRepo, cfg.Timezone)
	datesUC := ucBooking.NewGetAvailableDates(bookingRepo, cfg.Timezone)
	monthViewUC := ucBooking.NewMonthView(bookingRepo, cfg.Timezone)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		cfg.Timezone,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		cfg.Timezone,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(
		slotsUC,
		datesUC,
		availCache,
		cfg.Timezone,
	)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
		availCache,
	)

	calendarHandler := handlers.NewCalendarHandler(monthViewUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/barbers", barberHandler.List)
		api.GET("/services", serviceHandler.List)
		api.GET("/availability/slots", availabilityHandler.Slots)
		api.GET("/availability/dates", availabilityHandler.Dates)

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

			secured.GET("/calendar", calendarHandler.Month)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.PATCH("/me/bookings/:id", bookingHandler.Update)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id", barberHandler.Update)
				admin.DELETE("/barbers/:id", barberHandler.Delete)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
