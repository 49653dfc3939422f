package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/fitmarket/trainer-booking/internal/audit"
	"github.com/fitmarket/trainer-booking/internal/cache"
	"github.com/fitmarket/trainer-booking/internal/config"
	"github.com/fitmarket/trainer-booking/internal/handlers"
	infraRepo "github.com/fitmarket/trainer-booking/internal/infra/repository"
	"github.com/fitmarket/trainer-booking/internal/middleware"
	"github.com/fitmarket/trainer-booking/internal/models"
	"github.com/fitmarket/trainer-booking/internal/storage"
	ucBooking "github.com/fitmarket/trainer-booking/internal/usecase/booking"
	ucReview "github.com/fitmarket/trainer-booking/internal/usecase/review"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	statsCache := cache.NewReviewStatsCache(rdb)
	uploads := storage.NewS3Storage(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	bookingQueriesUC := ucBooking.NewBookingQueries(bookingRepo)

	createReviewUC := ucReview.NewCreateReview(reviewRepo, statsCache, auditDispatcher)
	replyUC := ucReview.NewAddTrainerReply(reviewRepo, statsCache, auditDispatcher)
	manageReviewUC := ucReview.NewManageReview(reviewRepo, statsCache, auditDispatcher)
	reviewQueriesUC := ucReview.NewReviewQueries(reviewRepo, statsCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, uploads)
	serviceHandler := handlers.NewServiceHandler(db)
	referenceHandler := handlers.NewReferenceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateStatusUC,
		deleteBookingUC,
		bookingQueriesUC,
	)

	reviewHandler := handlers.NewReviewHandler(
		createReviewUC,
		replyUC,
		manageReviewUC,
		reviewQueriesUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.GetByID)
		api.GET("/services/categories", referenceHandler.Categories)
		api.GET("/services/zones", referenceHandler.Zones)
		api.GET("/services/durations", referenceHandler.Durations)

		// ------------------------------
		// PUBLIC REVIEWS
		// ------------------------------
		api.GET("/reviews/service/:serviceId", reviewHandler.ListByService)
		api.GET("/reviews/trainer/:trainerId", reviewHandler.ListByTrainer)
		api.GET("/reviews/stats/service/:serviceId", reviewHandler.ServiceStats)
		api.GET("/reviews/:id", reviewHandler.GetByID)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(db, cfg))
		{
			secured.GET("/users/profile", meHandler.GetProfile)
			secured.PUT("/users/profile", meHandler.UpdateProfile)
			secured.PUT("/users/password", meHandler.ChangePassword)
			secured.DELETE("/users", meHandler.DeleteAccount)

			trainerOnly := middleware.RequireRole(models.RoleTrainer)
			clientOnly := middleware.RequireRole(models.RoleClient)
			adminOnly := middleware.RequireRole(models.RoleAdmin)

			// ------------------------------
			// SERVICES (TRAINER)
			// ------------------------------
			secured.POST("/services", trainerOnly, serviceHandler.Create)
			secured.PUT("/services/:id", trainerOnly, serviceHandler.Update)
			secured.DELETE("/services/:id", trainerOnly, serviceHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", clientOnly, bookingHandler.Create)
			secured.GET("/bookings/my-bookings", bookingHandler.MyBookings)
			secured.GET("/bookings/check-availability", bookingHandler.CheckAvailability)
			secured.GET("/bookings/:id", bookingHandler.GetByID)
			secured.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// REVIEWS
			// ------------------------------
			secured.POST("/reviews", reviewHandler.Create)
			secured.PUT("/reviews/:id", reviewHandler.Update)
			secured.DELETE("/reviews/:id", reviewHandler.Delete)
			// Role-gated only; any trainer account may reply.
			secured.POST("/reviews/:id/reply", trainerOnly, reviewHandler.Reply)

			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
