package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	"github.com/BruksfildServices01/rental-booking/internal/config"
	"github.com/BruksfildServices01/rental-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/rental-booking/internal/infra/repository"
	"github.com/BruksfildServices01/rental-booking/internal/infra/lock"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/middleware"
	"github.com/BruksfildServices01/rental-booking/internal/storage"
	ucBooking "github.com/BruksfildServices01/rental-booking/internal/usecase/booking"
	ucFavorite "github.com/BruksfildServices01/rental-booking/internal/usecase/favorite"
	ucReview "github.com/BruksfildServices01/rental-booking/internal/usecase/review"
	"github.com/BruksfildServices01/rental-booking/internal/validators"
)

// Dependencies are the infra singletons built in main.
type Dependencies struct {
	Log    *logger.Logger
	Locker lock.Locker
	Images storage.ImageStore
	Audit  *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Dependencies) error {
	if err := validators.RegisterBindings(); err != nil {
		return err
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)
	favoriteRepo := infraRepo.NewFavoriteGormRepository(db)

	// ======================================================
	// USE CASES - BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		deps.Locker,
		deps.Audit,
		deps.Log,
		cfg.BookingLockTTL,
	)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, deps.Audit, deps.Log)
	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, deps.Audit, deps.Log)

	// ======================================================
	// USE CASES - REVIEWS / FAVORITES
	// ======================================================
	createReviewUC := ucReview.NewCreateReview(reviewRepo, bookingRepo, deps.Audit, deps.Log)
	listReviewsUC := ucReview.NewListPropertyReviews(reviewRepo, bookingRepo)
	updateReviewUC := ucReview.NewUpdateReview(reviewRepo, deps.Audit, deps.Log)
	deleteReviewUC := ucReview.NewDeleteReview(reviewRepo, deps.Audit, deps.Log)

	addFavoriteUC := ucFavorite.NewAddFavorite(favoriteRepo, bookingRepo, deps.Audit, deps.Log)
	removeFavoriteUC := ucFavorite.NewRemoveFavorite(favoriteRepo, deps.Audit, deps.Log)
	listFavoritesUC := ucFavorite.NewListUserFavorites(favoriteRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	propertyHandler := handlers.NewPropertyHandler(db, deps.Audit)
	propertyImageHandler := handlers.NewPropertyImageHandler(db, deps.Images, deps.Audit, deps.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		updateStatusUC,
		listUserBookingsUC,
		cancelBookingUC,
	)

	reviewHandler := handlers.NewReviewHandler(createReviewUC, listReviewsUC, updateReviewUC, deleteReviewUC)
	favoriteHandler := handlers.NewFavoriteHandler(addFavoriteUC, removeFavoriteUC, listFavoritesUC)

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

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/properties", propertyHandler.List)
		api.GET("/properties/:id", propertyHandler.Get)
		api.GET("/amenities", propertyHandler.ListAmenities)
		api.GET("/reviews/property/:propertyId", reviewHandler.ListByProperty)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			secured.POST("/properties", propertyHandler.Create)
			secured.PATCH("/properties/:id/status", propertyHandler.UpdateStatus)
			secured.POST("/properties/:id/images", propertyImageHandler.Upload)
			secured.PUT("/properties/:id/location", propertyHandler.UpdateLocation)
			secured.PUT("/properties/:id/amenities", propertyHandler.AddAmenities)
			secured.DELETE("/properties/:id/amenities/:amenityId", propertyHandler.RemoveAmenity)
			secured.PUT("/properties/:id/policies", propertyHandler.AddPolicies)
			secured.DELETE("/properties/:id/policies/:policyId", propertyHandler.RemovePolicy)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.POST("/bookings/cancel", bookingHandler.Cancel)
			secured.GET("/bookings/user/:userId", bookingHandler.ListByUser)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)

			// ------------------------------
			// REVIEWS
			// ------------------------------
			secured.POST("/reviews", reviewHandler.Create)
			secured.PUT("/reviews/:id/rating", reviewHandler.UpdateRating)
			secured.PUT("/reviews/:id/comment", reviewHandler.UpdateComment)
			secured.DELETE("/reviews/:id", reviewHandler.Delete)

			// ------------------------------
			// FAVORITES
			// ------------------------------
			secured.POST("/favorites", favoriteHandler.Add)
			secured.DELETE("/favorites/:propertyId", favoriteHandler.Remove)
			secured.GET("/favorites/user/:userId", favoriteHandler.ListByUser)
		}
	}

	return nil
}
