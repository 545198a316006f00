package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cinebook/internal/auth"
	"cinebook/internal/bookings"
	"cinebook/internal/reviews"
	"cinebook/internal/seats"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"cinebook/internal/shared/middleware"
	"cinebook/internal/shows"
	"cinebook/internal/users"
	"cinebook/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	cacheService cache.Service
	publisher    bookings.NotificationPublisher
}

func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetCacheService enables read caching and post-write invalidation
func (r *Router) SetCacheService(cacheService cache.Service) {
	r.cacheService = cacheService
}

// SetNotificationPublisher wires booking confirmations into the
// notification pipeline
func (r *Router) SetNotificationPublisher(publisher bookings.NotificationPublisher) {
	r.publisher = publisher
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Repositories
		userRepo := users.NewRepository(r.db.GetPostgreSQL())
		seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
		showRepo := shows.NewRepository(r.db.GetPostgreSQL())
		bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
		reviewRepo := reviews.NewRepository(r.db.GetPostgreSQL())

		// Services
		seatService := seats.NewService(seatRepo)
		showService := shows.NewService(showRepo, seatService, r.config)
		if r.cacheService != nil {
			showService.SetCacheService(r.cacheService)
		}

		bookingService := bookings.NewService(
			bookingRepo,
			&showDirectoryAdapter{shows: showService},
			&userDirectoryAdapter{users: userRepo},
			seatService,
			r.config.Booking.MaxSeatsPerBooking,
		)
		if r.cacheService != nil {
			bookingService.SetCacheService(r.cacheService)
		}
		if r.publisher != nil {
			bookingService.SetNotificationPublisher(r.publisher)
		}

		userService := users.NewService(userRepo, &bookingLedgerAdapter{bookings: bookingService})
		reviewService := reviews.NewService(reviewRepo, &showCheckerAdapter{shows: showService})
		authService := auth.NewService(userRepo, r.config)

		// Controllers
		showChecker := &showCheckerAdapter{shows: showService}
		var seatController seats.Controller
		if r.cacheService != nil {
			seatController = seats.NewControllerWithCache(seatService, showChecker, r.cacheService)
		} else {
			seatController = seats.NewController(seatService, showChecker)
		}
		showController := shows.NewController(showService)
		bookingController := bookings.NewController(bookingService)
		reviewController := reviews.NewController(reviewService)
		userController := users.NewController(userService)
		authController := auth.NewController(authService)

		// Public and admin surfaces
		auth.SetupAuthRoutes(api, r.config, authController)
		shows.SetupShowRoutes(api, r.config, showController, seatController)
		reviews.SetupReviewRoutes(api, r.config, reviewController)

		// Authenticated surface
		authenticated := api.Group("")
		authenticated.Use(middleware.JWTAuthWithConfig(r.config))
		{
			users.SetupUserRoutes(authenticated, userController)
			bookings.SetupBookingRoutes(authenticated, bookingController)
		}
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinebook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinebook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
