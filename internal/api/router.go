package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Rohith-M123/campus-booking-backend/internal/auth"
	"github.com/Rohith-M123/campus-booking-backend/internal/booking"
	bookingHttp "github.com/Rohith-M123/campus-booking-backend/internal/booking/http"
	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/storage"
	"github.com/Rohith-M123/campus-booking-backend/internal/user"
	userHttp "github.com/Rohith-M123/campus-booking-backend/internal/user/http"
	"github.com/Rohith-M123/campus-booking-backend/internal/venue"
	venueHttp "github.com/Rohith-M123/campus-booking-backend/internal/venue/http"
)

// Config holds everything the router needs to assemble middleware and routes.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UploadDir      string
	UserService    user.Service
	VenueService   venue.Service
	BookingService booking.Service
	Storage        storage.Storage
	ImageProcessor *storage.ImageProcessor
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: global middleware (logging,
// recovery, CORS), per-module handlers and the /v1 route tree.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS. In production only the configured origins are allowed;
	// in development the local dashboard dev server is.
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:3000",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware validates the bearer token; adminMiddleware further
	// requires a fresh ADMIN role.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	venueHandler := venueHttp.NewHandler(cfg.VenueService, cfg.Storage, cfg.ImageProcessor)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)

	// Serve uploaded venue photos.
	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		venueHttp.RegisterRoutes(v1, venueHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
	}

	return r
}
