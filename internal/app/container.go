package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rohith-M123/campus-booking-backend/internal/api"
	"github.com/Rohith-M123/campus-booking-backend/internal/auth"
	"github.com/Rohith-M123/campus-booking-backend/internal/booking"
	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/storage"
	"github.com/Rohith-M123/campus-booking-backend/internal/user"
	"github.com/Rohith-M123/campus-booking-backend/internal/venue"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	UploadDir    string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Shared components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	imageProcessor := storage.NewImageProcessor()

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Venue module
	venueRepo := venue.NewPgxRepository(cfg.DBPool)
	venueService := venue.NewService(venueRepo)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, venueService)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UploadDir:      cfg.UploadDir,
		UserService:    userService,
		VenueService:   venueService,
		BookingService: bookingService,
		Storage:        store,
		ImageProcessor: imageProcessor,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
