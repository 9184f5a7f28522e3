package venue

import (
	"net/http"
	"time"

	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "venue not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidCategory = apperror.New(http.StatusBadRequest, "invalid venue category")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be positive")
)

// Category is the closed classification of a venue. It gates which roles may
// submit booking requests for the venue.
type Category string

const (
	CategoryAcademic Category = "ACADEMIC"
	CategoryHall     Category = "HALL"
	CategorySports   Category = "SPORTS"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAcademic, CategoryHall, CategorySports:
		return true
	}
	return false
}

// Venue represents a bookable campus venue (e.g. Main Auditorium, Computer Lab 1).
// Venues are never deleted; blocked venues stay visible so booking history
// keeps resolving, but no new requests may target them.
type Venue struct {
	ID        string
	Name      string
	Category  Category
	Capacity  int
	Location  string
	VenueType string // free-text descriptor, e.g. "Auditorium", "Laboratory"
	Image     string // storage path of the venue photo, empty if none
	Equipment []string
	IsBlocked bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing venues.
type Filter struct {
	Category string
	Page     int
	PageSize int
}
