package booking

import (
	"net/http"
	"time"

	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "booking not found")
	ErrVenueNotFound      = apperror.New(http.StatusNotFound, "venue not found")
	ErrVenueBlocked       = apperror.New(http.StatusBadRequest, "venue is blocked for new bookings")
	ErrTitleRequired      = apperror.New(http.StatusBadRequest, "title is required")
	ErrInvalidDate        = apperror.New(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	ErrInvalidTime        = apperror.New(http.StatusBadRequest, "times must be in HH:MM format")
	ErrInvalidTimeRange   = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidAttendees   = apperror.New(http.StatusBadRequest, "attendees cannot be negative")
	ErrNotPending         = apperror.New(http.StatusBadRequest, "booking is not pending")
	ErrPermissionDenied   = apperror.New(http.StatusForbidden, "permission denied")
	ErrCategoryNotAllowed = apperror.New(http.StatusForbidden, "your role cannot book this venue category")
	ErrSlotConflict       = apperror.New(http.StatusConflict, "time slot conflicts with an approved booking")
)

// Status is the three-state lifecycle of a booking request.
// PENDING is the initial state; APPROVED and REJECTED are terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking is a request for a venue on a calendar day. The date is an opaque
// YYYY-MM-DD key and start/end are HH:MM strings local to campus; both compare
// correctly as plain strings, so the domain never converts them to time.Time.
type Booking struct {
	ID                string
	VenueID           string
	VenueName         string
	UserID            string
	UserName          string
	Title             string
	Description       string
	Date              string // YYYY-MM-DD
	StartTime         string // HH:MM
	EndTime           string // HH:MM
	FullDay           bool
	Status            Status
	EquipmentRequired []string
	Attendees         int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID    string
	VenueID   string
	Status    string
	Date      string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
