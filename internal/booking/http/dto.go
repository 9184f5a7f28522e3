package http

import (
	"time"

	"github.com/Rohith-M123/campus-booking-backend/internal/booking"
	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/request"
	userHttp "github.com/Rohith-M123/campus-booking-backend/internal/user/http"
	venueHttp "github.com/Rohith-M123/campus-booking-backend/internal/venue/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	UserID  string `form:"user_id" binding:"omitempty,uuid"`
	Date    string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=created_at booking_date status"`
}

// BookingResponse is the shape of booking data returned in API responses.
type BookingResponse struct {
	ID                string              `json:"id"`
	Venue             venueHttp.VenueTag  `json:"venue"`
	User              userHttp.UserTag    `json:"user"`
	Title             string              `json:"title"`
	Description       string              `json:"description"`
	Date              string              `json:"date"`
	StartTime         string              `json:"start_time"`
	EndTime           string              `json:"end_time"`
	FullDay           bool                `json:"full_day"`
	Status            string              `json:"status"`
	EquipmentRequired []string            `json:"equipment_required"`
	Attendees         int                 `json:"attendees"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	equipment := b.EquipmentRequired
	if equipment == nil {
		equipment = make([]string, 0)
	}

	return BookingResponse{
		ID:                b.ID,
		Venue:             venueHttp.VenueTag{ID: b.VenueID, Name: b.VenueName},
		User:              userHttp.UserTag{ID: b.UserID, Name: b.UserName},
		Title:             b.Title,
		Description:       b.Description,
		Date:              b.Date,
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		FullDay:           b.FullDay,
		Status:            string(b.Status),
		EquipmentRequired: equipment,
		Attendees:         b.Attendees,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// CreateBookingRequest defines the payload for submitting a booking request.
type CreateBookingRequest struct {
	VenueID           string   `json:"venue_id" binding:"required,uuid"`
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	Date              string   `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	FullDay           bool     `json:"full_day"`
	EquipmentRequired []string `json:"equipment_required"`
	Attendees         int      `json:"attendees" binding:"omitempty,min=0"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	if !r.FullDay && r.StartTime >= r.EndTime {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

// AvailabilityRequest defines query parameters for the slot grid endpoint.
type AvailabilityRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// SlotResponse is the per-tick availability verdict for a venue and date.
type SlotResponse struct {
	Time      string           `json:"time"`
	Available bool             `json:"available"`
	Booking   *BookingResponse `json:"booking,omitempty"`
}

func NewSlotResponse(s booking.Slot) SlotResponse {
	resp := SlotResponse{
		Time:      s.Time,
		Available: s.Available,
	}
	if s.Booking != nil {
		b := NewBookingResponse(s.Booking)
		resp.Booking = &b
	}
	return resp
}
