package http

import (
	"time"

	"github.com/Rohith-M123/campus-booking-backend/internal/pkg/request"
	"github.com/Rohith-M123/campus-booking-backend/internal/venue"
)

// VenueTag is a brief representation of a venue for embedding in other
// responses.
type VenueTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VenueResponse is the shape of venue data returned in API responses.
type VenueResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Capacity  int       `json:"capacity"`
	Location  string    `json:"location"`
	Type      string    `json:"type"`
	Image     string    `json:"image"`
	Equipment []string  `json:"equipment"`
	IsBlocked bool      `json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVenueResponse converts a domain venue to its API representation.
func NewVenueResponse(v *venue.Venue) VenueResponse {
	equipment := v.Equipment
	if equipment == nil {
		equipment = make([]string, 0)
	}

	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Category:  string(v.Category),
		Capacity:  v.Capacity,
		Location:  v.Location,
		Type:      v.VenueType,
		Image:     v.Image,
		Equipment: equipment,
		IsBlocked: v.IsBlocked,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// ListVenuesRequest defines query parameters for listing venues.
type ListVenuesRequest struct {
	request.ListParams
	Category string `form:"category" binding:"omitempty,oneof=ACADEMIC HALL SPORTS"`
}

// CreateVenueRequest defines the payload for creating a venue.
type CreateVenueRequest struct {
	Name      string   `json:"name" binding:"required"`
	Category  string   `json:"category" binding:"required,oneof=ACADEMIC HALL SPORTS"`
	Capacity  int      `json:"capacity" binding:"required,min=1"`
	Location  string   `json:"location"`
	Type      string   `json:"type"`
	Image     string   `json:"image"`
	Equipment []string `json:"equipment"`
}

// UpdateVenueRequest defines fields allowed to be updated via PUT /venues/:id.
// Pointers distinguish "field not sent" from zero values.
type UpdateVenueRequest struct {
	Name      *string   `json:"name"`
	Category  *string   `json:"category" binding:"omitempty,oneof=ACADEMIC HALL SPORTS"`
	Capacity  *int      `json:"capacity" binding:"omitempty,min=1"`
	Location  *string   `json:"location"`
	Type      *string   `json:"type"`
	Equipment *[]string `json:"equipment"`
	IsBlocked *bool     `json:"is_blocked"`
}
