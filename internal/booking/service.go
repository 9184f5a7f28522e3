package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Rohith-M123/campus-booking-backend/internal/policy"
	"github.com/Rohith-M123/campus-booking-backend/internal/user"
	"github.com/Rohith-M123/campus-booking-backend/internal/venue"
)

// CreateRequest carries a booking submission.
type CreateRequest struct {
	VenueID           string
	Title             string
	Description       string
	Date              string // YYYY-MM-DD
	StartTime         string // HH:MM
	EndTime           string // HH:MM
	FullDay           bool
	EquipmentRequired []string
	Attendees         int
}

type Service interface {
	// Submit validates the request against the role-category policy and the
	// time invariants and persists a PENDING booking. Overlap against other
	// PENDING requests is deliberately not checked; conflicts are resolved at
	// approval time.
	Submit(ctx context.Context, req CreateRequest, requester *user.User) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// Approve transitions a PENDING booking to APPROVED after re-checking that
	// no approved booking for the same venue and date overlaps it.
	Approve(ctx context.Context, id string, actor *user.User) (*Booking, error)
	// Reject transitions a PENDING booking to REJECTED unconditionally.
	Reject(ctx context.Context, id string, actor *user.User) (*Booking, error)
	// Availability returns the slot grid for a venue on a date.
	Availability(ctx context.Context, venueID, date string) ([]Slot, error)
}

type service struct {
	repo         Repository
	venueService venue.Service
}

func NewService(repo Repository, venueService venue.Service) Service {
	return &service{
		repo:         repo,
		venueService: venueService,
	}
}

func (s *service) Submit(ctx context.Context, req CreateRequest, requester *user.User) (*Booking, error) {
	if requester == nil || requester.Status == user.StatusBlocked {
		return nil, ErrPermissionDenied
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !validDate(req.Date) {
		return nil, ErrInvalidDate
	}
	if req.Attendees < 0 {
		return nil, ErrInvalidAttendees
	}
	if req.FullDay {
		// Times are optional on a full-day request but must still parse when
		// sent, so a malformed value fails here instead of at the database.
		if (req.StartTime != "" && !validClock(req.StartTime)) ||
			(req.EndTime != "" && !validClock(req.EndTime)) {
			return nil, ErrInvalidTime
		}
	} else {
		if !validClock(req.StartTime) || !validClock(req.EndTime) {
			return nil, ErrInvalidTime
		}
		if req.StartTime >= req.EndTime {
			return nil, ErrInvalidTimeRange
		}
	}

	// Resolve the venue and gate on the role-category table before any
	// persistence attempt.
	v, err := s.venueService.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if v.IsBlocked {
		return nil, ErrVenueBlocked
	}
	if !policy.CanBookCategory(requester.Role, v.Category) {
		return nil, ErrCategoryNotAllowed
	}

	// A nil slice would encode as SQL NULL and trip the NOT NULL column.
	equipment := req.EquipmentRequired
	if equipment == nil {
		equipment = []string{}
	}

	b := &Booking{
		VenueID:           v.ID,
		VenueName:         v.Name,
		UserID:            requester.ID,
		UserName:          requester.Name,
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		Date:              req.Date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		FullDay:           req.FullDay,
		Status:            StatusPending,
		EquipmentRequired: equipment,
		Attendees:         req.Attendees,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Approve(ctx context.Context, id string, actor *user.User) (*Booking, error) {
	if actor == nil || !policy.CanManage(actor.Role) {
		return nil, ErrPermissionDenied
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Terminal states are immutable.
	if b.Status != StatusPending {
		return nil, ErrNotPending
	}

	// Overlapping PENDING requests may coexist, so the conflict check happens
	// here, against APPROVED bookings only. Check and transition are a single
	// conditional update, so of two admins approving overlapping requests at
	// once only one can win; the loser's booking stays PENDING and the actor
	// must re-evaluate against fresh data.
	ok, err := s.repo.ApproveIfFree(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Either a conflicting approval landed first or another decision
		// already resolved this booking.
		fresh, err := s.repo.GetByID(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		if fresh.Status != StatusPending {
			return nil, ErrNotPending
		}
		return nil, ErrSlotConflict
	}

	b.Status = StatusApproved
	b.UpdatedAt = time.Now().UTC()
	return b, nil
}

func (s *service) Reject(ctx context.Context, id string, actor *user.User) (*Booking, error) {
	if actor == nil || !policy.CanManage(actor.Role) {
		return nil, ErrPermissionDenied
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status != StatusPending {
		return nil, ErrNotPending
	}

	// No conflict check: rejection frees nothing and blocks nothing.
	if err := s.repo.UpdateStatus(ctx, b.ID, StatusRejected); err != nil {
		return nil, err
	}

	b.Status = StatusRejected
	b.UpdatedAt = time.Now().UTC()
	return b, nil
}

func (s *service) Availability(ctx context.Context, venueID, date string) ([]Slot, error) {
	if !validDate(date) {
		return nil, ErrInvalidDate
	}

	if _, err := s.venueService.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	bookings, err := s.repo.ListForVenueDate(ctx, venueID, date)
	if err != nil {
		return nil, err
	}

	return ComputeAvailability(venueID, date, bookings), nil
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
