package venue

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name      string
	Category  Category
	Capacity  int
	Location  string
	VenueType string
	Image     string
	Equipment []string
}

type UpdateRequest struct {
	Name      *string
	Category  *Category
	Capacity  *int
	Location  *string
	VenueType *string
	Equipment *[]string
	IsBlocked *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Venue, error)
	SetImage(ctx context.Context, id string, path string) (*Venue, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !req.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	// A nil slice would encode as SQL NULL and trip the NOT NULL column.
	equipment := req.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	v := &Venue{
		Name:      strings.TrimSpace(req.Name),
		Category:  req.Category,
		Capacity:  req.Capacity,
		Location:  req.Location,
		VenueType: req.VenueType,
		Image:     req.Image,
		Equipment: equipment,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		v.Category = *req.Category
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrInvalidCapacity
		}
		v.Capacity = *req.Capacity
	}
	if req.Location != nil {
		v.Location = *req.Location
	}
	if req.VenueType != nil {
		v.VenueType = *req.VenueType
	}
	if req.Equipment != nil {
		v.Equipment = *req.Equipment
		if v.Equipment == nil {
			v.Equipment = []string{}
		}
	}
	if req.IsBlocked != nil {
		v.IsBlocked = *req.IsBlocked
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) SetImage(ctx context.Context, id string, path string) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Image = path
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
