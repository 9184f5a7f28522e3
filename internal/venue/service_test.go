package venue

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	venues map[string]*Venue
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{venues: make(map[string]*Venue)}
}

func (r *fakeRepository) Create(ctx context.Context, v *Venue) error {
	r.nextID++
	v.ID = fmt.Sprintf("v%d", r.nextID)
	stored := *v
	r.venues[v.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	var out []*Venue
	for _, v := range r.venues {
		copied := *v
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepository) Update(ctx context.Context, v *Venue) error {
	if _, ok := r.venues[v.ID]; !ok {
		return ErrNotFound
	}
	stored := *v
	r.venues[v.ID] = &stored
	return nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Name:      "Seminar Hall B",
		Category:  CategoryAcademic,
		Capacity:  150,
		Location:  "Block B, 2nd Floor",
		VenueType: "Seminar Hall",
		Equipment: []string{"Projector", "Mic"},
	}
}

func TestCreateVenue(t *testing.T) {
	svc := NewService(newFakeRepository())

	v, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "Seminar Hall B", v.Name)
	assert.Equal(t, CategoryAcademic, v.Category)
	assert.False(t, v.IsBlocked)
}

func TestCreateVenueWithoutEquipment(t *testing.T) {
	// An omitted equipment list must persist as an empty list, never as nil:
	// nil would reach the database as NULL against a NOT NULL column.
	svc := NewService(newFakeRepository())

	req := validCreateRequest()
	req.Equipment = nil

	v, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, v.Equipment)
	assert.Empty(t, v.Equipment)

	var cleared []string
	updated, err := svc.Update(context.Background(), v.ID, UpdateRequest{Equipment: &cleared})
	require.NoError(t, err)
	assert.NotNil(t, updated.Equipment)
}

func TestCreateVenueValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"empty name", func(r *CreateRequest) { r.Name = "   " }, ErrEmptyName},
		{"unknown category", func(r *CreateRequest) { r.Category = "LIBRARY" }, ErrInvalidCategory},
		{"zero capacity", func(r *CreateRequest) { r.Capacity = 0 }, ErrInvalidCapacity},
		{"negative capacity", func(r *CreateRequest) { r.Capacity = -5 }, ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepository())
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateVenuePartial(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	v, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	capacity := 200
	location := "Block C"
	updated, err := svc.Update(context.Background(), v.ID, UpdateRequest{
		Capacity: &capacity,
		Location: &location,
	})
	require.NoError(t, err)

	assert.Equal(t, 200, updated.Capacity)
	assert.Equal(t, "Block C", updated.Location)
	// Untouched fields survive.
	assert.Equal(t, "Seminar Hall B", updated.Name)
	assert.Equal(t, CategoryAcademic, updated.Category)
}

func TestUpdateVenueValidation(t *testing.T) {
	svc := NewService(newFakeRepository())
	v, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	empty := " "
	_, err = svc.Update(context.Background(), v.ID, UpdateRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrEmptyName)

	bad := Category("POOL")
	_, err = svc.Update(context.Background(), v.ID, UpdateRequest{Category: &bad})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	zero := 0
	_, err = svc.Update(context.Background(), v.ID, UpdateRequest{Capacity: &zero})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestBlockVenueInsteadOfDelete(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	v, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	blocked := true
	updated, err := svc.Update(context.Background(), v.ID, UpdateRequest{IsBlocked: &blocked})
	require.NoError(t, err)
	assert.True(t, updated.IsBlocked)

	// Still retrievable; blocking keeps the record.
	got, err := svc.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	assert.True(t, got.IsBlocked)

	unblocked := false
	updated, err = svc.Update(context.Background(), v.ID, UpdateRequest{IsBlocked: &unblocked})
	require.NoError(t, err)
	assert.False(t, updated.IsBlocked)
}

func TestUpdateUnknownVenue(t *testing.T) {
	svc := NewService(newFakeRepository())

	capacity := 10
	_, err := svc.Update(context.Background(), "missing", UpdateRequest{Capacity: &capacity})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetImage(t *testing.T) {
	svc := NewService(newFakeRepository())
	v, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.SetImage(context.Background(), v.ID, "venues/"+v.ID+".jpg")
	require.NoError(t, err)
	assert.Equal(t, "venues/"+v.ID+".jpg", updated.Image)
}
