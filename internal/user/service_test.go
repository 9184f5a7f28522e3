package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (r *fakeRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepository) Create(ctx context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	r.nextID++
	u.ID = fmt.Sprintf("u%d", r.nextID)
	u.CreatedAt = time.Now().UTC()
	stored := *u
	r.byID[u.ID] = &stored
	r.byEmail[u.Email] = &stored
	return nil
}

func (r *fakeRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &t
	return nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range r.byID {
		copied := *u
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepository) Update(ctx context.Context, u *User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	stored := *u
	r.byID[u.ID] = &stored
	r.byEmail[u.Email] = &stored
	return nil
}

// fakeHasher keeps passwords in the clear for test readability.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hash:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, fakeHasher{}), repo
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Name:       "Dr. Sarah Johnson",
		Email:      "sarah.johnson@campus.test",
		Password:   "correct horse",
		Role:       RoleFaculty,
		Department: "Computer Science",
	}
}

func TestCreateUser(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "sarah.johnson@campus.test", u.Email)
	assert.Equal(t, RoleFaculty, u.Role)
	assert.Equal(t, StatusActive, u.Status)
	require.NotNil(t, u.Department)
	assert.Equal(t, "Computer Science", *u.Department)
	assert.NotEqual(t, "correct horse", u.PasswordHash)
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"empty name", func(r *CreateRequest) { r.Name = " " }, ErrNameRequired},
		{"empty email", func(r *CreateRequest) { r.Email = "" }, ErrEmailRequired},
		{"unknown role", func(r *CreateRequest) { r.Role = "STUDENT" }, ErrInvalidRole},
		{"short password", func(r *CreateRequest) { r.Password = "short" }, ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Same address with different case still counts as taken.
	req := validCreateRequest()
	req.Email = "Sarah.Johnson@campus.test"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "  Sarah.Johnson@campus.test ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestLoginRecordsLastLogin(t *testing.T) {
	svc, repo := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), created.Email, "correct horse")
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), created.Email, "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email is indistinguishable from a bad password.
	_, err = svc.Login(context.Background(), "nobody@campus.test", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginBlockedUser(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.ToggleBlock(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), created.Email, "correct horse")
	assert.ErrorIs(t, err, ErrUserBlocked)
}

func TestToggleBlock(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	u, err := svc.ToggleBlock(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusBlocked, u.Status)

	u, err = svc.ToggleBlock(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, u.Status)
}

func TestToggleBlockAdminExempt(t *testing.T) {
	svc, _ := newTestService()

	req := validCreateRequest()
	req.Email = "admin@campus.test"
	req.Role = RoleAdmin
	admin, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.ToggleBlock(context.Background(), admin.ID)
	assert.ErrorIs(t, err, ErrAdminBlockExempt)

	got, err := svc.GetByID(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, got.Status)
}

func TestToggleBlockUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ToggleBlock(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
