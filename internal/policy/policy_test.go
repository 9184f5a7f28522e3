package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rohith-M123/campus-booking-backend/internal/user"
	"github.com/Rohith-M123/campus-booking-backend/internal/venue"
)

func TestCanBookCategory(t *testing.T) {
	tests := []struct {
		role     user.Role
		category venue.Category
		want     bool
	}{
		{user.RoleAdmin, venue.CategoryAcademic, true},
		{user.RoleAdmin, venue.CategoryHall, true},
		{user.RoleAdmin, venue.CategorySports, true},

		{user.RoleFaculty, venue.CategoryAcademic, true},
		{user.RoleFaculty, venue.CategoryHall, false},
		{user.RoleFaculty, venue.CategorySports, true},

		{user.RoleCoordinator, venue.CategoryAcademic, false},
		{user.RoleCoordinator, venue.CategoryHall, true},
		{user.RoleCoordinator, venue.CategorySports, true},
	}

	for _, tt := range tests {
		got := CanBookCategory(tt.role, tt.category)
		assert.Equal(t, tt.want, got, "role %s category %s", tt.role, tt.category)
	}
}

func TestCanBookCategoryUnknownDenies(t *testing.T) {
	assert.False(t, CanBookCategory(user.Role("STUDENT"), venue.CategoryHall))
	assert.False(t, CanBookCategory(user.RoleFaculty, venue.Category("GARDEN")))
	assert.False(t, CanBookCategory("", ""))
}

func TestCanManage(t *testing.T) {
	assert.True(t, CanManage(user.RoleAdmin))
	assert.False(t, CanManage(user.RoleFaculty))
	assert.False(t, CanManage(user.RoleCoordinator))
	assert.False(t, CanManage(user.Role("STUDENT")))
}
