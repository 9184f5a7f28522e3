// Package policy holds the static role-based access rules of the campus
// booking system. The role to venue-category table is a closed exhaustive
// mapping: an unknown role or category always denies, it never falls through.
package policy

import (
	"github.com/Rohith-M123/campus-booking-backend/internal/user"
	"github.com/Rohith-M123/campus-booking-backend/internal/venue"
)

// bookableCategories maps each role to the venue categories it may submit
// booking requests against.
var bookableCategories = map[user.Role]map[venue.Category]bool{
	user.RoleAdmin: {
		venue.CategoryAcademic: true,
		venue.CategoryHall:     true,
		venue.CategorySports:   true,
	},
	user.RoleFaculty: {
		venue.CategoryAcademic: true,
		venue.CategorySports:   true,
	},
	user.RoleCoordinator: {
		venue.CategoryHall:   true,
		venue.CategorySports: true,
	},
}

// CanBookCategory reports whether the role may submit booking requests for
// venues of the given category.
func CanBookCategory(role user.Role, category venue.Category) bool {
	return bookableCategories[role][category]
}

// CanManage reports whether the role may perform administrative actions:
// approving or rejecting bookings, creating and updating venues, creating
// users and toggling their block status.
func CanManage(role user.Role) bool {
	return role == user.RoleAdmin
}
