// Package principal models the authenticated user a desk is opened for.
// Only Role drives branching; the rest is carried for display.
package principal

import (
	"fmt"
	"strings"

	"shipdesk/internal/pkg/errs"
)

// Role is the platform role of a user, in its wire form.
type Role string

const (
	Admin    Role = "ADMIN"
	Courier  Role = "COURIER"
	Customer Role = "CUSTOMER"
)

// ParseRole normalises a role claim. Unknown roles are rejected.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate fails for roles outside of Admin, Courier and Customer.
func (r Role) Validate() error {
	switch r {
	case Admin, Courier, Customer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// User is a platform user: the session principal or a roster entry.
type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// NewUser builds a user after checking the id and role.
func NewUser(id, name, email string, role Role) (User, error) {
	if strings.TrimSpace(id) == "" {
		return User{}, errs.NewValueIsRequiredError("id")
	}
	if err := role.Validate(); err != nil {
		return User{}, err
	}
	return User{ID: id, Name: name, Email: email, Role: role}, nil
}

// IsAdmin reports whether u may see every shipment and assign couriers.
func (u User) IsAdmin() bool {
	return u.Role == Admin
}

// DisplayName is the name, or the email when the name is empty.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Couriers keeps the users whose role is Courier, in their original order.
func Couriers(users []User) []User {
	couriers := make([]User, 0, len(users))
	for _, u := range users {
		if u.Role == Courier {
			couriers = append(couriers, u)
		}
	}
	return couriers
}
