// Package user holds the user entity referenced by orders.
// Users are owned by another service; this model is read-only here and exists
// so order placement can verify the owning user actually exists.
package user

import (
	"errors"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the customer who owns an order.
type User struct {
	id            kernel.UUID
	name          string
	email         string
	isConstructed bool
}

// NewUser creates a user reference with a validated identifier.
// Name and email may be empty; the order keeps its own contact email.
func NewUser(id kernel.UUID, name string, email string) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("user id", err)
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's account email.
func (u *User) Email() string {
	return u.email
}
