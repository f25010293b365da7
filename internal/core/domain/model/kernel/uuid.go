package kernel

import (
	"fmt"

	"shipdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID is an immutable identifier wrapping github.com/google/uuid.
// The zero value is invalid.
//
// Example:
//
//	deskID := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString(c.Param("deskId"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(parsed.IsEqual(deskID))
type UUID struct {
	id uuid.UUID
}

// NewUUID creates a random (v4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any textual form accepted by uuid.Parse.
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// FromGoogle converts an already parsed google UUID, as produced by parameter binders.
func FromGoogle(id uuid.UUID) (UUID, error) {
	converted := UUID{id: id}
	if err := converted.Validate(); err != nil {
		return UUID{}, err
	}
	return converted, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Google returns the wrapped uuid.UUID.
func (u UUID) Google() uuid.UUID {
	return u.id
}

// IsEqual compares two identifiers by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate fails for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
