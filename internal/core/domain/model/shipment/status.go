package shipment

import (
	"fmt"
	"slices"
	"strings"

	"shipdesk/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment, kept in its wire form.
//
// State transitions:
//
//	CREATED ──> PICKED_UP ──> IN_TRANSIT ──> DELIVERED
//	   │            │              │
//	   └────────────┴──────────────┴──────> CANCELLED
//
// Values received from the backend are never rejected on decode, so an
// unexpected status still reaches the presentation layer.
type Status string

const (
	Created   Status = "CREATED"
	PickedUp  Status = "PICKED_UP"
	InTransit Status = "IN_TRANSIT"
	Delivered Status = "DELIVERED"
	Cancelled Status = "CANCELLED"
)

// progression gives the position of each status along the forward path.
// Cancelled is deliberately absent.
func progression() map[Status]int {
	return map[Status]int{
		Created:   0,
		PickedUp:  1,
		InTransit: 2,
		Delivered: 3,
	}
}

// Statuses lists every known status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, PickedUp, InTransit, Delivered, Cancelled}
}

// Validate fails for any value outside of the known statuses.
func (s Status) Validate() error {
	if !slices.Contains(Statuses(), s) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// Label renders the status for display, with underscores shown as spaces.
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil || s.IsTerminal() {
		return false
	}
	if next == Cancelled {
		return true
	}
	order := progression()
	return order[next] > order[s]
}

// Cancel returns Cancelled if the shipment may still be cancelled.
//
// Example:
//
//	next, err := shipment.InTransit.Cancel() // Cancelled, nil
//	_, err = shipment.Delivered.Cancel()      // error
func (s Status) Cancel() (Status, error) {
	if !s.CanTransitionTo(Cancelled) {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
