// Package journal models the audit trail of mutations issued from desks.
package journal

import (
	"fmt"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
)

// Action is the kind of mutation that was attempted.
type Action string

const (
	ActionCancel Action = "CANCEL"
	ActionAssign Action = "ASSIGN_COURIER"
)

// Outcome tells whether the upstream accepted the mutation.
type Outcome string

const (
	OutcomeSucceeded Outcome = "SUCCEEDED"
	OutcomeFailed    Outcome = "FAILED"
)

// Entry is one journal line.
type Entry struct {
	ID         kernel.UUID
	Action     Action
	ShipmentID string
	CourierID  string
	ActorID    string
	Outcome    Outcome
	Message    string
	RecordedAt time.Time
}

// NewEntry builds an entry for an attempt that has just completed. A nil
// failure means the upstream accepted it.
func NewEntry(action Action, shipmentID, courierID, actorID string, failure error, at time.Time) (Entry, error) {
	if action != ActionCancel && action != ActionAssign {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid action", string(action)))
	}
	if strings.TrimSpace(shipmentID) == "" {
		return Entry{}, errs.NewValueIsRequiredError("shipmentID")
	}
	if action == ActionAssign && strings.TrimSpace(courierID) == "" {
		return Entry{}, errs.NewValueIsRequiredError("courierID")
	}

	entry := Entry{
		ID:         kernel.NewUUID(),
		Action:     action,
		ShipmentID: shipmentID,
		CourierID:  courierID,
		ActorID:    actorID,
		Outcome:    OutcomeSucceeded,
		RecordedAt: at.UTC(),
	}
	if failure != nil {
		entry.Outcome = OutcomeFailed
		entry.Message = failure.Error()
	}
	return entry, nil
}

// Succeeded reports whether the attempt was accepted upstream.
func (e Entry) Succeeded() bool {
	return e.Outcome == OutcomeSucceeded
}
