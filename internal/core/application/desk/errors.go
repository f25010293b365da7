package desk

import "errors"

var (
	// ErrShipmentNotCancellable is returned when cancellation is requested for a delivered or cancelled shipment.
	ErrShipmentNotCancellable = errors.New("shipment can not be cancelled in its current status")

	// ErrConfirmationRequired is returned when a cancellation is confirmed without a pending request.
	ErrConfirmationRequired = errors.New("no cancellation is awaiting confirmation")

	// ErrAssignmentNotPermitted is returned when a non-administrator opens the assignment workflow.
	ErrAssignmentNotPermitted = errors.New("only administrators can assign couriers")

	// ErrAssignmentNotOpen is returned when a courier is selected outside of an open assignment.
	ErrAssignmentNotOpen = errors.New("no assignment is open")

	// ErrSelectionIncomplete is returned when an assignment is confirmed without both a shipment and a courier.
	ErrSelectionIncomplete = errors.New("shipment and courier must both be selected")

	// ErrSubmissionInFlight is returned when a workflow is confirmed while its previous mutation is still running.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")

	// ErrFetchFailed wraps the last upstream error when no fetch strategy produced a list.
	ErrFetchFailed = errors.New("failed to fetch shipments")
)

const (
	msgFetchFailed  = "Failed to fetch shipments"
	msgCancelFailed = "Failed to cancel shipment"
	msgAssignFailed = "Failed to assign courier"
)

// ActionError is a failed mutation. Message is the text to show: the
// upstream message when there is one, a generic one otherwise.
type ActionError struct {
	Message string
	Cause   error
}

func (e *ActionError) Error() string {
	return e.Message
}

func (e *ActionError) Unwrap() error {
	return e.Cause
}
