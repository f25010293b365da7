package shipment

import (
	"strings"
	"time"
)

// Address is a postal address of a sender or receiver.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Party is the sender or receiver of a shipment.
type Party struct {
	Name    string
	Email   string
	Phone   string
	Address Address
}

// Shipment is a delivery record as reported by the upstream backend.
// It is a read model: shipdesk never changes it locally, it re-fetches after
// every mutation.
type Shipment struct {
	ID             string
	TrackingNumber string
	UserID         string
	Status         Status
	Sender         Party
	Receiver       Party
	PackageType    string
	WeightKg       float64
	Description    string
	Amount         float64
	Paid           bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeliveredAt    *time.Time
}

// PackageTypeLabel renders the package type with separators shown as spaces.
func (s Shipment) PackageTypeLabel() string {
	return strings.ReplaceAll(s.PackageType, "_", " ")
}

// LastActivity is UpdatedAt when known, CreatedAt otherwise.
func (s Shipment) LastActivity() time.Time {
	if s.UpdatedAt != nil && !s.UpdatedAt.IsZero() {
		return *s.UpdatedAt
	}
	return s.CreatedAt
}

// Cancellable reports whether the cancel action may be offered for s.
func (s Shipment) Cancellable() bool {
	return !s.Status.IsTerminal()
}

// Presentation returns the status badge of s.
func (s Shipment) Presentation() Presentation {
	return PresentationOf(s.Status)
}

// CountByStatus counts the shipments whose status equals status exactly.
func CountByStatus(shipments []Shipment, status Status) int {
	n := 0
	for _, s := range shipments {
		if s.Status == status {
			n++
		}
	}
	return n
}
