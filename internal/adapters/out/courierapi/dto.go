package courierapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/model/stats"
)

type addressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type partyDTO struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Phone   string     `json:"phone"`
	Address addressDTO `json:"address"`
}

type packageDTO struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	UserID         string    `json:"userId"`
	Sender         partyDTO  `json:"sender"`
	Receiver       partyDTO  `json:"receiver"`
	PackageType    string    `json:"packageType"`
	Weight         float64   `json:"weight"`
	Description    string    `json:"description"`
	Amount         float64   `json:"amount"`
	Paid           bool      `json:"paid"`
	Status         string    `json:"status"`
	CreatedAt      timestamp `json:"createdAt"`
	UpdatedAt      timestamp `json:"updatedAt"`
	DeliveredAt    timestamp `json:"deliveredAt"`
}

type pageDTO[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
}

type userDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type statsDTO struct {
	TotalPackages     int64 `json:"totalPackages"`
	CreatedPackages   int64 `json:"createdPackages"`
	InTransitPackages int64 `json:"inTransitPackages"`
	DeliveredPackages int64 `json:"deliveredPackages"`
	CancelledPackages int64 `json:"cancelledPackages"`
	TotalUsers        int64 `json:"totalUsers"`
	TotalCustomers    int64 `json:"totalCustomers"`
	TotalCouriers     int64 `json:"totalCouriers"`
}

type errorDTO struct {
	Message string `json:"message"`
}

// timestamp accepts both zoned RFC 3339 values and the zone-less local
// date-times the backend emits; the latter are read as UTC.
type timestamp struct {
	time.Time
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t.Time = parsed
		return nil
	}
	for _, layout := range localLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", raw)
}

func (t timestamp) ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

func (p partyDTO) toDomain() shipment.Party {
	return shipment.Party{
		Name:  p.Name,
		Email: p.Email,
		Phone: p.Phone,
		Address: shipment.Address{
			Street:  p.Address.Street,
			City:    p.Address.City,
			State:   p.Address.State,
			ZipCode: p.Address.ZipCode,
			Country: p.Address.Country,
		},
	}
}

func (p packageDTO) toDomain() shipment.Shipment {
	return shipment.Shipment{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		UserID:         p.UserID,
		Status:         shipment.Status(p.Status),
		Sender:         p.Sender.toDomain(),
		Receiver:       p.Receiver.toDomain(),
		PackageType:    p.PackageType,
		WeightKg:       p.Weight,
		Description:    p.Description,
		Amount:         p.Amount,
		Paid:           p.Paid,
		CreatedAt:      p.CreatedAt.Time,
		UpdatedAt:      p.UpdatedAt.ptr(),
		DeliveredAt:    p.DeliveredAt.ptr(),
	}
}

func packagesToDomain(list []packageDTO) []shipment.Shipment {
	out := make([]shipment.Shipment, 0, len(list))
	for _, p := range list {
		out = append(out, p.toDomain())
	}
	return out
}

// usersToDomain keeps users with an unknown role out of the result; they can
// never be offered as couriers.
func usersToDomain(list []userDTO) []principal.User {
	out := make([]principal.User, 0, len(list))
	for _, u := range list {
		role, err := principal.ParseRole(u.Role)
		if err != nil {
			continue
		}
		out = append(out, principal.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: role})
	}
	return out
}

func (s statsDTO) toDomain() stats.DashboardStats {
	return stats.DashboardStats{
		TotalPackages:     s.TotalPackages,
		CreatedPackages:   s.CreatedPackages,
		InTransitPackages: s.InTransitPackages,
		DeliveredPackages: s.DeliveredPackages,
		CancelledPackages: s.CancelledPackages,
		TotalUsers:        s.TotalUsers,
		TotalCustomers:    s.TotalCustomers,
		TotalCouriers:     s.TotalCouriers,
	}
}
