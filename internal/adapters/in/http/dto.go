package http

import (
	"time"

	"shipdesk/internal/core/application/desk"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/model/stats"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx answer.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ShipmentRef struct {
	ShipmentID string `json:"shipmentId" validate:"required"`
}

type CourierRef struct {
	CourierID string `json:"courierId" validate:"required"`
}

type Presentation struct {
	ColorTag string `json:"colorTag"`
	Label    string `json:"label"`
	CSSClass string `json:"cssClass"`
}

type Party struct {
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type Shipment struct {
	ID             string       `json:"id"`
	TrackingNumber string       `json:"trackingNumber"`
	Status         string       `json:"status"`
	Presentation   Presentation `json:"presentation"`
	Sender         Party        `json:"sender"`
	Receiver       Party        `json:"receiver"`
	PackageType    string       `json:"packageType"`
	WeightKg       float64      `json:"weightKg"`
	LastActivity   time.Time    `json:"lastActivity"`
	Cancellable    bool         `json:"cancellable"`
}

type Tile struct {
	Label        string `json:"label"`
	Value        int64  `json:"value"`
	DisplayValue string `json:"displayValue"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	Change       string `json:"change,omitempty"`
	Positive     bool   `json:"positive"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DeskView is the wire form of desk.View. Shipments holds the filtered list.
type DeskView struct {
	DeskID             string     `json:"deskId"`
	SearchTerm         string     `json:"searchTerm"`
	Count              int        `json:"count"`
	Shipments          []Shipment `json:"shipments"`
	Tiles              []Tile     `json:"tiles"`
	Couriers           []User     `json:"couriers"`
	AssigningID        string     `json:"assigningId,omitempty"`
	SelectedCourier    string     `json:"selectedCourier,omitempty"`
	CanConfirmAssign   bool       `json:"canConfirmAssign"`
	ConfirmingCancelID string     `json:"confirmingCancelId,omitempty"`
	Loading            bool       `json:"loading"`
	Error              string     `json:"error,omitempty"`
	RosterError        string     `json:"rosterError,omitempty"`
	Message            string     `json:"message,omitempty"`
}

type DeskEnvelope struct {
	ID   string   `json:"id"`
	View DeskView `json:"view"`
}

type FeedItem struct {
	TrackingNumber string    `json:"trackingNumber"`
	StatusLabel    string    `json:"statusLabel"`
	At             time.Time `json:"at"`
}

type Dashboard struct {
	Tiles       []Tile     `json:"tiles"`
	Recent      []Shipment `json:"recent"`
	LiveFeed    []FeedItem `json:"liveFeed"`
	FleetAgents *int64     `json:"fleetAgents,omitempty"`
}

type Action struct {
	ID         uuid.UUID `json:"id"`
	Action     string    `json:"action"`
	CourierID  string    `json:"courierId,omitempty"`
	ActorID    string    `json:"actorId"`
	Outcome    string    `json:"outcome"`
	Message    string    `json:"message,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

func toPresentation(p shipment.Presentation) Presentation {
	return Presentation{ColorTag: string(p.ColorTag), Label: p.Label, CSSClass: p.CSSClass}
}

func toParty(p shipment.Party) Party {
	return Party{Name: p.Name, City: p.Address.City, Country: p.Address.Country}
}

func toShipments(list []shipment.Shipment) []Shipment {
	out := make([]Shipment, 0, len(list))
	for _, s := range list {
		out = append(out, Shipment{
			ID:             s.ID,
			TrackingNumber: s.TrackingNumber,
			Status:         s.Status.String(),
			Presentation:   toPresentation(s.Presentation()),
			Sender:         toParty(s.Sender),
			Receiver:       toParty(s.Receiver),
			PackageType:    s.PackageTypeLabel(),
			WeightKg:       s.WeightKg,
			LastActivity:   s.LastActivity(),
			Cancellable:    s.Cancellable(),
		})
	}
	return out
}

func toTiles(tiles []stats.Tile) []Tile {
	out := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, Tile{
			Label:        t.Label,
			Value:        t.Value,
			DisplayValue: t.DisplayValue(),
			Icon:         string(t.Icon),
			Color:        string(t.Color),
			Change:       t.Change,
			Positive:     t.Positive(),
		})
	}
	return out
}

func toUsers(users []principal.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, User{ID: u.ID, Name: u.DisplayName(), Email: u.Email, Role: u.Role.String()})
	}
	return out
}

func toDeskView(v desk.View) DeskView {
	return DeskView{
		DeskID:             v.DeskID,
		SearchTerm:         v.SearchTerm,
		Count:              len(v.Filtered),
		Shipments:          toShipments(v.Filtered),
		Tiles:              toTiles(v.Tiles),
		Couriers:           toUsers(v.Couriers),
		AssigningID:        v.AssigningID,
		SelectedCourier:    v.SelectedCourier,
		CanConfirmAssign:   v.CanConfirmAssign,
		ConfirmingCancelID: v.ConfirmingCancelID,
		Loading:            v.Loading,
		Error:              v.Error,
		RosterError:        v.RosterError,
		Message:            v.Message,
	}
}

func toDashboard(r queries.GetDashboardQueryResponse) Dashboard {
	feed := make([]FeedItem, 0, len(r.LiveFeed))
	for _, f := range r.LiveFeed {
		feed = append(feed, FeedItem{TrackingNumber: f.TrackingNumber, StatusLabel: f.StatusLabel, At: f.At})
	}
	return Dashboard{
		Tiles:       toTiles(r.Tiles),
		Recent:      toShipments(r.Recent),
		LiveFeed:    feed,
		FleetAgents: r.FleetAgents,
	}
}

func toActions(list []queries.GetShipmentActionsQueryResponse) []Action {
	out := make([]Action, 0, len(list))
	for _, a := range list {
		out = append(out, Action{
			ID:         a.ID.Google(),
			Action:     string(a.Action),
			CourierID:  a.CourierID,
			ActorID:    a.ActorID,
			Outcome:    string(a.Outcome),
			Message:    a.Message,
			RecordedAt: a.RecordedAt,
		})
	}
	return out
}
