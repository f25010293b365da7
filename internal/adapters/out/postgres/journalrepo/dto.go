// Package journalrepo persists the action journal in PostgreSQL through GORM.
package journalrepo

import (
	"time"

	"shipdesk/internal/core/domain/model/journal"
	"shipdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActionDTO is the row layout of one journaled attempt.
type ActionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action     string    `gorm:"type:varchar(32);not null"`
	ShipmentID string    `gorm:"type:varchar(64);not null;index:idx_shipment_actions_shipment"`
	CourierID  string    `gorm:"type:varchar(64);not null;default:''"`
	ActorID    string    `gorm:"type:varchar(64);not null;default:''"`
	Outcome    string    `gorm:"type:varchar(16);not null"`
	Message    string    `gorm:"type:text;not null;default:''"`
	RecordedAt time.Time `gorm:"not null;index"`
}

// TableName overrides the GORM default "action_dtos".
func (ActionDTO) TableName() string {
	return "shipment_actions"
}

func fromDomain(entry journal.Entry) ActionDTO {
	return ActionDTO{
		ID:         entry.ID.Google(),
		Action:     string(entry.Action),
		ShipmentID: entry.ShipmentID,
		CourierID:  entry.CourierID,
		ActorID:    entry.ActorID,
		Outcome:    string(entry.Outcome),
		Message:    entry.Message,
		RecordedAt: entry.RecordedAt,
	}
}

func toDomain(dto ActionDTO) (journal.Entry, error) {
	id, err := kernel.FromGoogle(dto.ID)
	if err != nil {
		return journal.Entry{}, err
	}

	return journal.Entry{
		ID:         id,
		Action:     journal.Action(dto.Action),
		ShipmentID: dto.ShipmentID,
		CourierID:  dto.CourierID,
		ActorID:    dto.ActorID,
		Outcome:    journal.Outcome(dto.Outcome),
		Message:    dto.Message,
		RecordedAt: dto.RecordedAt,
	}, nil
}
