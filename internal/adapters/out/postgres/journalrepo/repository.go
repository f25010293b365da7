package journalrepo

import (
	"context"
	"errors"
	"time"

	"shipdesk/internal/core/domain/model/journal"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActionJournal implements ports.ActionJournal using GORM.
type GormActionJournal struct {
	db *gorm.DB
}

// NewGormActionJournal creates a new GORM backed journal.
func NewGormActionJournal(db *gorm.DB) *GormActionJournal {
	return &GormActionJournal{db: db}
}

// Migrate creates or updates the journal table.
func (r *GormActionJournal) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&ActionDTO{})
}

// Append stores a new entry.
func (r *GormActionJournal) Append(ctx context.Context, entry journal.Entry) error {
	if err := entry.ID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves one entry by id.
func (r *GormActionJournal) Get(ctx context.Context, id kernel.UUID) (journal.Entry, error) {
	if err := id.Validate(); err != nil {
		return journal.Entry{}, err
	}

	var dto ActionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return journal.Entry{}, errs.NewObjectNotFoundError("journal entry", id.String())
		}
		return journal.Entry{}, err
	}

	return toDomain(dto)
}

// PruneBefore deletes entries recorded strictly before cutoff.
func (r *GormActionJournal) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("recorded_at < ?", cutoff.UTC()).Delete(&ActionDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
