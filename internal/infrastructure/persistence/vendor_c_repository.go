package persistence

import (
	"context"
	"errors"

	"github.com/cataloghub/backend/internal/domain/shared"
	"github.com/cataloghub/backend/internal/domain/vendor"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVendorCRepository implements vendor.RepositoryC using GORM
type GormVendorCRepository struct {
	db *gorm.DB
}

// NewGormVendorCRepository creates a new GormVendorCRepository
func NewGormVendorCRepository(db *gorm.DB) *GormVendorCRepository {
	return &GormVendorCRepository{db: db}
}

// FindAll returns all raw vendor C records
func (r *GormVendorCRepository) FindAll(ctx context.Context) ([]vendor.RecordC, error) {
	var records []vendor.RecordC
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID finds a vendor C record by its ID
func (r *GormVendorCRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.RecordC, error) {
	var record vendor.RecordC
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Save inserts a new vendor C record
func (r *GormVendorCRepository) Save(ctx context.Context, record *vendor.RecordC) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update persists changes to an existing vendor C record
func (r *GormVendorCRepository) Update(ctx context.Context, record *vendor.RecordC) error {
	result := r.db.WithContext(ctx).Model(&vendor.RecordC{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"details": record.Details,
			"pricing": record.Pricing,
			"stock":   record.Stock,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a vendor C record
func (r *GormVendorCRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&vendor.RecordC{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
