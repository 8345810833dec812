package persistence

import (
	"context"
	"errors"

	"github.com/cataloghub/backend/internal/domain/shared"
	"github.com/cataloghub/backend/internal/domain/vendor"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVendorBRepository implements vendor.RepositoryB using GORM
type GormVendorBRepository struct {
	db *gorm.DB
}

// NewGormVendorBRepository creates a new GormVendorBRepository
func NewGormVendorBRepository(db *gorm.DB) *GormVendorBRepository {
	return &GormVendorBRepository{db: db}
}

// FindAll returns all raw vendor B records
func (r *GormVendorBRepository) FindAll(ctx context.Context) ([]vendor.RecordB, error) {
	var records []vendor.RecordB
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID finds a vendor B record by its ID
func (r *GormVendorBRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.RecordB, error) {
	var record vendor.RecordB
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Save inserts a new vendor B record
func (r *GormVendorBRepository) Save(ctx context.Context, record *vendor.RecordB) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update persists changes to an existing vendor B record.
// is_available is written explicitly so a false flag is not skipped as a
// zero value.
func (r *GormVendorBRepository) Update(ctx context.Context, record *vendor.RecordB) error {
	result := r.db.WithContext(ctx).Model(&vendor.RecordB{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"sku":          record.SKU,
			"product_name": record.ProductName,
			"price":        record.Price,
			"is_available": record.IsAvailable,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a vendor B record
func (r *GormVendorBRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&vendor.RecordB{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
