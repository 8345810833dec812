package persistence

import (
	"context"
	"errors"

	"github.com/cataloghub/backend/internal/domain/shared"
	"github.com/cataloghub/backend/internal/domain/vendor"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVendorARepository implements vendor.RepositoryA using GORM
type GormVendorARepository struct {
	db *gorm.DB
}

// NewGormVendorARepository creates a new GormVendorARepository
func NewGormVendorARepository(db *gorm.DB) *GormVendorARepository {
	return &GormVendorARepository{db: db}
}

// FindAll returns all raw vendor A records
func (r *GormVendorARepository) FindAll(ctx context.Context) ([]vendor.RecordA, error) {
	var records []vendor.RecordA
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID finds a vendor A record by its ID
func (r *GormVendorARepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.RecordA, error) {
	var record vendor.RecordA
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Save inserts a new vendor A record
func (r *GormVendorARepository) Save(ctx context.Context, record *vendor.RecordA) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update persists changes to an existing vendor A record
func (r *GormVendorARepository) Update(ctx context.Context, record *vendor.RecordA) error {
	result := r.db.WithContext(ctx).Model(&vendor.RecordA{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"kd_produk": record.ProductCode,
			"nm_brg":    record.ProductName,
			"hrg":       record.Price,
			"ket_stok":  record.StockFlag,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a vendor A record
func (r *GormVendorARepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&vendor.RecordA{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
