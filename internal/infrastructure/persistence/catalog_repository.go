package persistence

import (
	"context"

	"github.com/cataloghub/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

const replaceBatchSize = 500

// GormCatalogRepository implements catalog.Repository using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ReplaceAll swaps the entire catalog for the given products in a single
// transaction. Readers never observe a partially written catalog. Position
// preserves the caller's ordering across reads.
func (r *GormCatalogRepository) ReplaceAll(ctx context.Context, products []catalog.CanonicalProduct) error {
	for i := range products {
		products[i].Position = i
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&catalog.CanonicalProduct{}).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return tx.CreateInBatches(products, replaceBatchSize).Error
	})
}

// FindAll returns the catalog in integration order
func (r *GormCatalogRepository) FindAll(ctx context.Context) ([]catalog.CanonicalProduct, error) {
	var products []catalog.CanonicalProduct
	if err := r.db.WithContext(ctx).Order("position").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the number of products in the catalog
func (r *GormCatalogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.CanonicalProduct{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
