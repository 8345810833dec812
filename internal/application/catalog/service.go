// Package catalog exposes the read side of the canonical product catalog.
package catalog

import (
	"context"

	"github.com/cataloghub/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// SnapshotCache caches the full catalog snapshot between integrations
type SnapshotCache interface {
	Get(ctx context.Context) ([]catalog.CanonicalProduct, error)
	Set(ctx context.Context, products []catalog.CanonicalProduct) error
}

// ProductView is the wire representation of a canonical product
type ProductView struct {
	Vendor      string `json:"vendor"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
	StockStatus string `json:"stock_status"`
}

// Service serves catalog reads, with an optional cache in front of the
// repository
type Service struct {
	repo   catalog.Repository
	cache  SnapshotCache
	logger *zap.Logger
}

// NewService creates a catalog read service. cache may be nil.
func NewService(repo catalog.Repository, cache SnapshotCache, logger *zap.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// ListProducts returns the current catalog in integration order
func (s *Service) ListProducts(ctx context.Context) ([]ProductView, error) {
	if s.cache != nil {
		if products, err := s.cache.Get(ctx); err == nil {
			return toViews(products), nil
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.logger.Warn("Failed to cache catalog snapshot", zap.Error(err))
		}
	}

	return toViews(products), nil
}

// CountProducts returns the catalog size
func (s *Service) CountProducts(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func toViews(products []catalog.CanonicalProduct) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Vendor:      string(p.Vendor),
			ProductCode: p.ProductCode,
			ProductName: p.ProductName,
			Price:       p.Price,
			StockStatus: string(p.StockStatus),
		})
	}
	return views
}
