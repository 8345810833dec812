// Package integration orchestrates the vendor feed pipeline: fetch the raw
// records of every vendor concurrently, normalize them into canonical
// products in fixed vendor order and atomically replace the catalog.
package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cataloghub/backend/internal/application/normalize"
	"github.com/cataloghub/backend/internal/domain/catalog"
	"github.com/cataloghub/backend/internal/domain/vendor"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SnapshotInvalidator drops any cached catalog snapshot after a replace
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Config holds tuning knobs for integration runs
type Config struct {
	// FetchTimeout bounds each vendor fetch individually
	FetchTimeout time.Duration
	// SampleSize is the number of products echoed back in the run summary
	SampleSize int
}

// Service runs vendor catalog integrations
type Service struct {
	vendorA vendor.RepositoryA
	vendorB vendor.RepositoryB
	vendorC vendor.RepositoryC
	catalog catalog.Repository
	cache   SnapshotInvalidator
	config  Config
	logger  *zap.Logger

	// mu serializes catalog replacement so concurrent runs cannot
	// interleave their delete and insert phases
	mu sync.Mutex
}

// NewService creates a new integration service. cache may be nil when no
// snapshot cache is configured.
func NewService(
	vendorA vendor.RepositoryA,
	vendorB vendor.RepositoryB,
	vendorC vendor.RepositoryC,
	catalogRepo catalog.Repository,
	cache SnapshotInvalidator,
	config Config,
	logger *zap.Logger,
) *Service {
	if config.FetchTimeout <= 0 {
		config.FetchTimeout = 10 * time.Second
	}
	if config.SampleSize <= 0 {
		config.SampleSize = 5
	}
	return &Service{
		vendorA: vendorA,
		vendorB: vendorB,
		vendorC: vendorC,
		catalog: catalogRepo,
		cache:   cache,
		config:  config,
		logger:  logger,
	}
}

// Integrate fetches all vendor feeds, normalizes them and replaces the
// catalog. Malformed records are reported and skipped; a failed fetch
// aborts the whole run so a partial feed never overwrites the catalog.
func (s *Service) Integrate(ctx context.Context) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.logger.Info("Starting catalog integration")

	products, failures, err := s.collect(ctx)
	if err != nil {
		s.logger.Error("Catalog integration aborted", zap.Error(err))
		return nil, err
	}

	if err := s.catalog.ReplaceAll(ctx, products); err != nil {
		s.logger.Error("Catalog replace failed", zap.Error(err))
		return nil, fmt.Errorf("failed to replace catalog: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			// Stale cache entries expire on their own, the new catalog
			// is already durable at this point
			s.logger.Warn("Failed to invalidate catalog snapshot", zap.Error(err))
		}
	}

	sampleSize := s.config.SampleSize
	if sampleSize > len(products) {
		sampleSize = len(products)
	}

	s.logger.Info("Catalog integration completed",
		zap.Int("total_products", len(products)),
		zap.Int("failed_records", len(failures)),
		zap.Duration("duration", time.Since(start)),
	)

	return &Result{
		TotalProducts: len(products),
		FailedRecords: failures,
		Sample:        toProductViews(products[:sampleSize]),
	}, nil
}

// Preview runs fetch and normalization without touching the catalog
func (s *Service) Preview(ctx context.Context) (*PreviewResult, error) {
	products, failures, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{
		Products:      toProductViews(products),
		FailedRecords: failures,
	}, nil
}

// collect fetches all three feeds concurrently and normalizes them in
// fixed vendor order so the merged catalog is deterministic.
func (s *Service) collect(ctx context.Context) ([]catalog.CanonicalProduct, []normalize.Failure, error) {
	recordsA, recordsB, recordsC, err := s.fetchAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	products := make([]catalog.CanonicalProduct, 0, len(recordsA)+len(recordsB)+len(recordsC))
	failures := make([]normalize.Failure, 0)

	productsA, failuresA := normalize.VendorA(recordsA)
	products = append(products, productsA...)
	failures = append(failures, failuresA...)

	productsB, failuresB := normalize.VendorB(recordsB)
	products = append(products, productsB...)
	failures = append(failures, failuresB...)

	productsC, failuresC := normalize.VendorC(recordsC)
	products = append(products, productsC...)
	failures = append(failures, failuresC...)

	return products, failures, nil
}

func (s *Service) fetchAll(ctx context.Context) ([]vendor.RecordA, []vendor.RecordB, []vendor.RecordC, error) {
	var (
		recordsA []vendor.RecordA
		recordsB []vendor.RecordB
		recordsC []vendor.RecordC
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(gctx, s.config.FetchTimeout)
		defer cancel()

		records, err := s.vendorA.FindAll(fetchCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch vendor A records: %w", err)
		}
		recordsA = records
		return nil
	})

	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(gctx, s.config.FetchTimeout)
		defer cancel()

		records, err := s.vendorB.FindAll(fetchCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch vendor B records: %w", err)
		}
		recordsB = records
		return nil
	})

	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(gctx, s.config.FetchTimeout)
		defer cancel()

		records, err := s.vendorC.FindAll(fetchCtx)
		if err != nil {
			return fmt.Errorf("failed to fetch vendor C records: %w", err)
		}
		recordsC = records
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return recordsA, recordsB, recordsC, nil
}
