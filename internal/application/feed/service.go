// Package feed manages the raw vendor records that integration runs
// consume. Each vendor keeps its own schema, records are stored as
// delivered.
package feed

import (
	"context"

	"github.com/cataloghub/backend/internal/domain/vendor"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service provides CRUD over the three vendor feeds
type Service struct {
	vendorA vendor.RepositoryA
	vendorB vendor.RepositoryB
	vendorC vendor.RepositoryC
	logger  *zap.Logger
}

// NewService creates a new feed service
func NewService(
	vendorA vendor.RepositoryA,
	vendorB vendor.RepositoryB,
	vendorC vendor.RepositoryC,
	logger *zap.Logger,
) *Service {
	return &Service{
		vendorA: vendorA,
		vendorB: vendorB,
		vendorC: vendorC,
		logger:  logger,
	}
}

// ListA returns all vendor A records
func (s *Service) ListA(ctx context.Context) ([]vendor.RecordA, error) {
	return s.vendorA.FindAll(ctx)
}

// GetA returns one vendor A record
func (s *Service) GetA(ctx context.Context, id uuid.UUID) (*vendor.RecordA, error) {
	return s.vendorA.FindByID(ctx, id)
}

// CreateA stores a new vendor A record
func (s *Service) CreateA(ctx context.Context, input RecordAInput) (*vendor.RecordA, error) {
	record, err := vendor.NewRecordA(input.ProductCode, input.ProductName, input.Price, input.StockFlag)
	if err != nil {
		return nil, err
	}
	if err := s.vendorA.Save(ctx, record); err != nil {
		return nil, err
	}
	s.logger.Info("Vendor A record created", zap.String("id", record.ID.String()))
	return record, nil
}

// UpdateA overwrites an existing vendor A record
func (s *Service) UpdateA(ctx context.Context, id uuid.UUID, input RecordAInput) (*vendor.RecordA, error) {
	record, err := s.vendorA.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.ProductCode = input.ProductCode
	record.ProductName = input.ProductName
	record.Price = input.Price
	record.StockFlag = input.StockFlag

	if err := s.vendorA.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteA removes a vendor A record
func (s *Service) DeleteA(ctx context.Context, id uuid.UUID) error {
	return s.vendorA.Delete(ctx, id)
}

// ListB returns all vendor B records
func (s *Service) ListB(ctx context.Context) ([]vendor.RecordB, error) {
	return s.vendorB.FindAll(ctx)
}

// GetB returns one vendor B record
func (s *Service) GetB(ctx context.Context, id uuid.UUID) (*vendor.RecordB, error) {
	return s.vendorB.FindByID(ctx, id)
}

// CreateB stores a new vendor B record
func (s *Service) CreateB(ctx context.Context, input RecordBInput) (*vendor.RecordB, error) {
	record, err := vendor.NewRecordB(input.SKU, input.ProductName, input.Price, input.IsAvailable)
	if err != nil {
		return nil, err
	}
	if err := s.vendorB.Save(ctx, record); err != nil {
		return nil, err
	}
	s.logger.Info("Vendor B record created", zap.String("id", record.ID.String()))
	return record, nil
}

// UpdateB overwrites an existing vendor B record
func (s *Service) UpdateB(ctx context.Context, id uuid.UUID, input RecordBInput) (*vendor.RecordB, error) {
	record, err := s.vendorB.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.SKU = input.SKU
	record.ProductName = input.ProductName
	record.Price = input.Price
	record.IsAvailable = input.IsAvailable

	if err := s.vendorB.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteB removes a vendor B record
func (s *Service) DeleteB(ctx context.Context, id uuid.UUID) error {
	return s.vendorB.Delete(ctx, id)
}

// ListC returns all vendor C records
func (s *Service) ListC(ctx context.Context) ([]vendor.RecordC, error) {
	return s.vendorC.FindAll(ctx)
}

// GetC returns one vendor C record
func (s *Service) GetC(ctx context.Context, id uuid.UUID) (*vendor.RecordC, error) {
	return s.vendorC.FindByID(ctx, id)
}

// CreateC stores a new vendor C record
func (s *Service) CreateC(ctx context.Context, input RecordCInput) (*vendor.RecordC, error) {
	record, err := vendor.NewRecordC(input.Details, input.Pricing, input.Stock)
	if err != nil {
		return nil, err
	}
	if err := s.vendorC.Save(ctx, record); err != nil {
		return nil, err
	}
	s.logger.Info("Vendor C record created", zap.String("id", record.ID.String()))
	return record, nil
}

// UpdateC overwrites an existing vendor C record
func (s *Service) UpdateC(ctx context.Context, id uuid.UUID, input RecordCInput) (*vendor.RecordC, error) {
	record, err := s.vendorC.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Details = input.Details
	record.Pricing = input.Pricing
	record.Stock = input.Stock

	if err := s.vendorC.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteC removes a vendor C record
func (s *Service) DeleteC(ctx context.Context, id uuid.UUID) error {
	return s.vendorC.Delete(ctx, id)
}
