package integration

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/cataloghub/backend/internal/domain/catalog"
	"github.com/cataloghub/backend/internal/domain/vendor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockVendorARepository is a mock implementation of vendor.RepositoryA
type MockVendorARepository struct {
	mock.Mock
}

func (m *MockVendorARepository) FindAll(ctx context.Context) ([]vendor.RecordA, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vendor.RecordA), args.Error(1)
}

func (m *MockVendorARepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.RecordA, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.RecordA), args.Error(1)
}

func (m *MockVendorARepository) Save(ctx context.Context, record *vendor.RecordA) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVendorARepository) Update(ctx context.Context, record *vendor.RecordA) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVendorARepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVendorBRepository is a mock implementation of vendor.RepositoryB
type MockVendorBRepository struct {
	mock.Mock
}

func (m *MockVendorBRepository) FindAll(ctx context.Context) ([]vendor.RecordB, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vendor.RecordB), args.Error(1)
}

func (m *MockVendorBRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.RecordB, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.RecordB), args.Error(1)
}

func (m *MockVendorBRepository) Save(ctx context.Context, record *vendor.RecordB) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVendorBRepository) Update(ctx context.Context, record *vendor.RecordB) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVendorBRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVendorCRepository is a mock implementation of vendor.RepositoryC
type MockVendorCRepository struct {
	mock.Mock
}

func (m *MockVendorCRepository) FindAll(ctx context.Context) ([]vendor.RecordC, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vendor.RecordC), args.Error(1)
}

func (m *MockVendorCRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.RecordC, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.RecordC), args.Error(1)
}

func (m *MockVendorCRepository) Save(ctx context.Context, record *vendor.RecordC) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVendorCRepository) Update(ctx context.Context, record *vendor.RecordC) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockVendorCRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCatalogRepository is a mock implementation of catalog.Repository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ReplaceAll(ctx context.Context, products []catalog.CanonicalProduct) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindAll(ctx context.Context) ([]catalog.CanonicalProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.CanonicalProduct), args.Error(1)
}

func (m *MockCatalogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSnapshotInvalidator is a mock implementation of SnapshotInvalidator
type MockSnapshotInvalidator struct {
	mock.Mock
}

func (m *MockSnapshotInvalidator) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type serviceMocks struct {
	vendorA *MockVendorARepository
	vendorB *MockVendorBRepository
	vendorC *MockVendorCRepository
	catalog *MockCatalogRepository
	cache   *MockSnapshotInvalidator
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()

	mocks := &serviceMocks{
		vendorA: new(MockVendorARepository),
		vendorB: new(MockVendorBRepository),
		vendorC: new(MockVendorCRepository),
		catalog: new(MockCatalogRepository),
		cache:   new(MockSnapshotInvalidator),
	}

	service := NewService(
		mocks.vendorA,
		mocks.vendorB,
		mocks.vendorC,
		mocks.catalog,
		mocks.cache,
		Config{FetchTimeout: time.Second, SampleSize: 5},
		zap.NewNop(),
	)
	return service, mocks
}

func recordA(t *testing.T, code, name, price, stockFlag string) vendor.RecordA {
	t.Helper()
	r, err := vendor.NewRecordA(code, name, price, stockFlag)
	require.NoError(t, err)
	return *r
}

func recordB(t *testing.T, sku, name string, price int64, available bool) vendor.RecordB {
	t.Helper()
	r, err := vendor.NewRecordB(sku, name, price, available)
	require.NoError(t, err)
	return *r
}

func recordC(t *testing.T, details, pricing string, stock int) vendor.RecordC {
	t.Helper()
	r, err := vendor.NewRecordC(json.RawMessage(details), json.RawMessage(pricing), stock)
	require.NoError(t, err)
	return *r
}

func TestService_Integrate(t *testing.T) {
	t.Run("merges vendors in fixed order and replaces the catalog", func(t *testing.T) {
		service, mocks := newTestService(t)

		mocks.vendorA.On("FindAll", mock.Anything).Return([]vendor.RecordA{
			recordA(t, "A-001", "Kopi Hitam", "10000", "ada"),
		}, nil)
		mocks.vendorB.On("FindAll", mock.Anything).Return([]vendor.RecordB{
			recordB(t, "B-001", "Roti Bakar", 9000, false),
		}, nil)
		mocks.vendorC.On("FindAll", mock.Anything).Return([]vendor.RecordC{
			recordC(t, `{"name":"Soup","category":"food"}`, `{"base_price":1000,"tax":100}`, 3),
		}, nil)

		var replaced []catalog.CanonicalProduct
		mocks.catalog.On("ReplaceAll", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				replaced = args.Get(1).([]catalog.CanonicalProduct)
			}).
			Return(nil)
		mocks.cache.On("Invalidate", mock.Anything).Return(nil)

		result, err := service.Integrate(context.Background())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 3, result.TotalProducts)
		assert.Empty(t, result.FailedRecords)

		require.Len(t, replaced, 3)
		assert.Equal(t, catalog.VendorA, replaced[0].Vendor)
		assert.Equal(t, int64(9000), replaced[0].Price) // 10% discount applied
		assert.Equal(t, catalog.VendorB, replaced[1].Vendor)
		assert.Equal(t, catalog.StockStatusOutOfStock, replaced[1].StockStatus)
		assert.Equal(t, catalog.VendorC, replaced[2].Vendor)
		assert.Equal(t, "Soup (Recommended)", replaced[2].ProductName)
		assert.Equal(t, int64(1100), replaced[2].Price)

		require.Len(t, result.Sample, 3)
		assert.Equal(t, "VendorA", result.Sample[0].Vendor)

		mocks.catalog.AssertExpectations(t)
		mocks.cache.AssertExpectations(t)
	})

	t.Run("reports malformed vendor C records without aborting", func(t *testing.T) {
		service, mocks := newTestService(t)

		mocks.vendorA.On("FindAll", mock.Anything).Return([]vendor.RecordA{}, nil)
		mocks.vendorB.On("FindAll", mock.Anything).Return([]vendor.RecordB{}, nil)
		mocks.vendorC.On("FindAll", mock.Anything).Return([]vendor.RecordC{
			recordC(t, `{not json`, `{"base_price":1000,"tax":0}`, 1),
			recordC(t, `{"name":"Nasi Goreng","category":"food"}`, `{"base_price":15000,"tax":1500}`, 2),
		}, nil)

		mocks.catalog.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)
		mocks.cache.On("Invalidate", mock.Anything).Return(nil)

		result, err := service.Integrate(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalProducts)
		require.Len(t, result.FailedRecords, 1)
		assert.Equal(t, "VendorC", result.FailedRecords[0].Vendor)
	})

	t.Run("aborts when a vendor fetch fails", func(t *testing.T) {
		service, mocks := newTestService(t)

		fetchErr := errors.New("connection refused")

		mocks.vendorA.On("FindAll", mock.Anything).Return([]vendor.RecordA{}, nil).Maybe()
		mocks.vendorB.On("FindAll", mock.Anything).Return(nil, fetchErr)
		mocks.vendorC.On("FindAll", mock.Anything).Return([]vendor.RecordC{}, nil).Maybe()

		result, err := service.Integrate(context.Background())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, fetchErr)
		mocks.catalog.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
	})

	t.Run("propagates replace failure", func(t *testing.T) {
		service, mocks := newTestService(t)

		mocks.vendorA.On("FindAll", mock.Anything).Return([]vendor.RecordA{}, nil)
		mocks.vendorB.On("FindAll", mock.Anything).Return([]vendor.RecordB{}, nil)
		mocks.vendorC.On("FindAll", mock.Anything).Return([]vendor.RecordC{}, nil)

		replaceErr := errors.New("deadlock detected")
		mocks.catalog.On("ReplaceAll", mock.Anything, mock.Anything).Return(replaceErr)

		result, err := service.Integrate(context.Background())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, replaceErr)
		mocks.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("rerunning over unchanged feeds produces the same catalog", func(t *testing.T) {
		service, mocks := newTestService(t)

		mocks.vendorA.On("FindAll", mock.Anything).Return([]vendor.RecordA{
			recordA(t, "A-001", "Kopi Hitam", "10000", "ada"),
		}, nil)
		mocks.vendorB.On("FindAll", mock.Anything).Return([]vendor.RecordB{}, nil)
		mocks.vendorC.On("FindAll", mock.Anything).Return([]vendor.RecordC{}, nil)

		var runs [][]catalog.CanonicalProduct
		mocks.catalog.On("ReplaceAll", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				products := args.Get(1).([]catalog.CanonicalProduct)
				runs = append(runs, products)
			}).
			Return(nil)
		mocks.cache.On("Invalidate", mock.Anything).Return(nil)

		_, err := service.Integrate(context.Background())
		require.NoError(t, err)
		_, err = service.Integrate(context.Background())
		require.NoError(t, err)

		require.Len(t, runs, 2)
		require.Len(t, runs[0], 1)
		require.Len(t, runs[1], 1)
		assert.Equal(t, runs[0][0].ProductCode, runs[1][0].ProductCode)
		assert.Equal(t, runs[0][0].Price, runs[1][0].Price)
		assert.Equal(t, runs[0][0].StockStatus, runs[1][0].StockStatus)
	})

	t.Run("sample is capped at configured size", func(t *testing.T) {
		service, mocks := newTestService(t)

		var records []vendor.RecordB
		for i := 0; i < 10; i++ {
			records = append(records, recordB(t, "B-001", "Roti Bakar", 9000, true))
		}

		mocks.vendorA.On("FindAll", mock.Anything).Return([]vendor.RecordA{}, nil)
		mocks.vendorB.On("FindAll", mock.Anything).Return(records, nil)
		mocks.vendorC.On("FindAll", mock.Anything).Return([]vendor.RecordC{}, nil)
		mocks.catalog.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)
		mocks.cache.On("Invalidate", mock.Anything).Return(nil)

		result, err := service.Integrate(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 10, result.TotalProducts)
		assert.Len(t, result.Sample, 5)
	})

	t.Run("cache invalidation failure does not fail the run", func(t *testing.T) {
		service, mocks := newTestService(t)

		mocks.vendorA.On("FindAll", mock.Anything).Return([]vendor.RecordA{}, nil)
		mocks.vendorB.On("FindAll", mock.Anything).Return([]vendor.RecordB{}, nil)
		mocks.vendorC.On("FindAll", mock.Anything).Return([]vendor.RecordC{}, nil)
		mocks.catalog.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil)
		mocks.cache.On("Invalidate", mock.Anything).Return(errors.New("redis down"))

		result, err := service.Integrate(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, result.TotalProducts)
	})
}

func TestService_Preview(t *testing.T) {
	t.Run("normalizes without writing", func(t *testing.T) {
		service, mocks := newTestService(t)

		mocks.vendorA.On("FindAll", mock.Anything).Return([]vendor.RecordA{
			recordA(t, "A-001", "Kopi Hitam", "Rp 12.000", "habis"),
		}, nil)
		mocks.vendorB.On("FindAll", mock.Anything).Return([]vendor.RecordB{}, nil)
		mocks.vendorC.On("FindAll", mock.Anything).Return([]vendor.RecordC{}, nil)

		result, err := service.Preview(context.Background())

		require.NoError(t, err)
		require.Len(t, result.Products, 1)
		assert.Equal(t, int64(10800), result.Products[0].Price)
		assert.Equal(t, "out_of_stock", result.Products[0].StockStatus)
		mocks.catalog.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
	})
}
