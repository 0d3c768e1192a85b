package backup

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/catalogsync/backend/internal/domain/catalog"
	"github.com/catalogsync/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByExternalID(ctx context.Context, externalID string) (*catalog.Product, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByExternalIDs(ctx context.Context, externalIDs []string) ([]catalog.Product, error) {
	args := m.Called(ctx, externalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	args := m.Called(ctx, externalID)
	return args.Bool(0), args.Error(1)
}

// MockBackupSnapshotRepository is a mock implementation of catalog.BackupSnapshotRepository
type MockBackupSnapshotRepository struct {
	mock.Mock
}

func (m *MockBackupSnapshotRepository) FindByExternalID(ctx context.Context, externalID string) (*catalog.BackupSnapshot, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.BackupSnapshot), args.Error(1)
}

func (m *MockBackupSnapshotRepository) UpsertBatch(ctx context.Context, snapshots []*catalog.BackupSnapshot) error {
	args := m.Called(ctx, snapshots)
	return args.Error(0)
}

func (m *MockBackupSnapshotRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func activeProducts(t *testing.T, count int) []catalog.Product {
	t.Helper()
	products := make([]catalog.Product, 0, count)
	for i := 0; i < count; i++ {
		product, err := catalog.NewProduct(
			fmt.Sprintf("remote-%03d", i),
			fmt.Sprintf("Product %d", i),
			decimal.NewFromInt(int64(i)),
		)
		require.NoError(t, err)
		products = append(products, *product)
	}
	return products
}

func TestRunBackup(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots every active product", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		snapshotRepo := new(MockBackupSnapshotRepository)
		service := NewSnapshotService(productRepo, snapshotRepo, zap.NewNop(), DefaultSnapshotServiceConfig())

		productRepo.On("FindActive", ctx).Return(activeProducts(t, 3), nil)
		snapshotRepo.On("UpsertBatch", ctx, mock.MatchedBy(func(snapshots []*catalog.BackupSnapshot) bool {
			return len(snapshots) == 3 && snapshots[0].ProductExternalID == "remote-000"
		})).Return(nil)

		result, err := service.RunBackup(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, result.SnapshotCount)
		assert.Equal(t, 0, result.FailureCount)
		assert.Empty(t, result.ChunkFailures)
		snapshotRepo.AssertNumberOfCalls(t, "UpsertBatch", 1)
	})

	t.Run("splits large product sets into chunks", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		snapshotRepo := new(MockBackupSnapshotRepository)
		service := NewSnapshotService(productRepo, snapshotRepo, zap.NewNop(), SnapshotServiceConfig{ChunkSize: 2})

		productRepo.On("FindActive", ctx).Return(activeProducts(t, 5), nil)
		snapshotRepo.On("UpsertBatch", ctx, mock.Anything).Return(nil)

		result, err := service.RunBackup(ctx)
		require.NoError(t, err)

		assert.Equal(t, 5, result.SnapshotCount)
		snapshotRepo.AssertNumberOfCalls(t, "UpsertBatch", 3)
	})

	t.Run("all snapshots of one run share a capture time", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		snapshotRepo := new(MockBackupSnapshotRepository)
		service := NewSnapshotService(productRepo, snapshotRepo, zap.NewNop(), DefaultSnapshotServiceConfig())

		productRepo.On("FindActive", ctx).Return(activeProducts(t, 4), nil)
		snapshotRepo.On("UpsertBatch", ctx, mock.MatchedBy(func(snapshots []*catalog.BackupSnapshot) bool {
			for _, snapshot := range snapshots {
				if !snapshot.CapturedAt.Equal(snapshots[0].CapturedAt) {
					return false
				}
			}
			return true
		})).Return(nil)

		_, err := service.RunBackup(ctx)
		require.NoError(t, err)
		snapshotRepo.AssertExpectations(t)
	})

	t.Run("failed chunk is counted without aborting the run", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		snapshotRepo := new(MockBackupSnapshotRepository)
		service := NewSnapshotService(productRepo, snapshotRepo, zap.NewNop(), SnapshotServiceConfig{ChunkSize: 2})

		productRepo.On("FindActive", ctx).Return(activeProducts(t, 4), nil)
		snapshotRepo.On("UpsertBatch", ctx, mock.MatchedBy(func(snapshots []*catalog.BackupSnapshot) bool {
			return snapshots[0].ProductExternalID == "remote-000"
		})).Return(errors.New("deadlock")).Once()
		snapshotRepo.On("UpsertBatch", ctx, mock.Anything).Return(nil)

		result, err := service.RunBackup(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, result.SnapshotCount)
		assert.Equal(t, 2, result.FailureCount)
		require.Len(t, result.ChunkFailures, 1)
		assert.Equal(t, 0, result.ChunkFailures[0].ChunkIndex)
		assert.Equal(t, 2, result.ChunkFailures[0].ProductCount)
		assert.Contains(t, result.ChunkFailures[0].ErrorMessage, "deadlock")
	})

	t.Run("skips corrupt rows", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		snapshotRepo := new(MockBackupSnapshotRepository)
		service := NewSnapshotService(productRepo, snapshotRepo, zap.NewNop(), DefaultSnapshotServiceConfig())

		products := activeProducts(t, 2)
		products[1].ExternalID = ""
		productRepo.On("FindActive", ctx).Return(products, nil)
		snapshotRepo.On("UpsertBatch", ctx, mock.MatchedBy(func(snapshots []*catalog.BackupSnapshot) bool {
			return len(snapshots) == 1
		})).Return(nil)

		result, err := service.RunBackup(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, result.SnapshotCount)
		assert.Equal(t, 1, result.FailureCount)
	})

	t.Run("empty product set writes nothing", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		snapshotRepo := new(MockBackupSnapshotRepository)
		service := NewSnapshotService(productRepo, snapshotRepo, zap.NewNop(), DefaultSnapshotServiceConfig())

		productRepo.On("FindActive", ctx).Return([]catalog.Product{}, nil)

		result, err := service.RunBackup(ctx)
		require.NoError(t, err)

		assert.Equal(t, 0, result.SnapshotCount)
		snapshotRepo.AssertNotCalled(t, "UpsertBatch", mock.Anything, mock.Anything)
	})

	t.Run("fails when active products cannot be loaded", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		snapshotRepo := new(MockBackupSnapshotRepository)
		service := NewSnapshotService(productRepo, snapshotRepo, zap.NewNop(), DefaultSnapshotServiceConfig())

		loadErr := errors.New("db down")
		productRepo.On("FindActive", ctx).Return(nil, loadErr)

		_, err := service.RunBackup(ctx)
		assert.ErrorIs(t, err, loadErr)
	})
}
