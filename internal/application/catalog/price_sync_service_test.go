package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/catalogsync/backend/internal/domain/catalog"
	"github.com/catalogsync/backend/internal/domain/shared"
)

func TestSyncPrice(t *testing.T) {
	ctx := context.Background()

	newProduct := func(t *testing.T, price decimal.Decimal) *catalog.Product {
		t.Helper()
		product, err := catalog.NewProduct("remote-1", "Alpha", price)
		require.NoError(t, err)
		return product
	}

	t.Run("creates first entry when none is active", func(t *testing.T) {
		priceRepo := new(MockPriceEntryRepository)
		service := NewPriceSyncService(priceRepo, zap.NewNop())
		product := newProduct(t, decimal.NewFromInt(10))

		priceRepo.On("FindActiveByProductID", ctx, product.ID).Return(nil, shared.ErrNotFound)
		priceRepo.On("ReplaceActive", ctx, mock.MatchedBy(func(entry *catalog.PriceEntry) bool {
			return entry.ProductID == product.ID &&
				entry.Price.Equal(decimal.NewFromInt(10)) &&
				entry.Active
		})).Return(nil)

		require.NoError(t, service.SyncPrice(ctx, product))
		priceRepo.AssertExpectations(t)
	})

	t.Run("does nothing when active entry already matches", func(t *testing.T) {
		priceRepo := new(MockPriceEntryRepository)
		service := NewPriceSyncService(priceRepo, zap.NewNop())
		product := newProduct(t, decimal.NewFromInt(10))

		entry, err := catalog.NewPriceEntry(product.ID, decimal.RequireFromString("10.00"))
		require.NoError(t, err)
		priceRepo.On("FindActiveByProductID", ctx, product.ID).Return(entry, nil)

		require.NoError(t, service.SyncPrice(ctx, product))
		priceRepo.AssertNotCalled(t, "ReplaceActive", mock.Anything, mock.Anything)
	})

	t.Run("replaces active entry on price change", func(t *testing.T) {
		priceRepo := new(MockPriceEntryRepository)
		service := NewPriceSyncService(priceRepo, zap.NewNop())
		product := newProduct(t, decimal.NewFromInt(12))

		stale, err := catalog.NewPriceEntry(product.ID, decimal.NewFromInt(10))
		require.NoError(t, err)
		priceRepo.On("FindActiveByProductID", ctx, product.ID).Return(stale, nil)
		priceRepo.On("ReplaceActive", ctx, mock.MatchedBy(func(entry *catalog.PriceEntry) bool {
			return entry.Price.Equal(decimal.NewFromInt(12))
		})).Return(nil)

		require.NoError(t, service.SyncPrice(ctx, product))
		priceRepo.AssertExpectations(t)
	})

	t.Run("propagates lookup failure", func(t *testing.T) {
		priceRepo := new(MockPriceEntryRepository)
		service := NewPriceSyncService(priceRepo, zap.NewNop())
		product := newProduct(t, decimal.NewFromInt(10))

		lookupErr := errors.New("db down")
		priceRepo.On("FindActiveByProductID", ctx, product.ID).Return(nil, lookupErr)

		assert.ErrorIs(t, service.SyncPrice(ctx, product), lookupErr)
	})

	t.Run("propagates replace failure", func(t *testing.T) {
		priceRepo := new(MockPriceEntryRepository)
		service := NewPriceSyncService(priceRepo, zap.NewNop())
		product := newProduct(t, decimal.NewFromInt(10))

		writeErr := errors.New("write failed")
		priceRepo.On("FindActiveByProductID", ctx, product.ID).Return(nil, shared.ErrNotFound)
		priceRepo.On("ReplaceActive", ctx, mock.Anything).Return(writeErr)

		assert.ErrorIs(t, service.SyncPrice(ctx, product), writeErr)
	})
}
