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

	"github.com/catalogsync/backend/internal/domain/integration"
)

func TestBrowseServiceListItems(t *testing.T) {
	ctx := context.Background()

	remoteItems := []integration.CatalogItem{
		{ID: "a", Name: "Alpha", Price: decimal.NewFromInt(1)},
		{ID: "b", Name: "Beta", Price: decimal.NewFromInt(2), ImageURL: "https://cdn.example.com/b.png"},
	}

	t.Run("fetches from remote without cache", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		service := NewBrowseService(provider, nil, zap.NewNop())

		provider.On("ListItems", ctx).Return(remoteItems, nil)

		items, err := service.ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, "Beta", items[1].Name)
	})

	t.Run("serves cache hit without remote call", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		cache := new(MockCatalogListCache)
		service := NewBrowseService(provider, cache, zap.NewNop())

		cache.On("GetItems", ctx).Return(remoteItems, true, nil)

		items, err := service.ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		provider.AssertNotCalled(t, "ListItems", mock.Anything)
	})

	t.Run("fills cache on miss", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		cache := new(MockCatalogListCache)
		service := NewBrowseService(provider, cache, zap.NewNop())

		cache.On("GetItems", ctx).Return(nil, false, nil)
		provider.On("ListItems", ctx).Return(remoteItems, nil)
		cache.On("SetItems", ctx, remoteItems).Return(nil)

		items, err := service.ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		cache.AssertExpectations(t)
	})

	t.Run("cache read failure degrades to remote fetch", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		cache := new(MockCatalogListCache)
		service := NewBrowseService(provider, cache, zap.NewNop())

		cache.On("GetItems", ctx).Return(nil, false, errors.New("redis down"))
		provider.On("ListItems", ctx).Return(remoteItems, nil)
		cache.On("SetItems", ctx, remoteItems).Return(nil)

		items, err := service.ListItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("cache write failure does not fail the call", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		cache := new(MockCatalogListCache)
		service := NewBrowseService(provider, cache, zap.NewNop())

		cache.On("GetItems", ctx).Return(nil, false, nil)
		provider.On("ListItems", ctx).Return(remoteItems, nil)
		cache.On("SetItems", ctx, remoteItems).Return(errors.New("redis down"))

		items, err := service.ListItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("propagates remote failure", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		service := NewBrowseService(provider, nil, zap.NewNop())

		provider.On("ListItems", ctx).Return(nil, integration.ErrRemoteUnavailable)

		_, err := service.ListItems(ctx)
		assert.ErrorIs(t, err, integration.ErrRemoteUnavailable)
	})
}

func TestBrowseServiceGetItem(t *testing.T) {
	ctx := context.Background()

	t.Run("returns single item", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		service := NewBrowseService(provider, nil, zap.NewNop())

		provider.On("GetItem", ctx, "a").Return(&integration.CatalogItem{
			ID:    "a",
			Name:  "Alpha",
			Price: decimal.NewFromInt(1),
		}, nil)

		item, err := service.GetItem(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "a", item.ID)
		assert.Equal(t, "Alpha", item.Name)
	})

	t.Run("bypasses cache for details", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		cache := new(MockCatalogListCache)
		service := NewBrowseService(provider, cache, zap.NewNop())

		provider.On("GetItem", ctx, "a").Return(&integration.CatalogItem{ID: "a", Name: "Alpha"}, nil)

		_, err := service.GetItem(ctx, "a")
		require.NoError(t, err)
		cache.AssertNotCalled(t, "GetItems", mock.Anything)
	})

	t.Run("propagates not found", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		service := NewBrowseService(provider, nil, zap.NewNop())

		provider.On("GetItem", ctx, "ghost").Return(nil, integration.ErrItemNotFound)

		_, err := service.GetItem(ctx, "ghost")
		assert.ErrorIs(t, err, integration.ErrItemNotFound)
	})
}
