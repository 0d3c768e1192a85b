package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/catalogsync/backend/internal/domain/integration"
)

// CatalogListCache caches the remote catalog listing. A nil cache disables
// caching entirely.
type CatalogListCache interface {
	GetItems(ctx context.Context) ([]integration.CatalogItem, bool, error)
	SetItems(ctx context.Context, items []integration.CatalogItem) error
}

// BrowseService exposes the remote catalog to the presentation layer
type BrowseService struct {
	provider integration.CatalogProvider
	cache    CatalogListCache
	logger   *zap.Logger
}

// NewBrowseService creates a new BrowseService. cache may be nil.
func NewBrowseService(
	provider integration.CatalogProvider,
	cache CatalogListCache,
	logger *zap.Logger,
) *BrowseService {
	return &BrowseService{
		provider: provider,
		cache:    cache,
		logger:   logger,
	}
}

// ListItems returns the remote catalog listing, read through the cache when
// one is configured. Cache errors degrade to a remote fetch, never to a
// caller-visible failure.
func (s *BrowseService) ListItems(ctx context.Context) ([]CatalogItemResponse, error) {
	if s.cache != nil {
		cached, hit, err := s.cache.GetItems(ctx)
		if err != nil {
			s.logger.Warn("Catalog cache read failed, falling back to remote", zap.Error(err))
		} else if hit {
			return toCatalogItemResponses(cached), nil
		}
	}

	items, err := s.provider.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetItems(ctx, items); err != nil {
			s.logger.Warn("Catalog cache write failed", zap.Error(err))
		}
	}

	return toCatalogItemResponses(items), nil
}

// GetItem returns one remote catalog item by its identifier. Details are
// never cached.
func (s *BrowseService) GetItem(ctx context.Context, id string) (*CatalogItemResponse, error) {
	item, err := s.provider.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCatalogItemResponse(*item)
	return &resp, nil
}

func toCatalogItemResponses(items []integration.CatalogItem) []CatalogItemResponse {
	responses := make([]CatalogItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToCatalogItemResponse(item))
	}
	return responses
}
