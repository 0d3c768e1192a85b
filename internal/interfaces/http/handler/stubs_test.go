package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/catalogsync/backend/internal/domain/catalog"
	"github.com/catalogsync/backend/internal/domain/integration"
	"github.com/catalogsync/backend/internal/domain/shared"
)

// stubCatalogProvider is a function-backed integration.CatalogProvider
type stubCatalogProvider struct {
	listFn func(ctx context.Context) ([]integration.CatalogItem, error)
	getFn  func(ctx context.Context, id string) (*integration.CatalogItem, error)
}

func (s *stubCatalogProvider) ListItems(ctx context.Context) ([]integration.CatalogItem, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogProvider) GetItem(ctx context.Context, id string) (*integration.CatalogItem, error) {
	return s.getFn(ctx, id)
}

// stubProductRepo is a function-backed catalog.ProductRepository. Methods
// without a configured function return empty results.
type stubProductRepo struct {
	findByExternalIDFn  func(ctx context.Context, externalID string) (*catalog.Product, error)
	findByExternalIDsFn func(ctx context.Context, externalIDs []string) ([]catalog.Product, error)
	findAllFn           func(ctx context.Context, filter shared.Filter) ([]catalog.Product, error)
	findActiveFn        func(ctx context.Context) ([]catalog.Product, error)
	saveBatchFn         func(ctx context.Context, products []*catalog.Product) error
	countFn             func(ctx context.Context, filter shared.Filter) (int64, error)
}

func (s *stubProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return nil, shared.ErrNotFound
}

func (s *stubProductRepo) FindByExternalID(ctx context.Context, externalID string) (*catalog.Product, error) {
	if s.findByExternalIDFn == nil {
		return nil, shared.ErrNotFound
	}
	return s.findByExternalIDFn(ctx, externalID)
}

func (s *stubProductRepo) FindByExternalIDs(ctx context.Context, externalIDs []string) ([]catalog.Product, error) {
	if s.findByExternalIDsFn == nil {
		return nil, nil
	}
	return s.findByExternalIDsFn(ctx, externalIDs)
}

func (s *stubProductRepo) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	if s.findAllFn == nil {
		return nil, nil
	}
	return s.findAllFn(ctx, filter)
}

func (s *stubProductRepo) FindActive(ctx context.Context) ([]catalog.Product, error) {
	if s.findActiveFn == nil {
		return nil, nil
	}
	return s.findActiveFn(ctx)
}

func (s *stubProductRepo) Save(ctx context.Context, product *catalog.Product) error {
	return nil
}

func (s *stubProductRepo) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	if s.saveBatchFn == nil {
		return nil
	}
	return s.saveBatchFn(ctx, products)
}

func (s *stubProductRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	if s.countFn == nil {
		return 0, nil
	}
	return s.countFn(ctx, filter)
}

func (s *stubProductRepo) ExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	return false, nil
}

// stubPriceRepo is a function-backed catalog.PriceEntryRepository
type stubPriceRepo struct {
	replaceActiveFn func(ctx context.Context, entry *catalog.PriceEntry) error
}

func (s *stubPriceRepo) FindActiveByProductID(ctx context.Context, productID uuid.UUID) (*catalog.PriceEntry, error) {
	return nil, shared.ErrNotFound
}

func (s *stubPriceRepo) FindByProductID(ctx context.Context, productID uuid.UUID) ([]catalog.PriceEntry, error) {
	return nil, nil
}

func (s *stubPriceRepo) Save(ctx context.Context, entry *catalog.PriceEntry) error {
	return nil
}

func (s *stubPriceRepo) ReplaceActive(ctx context.Context, entry *catalog.PriceEntry) error {
	if s.replaceActiveFn == nil {
		return nil
	}
	return s.replaceActiveFn(ctx, entry)
}

// stubSnapshotRepo is a function-backed catalog.BackupSnapshotRepository
type stubSnapshotRepo struct {
	upsertBatchFn func(ctx context.Context, snapshots []*catalog.BackupSnapshot) error
}

func (s *stubSnapshotRepo) FindByExternalID(ctx context.Context, externalID string) (*catalog.BackupSnapshot, error) {
	return nil, shared.ErrNotFound
}

func (s *stubSnapshotRepo) UpsertBatch(ctx context.Context, snapshots []*catalog.BackupSnapshot) error {
	if s.upsertBatchFn == nil {
		return nil
	}
	return s.upsertBatchFn(ctx, snapshots)
}

func (s *stubSnapshotRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}
