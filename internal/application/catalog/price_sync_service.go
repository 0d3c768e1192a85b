package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/catalogsync/backend/internal/domain/catalog"
	"github.com/catalogsync/backend/internal/domain/shared"
)

// PriceSyncService keeps each product's active price entry in line with its
// current price
type PriceSyncService struct {
	priceRepo catalog.PriceEntryRepository
	logger    *zap.Logger
}

// NewPriceSyncService creates a new PriceSyncService
func NewPriceSyncService(priceRepo catalog.PriceEntryRepository, logger *zap.Logger) *PriceSyncService {
	return &PriceSyncService{
		priceRepo: priceRepo,
		logger:    logger,
	}
}

// SyncPrice makes the product's active price entry match its active price.
// Idempotent: when the entry already carries the same price nothing is written.
func (s *PriceSyncService) SyncPrice(ctx context.Context, product *catalog.Product) error {
	current, err := s.priceRepo.FindActiveByProductID(ctx, product.ID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	if current != nil && current.Price.Equal(product.ActivePrice) {
		return nil
	}

	entry, err := catalog.NewPriceEntry(product.ID, product.ActivePrice)
	if err != nil {
		return err
	}

	if err := s.priceRepo.ReplaceActive(ctx, entry); err != nil {
		return err
	}

	s.logger.Debug("Price entry replaced",
		zap.String("product_id", product.ID.String()),
		zap.String("external_id", product.ExternalID),
		zap.String("price", product.ActivePrice.String()),
	)
	return nil
}
