package persistence

import (
	"context"
	"errors"

	"github.com/catalogsync/backend/internal/domain/catalog"
	"github.com/catalogsync/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPriceEntryRepository implements PriceEntryRepository using GORM
type GormPriceEntryRepository struct {
	db *gorm.DB
}

// NewGormPriceEntryRepository creates a new GormPriceEntryRepository
func NewGormPriceEntryRepository(db *gorm.DB) *GormPriceEntryRepository {
	return &GormPriceEntryRepository{db: db}
}

// FindActiveByProductID returns the single active price entry for a product
func (r *GormPriceEntryRepository) FindActiveByProductID(ctx context.Context, productID uuid.UUID) (*catalog.PriceEntry, error) {
	var entry catalog.PriceEntry
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND active = ?", productID, true).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByProductID returns all price entries for a product, newest first
func (r *GormPriceEntryRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]catalog.PriceEntry, error) {
	var entries []catalog.PriceEntry
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates a price entry
func (r *GormPriceEntryRepository) Save(ctx context.Context, entry *catalog.PriceEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// ReplaceActive deactivates any active entries for the product and inserts the
// new entry in the same transaction, preserving the at-most-one-active rule
func (r *GormPriceEntryRepository) ReplaceActive(ctx context.Context, entry *catalog.PriceEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&catalog.PriceEntry{}).
			Where("product_id = ? AND active = ?", entry.ProductID, true).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}

// Ensure GormPriceEntryRepository implements PriceEntryRepository
var _ catalog.PriceEntryRepository = (*GormPriceEntryRepository)(nil)
