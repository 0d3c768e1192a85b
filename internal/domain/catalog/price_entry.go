package catalog

import (
	"context"

	"github.com/catalogsync/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceEntry represents one price-list row for a product. At any point in
// time exactly one entry per product is active; superseded entries are kept
// deactivated for history.
type PriceEntry struct {
	shared.BaseEntity
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index:idx_price_entry_product"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Active    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PriceEntry) TableName() string {
	return "price_entries"
}

// NewPriceEntry creates a new active price entry for a product
func NewPriceEntry(productID uuid.UUID, price decimal.Decimal) (*PriceEntry, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &PriceEntry{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Price:      price,
		Active:     true,
	}, nil
}

// PriceEntryRepository defines the interface for price entry persistence
type PriceEntryRepository interface {
	// FindActiveByProductID returns the single active entry for a product,
	// or shared.ErrNotFound when the product has no active entry yet
	FindActiveByProductID(ctx context.Context, productID uuid.UUID) (*PriceEntry, error)

	// FindByProductID returns all entries for a product, newest first
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]PriceEntry, error)

	// Save creates or updates a price entry
	Save(ctx context.Context, entry *PriceEntry) error

	// ReplaceActive deactivates the product's current active entry (if any)
	// and persists the given entry as the new active one, atomically
	ReplaceActive(ctx context.Context, entry *PriceEntry) error
}
