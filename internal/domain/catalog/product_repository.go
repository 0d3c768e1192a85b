package catalog

import (
	"context"

	"github.com/catalogsync/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence.
// Products are never deleted by this system, so the interface has no
// delete operation on purpose.
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByExternalID finds a product by its external catalog identifier
	FindByExternalID(ctx context.Context, externalID string) (*Product, error)

	// FindByExternalIDs finds multiple products by their external identifiers
	FindByExternalIDs(ctx context.Context, externalIDs []string) ([]Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindActive finds all active products, ordered by external ID
	FindActive(ctx context.Context) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// SaveBatch creates or updates multiple products as one atomic batch:
	// either every product in the batch is written or none is
	SaveBatch(ctx context.Context, products []*Product) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByExternalID checks if a product with the given external ID exists
	ExistsByExternalID(ctx context.Context, externalID string) (bool, error)
}
