package catalogapi

import (
	"github.com/shopspring/decimal"

	"github.com/catalogsync/backend/internal/domain/integration"
)

// itemPayload is the wire representation of a single catalog item
type itemPayload struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// listPayload is the wire representation of the list endpoint response
type listPayload struct {
	Products []itemPayload `json:"products"`
}

// toCatalogItem converts a wire payload into the domain representation
func (p itemPayload) toCatalogItem() integration.CatalogItem {
	return integration.CatalogItem{
		ID:          p.ProductID,
		Name:        p.Name,
		Price:       p.Price,
		ImageURL:    p.Image,
		Description: p.Description,
	}
}
