package dto

import (
	"github.com/shopspring/decimal"

	appcatalog "github.com/catalogsync/backend/internal/application/catalog"
)

// ImportItemRequest is one selected catalog item in an import request.
// Validation here only rejects a structurally broken request; per-row
// business validation (empty id or name, negative price) is the import
// service's job and skips rows instead of failing the call.
type ImportItemRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
}

// ImportRequest represents the request to import selected catalog items
type ImportRequest struct {
	Items []ImportItemRequest `json:"items" binding:"required,min=1,max=1000,dive"`
}

// ToSelectedItems converts the request rows to application inputs
func (r *ImportRequest) ToSelectedItems() []appcatalog.SelectedItem {
	items := make([]appcatalog.SelectedItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, appcatalog.SelectedItem{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			ImageURL:    item.ImageURL,
			Description: item.Description,
		})
	}
	return items
}
