package catalog

import (
	"time"

	"github.com/catalogsync/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product represents an item imported from the remote catalog.
// It is the aggregate root for import/reconciliation operations.
// The external ID is the stable business key from the source catalog
// and is immutable once the product has been created.
type Product struct {
	shared.BaseAggregateRoot
	ExternalID  string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_external_id"`
	Name        string          `gorm:"type:varchar(200);not null"`
	ActivePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ImageURL    string          `gorm:"type:text"`
	Description string          `gorm:"type:text"`
	Status      ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product from reconciled catalog data
func NewProduct(externalID, name string, price decimal.Decimal) (*Product, error) {
	if err := validateExternalID(externalID); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ExternalID:        externalID,
		Name:              name,
		ActivePrice:       price,
		Status:            ProductStatusActive,
	}, nil
}

// ApplyCatalogData overwrites the mutable fields from fresh catalog data and
// reports whether anything actually changed. The external ID is never touched.
func (p *Product) ApplyCatalogData(name string, price decimal.Decimal, imageURL, description string) (bool, error) {
	if err := validateProductName(name); err != nil {
		return false, err
	}
	if price.IsNegative() {
		return false, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	changed := p.Name != name ||
		!p.ActivePrice.Equal(price) ||
		p.ImageURL != imageURL ||
		p.Description != description
	if !changed {
		return false, nil
	}

	p.Name = name
	p.ActivePrice = price
	p.ImageURL = imageURL
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return true, nil
}

// SetImage sets the product image URL
func (p *Product) SetImage(imageURL string) {
	p.ImageURL = imageURL
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetDescription sets the product description
func (p *Product) SetDescription(description string) {
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate activates the product
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// Deactivate deactivates the product
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// validateExternalID validates the external catalog identifier
func validateExternalID(externalID string) error {
	if externalID == "" {
		return shared.NewDomainError("INVALID_EXTERNAL_ID", "External ID cannot be empty")
	}
	if len(externalID) > 100 {
		return shared.NewDomainError("INVALID_EXTERNAL_ID", "External ID cannot exceed 100 characters")
	}
	return nil
}

// validateProductName validates the product name
func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
