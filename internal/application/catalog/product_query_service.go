package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/catalogsync/backend/internal/domain/catalog"
	"github.com/catalogsync/backend/internal/domain/shared"
)

// ProductQueryService serves read-only views of stored products
type ProductQueryService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductQueryService creates a new ProductQueryService
func NewProductQueryService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductQueryService {
	return &ProductQueryService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts returns a page of stored products
func (s *ProductQueryService) ListProducts(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}

	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

// GetProductByExternalID returns one stored product by its external identifier
func (s *ProductQueryService) GetProductByExternalID(ctx context.Context, externalID string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}
