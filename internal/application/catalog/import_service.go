package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/catalogsync/backend/internal/domain/catalog"
	"github.com/catalogsync/backend/internal/domain/shared"
)

// ImportService reconciles user-selected catalog items against stored products
type ImportService struct {
	productRepo catalog.ProductRepository
	priceSync   *PriceSyncService
	logger      *zap.Logger
}

// NewImportService creates a new ImportService
func NewImportService(
	productRepo catalog.ProductRepository,
	priceSync *PriceSyncService,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		productRepo: productRepo,
		priceSync:   priceSync,
		logger:      logger,
	}
}

// ImportSelection upserts the selected items into the product table keyed by
// external ID and returns create/update counts.
//
// Rows with an empty id, empty name or negative price are skipped without
// aborting the batch. Duplicate ids within one call collapse to the last
// occurrence. All writes of one call go through a single transaction: on a
// storage failure nothing is applied and the call reports
// shared.ErrStorageWriteFailed.
func (s *ImportService) ImportSelection(ctx context.Context, items []SelectedItem) (*ImportResult, error) {
	valid := s.sanitize(items)
	if len(valid) == 0 {
		return &ImportResult{}, nil
	}

	externalIDs := make([]string, 0, len(valid))
	for _, item := range valid {
		externalIDs = append(externalIDs, item.ID)
	}

	existing, err := s.productRepo.FindByExternalIDs(ctx, externalIDs)
	if err != nil {
		return nil, err
	}

	existingByExternalID := make(map[string]*catalog.Product, len(existing))
	for i := range existing {
		existingByExternalID[existing[i].ExternalID] = &existing[i]
	}

	result := &ImportResult{}
	touched := make([]*catalog.Product, 0, len(valid))
	toSave := make([]*catalog.Product, 0, len(valid))

	for _, item := range valid {
		if product, ok := existingByExternalID[item.ID]; ok {
			changed, err := product.ApplyCatalogData(item.Name, item.Price, item.ImageURL, item.Description)
			if err != nil {
				s.logger.Debug("Skipping item rejected by product rules",
					zap.String("external_id", item.ID),
					zap.Error(err))
				continue
			}
			touched = append(touched, product)
			if changed {
				result.UpdatedCount++
				toSave = append(toSave, product)
			}
			continue
		}

		product, err := catalog.NewProduct(item.ID, item.Name, item.Price)
		if err != nil {
			s.logger.Debug("Skipping item rejected by product rules",
				zap.String("external_id", item.ID),
				zap.Error(err))
			continue
		}
		if item.ImageURL != "" {
			product.SetImage(item.ImageURL)
		}
		if item.Description != "" {
			product.SetDescription(item.Description)
		}
		result.CreatedCount++
		touched = append(touched, product)
		toSave = append(toSave, product)
	}

	if len(toSave) > 0 {
		if err := s.productRepo.SaveBatch(ctx, toSave); err != nil {
			s.logger.Error("Import batch write failed",
				zap.Int("row_count", len(toSave)),
				zap.Error(err))
			return nil, fmt.Errorf("%w: %v", shared.ErrStorageWriteFailed, err)
		}
	}

	for _, product := range touched {
		if err := s.priceSync.SyncPrice(ctx, product); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Import selection reconciled",
		zap.Int("input_count", len(items)),
		zap.Int("valid_count", len(valid)),
		zap.Int("created_count", result.CreatedCount),
		zap.Int("updated_count", result.UpdatedCount),
	)

	return result, nil
}

// sanitize drops invalid rows and collapses duplicate ids, keeping the last
// occurrence of each id in input order
func (s *ImportService) sanitize(items []SelectedItem) []SelectedItem {
	byID := make(map[string]int, len(items))
	order := make([]string, 0, len(items))

	for i, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		item.Name = strings.TrimSpace(item.Name)

		if item.ID == "" || item.Name == "" || item.Price.IsNegative() {
			s.logger.Debug("Skipping invalid catalog item",
				zap.String("external_id", item.ID),
				zap.String("name", item.Name),
				zap.String("price", item.Price.String()),
			)
			continue
		}

		items[i] = item
		if _, seen := byID[item.ID]; !seen {
			order = append(order, item.ID)
		}
		byID[item.ID] = i
	}

	valid := make([]SelectedItem, 0, len(order))
	for _, id := range order {
		valid = append(valid, items[byID[id]])
	}
	return valid
}
