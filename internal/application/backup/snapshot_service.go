package backup

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/catalogsync/backend/internal/domain/catalog"
)

// SnapshotService copies the current active product set into the backup table
type SnapshotService struct {
	productRepo  catalog.ProductRepository
	snapshotRepo catalog.BackupSnapshotRepository
	logger       *zap.Logger

	// chunkSize bounds the number of snapshot rows written per statement
	chunkSize int
}

// SnapshotServiceConfig contains configuration for SnapshotService
type SnapshotServiceConfig struct {
	ChunkSize int
}

// DefaultSnapshotServiceConfig returns default configuration
func DefaultSnapshotServiceConfig() SnapshotServiceConfig {
	return SnapshotServiceConfig{
		ChunkSize: 200,
	}
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(
	productRepo catalog.ProductRepository,
	snapshotRepo catalog.BackupSnapshotRepository,
	logger *zap.Logger,
	config SnapshotServiceConfig,
) *SnapshotService {
	if config.ChunkSize <= 0 {
		config.ChunkSize = 200
	}

	return &SnapshotService{
		productRepo:  productRepo,
		snapshotRepo: snapshotRepo,
		logger:       logger,
		chunkSize:    config.ChunkSize,
	}
}

// RunBackup snapshots every active product. Products are written in chunks;
// a failed chunk is counted and skipped without aborting the rest of the run.
func (s *SnapshotService) RunBackup(ctx context.Context) (*BackupResult, error) {
	startedAt := time.Now()

	products, err := s.productRepo.FindActive(ctx)
	if err != nil {
		s.logger.Error("Backup run failed to load active products", zap.Error(err))
		return nil, err
	}

	result := &BackupResult{
		ChunkFailures: make([]ChunkFailure, 0),
	}

	capturedAt := time.Now()
	snapshots := make([]*catalog.BackupSnapshot, 0, len(products))
	for i := range products {
		product := &products[i]
		snapshot, err := catalog.NewBackupSnapshot(product.ExternalID, product.Name, product.ActivePrice, capturedAt)
		if err != nil {
			// A persisted product always carries an external ID and name, so
			// this only fires on corrupt rows
			s.logger.Warn("Skipping product with invalid snapshot data",
				zap.String("external_id", product.ExternalID),
				zap.Error(err))
			result.FailureCount++
			continue
		}
		snapshots = append(snapshots, snapshot)
	}

	for chunkIndex, chunk := range chunkSnapshots(snapshots, s.chunkSize) {
		if err := s.snapshotRepo.UpsertBatch(ctx, chunk); err != nil {
			s.logger.Error("Backup chunk failed",
				zap.Int("chunk_index", chunkIndex),
				zap.Int("product_count", len(chunk)),
				zap.Error(err))
			result.FailureCount += len(chunk)
			result.ChunkFailures = append(result.ChunkFailures, ChunkFailure{
				ChunkIndex:   chunkIndex,
				ProductCount: len(chunk),
				ErrorMessage: err.Error(),
			})
			continue
		}
		result.SnapshotCount += len(chunk)
	}

	s.logger.Info("Backup run finished",
		zap.Duration("duration", time.Since(startedAt)),
		zap.Int("active_products", len(products)),
		zap.Int("snapshot_count", result.SnapshotCount),
		zap.Int("failure_count", result.FailureCount),
	)

	return result, nil
}

// chunkSnapshots splits the snapshot slice into chunks of at most size
func chunkSnapshots(snapshots []*catalog.BackupSnapshot, size int) [][]*catalog.BackupSnapshot {
	if len(snapshots) == 0 {
		return nil
	}

	chunks := make([][]*catalog.BackupSnapshot, 0, (len(snapshots)+size-1)/size)
	for start := 0; start < len(snapshots); start += size {
		end := start + size
		if end > len(snapshots) {
			end = len(snapshots)
		}
		chunks = append(chunks, snapshots[start:end])
	}
	return chunks
}
