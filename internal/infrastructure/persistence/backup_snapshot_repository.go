package persistence

import (
	"context"
	"errors"

	"github.com/catalogsync/backend/internal/domain/catalog"
	"github.com/catalogsync/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackupSnapshotRepository implements BackupSnapshotRepository using GORM
type GormBackupSnapshotRepository struct {
	db *gorm.DB
}

// NewGormBackupSnapshotRepository creates a new GormBackupSnapshotRepository
func NewGormBackupSnapshotRepository(db *gorm.DB) *GormBackupSnapshotRepository {
	return &GormBackupSnapshotRepository{db: db}
}

// FindByExternalID finds a snapshot by the product's external identifier
func (r *GormBackupSnapshotRepository) FindByExternalID(ctx context.Context, externalID string) (*catalog.BackupSnapshot, error) {
	var snapshot catalog.BackupSnapshot
	if err := r.db.WithContext(ctx).
		Where("product_external_id = ?", externalID).
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// UpsertBatch writes the snapshots in one transaction. Rows keyed by an
// external ID that already has a snapshot are overwritten in place, so the
// table never grows beyond one row per product.
func (r *GormBackupSnapshotRepository) UpsertBatch(ctx context.Context, snapshots []*catalog.BackupSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name_snapshot",
				"price_snapshot",
				"captured_at",
				"updated_at",
			}),
		}).
		Create(&snapshots).Error
}

// Count counts all snapshots
func (r *GormBackupSnapshotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.BackupSnapshot{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormBackupSnapshotRepository implements BackupSnapshotRepository
var _ catalog.BackupSnapshotRepository = (*GormBackupSnapshotRepository)(nil)
