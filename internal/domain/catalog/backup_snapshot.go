package catalog

import (
	"context"
	"time"

	"github.com/catalogsync/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BackupSnapshot is a point-in-time copy of a product's name and price,
// kept for backup/audit purposes. There is exactly one row per product:
// each backup run overwrites the existing row keyed by the product's
// external ID instead of appending.
type BackupSnapshot struct {
	shared.BaseEntity
	ProductExternalID string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_backup_snapshot_external_id"`
	NameSnapshot      string          `gorm:"type:varchar(200);not null"`
	PriceSnapshot     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CapturedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BackupSnapshot) TableName() string {
	return "backup_snapshots"
}

// NewBackupSnapshot captures the given product state as of capturedAt. All
// snapshots of one backup run share the same capture time.
func NewBackupSnapshot(externalID, name string, price decimal.Decimal, capturedAt time.Time) (*BackupSnapshot, error) {
	if externalID == "" {
		return nil, shared.NewDomainError("INVALID_EXTERNAL_ID", "External ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}

	return &BackupSnapshot{
		BaseEntity:        shared.NewBaseEntity(),
		ProductExternalID: externalID,
		NameSnapshot:      name,
		PriceSnapshot:     price,
		CapturedAt:        capturedAt,
	}, nil
}

// BackupSnapshotRepository defines the interface for snapshot persistence
type BackupSnapshotRepository interface {
	// FindByExternalID finds the snapshot for a product external ID
	FindByExternalID(ctx context.Context, externalID string) (*BackupSnapshot, error)

	// UpsertBatch creates-or-overwrites the given snapshots keyed by the
	// product external ID; the batch is applied atomically
	UpsertBatch(ctx context.Context, snapshots []*BackupSnapshot) error

	// Count counts stored snapshots
	Count(ctx context.Context) (int64, error)
}
