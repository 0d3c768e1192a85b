package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	appbackup "github.com/catalogsync/backend/internal/application/backup"
)

// BackupTrigger runs a single backup outside the regular schedule
type BackupTrigger interface {
	TriggerImmediateBackup(ctx context.Context) (*appbackup.BackupResult, error)
}

// BackupHandler exposes manual backup runs
type BackupHandler struct {
	BaseHandler
	trigger BackupTrigger
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(trigger BackupTrigger) *BackupHandler {
	return &BackupHandler{
		trigger: trigger,
	}
}

// Run executes a backup run immediately and returns its result. The run goes
// through the scheduler so it gets the same run timeout as scheduled backups.
func (h *BackupHandler) Run(c *gin.Context) {
	result, err := h.trigger.TriggerImmediateBackup(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RegisterRoutes registers backup routes
func (h *BackupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	backup := rg.Group("/backup")
	{
		backup.POST("/run", h.Run)
	}
}
