package backup

// BackupResult summarizes a single backup run
type BackupResult struct {
	// SnapshotCount is the number of snapshot rows written
	SnapshotCount int `json:"snapshot_count"`

	// FailureCount is the number of products whose snapshot failed
	FailureCount int `json:"failure_count"`

	// ChunkFailures lists the chunks that failed to persist
	ChunkFailures []ChunkFailure `json:"chunk_failures,omitempty"`
}

// ChunkFailure records one failed persistence chunk within a backup run
type ChunkFailure struct {
	// ChunkIndex is the zero-based position of the chunk in the run
	ChunkIndex int `json:"chunk_index"`

	// ProductCount is the number of products in the failed chunk
	ProductCount int `json:"product_count"`

	// ErrorMessage describes the storage failure
	ErrorMessage string `json:"error_message"`
}
