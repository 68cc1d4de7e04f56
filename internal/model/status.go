package model

// SyncStatus represents the state of a sync run
type SyncStatus string

const (
	// SyncStatusPending means the job is created but the worker has not started
	SyncStatusPending SyncStatus = "Pending"

	// SyncStatusRunning means families are being processed
	SyncStatusRunning SyncStatus = "Running"

	// SyncStatusCancelling means cancellation was requested and the worker
	// will stop before the next family
	SyncStatusCancelling SyncStatus = "Cancelling"

	// SyncStatusCancelled means the run stopped early on user request
	SyncStatusCancelled SyncStatus = "Cancelled"

	// SyncStatusCompleted means every family was processed
	SyncStatusCompleted SyncStatus = "Completed"

	// SyncStatusFailed means the run ended with at least one failed family
	SyncStatusFailed SyncStatus = "Failed"
)

// String returns the string representation of SyncStatus
func (s SyncStatus) String() string {
	return string(s)
}

// IsActive returns true if the run is still in progress
func (s SyncStatus) IsActive() bool {
	return s == SyncStatusRunning || s == SyncStatusCancelling
}

// IsFinished returns true if the run is over (completed, cancelled, or failed)
func (s SyncStatus) IsFinished() bool {
	return s == SyncStatusCompleted || s == SyncStatusCancelled || s == SyncStatusFailed
}
