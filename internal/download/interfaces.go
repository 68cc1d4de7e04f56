package download

import (
	"context"

	"github.com/ytget/font-sync/internal/model"
)

// Syncer defines the interface for the sync service.
type Syncer interface {
	Sync(ctx context.Context, job *model.SyncJob, sink ProgressSink) (*model.SyncResult, error)

	// SetEndpoint sets the download URL template; "{family}" is replaced by the family name
	SetEndpoint(endpoint string)

	// SetFailurePolicy selects what happens after a family fails
	SetFailurePolicy(policy FailurePolicy)
}

// ProgressSink observes a sync run. Methods are called from the worker
// goroutine, never concurrently.
type ProgressSink interface {
	// Status reports a step for the given family
	Status(family, message string)

	// Index reports how many families have been processed
	Index(processed int)

	// Finished is called once with the final result; err is nil unless the run failed
	Finished(result *model.SyncResult, err error)
}
