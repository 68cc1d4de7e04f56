package model

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// JobIDPrefix prefixes every generated job ID
const JobIDPrefix = "sync-"

// SyncJob is the state of one sync run. Families and TargetDir are fixed at
// creation; the index is advanced by the worker and the cancel flag is set by
// the caller, both safe for use from different goroutines.
type SyncJob struct {
	ID        string
	Families  []FontFamily
	TargetDir string
	CreatedAt time.Time

	current   atomic.Int64
	cancelled atomic.Bool
}

// NewSyncJob creates a job over a private copy of families
func NewSyncJob(families []FontFamily, targetDir string) *SyncJob {
	own := make([]FontFamily, len(families))
	for i, f := range families {
		own[i] = f.Clone()
	}
	return &SyncJob{
		ID:        JobIDPrefix + uuid.NewString(),
		Families:  own,
		TargetDir: targetDir,
		CreatedAt: time.Now(),
	}
}

// Cancel requests the worker to stop before the next family
func (j *SyncJob) Cancel() {
	j.cancelled.Store(true)
}

// IsCancelled reports whether Cancel was called
func (j *SyncJob) IsCancelled() bool {
	return j.cancelled.Load()
}

// Current returns the index of the family being processed
func (j *SyncJob) Current() int {
	return int(j.current.Load())
}

// SetCurrent records the index of the family being processed
func (j *SyncJob) SetCurrent(i int) {
	j.current.Store(int64(i))
}

// Total returns the number of families in the job
func (j *SyncJob) Total() int {
	return len(j.Families)
}

// FamilyFailure records a family that could not be installed
type FamilyFailure struct {
	Family string
	Error  string
}

// SyncResult summarizes a finished sync run
type SyncResult struct {
	JobID      string
	Status     SyncStatus
	Total      int
	Processed  int      // families attempted, successful or not
	Installed  []string // family names installed, in order
	Failures   []FamilyFailure
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSyncResult creates a running result for job
func NewSyncResult(job *SyncJob) *SyncResult {
	return &SyncResult{
		JobID:     job.ID,
		Status:    SyncStatusRunning,
		Total:     job.Total(),
		StartedAt: time.Now(),
	}
}

// Finish stamps the final status
func (r *SyncResult) Finish(status SyncStatus) {
	r.Status = status
	r.FinishedAt = time.Now()
}

// IsInstalled reports whether the named family was installed in this run
func (r *SyncResult) IsInstalled(family string) bool {
	return slices.Contains(r.Installed, family)
}

// Duration returns how long the run took
func (r *SyncResult) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
