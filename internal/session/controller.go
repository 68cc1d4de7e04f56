package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/font-sync/internal/download"
	"github.com/ytget/font-sync/internal/filter"
	"github.com/ytget/font-sync/internal/logging"
	"github.com/ytget/font-sync/internal/model"
)

var (
	// ErrSyncInProgress is returned by Start while another job is running
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrNothingToSync is returned by Start when no family matches the criteria
	ErrNothingToSync = errors.New("no fonts match the current filters")
)

// MsgChecked is reported after every filter evaluation
const MsgChecked = "Checked all fonts (%d fitting found)"

// CheckedMessage formats MsgChecked for count matches
func CheckedMessage(count int) string {
	return fmt.Sprintf(MsgChecked, count)
}

// Controller owns the catalog, criteria, filtered list and in-flight job
type Controller struct {
	syncer download.Syncer
	logger *zap.Logger

	mu       sync.RWMutex
	catalog  []model.FontFamily
	criteria model.Criteria
	filtered []model.FontFamily
	job      *model.SyncJob
	done     chan struct{}
	last     *model.SyncResult
	onFilter func(count int, message string)
}

// NewController creates a controller over catalog with no active criteria
func NewController(syncer download.Syncer, catalog []model.FontFamily, logger *zap.Logger) *Controller {
	return &Controller{
		syncer:   syncer,
		logger:   logging.OrNop(logger),
		catalog:  catalog,
		filtered: filter.Evaluate(catalog, model.Criteria{}),
	}
}

// SetFilterCallback sets the function notified after each filter evaluation
func (c *Controller) SetFilterCallback(callback func(count int, message string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onFilter = callback
}

// SetCatalog replaces the catalog and re-applies the current criteria
func (c *Controller) SetCatalog(catalog []model.FontFamily) {
	c.mu.Lock()
	c.catalog = catalog
	c.filtered = filter.Evaluate(catalog, c.criteria)
	count, callback := len(c.filtered), c.onFilter
	c.mu.Unlock()

	c.logger.Info("Catalog loaded", zap.Int("families", len(catalog)), zap.Int("matching", count))
	notify(callback, count)
}

// SetCriteria validates and applies new criteria. Invalid criteria leave the
// previous selection untouched.
func (c *Controller) SetCriteria(criteria model.Criteria) error {
	if err := filter.Validate(criteria); err != nil {
		return err
	}

	c.mu.Lock()
	c.criteria = criteria
	c.filtered = filter.Evaluate(c.catalog, criteria)
	count, callback := len(c.filtered), c.onFilter
	c.mu.Unlock()

	c.logger.Debug("Criteria applied", zap.Int("matching", count))
	notify(callback, count)
	return nil
}

func notify(callback func(int, string), count int) {
	if callback != nil {
		callback(count, CheckedMessage(count))
	}
}

// Criteria returns the active criteria
func (c *Controller) Criteria() model.Criteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.criteria
}

// Filtered returns a copy of the families selected by the active criteria
func (c *Controller) Filtered() []model.FontFamily {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.FontFamily(nil), c.filtered...)
}

// Start launches a sync of the filtered families into targetDir on a new
// goroutine. sink.Finished is called once the controller is ready to start
// again.
func (c *Controller) Start(ctx context.Context, targetDir string, sink download.ProgressSink) (*model.SyncJob, error) {
	if sink == nil {
		sink = download.NopSink{}
	}

	c.mu.Lock()
	if c.job != nil {
		c.mu.Unlock()
		return nil, ErrSyncInProgress
	}
	if len(c.filtered) == 0 {
		c.mu.Unlock()
		return nil, ErrNothingToSync
	}

	job := model.NewSyncJob(c.filtered, targetDir)
	done := make(chan struct{})
	c.job = job
	c.done = done
	c.mu.Unlock()

	c.logger.Info("Starting sync", zap.String("job", job.ID), zap.Int("families", job.Total()))

	go func() {
		c.syncer.Sync(ctx, job, &finishingSink{ProgressSink: sink, c: c, job: job, done: done})
	}()

	return job, nil
}

// Cancel asks the running job to stop before its next family. It reports
// whether a job was running.
func (c *Controller) Cancel() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.job == nil {
		return false
	}
	c.job.Cancel()
	c.logger.Info("Cancel requested", zap.String("job", c.job.ID))
	return true
}

// Running reports whether a job is in flight
func (c *Controller) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.job != nil
}

// Status returns the state of the current or last job
func (c *Controller) Status() model.SyncStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.job != nil && c.job.IsCancelled():
		return model.SyncStatusCancelling
	case c.job != nil:
		return model.SyncStatusRunning
	case c.last != nil:
		return c.last.Status
	default:
		return model.SyncStatusPending
	}
}

// LastResult returns the result of the most recent finished job, if any
func (c *Controller) LastResult() *model.SyncResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// Wait blocks until the running job, if any, has finished
func (c *Controller) Wait() {
	c.mu.RLock()
	done := c.done
	c.mu.RUnlock()
	if done != nil {
		<-done
	}
}

// finishingSink releases the controller before forwarding Finished
type finishingSink struct {
	download.ProgressSink
	c    *Controller
	job  *model.SyncJob
	done chan struct{}
}

func (s *finishingSink) Finished(result *model.SyncResult, err error) {
	s.c.mu.Lock()
	if s.c.job == s.job {
		s.c.job = nil
	}
	s.c.last = result
	s.c.mu.Unlock()

	defer close(s.done)
	s.ProgressSink.Finished(result, err)
}
