package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/font-sync/internal/download"
	"github.com/ytget/font-sync/internal/filter"
	"github.com/ytget/font-sync/internal/model"
)

// blockingSyncer holds every run until release is closed
type blockingSyncer struct {
	started chan *model.SyncJob
	release chan struct{}
	err     error
}

func newBlockingSyncer() *blockingSyncer {
	return &blockingSyncer{
		started: make(chan *model.SyncJob, 1),
		release: make(chan struct{}),
	}
}

func (b *blockingSyncer) Sync(ctx context.Context, job *model.SyncJob, sink download.ProgressSink) (*model.SyncResult, error) {
	b.started <- job
	<-b.release

	result := model.NewSyncResult(job)
	status := model.SyncStatusCompleted
	switch {
	case job.IsCancelled():
		status = model.SyncStatusCancelled
	case b.err != nil:
		status = model.SyncStatusFailed
	default:
		for _, f := range job.Families {
			result.Processed++
			result.Installed = append(result.Installed, f.Name)
		}
	}
	result.Finish(status)
	sink.Finished(result, b.err)
	return result, b.err
}

func (b *blockingSyncer) SetEndpoint(string) {}
func (b *blockingSyncer) SetFailurePolicy(download.FailurePolicy) {}

func testCatalog() []model.FontFamily {
	return []model.FontFamily{
		{Name: "Roboto", Category: model.CategorySansSerif, Subsets: []string{"latin", "cyrillic"}, StyleCount: 12, Thickness: 5, Slant: 1, Width: 5},
		{Name: "Lobster", Category: model.CategoryDisplay, Subsets: []string{"latin"}, StyleCount: 1, Thickness: 7},
		{Name: "Lora", Category: model.CategorySerif, Subsets: []string{"latin", "cyrillic"}, StyleCount: 8, Thickness: 4},
	}
}

func newTestController(t *testing.T, syncer download.Syncer) *Controller {
	return NewController(syncer, testCatalog(), zaptest.NewLogger(t))
}

func TestNewController_SelectsWholeCatalog(t *testing.T) {
	c := newTestController(t, newBlockingSyncer())

	if diff := cmp.Diff([]string{"Roboto", "Lobster", "Lora"}, filter.Names(c.Filtered())); diff != "" {
		t.Errorf("Filtered mismatch (-want +got):\n%s", diff)
	}
	if c.Running() {
		t.Error("New controller should not be running")
	}
	if c.Status() != model.SyncStatusPending {
		t.Errorf("Expected pending, got %s", c.Status())
	}
}

func TestSetCriteria(t *testing.T) {
	c := newTestController(t, newBlockingSyncer())

	var count int
	var message string
	c.SetFilterCallback(func(n int, msg string) {
		count, message = n, msg
	})

	criteria := model.Criteria{Subset: "cyrillic", MinStyleCount: 2}
	if err := c.SetCriteria(criteria); err != nil {
		t.Fatalf("SetCriteria failed: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 matches, got %d", count)
	}
	if message != "Checked all fonts (2 fitting found)" {
		t.Errorf("Unexpected message: %s", message)
	}
	if diff := cmp.Diff([]string{"Roboto", "Lora"}, filter.Names(c.Filtered())); diff != "" {
		t.Errorf("Filtered mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(criteria, c.Criteria()); diff != "" {
		t.Errorf("Criteria mismatch (-want +got):\n%s", diff)
	}
}

func TestSetCriteria_InvalidKeepsSelection(t *testing.T) {
	c := newTestController(t, newBlockingSyncer())
	if err := c.SetCriteria(model.Criteria{Categories: []model.Category{model.CategorySerif}}); err != nil {
		t.Fatalf("SetCriteria failed: %v", err)
	}

	err := c.SetCriteria(model.Criteria{MinThickness: 11})
	var verr *filter.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}

	if diff := cmp.Diff([]string{"Lora"}, filter.Names(c.Filtered())); diff != "" {
		t.Errorf("Selection should be unchanged (-want +got):\n%s", diff)
	}
}

func TestSetCatalog_ReappliesCriteria(t *testing.T) {
	c := newTestController(t, newBlockingSyncer())
	if err := c.SetCriteria(model.Criteria{Categories: []model.Category{model.CategoryDisplay}}); err != nil {
		t.Fatalf("SetCriteria failed: %v", err)
	}

	var count int
	c.SetFilterCallback(func(n int, _ string) { count = n })
	c.SetCatalog(append(testCatalog(), model.FontFamily{Name: "Bebas Neue", Category: model.CategoryDisplay}))

	if count != 2 {
		t.Errorf("Expected 2 matches, got %d", count)
	}
}

func TestStart_NothingToSync(t *testing.T) {
	c := newTestController(t, newBlockingSyncer())
	if err := c.SetCriteria(model.Criteria{Subset: "khmer"}); err != nil {
		t.Fatalf("SetCriteria failed: %v", err)
	}

	if _, err := c.Start(context.Background(), t.TempDir(), nil); !errors.Is(err, ErrNothingToSync) {
		t.Errorf("Expected ErrNothingToSync, got %v", err)
	}
	if c.Running() {
		t.Error("Controller should not be running")
	}
}

func TestStart_OneJobAtATime(t *testing.T) {
	syncer := newBlockingSyncer()
	c := newTestController(t, syncer)

	var mu sync.Mutex
	var finished []string
	sink := download.SinkFuncs{OnFinished: func(result *model.SyncResult, err error) {
		mu.Lock()
		defer mu.Unlock()
		finished = append(finished, download.TerminalMessage(result, err))
	}}

	job, err := c.Start(context.Background(), t.TempDir(), sink)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if got := <-syncer.started; got != job {
		t.Error("Syncer received a different job")
	}
	if job.Total() != 3 {
		t.Errorf("Expected 3 families, got %d", job.Total())
	}

	if !c.Running() {
		t.Error("Controller should be running")
	}
	if c.Status() != model.SyncStatusRunning {
		t.Errorf("Expected running, got %s", c.Status())
	}
	if _, err := c.Start(context.Background(), t.TempDir(), sink); !errors.Is(err, ErrSyncInProgress) {
		t.Errorf("Expected ErrSyncInProgress, got %v", err)
	}

	close(syncer.release)
	c.Wait()

	if c.Running() {
		t.Error("Controller should be idle after the job")
	}
	if c.Status() != model.SyncStatusCompleted {
		t.Errorf("Expected completed, got %s", c.Status())
	}
	if result := c.LastResult(); result == nil || result.JobID != job.ID {
		t.Errorf("Unexpected last result: %+v", result)
	}

	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff([]string{download.MsgFinished}, finished); diff != "" {
		t.Errorf("Finished mismatch (-want +got):\n%s", diff)
	}
}

func TestStart_JobIsIndependentOfLaterCriteria(t *testing.T) {
	syncer := newBlockingSyncer()
	c := newTestController(t, syncer)

	job, err := c.Start(context.Background(), t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	<-syncer.started

	if err := c.SetCriteria(model.Criteria{Categories: []model.Category{model.CategorySerif}}); err != nil {
		t.Fatalf("SetCriteria failed: %v", err)
	}
	if job.Total() != 3 {
		t.Errorf("Running job should keep its families, got %d", job.Total())
	}

	close(syncer.release)
	c.Wait()
}

func TestCancel(t *testing.T) {
	syncer := newBlockingSyncer()
	c := newTestController(t, syncer)

	if c.Cancel() {
		t.Error("Cancel without a job should report false")
	}

	job, err := c.Start(context.Background(), t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	<-syncer.started

	if !c.Cancel() {
		t.Error("Cancel should report a running job")
	}
	if !job.IsCancelled() {
		t.Error("Job should be flagged as cancelled")
	}
	if c.Status() != model.SyncStatusCancelling {
		t.Errorf("Expected cancelling, got %s", c.Status())
	}

	close(syncer.release)
	c.Wait()

	if c.Status() != model.SyncStatusCancelled {
		t.Errorf("Expected cancelled, got %s", c.Status())
	}
}

func TestStart_AfterFailure(t *testing.T) {
	syncer := newBlockingSyncer()
	syncer.err = errors.New("boom")
	c := newTestController(t, syncer)

	if _, err := c.Start(context.Background(), t.TempDir(), nil); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	<-syncer.started
	close(syncer.release)
	c.Wait()

	if c.Status() != model.SyncStatusFailed {
		t.Errorf("Expected failed, got %s", c.Status())
	}

	// The released syncer no longer blocks, so a second run finishes at once
	if _, err := c.Start(context.Background(), t.TempDir(), nil); err != nil {
		t.Fatalf("Second start failed: %v", err)
	}
	<-syncer.started
	c.Wait()
}

func TestWait_NoJob(t *testing.T) {
	c := newTestController(t, newBlockingSyncer())
	c.Wait()
}
