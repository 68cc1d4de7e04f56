package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/font-sync/internal/logging"
	"github.com/ytget/font-sync/internal/model"
	"github.com/ytget/font-sync/internal/platform"
)

// Download constants
const (
	// DefaultEndpoint is the family archive URL template
	DefaultEndpoint = "https://fonts.google.com/download?family=" + FamilyPlaceholder

	// FamilyPlaceholder is replaced by the family name with spaces as '+'
	FamilyPlaceholder = "{family}"

	ArchiveExt = ".zip"
	FontExt    = ".ttf"
)

// FailurePolicy decides what happens to the rest of a run after a family fails
type FailurePolicy string

const (
	// AbortOnError stops the run at the first failed family
	AbortOnError FailurePolicy = "abort"

	// SkipOnError records the failure and continues with the next family
	SkipOnError FailurePolicy = "skip"
)

// ParseFailurePolicy maps a configured policy name to a FailurePolicy
func ParseFailurePolicy(name string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(name))) {
	case AbortOnError, "":
		return AbortOnError, nil
	case SkipOnError, "continue":
		return SkipOnError, nil
	default:
		return AbortOnError, fmt.Errorf("invalid failure policy: %s", name)
	}
}

// Service syncs font families from the download endpoint into a directory
type Service struct {
	client *http.Client
	logger *zap.Logger

	mu       sync.RWMutex
	endpoint string
	policy   FailurePolicy
}

// NewService creates a sync service. A nil client uses http.DefaultClient,
// a nil logger discards logs.
func NewService(client *http.Client, logger *zap.Logger) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{
		client:   client,
		logger:   logging.OrNop(logger),
		endpoint: DefaultEndpoint,
		policy:   AbortOnError,
	}
}

// SetEndpoint sets the download URL template
func (s *Service) SetEndpoint(endpoint string) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.endpoint = endpoint
}

// SetFailurePolicy selects what happens after a family fails
func (s *Service) SetFailurePolicy(policy FailurePolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = policy
}

func (s *Service) settings() (string, FailurePolicy) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.endpoint, s.policy
}

// DownloadURL builds the archive URL for family from an endpoint template
func DownloadURL(endpoint string, family model.FontFamily) string {
	return strings.ReplaceAll(endpoint, FamilyPlaceholder, family.QueryName())
}

// Sync processes the job's families in order. The cancel flag is checked
// before each family; a download or extraction already running is never
// interrupted by it. Families already installed stay installed when the run
// is cancelled or fails.
func (s *Service) Sync(ctx context.Context, job *model.SyncJob, sink ProgressSink) (*model.SyncResult, error) {
	if sink == nil {
		sink = NopSink{}
	}
	endpoint, policy := s.settings()
	result := model.NewSyncResult(job)
	log := s.logger.With(zap.String("job", job.ID))

	log.Info("Sync started",
		zap.Int("families", job.Total()),
		zap.String("target", job.TargetDir),
		zap.String("policy", string(policy)))

	if err := platform.CreateDirectoryIfNotExists(job.TargetDir); err != nil {
		serr := &SyncError{Stage: StagePrepare, Kind: KindFilesystem, Err: err}
		return s.finish(log, result, model.SyncStatusFailed, serr, sink)
	}

	// Case-folded directory names seen in this run
	dirs := make(map[string]string, job.Total())
	var failures []error

	for i, family := range job.Families {
		if job.IsCancelled() || ctx.Err() != nil {
			return s.finish(log, result, model.SyncStatusCancelled, nil, sink)
		}
		job.SetCurrent(i)

		err := checkCollision(dirs, family)
		if err == nil {
			err = s.syncFamily(ctx, log, endpoint, job.TargetDir, family, sink)
		}
		result.Processed++

		if err != nil {
			log.Error("Family failed", zap.String("family", family.Name), zap.Error(err))
			if policy != SkipOnError {
				return s.finish(log, result, model.SyncStatusFailed, err, sink)
			}
			failures = append(failures, err)
			result.Failures = append(result.Failures, model.FamilyFailure{Family: family.Name, Error: err.Error()})
		} else {
			log.Info("Family installed", zap.String("family", family.Name))
			result.Installed = append(result.Installed, family.Name)
		}

		sink.Index(i + 1)
	}

	if len(failures) > 0 {
		return s.finish(log, result, model.SyncStatusFailed, errors.Join(failures...), sink)
	}
	return s.finish(log, result, model.SyncStatusCompleted, nil, sink)
}

func (s *Service) finish(log *zap.Logger, result *model.SyncResult, status model.SyncStatus, err error, sink ProgressSink) (*model.SyncResult, error) {
	result.Finish(status)
	log.Info("Sync finished",
		zap.String("status", status.String()),
		zap.Int("processed", result.Processed),
		zap.Int("installed", len(result.Installed)),
		zap.Duration("duration", result.Duration()))
	sink.Finished(result, err)
	return result, err
}

// checkCollision records family's directory and fails if a different family
// already claimed the same name ignoring case
func checkCollision(dirs map[string]string, family model.FontFamily) error {
	key := strings.ToLower(family.DirName())
	if other, ok := dirs[key]; ok && other != family.Name {
		return &SyncError{
			Family: family.Name,
			Stage:  StagePrepare,
			Kind:   KindFilesystem,
			Err:    fmt.Errorf("%w: %s", ErrDirectoryCollision, other),
		}
	}
	dirs[key] = family.Name
	return nil
}

// familyPath returns the install directory of family. Names that would
// resolve to targetDir itself or anywhere outside it are rejected.
func familyPath(targetDir string, family model.FontFamily) (string, error) {
	name := family.DirName()
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\:`) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeDirName, family.Name)
	}

	dir := filepath.Join(targetDir, name)
	rel, err := filepath.Rel(targetDir, dir)
	if err != nil || rel != name {
		return "", fmt.Errorf("%w: %q", ErrUnsafeDirName, family.Name)
	}
	return dir, nil
}

// syncFamily runs download, replace, extract, prune and cleanup for one family
func (s *Service) syncFamily(ctx context.Context, log *zap.Logger, endpoint, targetDir string, family model.FontFamily, sink ProgressSink) (err error) {
	fail := func(stage Stage, kind ErrorKind, cause error) error {
		return &SyncError{Family: family.Name, Stage: stage, Kind: kind, Err: cause}
	}

	familyDir, err := familyPath(targetDir, family)
	if err != nil {
		return fail(StagePrepare, KindFilesystem, err)
	}
	archivePath := familyDir + ArchiveExt
	url := DownloadURL(endpoint, family)
	log = log.With(zap.String("family", family.Name))

	// The archive never outlives a failed family
	defer func() {
		if err != nil {
			if rmErr := os.Remove(archivePath); rmErr != nil && !os.IsNotExist(rmErr) {
				log.Warn("Failed to remove archive", zap.String("archive", archivePath), zap.Error(rmErr))
			}
		}
	}()

	sink.Status(family.Name, fmt.Sprintf(MsgDownloading, family.Name))
	log.Debug("Downloading", zap.String("url", url), zap.String("archive", archivePath))
	if err := s.fetch(ctx, url, archivePath); err != nil {
		return fail(StageDownload, fsOrElse(err, KindNetwork), err)
	}

	sink.Status(family.Name, fmt.Sprintf(MsgClearing, familyDir))
	log.Debug("Clearing", zap.String("dir", familyDir))
	if err := platform.CreateDirectoryIfNotExists(familyDir); err != nil {
		return fail(StagePrepare, KindFilesystem, err)
	}
	if err := platform.ClearDirectory(familyDir); err != nil {
		return fail(StagePrepare, KindFilesystem, err)
	}

	sink.Status(family.Name, MsgExtracting)
	extracted, err := platform.ExtractZip(archivePath, familyDir)
	if err != nil {
		return fail(StageExtract, fsOrElse(err, KindArchive), err)
	}
	log.Debug("Extracted", zap.Int("files", len(extracted)))

	sink.Status(family.Name, MsgPruning)
	removed, err := platform.PruneFiles(familyDir, FontExt)
	if err != nil {
		return fail(StagePrune, KindFilesystem, err)
	}
	log.Debug("Pruned", zap.Int("removed", len(removed)), zap.Int("kept", len(extracted)-len(removed)))

	sink.Status(family.Name, MsgDeletingArchive)
	if err := os.Remove(archivePath); err != nil {
		return fail(StageCleanup, KindFilesystem, err)
	}

	return nil
}

// fetch streams url into path, replacing any leftover file
func (s *Service) fetch(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &HTTPStatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
