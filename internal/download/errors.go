package download

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies a sync failure
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"
	KindArchive    ErrorKind = "archive"
	KindFilesystem ErrorKind = "filesystem"
)

// Stage names the step a family failed in
type Stage string

const (
	StagePrepare  Stage = "prepare"
	StageDownload Stage = "download"
	StageExtract  Stage = "extract"
	StagePrune    Stage = "prune"
	StageCleanup  Stage = "cleanup"
)

var (
	// ErrDirectoryCollision is returned when two families map to the same
	// directory on a case-insensitive filesystem
	ErrDirectoryCollision = errors.New("install directory collides with another family")

	// ErrUnsafeDirName is returned when a family name does not map to a
	// directory directly below the target directory
	ErrUnsafeDirName = errors.New("family name is not a usable directory name")
)

// SyncError is a failure while syncing one family
type SyncError struct {
	Family string
	Stage  Stage
	Kind   ErrorKind
	Err    error
}

func (e *SyncError) Error() string {
	if e.Family == "" {
		return fmt.Sprintf("%s %s error: %v", e.Stage, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s %s error: %v", e.Family, e.Stage, e.Kind, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// HTTPStatusError reports a non-200 download response
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("unexpected response %s from %s", e.Status, e.URL)
}

// IsKind reports whether err contains a SyncError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var se *SyncError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// FailedFamily returns the family named by the first SyncError in err
func FailedFamily(err error) (string, bool) {
	var se *SyncError
	if errors.As(err, &se) {
		return se.Family, true
	}
	return "", false
}

// fsOrElse classifies err as a filesystem error when it comes from the OS,
// otherwise as fallback
func fsOrElse(err error, fallback ErrorKind) ErrorKind {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return KindFilesystem
	}
	return fallback
}
