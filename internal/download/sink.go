package download

import (
	"fmt"

	"github.com/ytget/font-sync/internal/model"
)

// Status messages sent to a ProgressSink
const (
	MsgDownloading     = "Downloading %s"
	MsgClearing        = "Clearing %s"
	MsgExtracting      = "Extracting"
	MsgPruning         = "Removing non-font files"
	MsgDeletingArchive = "Deleting archive"
)

// Terminal messages
const (
	MsgCancelled = "Cancelled."
	MsgFinished  = "Finished syncing."
	MsgFailed    = "Failed: %v"
)

// TerminalMessage returns the final line shown for a run
func TerminalMessage(result *model.SyncResult, err error) string {
	switch {
	case result != nil && result.Status == model.SyncStatusCancelled:
		return MsgCancelled
	case err != nil:
		return fmt.Sprintf(MsgFailed, err)
	default:
		return MsgFinished
	}
}

// NopSink discards all progress
type NopSink struct{}

func (NopSink) Status(string, string) {}
func (NopSink) Index(int) {}
func (NopSink) Finished(*model.SyncResult, error) {}

// SinkFuncs adapts plain functions to a ProgressSink; nil fields are skipped
type SinkFuncs struct {
	OnStatus   func(family, message string)
	OnIndex    func(processed int)
	OnFinished func(result *model.SyncResult, err error)
}

func (s SinkFuncs) Status(family, message string) {
	if s.OnStatus != nil {
		s.OnStatus(family, message)
	}
}

func (s SinkFuncs) Index(processed int) {
	if s.OnIndex != nil {
		s.OnIndex(processed)
	}
}

func (s SinkFuncs) Finished(result *model.SyncResult, err error) {
	if s.OnFinished != nil {
		s.OnFinished(result, err)
	}
}
