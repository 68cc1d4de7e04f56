package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/ytget/font-sync/internal/catalog"
	"github.com/ytget/font-sync/internal/config"
	"github.com/ytget/font-sync/internal/download"
	"github.com/ytget/font-sync/internal/filter"
	"github.com/ytget/font-sync/internal/fontinfo"
	"github.com/ytget/font-sync/internal/logging"
	"github.com/ytget/font-sync/internal/model"
	"github.com/ytget/font-sync/internal/session"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// Exit codes
const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitCancelled = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	criteria, err := cfg.Criteria()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer logger.Sync()

	logger.Debug("font-sync starting", zap.String("version", version))

	if opts.installed {
		return listInstalled(cfg.TargetDir, stdout, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := &http.Client{Timeout: cfg.HTTPTimeout()}
	families, err := catalog.Load(ctx, client, cfg.Catalog)
	if err != nil {
		logger.Error("Failed to load catalog", zap.String("source", cfg.Catalog), zap.Error(err))
		return exitFailure
	}

	svc := download.NewService(client, logger)
	svc.SetEndpoint(cfg.Endpoint)
	svc.SetFailurePolicy(cfg.FailurePolicy())

	controller := session.NewController(svc, families, logger)
	controller.SetFilterCallback(func(_ int, message string) {
		logger.Info(message)
	})
	if err := controller.SetCriteria(criteria); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if opts.dryRun {
		for _, name := range filter.Names(controller.Filtered()) {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	// The sync checks its own cancel flag; it does not watch ctx
	sink := newBarSink(len(controller.Filtered()), stderr, logger)
	job, err := controller.Start(context.Background(), cfg.TargetDir, sink)
	if errors.Is(err, session.ErrNothingToSync) {
		logger.Warn("Nothing to sync", zap.String("reason", err.Error()))
		return exitOK
	}
	if err != nil {
		logger.Error("Failed to start sync", zap.Error(err))
		return exitFailure
	}

	go watchInterrupt(ctx, stop, controller.Cancel, logger.With(zap.String("job", job.ID)))

	controller.Wait()
	return exitCode(sink.result, sink.err)
}

// watchInterrupt sets the cancel flag on the first interrupt, then restores
// the default signal handling so a second one terminates the process
func watchInterrupt(ctx context.Context, stop context.CancelFunc, cancel func() bool, logger *zap.Logger) {
	<-ctx.Done()
	if cancel() {
		logger.Warn("Interrupted, stopping after the current family; interrupt again to quit")
	}
	stop()
}

func exitCode(result *model.SyncResult, err error) int {
	switch {
	case result != nil && result.Status == model.SyncStatusCancelled:
		return exitCancelled
	case err != nil:
		return exitFailure
	default:
		return exitOK
	}
}

func listInstalled(dir string, stdout io.Writer, logger *zap.Logger) int {
	entries, err := fontinfo.Inspect(dir)
	if err != nil {
		logger.Error("Failed to list fonts", zap.Error(err))
		return exitFailure
	}

	for _, e := range entries {
		if e.Err != nil {
			logger.Warn("Unreadable font", zap.String("path", e.Path), zap.Error(e.Err))
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", e.Path, e.Name())
	}
	logger.Info("Installed fonts",
		zap.Int("files", len(entries)),
		zap.String("families", strings.Join(fontinfo.Families(entries), ", ")))
	return exitOK
}

// barSink renders sync progress on a terminal progress bar
type barSink struct {
	bar    *progressbar.ProgressBar
	logger *zap.Logger

	result *model.SyncResult
	err    error
}

func newBarSink(total int, w io.Writer, logger *zap.Logger) *barSink {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
	)
	return &barSink{bar: bar, logger: logger}
}

func (s *barSink) Status(family, message string) {
	s.bar.Describe(family + " - " + message)
}

func (s *barSink) Index(processed int) {
	_ = s.bar.Set(processed)
}

func (s *barSink) Finished(result *model.SyncResult, err error) {
	_ = s.bar.Finish()
	s.result, s.err = result, err

	message := download.TerminalMessage(result, err)
	switch {
	case err != nil:
		s.logger.Error(message, zap.Strings("installed", result.Installed))
	default:
		s.logger.Info(message, zap.Int("installed", len(result.Installed)), zap.Int("failed", len(result.Failures)))
	}
}
