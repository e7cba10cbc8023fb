// Package app assembles the engine and runs it in watch or one-shot mode.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/objdelta/objdelta/internal/adapters/config"
	"github.com/objdelta/objdelta/internal/adapters/shell"
	"github.com/objdelta/objdelta/internal/adapters/watcher"
	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/core/ports"
	"github.com/objdelta/objdelta/internal/engine/jobs"
	"github.com/objdelta/objdelta/internal/engine/pipeline"
	"github.com/objdelta/objdelta/internal/engine/scheduler"
	"github.com/objdelta/objdelta/internal/engine/trigger"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// pollInterval is the one-shot completion poll cadence.
const pollInterval = 50 * time.Millisecond

// progressInterval is how often the watch loop reports running job status.
const progressInterval = time.Second

// App owns the long-lived collaborators and builds the per-run engine
// around a loaded configuration.
type App struct {
	configLoader ports.ConfigLoader
	objects      ports.ObjectLoader
	differ       ports.Differ
	logger       ports.Logger
	tracer       ports.Tracer
	newWatcher   scheduler.WatcherFactory
	newRunner    func(command []string) ports.BuildRunner
}

// Components is the graft execution target resolved by main.
type Components struct {
	App    *App
	Logger ports.Logger
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	objects ports.ObjectLoader,
	differ ports.Differ,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: configLoader,
		objects:      objects,
		differ:       differ,
		logger:       logger,
		tracer:       tracer,
		newWatcher: func() (ports.Watcher, error) {
			return watcher.New()
		},
		newRunner: func(command []string) ports.BuildRunner {
			return shell.NewRunner(command)
		},
	}
}

// WithWatcherFactory overrides how watchers are created.
// This is primarily used for testing.
func (a *App) WithWatcherFactory(f scheduler.WatcherFactory) *App {
	a.newWatcher = f
	return a
}

// WithRunnerFactory overrides how build runners are created.
// This is primarily used for testing.
func (a *App) WithRunnerFactory(f func(command []string) ports.BuildRunner) *App {
	a.newRunner = f
	return a
}

// WatchOptions configures the Watch loop.
type WatchOptions struct {
	ConfigPath string
	Interval   time.Duration
	JSONLogs   bool
}

// Watch loads the configuration and runs the controller loop until ctx is
// cancelled: watching the project root, scheduling rebuilds, and logging
// each reaped result.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	a.logger.SetJSON(opts.JSONLogs)

	shutdown := a.initTracing()
	defer shutdown(context.Background())

	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	registry := jobs.NewRegistry()
	store := config.NewStore(cfg)
	detector := trigger.NewDetector()
	pipe := pipeline.New(store, a.newRunner(cfg.BuildCommand), a.objects, a.differ, a.tracer)
	controller := scheduler.NewController(registry, store, detector, pipe, a.logger, a.newWatcher)
	controller.OnResult(a.logResult)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return controller.Run(ctx, opts.Interval)
	})
	group.Go(func() error {
		a.reportProgress(ctx, registry)
		return nil
	})
	return group.Wait()
}

// DiffOptions configures a one-shot run.
type DiffOptions struct {
	ConfigPath string
	Target     string
	JSONLogs   bool
}

// Diff runs a single build-diff job to completion and reports its result.
// An explicit target overrides the configured one.
func (a *App) Diff(ctx context.Context, opts DiffOptions) error {
	a.logger.SetJSON(opts.JSONLogs)

	shutdown := a.initTracing()
	defer shutdown(context.Background())

	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Target != "" {
		cfg.TargetObject = opts.Target
	}
	if cfg.TargetObject == "" {
		return domain.ErrMissingTargetObject
	}

	registry := jobs.NewRegistry()
	store := config.NewStore(cfg)
	pipe := pipeline.New(store, a.newRunner(cfg.BuildCommand), a.objects, a.differ, a.tracer)

	job := pipe.QueueBuild(ctx, registry, cfg.TargetObject)
	a.logger.Info(fmt.Sprintf("building %s", cfg.TargetObject))

	outcome, err := a.awaitJob(ctx, registry, job)
	if err != nil {
		return err
	}
	registry.Prune()

	switch {
	case errors.Is(outcome.Err, domain.ErrCancelled):
		return nil
	case outcome.Err != nil:
		return outcome.Err
	}
	if result, ok := outcome.Result.(*domain.BuildResult); ok {
		a.logResult(result)
	}
	return nil
}

// awaitJob polls the registry until the job's outcome is reaped. On ctx
// cancellation it delivers the cooperative token and keeps polling: the
// worker unwinds at its next stage boundary.
func (a *App) awaitJob(ctx context.Context, registry *jobs.Registry, job *jobs.Job) (jobs.Outcome, error) {
	cancelled := false
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		for _, outcome := range registry.PollFinished() {
			if outcome.Job.ID == job.ID {
				return outcome, nil
			}
		}
		if cancelled {
			// The token is delivered; only the worker's unwind remains.
			<-ticker.C
			continue
		}
		select {
		case <-ctx.Done():
			registry.Cancel(job.ID)
			cancelled = true
		case <-ticker.C:
		}
	}
}

// reportProgress periodically logs the status of running jobs. Status
// reads never block the workers; intermediate steps may be skipped.
func (a *App) reportProgress(ctx context.Context, registry *jobs.Registry) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, job := range registry.Jobs() {
				if job.Finished() {
					continue
				}
				s := job.Status.Snapshot()
				a.logger.Info(fmt.Sprintf("job %d [%s]: %s (%d/%d)", job.ID, job.Kind, s.Message, s.Step, s.Total))
			}
		}
	}
}

// logResult summarizes one reaped build result: the match percentage when
// both sides compare, otherwise the failed side's captured log.
func (a *App) logResult(result *domain.BuildResult) {
	if result.Matched() {
		a.logger.Info(fmt.Sprintf("diff complete: %.2f%% match (%d vs %d symbols)",
			result.FirstObj.MatchPercent, len(result.FirstObj.Symbols), len(result.SecondObj.Symbols)))
		return
	}
	if !result.FirstStatus.Success {
		a.logger.Warn("asm build failed:\n" + result.FirstStatus.Log)
	}
	if !result.SecondStatus.Success {
		a.logger.Warn("src build failed:\n" + result.SecondStatus.Log)
	}
}

// loadConfig reads the configuration from the given path, defaulting to
// the config file in the current directory.
func (a *App) loadConfig(path string) (domain.Config, error) {
	if path == "" {
		path = config.DefaultFileName
	}
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// initTracing installs a tracer provider and returns its shutdown hook.
func (a *App) initTracing() func(context.Context) error {
	provider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(provider)
	return provider.Shutdown
}
