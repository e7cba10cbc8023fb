// Package scheduler implements the controller tick loop: it reaps finished
// jobs, reacts to project root changes, and schedules rebuilds off the
// dirty flag.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/core/ports"
	"github.com/objdelta/objdelta/internal/engine/jobs"
	"github.com/objdelta/objdelta/internal/engine/pipeline"
	"github.com/objdelta/objdelta/internal/engine/trigger"
	"go.trai.ch/zerr"
)

// DefaultTickInterval is the controller poll cadence.
const DefaultTickInterval = 100 * time.Millisecond

// WatcherFactory creates a fresh watcher for each installed project root.
type WatcherFactory func() (ports.Watcher, error)

// Controller is the single-threaded coordination loop. All blocking work
// happens on job worker goroutines or the watcher's delivery goroutine; a
// tick never blocks on either.
type Controller struct {
	registry   *jobs.Registry
	store      ports.ConfigStore
	detector   *trigger.Detector
	pipeline   *pipeline.Pipeline
	logger     ports.Logger
	newWatcher WatcherFactory

	// watcher is owned by the controller goroutine; replaced wholesale on
	// a project root change.
	watcher ports.Watcher

	mu       sync.Mutex
	latest   *domain.BuildResult
	onResult func(*domain.BuildResult)
}

// NewController wires a controller over its collaborators.
func NewController(
	registry *jobs.Registry,
	store ports.ConfigStore,
	detector *trigger.Detector,
	pipe *pipeline.Pipeline,
	logger ports.Logger,
	newWatcher WatcherFactory,
) *Controller {
	return &Controller{
		registry:   registry,
		store:      store,
		detector:   detector,
		pipeline:   pipe,
		logger:     logger,
		newWatcher: newWatcher,
	}
}

// OnResult registers a consumer for each reaped build result. The callback
// runs on the controller goroutine and must not block.
func (c *Controller) OnResult(fn func(*domain.BuildResult)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResult = fn
}

// Latest returns the most recently reaped build result, or nil.
func (c *Controller) Latest() *domain.BuildResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

// Tick runs one controller iteration: reap, prune, handle root changes,
// and schedule at most one rebuild.
func (c *Controller) Tick(ctx context.Context) {
	c.reapFinished()
	c.registry.Prune()

	if c.store.ConsumeRootChange() {
		if err := c.resetWatcher(ctx); err != nil {
			c.logger.Error(err)
		}
		// A root change always triggers an initial rebuild.
		c.detector.Mark()
	}

	c.scheduleRebuild(ctx)
}

// reapFinished consumes each finished job's outcome exactly once.
// Cancelled jobs vanish silently; failed jobs surface as a logged
// job-level error; build results replace the latest result.
func (c *Controller) reapFinished() {
	for _, out := range c.registry.PollFinished() {
		switch {
		case errors.Is(out.Err, domain.ErrCancelled):
		case out.Err != nil:
			jobErr := zerr.With(out.Err, "job", out.Job.ID)
			c.logger.Error(zerr.With(jobErr, "kind", out.Job.Kind.String()))
		default:
			if result, ok := out.Result.(*domain.BuildResult); ok {
				c.deliver(result)
			}
		}
	}
}

func (c *Controller) deliver(result *domain.BuildResult) {
	c.mu.Lock()
	c.latest = result
	fn := c.onResult
	c.mu.Unlock()
	if fn != nil {
		fn(result)
	}
}

// scheduleRebuild enqueues at most one Build job per tick. The dirty flag
// is cleared before enqueueing: a change arriving in the clear-to-enqueue
// window is not lost, at the cost of occasionally running one extra
// rebuild. The in-flight check is a plain scan; the benign duplicate-build
// race costs wasted work, never corruption.
func (c *Controller) scheduleRebuild(ctx context.Context) {
	cfg := c.store.Snapshot()
	if cfg.TargetObject == "" || !c.detector.IsDirty() {
		return
	}
	if c.registry.InFlight(jobs.KindBuild, cfg.TargetObject) {
		return
	}
	c.detector.Clear()
	job := c.pipeline.QueueBuild(ctx, c.registry, cfg.TargetObject)
	c.logger.Info(fmt.Sprintf("queued build %d for %s", job.ID, cfg.TargetObject))
}

// resetWatcher tears down the current subscription, guaranteeing no
// further deliveries from it, then installs a new one rooted at the
// configured project root.
func (c *Controller) resetWatcher(ctx context.Context) error {
	if c.watcher != nil {
		if err := c.watcher.Stop(); err != nil {
			c.logger.Error(zerr.Wrap(err, "failed to stop previous watcher"))
		}
		c.watcher = nil
	}

	root := c.store.Snapshot().ProjectRoot
	if root == "" {
		return nil
	}

	w, err := c.newWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	if err := w.Start(ctx, root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "root", root)
	}
	c.watcher = w
	go c.detector.Pump(ctx, w)
	c.logger.Info("watching " + root)
	return nil
}

// Run drives Tick from a ticker until ctx is done, then releases the
// watcher. It returns nil on a clean shutdown.
func (c *Controller) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	defer c.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.Tick(ctx)
		}
	}
}

// Close stops the current watcher, if any.
func (c *Controller) Close() error {
	if c.watcher == nil {
		return nil
	}
	err := c.watcher.Stop()
	c.watcher = nil
	return err
}
