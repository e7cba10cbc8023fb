// Package pipeline implements the build-diff pipeline: build both target
// variants, load each successfully-built artifact, and diff the pair.
package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/core/ports"
	"github.com/objdelta/objdelta/internal/engine/jobs"
	"go.trai.ch/zerr"
)

// totalSteps is the number of reported pipeline stages.
const totalSteps = 5

// Pipeline is the work performed by a Build-type job. It is stateless
// across runs; every invocation re-runs both builds, both loads where
// applicable, and the diff, trusting the external build tool to skip
// unnecessary recompilation internally.
type Pipeline struct {
	store  ports.ConfigStore
	runner ports.BuildRunner
	loader ports.ObjectLoader
	differ ports.Differ
	tracer ports.Tracer
}

// New creates a pipeline over the given collaborators.
func New(
	store ports.ConfigStore,
	runner ports.BuildRunner,
	loader ports.ObjectLoader,
	differ ports.Differ,
	tracer ports.Tracer,
) *Pipeline {
	return &Pipeline{
		store:  store,
		runner: runner,
		loader: loader,
		differ: differ,
		tracer: tracer,
	}
}

// QueueBuild enqueues one pipeline run for target as a Build job.
// ctx is used for tracing only; cancellation of the job itself is the
// cooperative token observed at stage boundaries.
func (p *Pipeline) QueueBuild(ctx context.Context, reg *jobs.Registry, target string) *jobs.Job {
	return reg.Enqueue(jobs.KindBuild, target, func(status *jobs.Status, cancel <-chan struct{}) (jobs.Result, error) {
		result, err := p.run(ctx, status, cancel, target)
		if err != nil {
			return nil, err
		}
		return result, nil
	})
}

// run executes the five stages. It runs on a job worker goroutine; the
// controller never blocks on it.
func (p *Pipeline) run(
	ctx context.Context,
	status *jobs.Status,
	cancel <-chan struct{},
	target string,
) (*domain.BuildResult, error) {
	_, span := p.tracer.Start(ctx, "pipeline.build", ports.WithAttribute("target", target))
	defer span.End()

	// One consistent snapshot per run: the read lock is released before
	// any blocking call, and later edits do not affect this build.
	cfg := p.store.Snapshot()

	paths, err := resolvePaths(cfg, target)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	// Stage 1: build the hand-authored asm side.
	if err := jobs.UpdateStatus(status, "Building asm "+target, 0, totalSteps, cancel); err != nil {
		return nil, err
	}
	span.SetAttribute("stage", "build_asm")
	firstStatus := p.runner.Run(cfg.ProjectRoot, paths.asmRel)

	// Stage 2: build the compiler-generated src side, independently.
	if err := jobs.UpdateStatus(status, "Building src "+target, 1, totalSteps, cancel); err != nil {
		return nil, err
	}
	span.SetAttribute("stage", "build_src")
	secondStatus := p.runner.Run(cfg.ProjectRoot, paths.srcRel)

	// Stage 3: load the asm artifact. Success implies a loadable artifact
	// must exist; a parse failure here is pipeline-fatal. A failed build
	// simply leaves this side absent.
	var firstObj *domain.Object
	if firstStatus.Success {
		if err := jobs.UpdateStatus(status, "Loading asm "+target, 2, totalSteps, cancel); err != nil {
			return nil, err
		}
		span.SetAttribute("stage", "load_asm")
		firstObj, err = p.loader.Load(paths.asm)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrObjectLoad.Error()), "path", paths.asm)
			span.RecordError(err)
			return nil, err
		}
	}

	// Stage 4: same for the src artifact, independent of stage 3.
	var secondObj *domain.Object
	if secondStatus.Success {
		if err := jobs.UpdateStatus(status, "Loading src "+target, 3, totalSteps, cancel); err != nil {
			return nil, err
		}
		span.SetAttribute("stage", "load_src")
		secondObj, err = p.loader.Load(paths.src)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrObjectLoad.Error()), "path", paths.src)
			span.RecordError(err)
			return nil, err
		}
	}

	// Stage 5: diff, only when both sides loaded. The differ annotates
	// both objects in place.
	if firstObj != nil && secondObj != nil {
		if err := jobs.UpdateStatus(status, "Performing diff", 4, totalSteps, cancel); err != nil {
			return nil, err
		}
		span.SetAttribute("stage", "diff")
		if err := p.differ.Diff(firstObj, secondObj); err != nil {
			err = zerr.Wrap(err, domain.ErrDiffFailed.Error())
			span.RecordError(err)
			return nil, err
		}
	}

	if err := jobs.UpdateStatus(status, "Complete", totalSteps, totalSteps, cancel); err != nil {
		return nil, err
	}
	return &domain.BuildResult{
		FirstStatus:  firstStatus,
		SecondStatus: secondStatus,
		FirstObj:     firstObj,
		SecondObj:    secondObj,
	}, nil
}

// targetPaths holds the resolved per-side artifact paths and their
// project-relative build targets.
type targetPaths struct {
	asm    string
	src    string
	asmRel string
	srcRel string
}

// resolvePaths validates the configured roots and resolves the target path
// under both of them. Any failure here aborts the run before stage 1.
func resolvePaths(cfg domain.Config, target string) (targetPaths, error) {
	switch {
	case cfg.ProjectRoot == "":
		return targetPaths{}, domain.ErrMissingProjectRoot
	case cfg.AsmBuildRoot == "":
		return targetPaths{}, domain.ErrMissingAsmBuildRoot
	case cfg.SrcBuildRoot == "":
		return targetPaths{}, domain.ErrMissingSrcBuildRoot
	case target == "":
		return targetPaths{}, domain.ErrMissingTargetObject
	}

	paths := targetPaths{
		asm: filepath.Join(cfg.AsmBuildRoot, target),
		src: filepath.Join(cfg.SrcBuildRoot, target),
	}

	var err error
	if paths.asmRel, err = relToRoot(cfg.ProjectRoot, paths.asm); err != nil {
		return targetPaths{}, err
	}
	if paths.srcRel, err = relToRoot(cfg.ProjectRoot, paths.src); err != nil {
		return targetPaths{}, err
	}
	return paths, nil
}

// relToRoot resolves path relative to root, rejecting anything that
// escapes it. The build tool receives the relative form with the project
// root as its working directory.
func relToRoot(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPathOutsideProject.Error()), "path", path)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.Wrap(domain.ErrPathOutsideProject, "path escapes the project root"), "path", path)
	}
	return rel, nil
}
