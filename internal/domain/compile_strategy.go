package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"razor.dev/pkg/razorbuild/internal/adapter"
	m "razor.dev/pkg/razorbuild/internal/model"
)

// Strategy names recorded in the build context and report.
const (
	StrategySequential = "sequential"
	StrategyPooled     = "pooled"
)

// CompileObserver receives per-unit progress. Calls may arrive concurrently.
type CompileObserver interface {
	UnitStarted(object m.Path)
	UnitFinished(result m.CompileResult)
}

type noopObserver struct{}

func (noopObserver) UnitStarted(m.Path) {}
func (noopObserver) UnitFinished(m.CompileResult) {}

// CompileStrategy executes the jobs of a prepared compilation.
type CompileStrategy interface {
	Name() string
	Workers() int
	CompileAll(ctx context.Context, prepared m.PreparedCompile, observer CompileObserver) ([]m.CompileResult, error)
}

// ProbeStrategy picks the compile strategy once per build. The pooled strategy
// needs a toolchain exposing a per-unit compile primitive; any other toolchain
// runs its own sequential loop.
func ProbeStrategy(toolchain adapter.Toolchain, parallel bool, workers int) CompileStrategy {
	if !parallel {
		return NewSequentialStrategy(toolchain)
	}

	unit, ok := toolchain.(adapter.UnitCompiler)
	if !ok {
		slog.Debug("Toolchain has no per-unit compile primitive, compiling sequentially", "toolchain", toolchain.Name())
		return NewSequentialStrategy(toolchain)
	}

	return NewPooledStrategy(unit, workers)
}

type sequentialStrategy struct {
	toolchain adapter.Toolchain
}

// NewSequentialStrategy delegates to the toolchain's own compile loop.
func NewSequentialStrategy(toolchain adapter.Toolchain) CompileStrategy {
	return &sequentialStrategy{toolchain: toolchain}
}

func (s *sequentialStrategy) Name() string {
	return StrategySequential
}

func (s *sequentialStrategy) Workers() int {
	return 1
}

func (s *sequentialStrategy) CompileAll(ctx context.Context, prepared m.PreparedCompile, observer CompileObserver) ([]m.CompileResult, error) {
	if observer == nil {
		observer = noopObserver{}
	}

	results, err := s.toolchain.Compile(ctx, prepared, observer)
	if err != nil {
		slog.Error("Compilation failed", "strategy", s.Name(), "error", err)
		return results, newStageError(StageCompile, s.toolchain.Name(), err)
	}

	return results, nil
}

type pooledStrategy struct {
	compiler adapter.UnitCompiler
	workers  int
}

// NewPooledStrategy compiles units on a bounded worker pool.
func NewPooledStrategy(compiler adapter.UnitCompiler, workers int) CompileStrategy {
	if workers < 1 {
		workers = 1
	}

	return &pooledStrategy{compiler: compiler, workers: workers}
}

func (s *pooledStrategy) Name() string {
	return StrategyPooled
}

func (s *pooledStrategy) Workers() int {
	return s.workers
}

// CompileAll dispatches every object to the pool and waits for all of them.
// A failing unit does not cancel its siblings; failures are reported together
// once the pool has drained.
func (s *pooledStrategy) CompileAll(ctx context.Context, prepared m.PreparedCompile, observer CompileObserver) ([]m.CompileResult, error) {
	if observer == nil {
		observer = noopObserver{}
	}

	results := make([]m.CompileResult, len(prepared.Objects))

	var group errgroup.Group
	group.SetLimit(s.workers)

	for i, object := range prepared.Objects {
		group.Go(func() error {
			job, ok := prepared.Jobs[object]
			if !ok {
				// Up to date under the toolchain's staleness tracking.
				slog.Debug("No compile job for object, skipping", "object", object)

				results[i] = m.CompileResult{Object: object, Skipped: true}
				observer.UnitFinished(results[i])

				return nil
			}

			observer.UnitStarted(object)

			start := time.Now()
			err := s.compiler.CompileUnit(ctx, job)

			results[i] = m.CompileResult{
				Object:   object,
				Source:   job.SourcePath,
				Duration: time.Since(start),
				Err:      err,
			}
			observer.UnitFinished(results[i])

			return nil
		})
	}

	_ = group.Wait()

	var failures []error

	for _, result := range results {
		if result.Failed() {
			failures = append(failures, result.Err)
		}
	}

	if len(failures) > 0 {
		slog.Error("Compilation failed", "strategy", s.Name(), "failed", len(failures), "units", len(results))
		return results, newStageError(StageCompile, fmt.Sprintf("%d of %d unit(s)", len(failures), len(results)), errors.Join(failures...))
	}

	return results, nil
}
