package domain

import (
	"context"
	"log/slog"

	"razor.dev/pkg/razorbuild/internal/adapter"
	m "razor.dev/pkg/razorbuild/internal/model"
)

const rebuildFlag = "-B"

// TestBuildStage compiles the native test suite after the artifact is linked.
type TestBuildStage interface {
	BuildTests(ctx context.Context, baseDir m.Path, script m.Path) error
}

type testBuildStage struct {
	runner adapter.ScriptRunner
}

// NewTestBuildStage constructs a TestBuildStage.
func NewTestBuildStage(runner adapter.ScriptRunner) TestBuildStage {
	return &testBuildStage{runner: runner}
}

func (s *testBuildStage) BuildTests(ctx context.Context, baseDir m.Path, script m.Path) error {
	command := adapter.ScriptCommand{
		Path: resolvePath(baseDir, script),
		Args: []string{rebuildFlag},
		Dir:  baseDir,
	}

	if err := s.runner.Run(ctx, command); err != nil {
		slog.Error("Failed to build tests", "command", command.String(), "error", err)
		return newStageError(StageTestBuild, command.String(), err)
	}

	return nil
}
