package domain

import (
	"context"
	"log/slog"
	"path/filepath"

	"razor.dev/pkg/razorbuild/internal/adapter"
	m "razor.dev/pkg/razorbuild/internal/model"
)

// upstreamPathEnv passes the upstream source tree to the generation script.
const upstreamPathEnv = "PTDIR"

// CodeGenInvoker runs the binding generator. Generated files are inputs to
// source discovery, so a failure aborts the build.
type CodeGenInvoker interface {
	Generate(ctx context.Context, baseDir m.Path, script m.Path, upstream m.Path) error
}

type codeGenInvoker struct {
	runner adapter.ScriptRunner
}

// NewCodeGenInvoker constructs a CodeGenInvoker.
func NewCodeGenInvoker(runner adapter.ScriptRunner) CodeGenInvoker {
	return &codeGenInvoker{runner: runner}
}

func (c *codeGenInvoker) Generate(ctx context.Context, baseDir m.Path, script m.Path, upstream m.Path) error {
	if abs, err := filepath.Abs(string(upstream)); err == nil {
		upstream = m.Path(abs)
	}

	command := adapter.ScriptCommand{
		Path: resolvePath(baseDir, script),
		Env:  map[string]string{upstreamPathEnv: string(upstream)},
		Dir:  baseDir,
	}

	slog.Debug("Running code generation", "command", command.String(), "upstream", upstream)

	if err := c.runner.Run(ctx, command); err != nil {
		slog.Error("Code generation failed", "command", command.String(), "error", err)
		return newStageError(StageCodegen, command.String(), err)
	}

	return nil
}
