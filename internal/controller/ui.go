// Package controller renders build progress and inspection output.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "razor.dev/pkg/razorbuild/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeBuild StartMode = iota
	ModeClean
	ModeInspect
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithBuildMode sets the UI to full build mode.
func WithBuildMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBuild
	}
}

// WithCleanMode sets the UI to clean mode.
func WithCleanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeClean
	}
}

// WithInspectMode sets the UI to read-only inspection (sources, plan).
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeBuild}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines what the pipeline reports to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context)
	DisplayBuildIdentity(ctx context.Context, record m.ProvenanceRecord)
	DisplayStage(ctx context.Context, stage string, detail string)
	DisplaySources(ctx context.Context, sources []m.Path)
	DisplayPlan(ctx context.Context, flags m.ToolchainFlags)
	DisplayCompileStart(ctx context.Context, strategy string, workers int, units int)
	DisplayUnitStarted(ctx context.Context, object m.Path)
	DisplayUnitFinished(ctx context.Context, result m.CompileResult)
	DisplayArtifact(ctx context.Context, artifact m.Path)
	DisplayRemoved(ctx context.Context, path m.Path)
	DisplayReport(ctx context.Context, report m.BuildReport)
	DisplayError(ctx context.Context, err error)
}

// NewUI returns the interactive TUI on a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
