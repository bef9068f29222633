package domain

import (
	"errors"
	"fmt"
)

// Stage names a pipeline step in diagnostics.
type Stage string

// Pipeline stages that can fail a build.
const (
	StageConfig     Stage = "config"
	StageVersion    Stage = "version"
	StageProvenance Stage = "provenance"
	StageCodegen    Stage = "codegen"
	StageSources    Stage = "sources"
	StageCompile    Stage = "compile"
	StageLink       Stage = "link"
	StageTestBuild  Stage = "test-build"
)

// ErrMissingUpstreamSource is returned when the upstream source path is not configured.
var ErrMissingUpstreamSource = errors.New("upstream source path is not set (PYTORCH_SOURCE_PATH)")

// StageError is a fatal pipeline failure. Command names the external command
// that failed, when there is one.
type StageError struct {
	Stage   Stage
	Command string
	Err     error
}

func (e *StageError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("%s failed: %s: %v", e.Stage, e.Command, e.Err)
	}

	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func newStageError(stage Stage, command string, err error) *StageError {
	return &StageError{Stage: stage, Command: command, Err: err}
}

// FailedStage returns the stage of a StageError anywhere in err's chain.
func FailedStage(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}

	return "", false
}
