package adapter

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	m "razor.dev/pkg/razorbuild/internal/model"
)

// ScriptCommand describes one external script invocation.
type ScriptCommand struct {
	Path m.Path
	Args []string
	// Env is appended to the current process environment.
	Env map[string]string
	Dir m.Path
}

// String renders the command line for diagnostics.
func (c ScriptCommand) String() string {
	return strings.Join(append([]string{string(c.Path)}, c.Args...), " ")
}

// ScriptRunner abstracts execution of external build scripts.
type ScriptRunner interface {
	// Run executes the script and returns an error on a non-zero exit.
	Run(ctx context.Context, command ScriptCommand) error
}

// LocalScriptRunner runs scripts with os/exec, streaming their output.
type LocalScriptRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewLocalScriptRunner constructs a LocalScriptRunner writing to the process stdio.
func NewLocalScriptRunner() *LocalScriptRunner {
	return NewLocalScriptRunnerWithOutput(os.Stdout, os.Stderr)
}

// NewLocalScriptRunnerWithOutput constructs a LocalScriptRunner writing to the given writers.
func NewLocalScriptRunnerWithOutput(stdout, stderr io.Writer) *LocalScriptRunner {
	return &LocalScriptRunner{stdout: stdout, stderr: stderr}
}

// Run executes the script.
func (r *LocalScriptRunner) Run(ctx context.Context, command ScriptCommand) error {
	// A relative path would otherwise be resolved against Dir.
	path := string(command.Path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	// #nosec G204 - scripts are configured by the project, not by remote input
	cmd := exec.CommandContext(ctx, path, command.Args...)
	cmd.Dir = string(command.Dir)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Env = os.Environ()

	keys := make([]string, 0, len(command.Env))
	for key := range command.Env {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		cmd.Env = append(cmd.Env, key+"="+command.Env[key])
	}

	return cmd.Run()
}
