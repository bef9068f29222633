package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	m "razor.dev/pkg/razorbuild/internal/model"
)

// Toolchain is the conventional compiler driver: it prepares the per-file
// bookkeeping, compiles one file at a time, and links the artifact.
type Toolchain interface {
	Name() string

	// Prepare computes the object layout, compiler arguments and staleness for
	// sources. Up-to-date objects appear in Objects but not in Jobs.
	Prepare(ctx context.Context, sources []m.Path, opts m.CompileOptions) (m.PreparedCompile, error)

	// Compile is the toolchain's own sequential loop. It stops at the first
	// failure. progress may be nil.
	Compile(ctx context.Context, prepared m.PreparedCompile, progress CompileProgress) ([]m.CompileResult, error)

	// Link produces output from objects.
	Link(ctx context.Context, objects []m.Path, link m.LinkConfiguration, output m.Path) error
}

// CompileProgress receives per-unit events from a compile loop.
type CompileProgress interface {
	UnitStarted(object m.Path)
	UnitFinished(result m.CompileResult)
}

// UnitCompiler is the optional per-file compile primitive. Toolchains exposing
// it can be driven by a parallel strategy.
type UnitCompiler interface {
	CompileUnit(ctx context.Context, job m.CompileJob) error
}

// LocalToolchain drives a gcc-compatible compiler binary.
type LocalToolchain struct {
	fs       SourceFSAdapter
	compiler string
	baseDir  m.Path
	output   io.Writer
	mu       sync.Mutex
}

// NewLocalToolchain constructs a LocalToolchain. Relative source paths are
// resolved against baseDir when computing the object layout.
func NewLocalToolchain(fsAdapter SourceFSAdapter, compiler string, baseDir m.Path, output io.Writer) *LocalToolchain {
	if fsAdapter == nil {
		fsAdapter = NewLocalSourceFSAdapter()
	}

	if strings.TrimSpace(compiler) == "" {
		compiler = "c++"
	}

	if output == nil {
		output = os.Stderr
	}

	return &LocalToolchain{fs: fsAdapter, compiler: compiler, baseDir: baseDir, output: output}
}

// Name returns the compiler binary.
func (t *LocalToolchain) Name() string {
	return t.compiler
}

// Prepare maps every source to an object under opts.OutputDir.
func (t *LocalToolchain) Prepare(ctx context.Context, sources []m.Path, opts m.CompileOptions) (m.PreparedCompile, error) {
	prepared := m.PreparedCompile{
		Objects: make([]m.Path, 0, len(sources)),
		Jobs:    make(map[m.Path]m.CompileJob, len(sources)),
	}

	ordered := append([]m.Path(nil), sources...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	for _, source := range ordered {
		if err := ctx.Err(); err != nil {
			return m.PreparedCompile{}, err
		}

		srcInfo, err := t.fs.FileInfo(source)
		if err != nil {
			return m.PreparedCompile{}, fmt.Errorf("source %s: %w", source, err)
		}

		object := t.objectPath(opts.OutputDir, source)
		prepared.Objects = append(prepared.Objects, object)

		if objInfo, err := t.fs.FileInfo(object); err == nil && !objInfo.ModTime().Before(srcInfo.ModTime()) {
			slog.Debug("Object is up to date", "object", object, "source", source)
			continue
		}

		prepared.Jobs[object] = m.CompileJob{
			ObjectPath:   object,
			SourcePath:   source,
			Extension:    filepath.Ext(string(source)),
			CompilerArgs: t.compileArgs(source, object, opts),
		}
	}

	return prepared, nil
}

func (t *LocalToolchain) objectPath(outputDir m.Path, source m.Path) m.Path {
	rel := filepath.Clean(string(source))

	if r, err := filepath.Rel(string(t.baseDir), rel); err == nil && !strings.HasPrefix(r, "..") {
		rel = r
	} else if filepath.IsAbs(rel) {
		rel = strings.TrimLeft(filepath.ToSlash(rel), "/")
	}

	for strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = strings.TrimPrefix(rel, ".."+string(filepath.Separator))
	}

	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".o"

	return m.Path(filepath.Join(string(outputDir), filepath.FromSlash(rel)))
}

func (t *LocalToolchain) compileArgs(source, object m.Path, opts m.CompileOptions) []string {
	args := []string{"-c", string(source), "-o", string(object), "-fPIC"}

	for _, dir := range opts.IncludeDirs {
		args = append(args, "-I"+string(dir))
	}

	for _, macro := range opts.Macros {
		args = append(args, "-D"+macro)
	}

	return append(args, opts.ExtraArgs...)
}

// CompileUnit compiles a single job. Compiler output is written to the
// toolchain's output writer without interleaving.
func (t *LocalToolchain) CompileUnit(ctx context.Context, job m.CompileJob) error {
	if err := os.MkdirAll(filepath.Dir(string(job.ObjectPath)), 0o750); err != nil {
		return fmt.Errorf("create object dir for %s: %w", job.ObjectPath, err)
	}

	// #nosec G204 - compiler and arguments come from the build configuration
	cmd := exec.CommandContext(ctx, t.compiler, job.CompilerArgs...)

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	t.flush(output.Bytes())

	if err != nil {
		return fmt.Errorf("compile %s: %w", job.SourcePath, err)
	}

	return nil
}

func (t *LocalToolchain) flush(output []byte) {
	if len(output) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = t.output.Write(output)
}

// Compile runs CompileUnit for each stale object in order.
func (t *LocalToolchain) Compile(ctx context.Context, prepared m.PreparedCompile, progress CompileProgress) ([]m.CompileResult, error) {
	results := make([]m.CompileResult, 0, len(prepared.Objects))

	for _, object := range prepared.Objects {
		job, ok := prepared.Jobs[object]
		if !ok {
			result := m.CompileResult{Object: object, Skipped: true}
			results = append(results, result)

			if progress != nil {
				progress.UnitFinished(result)
			}

			continue
		}

		if progress != nil {
			progress.UnitStarted(object)
		}

		start := time.Now()
		err := t.CompileUnit(ctx, job)
		result := m.CompileResult{
			Object:   object,
			Source:   job.SourcePath,
			Duration: time.Since(start),
			Err:      err,
		}
		results = append(results, result)

		if progress != nil {
			progress.UnitFinished(result)
		}

		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// Link runs the compiler as linker driver.
func (t *LocalToolchain) Link(ctx context.Context, objects []m.Path, link m.LinkConfiguration, output m.Path) error {
	if err := os.MkdirAll(filepath.Dir(string(output)), 0o750); err != nil {
		return fmt.Errorf("create output dir for %s: %w", output, err)
	}

	args := []string{"-o", string(output)}
	for _, object := range objects {
		args = append(args, string(object))
	}

	args = append(args, link.Args()...)

	// #nosec G204 - compiler and arguments come from the build configuration
	cmd := exec.CommandContext(ctx, t.compiler, args...)

	var out bytes.Buffer

	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	t.flush(out.Bytes())

	if err != nil {
		return fmt.Errorf("link %s: %w", output, err)
	}

	return nil
}
