package domain

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	m "razor.dev/pkg/razorbuild/internal/model"
)

const (
	defaultBaseVersion   = "0.1"
	defaultOutputDir     = "build"
	defaultExtensionName = "_RAZORC"
	defaultUpstreamName  = "torch"
	defaultCodegenScript = "scripts/generate_code.sh"
	defaultTestScript    = "test/cpp/run_tests.sh"
	defaultIgnoreFile    = ".gitignore"
	defaultReportPath    = "build/razorbuild-report.yaml"
	defaultInterpreter   = "python3"
	defaultCompiler      = "c++"
	tempDirName          = "temp"
)

// BuildArgs contains the arguments of a full build.
type BuildArgs struct {
	Command        m.BuildCommand
	BaseDir        m.Path
	UpstreamSource m.Path
	UpstreamName   string

	BaseVersion string
	Release     bool

	Debug           bool
	CompileParallel bool
	CppTests        bool
	Compiler        string
	Interpreter     string
	Jobs            int
	Platform        m.Platform

	OutputDir     m.Path
	ExtensionName string
	CodegenScript m.Path
	TestScript    m.Path
	ReportPath    m.Path

	Layout       SourceLayout
	Stamp        StampTargets
	Dependencies []m.Dependency
}

// CleanArgs contains the arguments of the clean command.
type CleanArgs struct {
	BaseDir    m.Path
	IgnoreFile m.Path
	OutputDir  m.Path
}

// SourcesArgs contains the arguments for listing the source set.
type SourcesArgs struct {
	BaseDir m.Path
	Layout  SourceLayout
}

// ReportArgs locates the report of the last build.
type ReportArgs struct {
	BaseDir    m.Path
	ReportPath m.Path
}

// Path resolves the report path against the base dir.
func (a ReportArgs) Path() m.Path {
	base, report := a.BaseDir, a.ReportPath
	if base == "" {
		base = "."
	}

	if report == "" {
		report = defaultReportPath
	}

	return resolvePath(base, report)
}

// BuildContext is the build-wide state of one invocation. It is created once
// by NewBuildContext and threaded through every stage.
type BuildContext struct {
	Args       BuildArgs
	Version    m.BuildVersion
	Upstream   m.UpstreamRevision
	Provenance m.ProvenanceRecord
	Sources    m.SourceSet
	Flags      m.ToolchainFlags
	// Fingerprint is the BLAKE3 digest of the source set.
	Fingerprint string
	Strategy    CompileStrategy
	StartedAt   time.Time
}

// NewBuildContext validates args and resolves the build version. Nothing is
// written before validation passes.
func NewBuildContext(ctx context.Context, args BuildArgs, resolver VersionResolver) (*BuildContext, error) {
	args = args.withDefaults()

	if err := args.Validate(); err != nil {
		return nil, err
	}

	version, upstream, err := resolver.Resolve(ctx, VersionInputs{
		BaseVersion:  args.BaseVersion,
		Release:      args.Release,
		LocalRepo:    args.BaseDir,
		UpstreamRepo: args.UpstreamSource,
	})
	if err != nil {
		return nil, err
	}

	return &BuildContext{
		Args:      args,
		Version:   version,
		Upstream:  upstream,
		StartedAt: time.Now(),
	}, nil
}

// Validate checks the configuration a build cannot start without.
func (a BuildArgs) Validate() error {
	if strings.TrimSpace(string(a.UpstreamSource)) == "" {
		return newStageError(StageConfig, "", ErrMissingUpstreamSource)
	}

	return nil
}

func (a BuildArgs) withDefaults() BuildArgs {
	if a.Command == "" {
		a.Command = m.CommandBuild
	}

	if a.BaseDir == "" {
		a.BaseDir = "."
	}

	if a.UpstreamName == "" {
		a.UpstreamName = defaultUpstreamName
	}

	if a.BaseVersion == "" {
		a.BaseVersion = defaultBaseVersion
	}

	if a.Jobs <= 0 {
		a.Jobs = runtime.NumCPU()
	}

	if a.Platform == "" {
		a.Platform = m.ParsePlatform(runtime.GOOS)
	}

	if a.OutputDir == "" {
		a.OutputDir = defaultOutputDir
	}

	if a.ExtensionName == "" {
		a.ExtensionName = defaultExtensionName
	}

	if a.CodegenScript == "" {
		a.CodegenScript = defaultCodegenScript
	}

	if a.Compiler == "" {
		a.Compiler = defaultCompiler
	}

	if a.Interpreter == "" {
		a.Interpreter = defaultInterpreter
	}

	if a.ReportPath == "" {
		a.ReportPath = defaultReportPath
	}

	if a.TestScript == "" {
		a.TestScript = defaultTestScript
	}

	if a.Layout.IsZero() {
		a.Layout = DefaultSourceLayout()
	}

	if a.Stamp == (StampTargets{}) {
		a.Stamp = DefaultStampTargets()
	}

	if a.Dependencies == nil {
		a.Dependencies = DefaultDependencies()
	}

	return a
}

// ObjectDir is the directory holding intermediate objects.
func (a BuildArgs) ObjectDir() m.Path {
	return resolvePath(a.BaseDir, m.Path(filepath.Join(string(a.OutputDir), tempDirName)))
}

// DefaultDependencies returns the upstream libraries the extension is built
// against, base libraries first. Library dirs are searched in this order.
func DefaultDependencies() []m.Dependency {
	return []m.Dependency{
		{
			Name:       "tvm",
			Module:     "tvm",
			Libraries:  []string{"tvm"},
			LibDirExpr: "os.path.dirname(tvm._ffi.libinfo.find_lib_path()[0])",
		},
		{
			Name:       "raf",
			Module:     "raf",
			Stamp:      true,
			Libraries:  []string{"raf"},
			LibDirExpr: "os.path.dirname(raf._lib.find_lib_path()[0])",
		},
		{
			Name:       "torch",
			Module:     "torch",
			Stamp:      true,
			Libraries:  []string{"c10", "torch", "torch_cpu", "torch_python"},
			LibDirExpr: "os.path.join(os.path.dirname(torch.__file__), 'lib')",
		},
	}
}

func resolvePath(base m.Path, path m.Path) m.Path {
	if filepath.IsAbs(string(path)) {
		return path
	}

	return m.Path(filepath.Join(string(base), string(path)))
}
