package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"razor.dev/pkg/razorbuild/internal/adapter"
	"razor.dev/pkg/razorbuild/internal/controller"
	m "razor.dev/pkg/razorbuild/internal/model"
)

// Pipeline is the entry point of every command.
type Pipeline interface {
	// Build runs the full pipeline, or CleanStage when the command is "clean".
	Build(ctx context.Context, args BuildArgs) error
	Clean(ctx context.Context, args CleanArgs) error
	// Sources lists the source set without generating or compiling anything.
	Sources(ctx context.Context, args SourcesArgs) (m.SourceSet, error)
	// Plan derives the flag plan without building.
	Plan(ctx context.Context, args BuildArgs) (m.ToolchainFlags, error)
	// Report shows the report saved by the last build.
	Report(ctx context.Context, args ReportArgs) (m.BuildReport, error)
}

// ToolchainFactory creates the compiler driver for one build.
type ToolchainFactory func(compiler string, baseDir m.Path) adapter.Toolchain

// EnvironmentFactory creates the interpreter environment for one build.
type EnvironmentFactory func(interpreter string) adapter.ExtensionEnvironment

type pipeline struct {
	adapter.ReportStore
	controller.UI

	fsAdapter    adapter.SourceFSAdapter
	scripts      adapter.ScriptRunner
	resolver     VersionResolver
	toolchains   ToolchainFactory
	environments EnvironmentFactory
}

// NewPipeline creates a Pipeline with the provided dependencies.
func NewPipeline(
	fsAdapter adapter.SourceFSAdapter,
	revisions adapter.RevisionAdapter,
	scripts adapter.ScriptRunner,
	reportStore adapter.ReportStore,
	ui controller.UI,
	toolchains ToolchainFactory,
	environments EnvironmentFactory,
) Pipeline {
	return &pipeline{
		ReportStore:  reportStore,
		UI:           ui,
		fsAdapter:    fsAdapter,
		scripts:      scripts,
		resolver:     NewVersionResolver(revisions),
		toolchains:   toolchains,
		environments: environments,
	}
}

func (p *pipeline) Build(ctx context.Context, args BuildArgs) error {
	if args.Command.IsClean() {
		return p.Clean(ctx, CleanArgs{BaseDir: args.BaseDir, OutputDir: args.OutputDir})
	}

	bc, err := NewBuildContext(ctx, args, p.resolver)
	if err != nil {
		return p.fail(ctx, err)
	}

	if err := p.Start(ctx, controller.WithBuildMode()); err != nil {
		slog.Error("Failed to start build UI", "error", err)
		return err
	}

	defer func() {
		p.Close(ctx)
		p.Wait(ctx)
	}()

	env := p.environments(bc.Args.Interpreter)
	toolchain := p.toolchains(bc.Args.Compiler, bc.Args.BaseDir)

	if err := p.stamp(ctx, bc, env); err != nil {
		return p.fail(ctx, err)
	}

	p.DisplayStage(ctx, "Generating bindings", string(bc.Args.CodegenScript))

	if err := NewCodeGenInvoker(p.scripts).Generate(ctx, bc.Args.BaseDir, bc.Args.CodegenScript, bc.Args.UpstreamSource); err != nil {
		return p.fail(ctx, err)
	}

	if err := p.collectSources(ctx, bc); err != nil {
		return p.fail(ctx, err)
	}

	bc.Flags, err = NewLinkPlanner(env).Plan(ctx, bc.linkInputs())
	if err != nil {
		return p.fail(ctx, err)
	}

	bc.Strategy = ProbeStrategy(toolchain, bc.Args.CompileParallel, bc.Args.Jobs)
	slog.Info("Selected compile strategy", "strategy", bc.Strategy.Name(), "workers", bc.Strategy.Workers())

	artifact, err := p.compileAndLink(ctx, bc, toolchain, env)
	if err != nil {
		return p.fail(ctx, err)
	}

	p.DisplayArtifact(ctx, artifact)

	if !bc.Args.CppTests {
		return nil
	}

	p.DisplayStage(ctx, "Building C++ tests", string(bc.Args.TestScript))

	if err := NewTestBuildStage(p.scripts).BuildTests(ctx, bc.Args.BaseDir, bc.Args.TestScript); err != nil {
		return p.fail(ctx, err)
	}

	return nil
}

func (p *pipeline) stamp(ctx context.Context, bc *BuildContext, env adapter.ExtensionEnvironment) error {
	stamper := NewProvenanceStamper(p.fsAdapter, env)

	record, err := stamper.Record(ctx, bc)
	if err != nil {
		return err
	}

	bc.Provenance = record
	p.DisplayBuildIdentity(ctx, record)

	return stamper.Stamp(ctx, bc.Args.BaseDir, bc.Args.Stamp, record)
}

func (p *pipeline) collectSources(ctx context.Context, bc *BuildContext) error {
	builder := NewSourceSetBuilder(p.fsAdapter)

	sources, err := builder.Build(ctx, bc.Args.BaseDir, bc.Args.Layout)
	if err != nil {
		return err
	}

	fingerprint, err := builder.Fingerprint(sources)
	if err != nil {
		return newStageError(StageSources, "", err)
	}

	bc.Sources = sources
	bc.Fingerprint = fingerprint
	slog.Info("Collected sources", "count", sources.Len(), "fingerprint", fingerprint)

	return nil
}

func (p *pipeline) compileAndLink(ctx context.Context, bc *BuildContext, toolchain adapter.Toolchain, env adapter.ExtensionEnvironment) (m.Path, error) {
	prepared, err := toolchain.Prepare(ctx, bc.Sources.Sorted(), m.CompileOptions{
		OutputDir:   bc.Args.ObjectDir(),
		IncludeDirs: bc.Flags.IncludeDirs,
		Macros:      bc.Flags.Macros,
		ExtraArgs:   bc.Flags.CompileArgs,
	})
	if err != nil {
		return "", newStageError(StageCompile, toolchain.Name(), fmt.Errorf("prepare: %w", err))
	}

	p.DisplayCompileStart(ctx, bc.Strategy.Name(), bc.Strategy.Workers(), len(prepared.Objects))

	results, err := bc.Strategy.CompileAll(ctx, prepared, uiObserver{ctx: ctx, ui: p.UI})
	if err != nil {
		p.saveReport(bc, results, "")
		return "", err
	}

	suffix, err := env.ExtensionSuffix(ctx)
	if err != nil {
		return "", newStageError(StageLink, "extension suffix lookup", err)
	}

	artifact := resolvePath(bc.Args.BaseDir, m.Path(filepath.Join(string(bc.Args.OutputDir), bc.Args.ExtensionName+suffix)))
	p.DisplayStage(ctx, "Linking", string(artifact))

	if err := toolchain.Link(ctx, prepared.Objects, bc.Flags.Link, artifact); err != nil {
		slog.Error("Link failed", "artifact", artifact, "error", err)
		return "", newStageError(StageLink, toolchain.Name(), err)
	}

	p.saveReport(bc, results, artifact)

	return artifact, nil
}

// saveReport is best effort; a report failure never fails the build.
func (p *pipeline) saveReport(bc *BuildContext, results []m.CompileResult, artifact m.Path) {
	report := m.BuildReport{
		Version:           bc.Version.Tag(),
		Provenance:        bc.Provenance,
		Platform:          bc.Args.Platform,
		Strategy:          bc.Strategy.Name(),
		Workers:           bc.Strategy.Workers(),
		SourceCount:       bc.Sources.Len(),
		SourceFingerprint: bc.Fingerprint,
		Flags:             bc.Flags,
		Results:           results,
		Artifact:          artifact,
		StartedAt:         bc.StartedAt,
		FinishedAt:        time.Now(),
	}

	path := resolvePath(bc.Args.BaseDir, bc.Args.ReportPath)
	if err := p.SaveReport(path, report); err != nil {
		slog.Warn("Failed to save build report", "path", path, "error", err)
	}
}

func (p *pipeline) Clean(ctx context.Context, args CleanArgs) error {
	if err := p.Start(ctx, controller.WithCleanMode()); err != nil {
		return err
	}

	defer func() {
		p.Close(ctx)
		p.Wait(ctx)
	}()

	args = args.withDefaults()
	p.DisplayStage(ctx, "Cleaning", string(args.IgnoreFile))

	removed, err := NewCleanStage(p.fsAdapter).Clean(ctx, args)
	for _, path := range removed {
		p.DisplayRemoved(ctx, path)
	}

	return err
}

func (p *pipeline) Sources(ctx context.Context, args SourcesArgs) (m.SourceSet, error) {
	if args.BaseDir == "" {
		args.BaseDir = "."
	}

	if args.Layout.IsZero() {
		args.Layout = DefaultSourceLayout()
	}

	if err := p.Start(ctx, controller.WithInspectMode()); err != nil {
		return nil, err
	}

	defer p.Close(ctx)

	sources, err := NewSourceSetBuilder(p.fsAdapter).Build(ctx, args.BaseDir, args.Layout)
	if err != nil {
		return nil, p.fail(ctx, err)
	}

	p.DisplaySources(ctx, sources.Sorted())

	return sources, nil
}

func (p *pipeline) Plan(ctx context.Context, args BuildArgs) (m.ToolchainFlags, error) {
	args = args.withDefaults()
	if err := args.Validate(); err != nil {
		return m.ToolchainFlags{}, p.fail(ctx, err)
	}

	if err := p.Start(ctx, controller.WithInspectMode()); err != nil {
		return m.ToolchainFlags{}, err
	}

	defer p.Close(ctx)

	bc := &BuildContext{Args: args}

	flags, err := NewLinkPlanner(p.environments(args.Interpreter)).Plan(ctx, bc.linkInputs())
	if err != nil {
		return m.ToolchainFlags{}, p.fail(ctx, err)
	}

	p.DisplayPlan(ctx, flags)

	return flags, nil
}

func (p *pipeline) Report(ctx context.Context, args ReportArgs) (m.BuildReport, error) {
	if err := p.Start(ctx, controller.WithInspectMode()); err != nil {
		return m.BuildReport{}, err
	}

	defer p.Close(ctx)

	path := args.Path()

	report, err := p.LoadReport(path)
	if err != nil {
		slog.Error("Failed to load build report", "path", path, "error", err)
		return m.BuildReport{}, p.fail(ctx, err)
	}

	p.DisplayReport(ctx, report)

	return report, nil
}

func (p *pipeline) fail(ctx context.Context, err error) error {
	p.DisplayError(ctx, err)
	return err
}

func (bc *BuildContext) linkInputs() LinkInputs {
	return LinkInputs{
		BaseDir:        bc.Args.BaseDir,
		UpstreamSource: bc.Args.UpstreamSource,
		Platform:       bc.Args.Platform,
		Compiler:       bc.Args.Compiler,
		Debug:          bc.Args.Debug,
		ExtensionName:  bc.Args.ExtensionName,
		Dependencies:   bc.Args.Dependencies,
	}
}

type uiObserver struct {
	ctx context.Context
	ui  controller.UI
}

func (o uiObserver) UnitStarted(object m.Path) {
	o.ui.DisplayUnitStarted(o.ctx, object)
}

func (o uiObserver) UnitFinished(result m.CompileResult) {
	o.ui.DisplayUnitFinished(o.ctx, result)
}
