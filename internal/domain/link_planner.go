package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"razor.dev/pkg/razorbuild/internal/adapter"
	m "razor.dev/pkg/razorbuild/internal/model"
)

const rpathFlag = "-Wl,-rpath,"

var (
	baseCompileArgs = []string{
		"-std=c++14",
		"-Wno-sign-compare",
		"-Wno-unknown-pragmas",
		"-Wno-deprecated-declarations",
		"-Wno-return-type",
		"-Wunused-macros",
	}
	clangCompileArgs = []string{
		"-Wno-macro-redefined",
		"-Wno-return-std-move",
	}
	debugArgs   = []string{"-O0", "-g"}
	releaseArgs = []string{"-DNDEBUG"}

	// Relative to the base dir. The base dir, razor/ and the upstream tree come first.
	projectIncludeDirs = []string{
		"third_party",
		"third_party/abseil-cpp",
		"third_party/raf/include",
		"third_party/raf/3rdparty/tvm/include",
		"third_party/raf/3rdparty/tvm/3rdparty/compiler-rt",
		"third_party/raf/3rdparty/tvm/3rdparty/dmlc-core/include",
		"third_party/raf/3rdparty/tvm/3rdparty/dlpack/include",
	}
)

// LinkInputs are the inputs of the flag plan.
type LinkInputs struct {
	BaseDir        m.Path
	UpstreamSource m.Path
	Platform       m.Platform
	Compiler       string
	Debug          bool
	ExtensionName  string
	Dependencies   []m.Dependency
}

// LinkPlanner derives the compile and link flags for the target platform.
type LinkPlanner interface {
	Plan(ctx context.Context, inputs LinkInputs) (m.ToolchainFlags, error)
}

type linkPlanner struct {
	env adapter.ExtensionEnvironment
}

// NewLinkPlanner constructs a LinkPlanner that looks up dependency locations
// through env.
func NewLinkPlanner(env adapter.ExtensionEnvironment) LinkPlanner {
	return &linkPlanner{env: env}
}

func (p *linkPlanner) Plan(ctx context.Context, inputs LinkInputs) (m.ToolchainFlags, error) {
	includes, err := p.includeDirs(ctx, inputs)
	if err != nil {
		return m.ToolchainFlags{}, err
	}

	link, err := p.linkConfiguration(ctx, inputs)
	if err != nil {
		return m.ToolchainFlags{}, err
	}

	return m.ToolchainFlags{
		CompileArgs: CompileArgs(inputs.Compiler, inputs.Debug),
		IncludeDirs: includes,
		Macros:      ExtensionMacros(inputs.ExtensionName),
		Link:        link,
	}, nil
}

// CompileArgs returns the extra compiler arguments for compiler.
func CompileArgs(compiler string, debug bool) []string {
	args := append([]string(nil), baseCompileArgs...)

	if IsClangFamily(compiler) {
		args = append(args, clangCompileArgs...)
	}

	if debug {
		return append(args, debugArgs...)
	}

	return append(args, releaseArgs...)
}

// ExtensionMacros returns the preprocessor definitions every extension unit
// is compiled with.
func ExtensionMacros(extensionName string) []string {
	macros := []string{"TORCH_API_INCLUDE_EXTENSION_H"}
	if extensionName != "" {
		macros = append(macros, "TORCH_EXTENSION_NAME="+extensionName)
	}

	return macros
}

// IsClangFamily reports whether the compiler binary belongs to the clang family.
func IsClangFamily(compiler string) bool {
	return strings.HasPrefix(filepath.Base(strings.TrimSpace(compiler)), "clang")
}

// SelfRelativeRPath is the runtime search path naming the artifact's own directory.
func SelfRelativeRPath(platform m.Platform) string {
	if platform == m.PlatformDarwin {
		return rpathFlag + "@loader_path/"
	}

	return rpathFlag + "$ORIGIN/"
}

func sharedObjectFlags(platform m.Platform) []string {
	if platform == m.PlatformDarwin {
		return []string{"-bundle", "-undefined", "dynamic_lookup"}
	}

	return []string{"-shared"}
}

func (p *linkPlanner) includeDirs(ctx context.Context, inputs LinkInputs) ([]m.Path, error) {
	dirs := []m.Path{inputs.BaseDir, resolvePath(inputs.BaseDir, "razor"), inputs.UpstreamSource}

	for _, dir := range projectIncludeDirs {
		dirs = append(dirs, resolvePath(inputs.BaseDir, m.Path(dir)))
	}

	extension, err := p.env.IncludeDirs(ctx)
	if err != nil {
		slog.Error("Failed to query extension include dirs", "error", err)
		return nil, newStageError(StageLink, "extension include paths", err)
	}

	for _, dir := range extension {
		dirs = append(dirs, m.Path(dir))
	}

	return dirs, nil
}

func (p *linkPlanner) linkConfiguration(ctx context.Context, inputs LinkInputs) (m.LinkConfiguration, error) {
	link := m.LinkConfiguration{
		LibrarySearchPaths: []string{string(resolvePath(inputs.BaseDir, "razor/lib"))},
		RuntimePaths:       []string{SelfRelativeRPath(inputs.Platform)},
	}

	var dependencyRPaths []string

	for _, dep := range inputs.Dependencies {
		if len(dep.Libraries) == 0 && !dep.RuntimePath {
			continue
		}

		dir, err := p.env.Library(dep).LibraryDir(ctx)
		if err != nil {
			slog.Error("Failed to locate dependency libraries", "dependency", dep.Name, "error", err)
			return m.LinkConfiguration{}, newStageError(StageLink, fmt.Sprintf("library dir of %s", dep.Name), err)
		}

		if dir != "" {
			link.LibrarySearchPaths = append(link.LibrarySearchPaths, dir)

			if dep.RuntimePath {
				dependencyRPaths = append(dependencyRPaths, rpathFlag+dir)
			}
		}

		// Dependents link before the libraries they depend on.
		link.Libraries = append(append([]string(nil), dep.Libraries...), link.Libraries...)
	}

	sitePackages, err := p.env.SitePackages(ctx)
	if err != nil {
		slog.Error("Failed to locate site-packages", "error", err)
		return m.LinkConfiguration{}, newStageError(StageLink, "site-packages lookup", err)
	}

	link.RuntimePaths = append(link.RuntimePaths, rpathFlag+sitePackages)
	link.RuntimePaths = append(link.RuntimePaths, dependencyRPaths...)

	link.ExtraFlags = sharedObjectFlags(inputs.Platform)
	if inputs.Debug {
		link.ExtraFlags = append(link.ExtraFlags, debugArgs...)
	}

	return link, nil
}
