package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	m "razor.dev/pkg/razorbuild/internal/model"
)

// UpstreamLibrary is the capability an upstream dependency exposes to the build:
// its version string and the directory holding its compiled libraries.
type UpstreamLibrary interface {
	Name() string
	Version(ctx context.Context) (string, error)
	// LibraryDir returns "" when the dependency is not linked.
	LibraryDir(ctx context.Context) (string, error)
}

// ExtensionEnvironment describes the interpreter the artifact is built for.
type ExtensionEnvironment interface {
	// Library returns the lookup handle for an upstream dependency.
	Library(dep m.Dependency) UpstreamLibrary

	// SitePackages returns the active library-install location.
	SitePackages(ctx context.Context) (string, error)

	// ExtensionSuffix returns the platform file suffix of extension modules.
	ExtensionSuffix(ctx context.Context) (string, error)

	// IncludeDirs returns the header directories every extension compiles against.
	IncludeDirs(ctx context.Context) ([]string, error)
}

const frameworkExtensionModule = "torch.utils.cpp_extension"

// PythonEnvironment implements ExtensionEnvironment by evaluating expressions
// with a Python interpreter.
type PythonEnvironment struct {
	interpreter string
}

// NewPythonEnvironment constructs a PythonEnvironment for the given interpreter binary.
func NewPythonEnvironment(interpreter string) *PythonEnvironment {
	if strings.TrimSpace(interpreter) == "" {
		interpreter = "python3"
	}

	return &PythonEnvironment{interpreter: interpreter}
}

// Eval imports the given modules and prints expr, returning the trimmed output.
func (e *PythonEnvironment) Eval(ctx context.Context, imports []string, expr string) (string, error) {
	var script strings.Builder

	for _, module := range imports {
		fmt.Fprintf(&script, "import %s\n", module)
	}

	fmt.Fprintf(&script, "print(%s)\n", expr)

	// #nosec G204 - interpreter and expressions come from the build configuration
	cmd := exec.CommandContext(ctx, e.interpreter, "-c", script.String())

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: evaluate %q: %w: %s", e.interpreter, expr, err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Library returns an UpstreamLibrary backed by this interpreter.
func (e *PythonEnvironment) Library(dep m.Dependency) UpstreamLibrary {
	return &pythonLibrary{env: e, dep: dep}
}

// SitePackages returns the first site-packages directory of the interpreter.
func (e *PythonEnvironment) SitePackages(ctx context.Context) (string, error) {
	return e.Eval(ctx, []string{"site"}, "site.getsitepackages()[0]")
}

// ExtensionSuffix returns EXT_SUFFIX, falling back to ".so".
func (e *PythonEnvironment) ExtensionSuffix(ctx context.Context) (string, error) {
	suffix, err := e.Eval(ctx, []string{"sysconfig"}, "sysconfig.get_config_var('EXT_SUFFIX') or '.so'")
	if err != nil {
		return "", err
	}

	if suffix == "" || suffix == "None" {
		return ".so", nil
	}

	return suffix, nil
}

// IncludeDirs returns the framework extension headers plus the interpreter headers.
func (e *PythonEnvironment) IncludeDirs(ctx context.Context) ([]string, error) {
	out, err := e.Eval(ctx,
		[]string{"os", "sysconfig", frameworkExtensionModule},
		"os.pathsep.join("+frameworkExtensionModule+".include_paths() + [sysconfig.get_paths()['include']])",
	)
	if err != nil {
		return nil, err
	}

	return splitPathList(out), nil
}

func splitPathList(value string) []string {
	var dirs []string

	for _, dir := range filepath.SplitList(value) {
		if strings.TrimSpace(dir) != "" {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

type pythonLibrary struct {
	env *PythonEnvironment
	dep m.Dependency
}

func (l *pythonLibrary) Name() string {
	return l.dep.Name
}

func (l *pythonLibrary) Version(ctx context.Context) (string, error) {
	return l.env.Eval(ctx, []string{l.dep.Module}, l.dep.Module+".__version__")
}

func (l *pythonLibrary) LibraryDir(ctx context.Context) (string, error) {
	if l.dep.LibDirExpr == "" {
		return "", nil
	}

	return l.env.Eval(ctx, []string{"os", l.dep.Module}, l.dep.LibDirExpr)
}
