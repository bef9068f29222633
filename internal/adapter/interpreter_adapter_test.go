package adapter

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "razor.dev/pkg/razorbuild/internal/model"
)

// fakeInterpreter writes a shell script that echoes the last line of the
// program passed with -c, so tests can see which expression was evaluated.
func fakeInterpreter(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}

	path := filepath.Join(t.TempDir(), "python")
	writeTestFile(t, path, "#!/bin/sh\n"+body+"\n")
	require.NoError(t, chmodExec(path))

	return path
}

func TestPythonEnvironment_Eval(t *testing.T) {
	interp := fakeInterpreter(t, `printf '%s' "$2" | tail -n 1`)
	env := NewPythonEnvironment(interp)

	out, err := env.Eval(context.Background(), []string{"raf"}, "raf.__version__")
	require.NoError(t, err)
	assert.Equal(t, "print(raf.__version__)", out)
}

func TestPythonEnvironment_EvalImportsModules(t *testing.T) {
	interp := fakeInterpreter(t, `printf '%s' "$2" | tr '\n' ';'`)
	env := NewPythonEnvironment(interp)

	out, err := env.Eval(context.Background(), []string{"os", "tvm"}, "1")
	require.NoError(t, err)
	assert.Equal(t, "import os;import tvm;print(1);", out)
}

func TestPythonEnvironment_EvalFailure(t *testing.T) {
	interp := fakeInterpreter(t, `echo "ModuleNotFoundError: raf" >&2; exit 1`)
	env := NewPythonEnvironment(interp)

	_, err := env.Eval(context.Background(), []string{"raf"}, "raf.__version__")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ModuleNotFoundError")
}

func TestPythonEnvironment_Library(t *testing.T) {
	interp := fakeInterpreter(t, `printf '%s' "$2" | tail -n 1`)
	env := NewPythonEnvironment(interp)

	lib := env.Library(m.Dependency{
		Name:       "tvm",
		Module:     "tvm",
		LibDirExpr: "os.path.dirname(tvm._ffi.libinfo.find_lib_path()[0])",
	})

	assert.Equal(t, "tvm", lib.Name())

	version, err := lib.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "print(tvm.__version__)", version)

	dir, err := lib.LibraryDir(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "print(os.path.dirname(tvm._ffi.libinfo.find_lib_path()[0]))", dir)

	unlinked := env.Library(m.Dependency{Name: "torch", Module: "torch"})
	dir, err = unlinked.LibraryDir(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dir)
}

func TestPythonEnvironment_ExtensionSuffix(t *testing.T) {
	t.Run("interpreter value", func(t *testing.T) {
		env := NewPythonEnvironment(fakeInterpreter(t, `echo ".cpython-38-x86_64-linux-gnu.so"`))

		suffix, err := env.ExtensionSuffix(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ".cpython-38-x86_64-linux-gnu.so", suffix)
	})

	t.Run("falls back to .so", func(t *testing.T) {
		env := NewPythonEnvironment(fakeInterpreter(t, `echo None`))

		suffix, err := env.ExtensionSuffix(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ".so", suffix)
	})
}

func TestPythonEnvironment_IncludeDirs(t *testing.T) {
	list := strings.Join([]string{"/torch/include", "/torch/include/api", "/usr/include/python3.8"}, string(os.PathListSeparator))
	env := NewPythonEnvironment(fakeInterpreter(t, "echo '"+list+"'"))

	dirs, err := env.IncludeDirs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/torch/include", "/torch/include/api", "/usr/include/python3.8"}, dirs)
}

func TestNewPythonEnvironment_DefaultInterpreter(t *testing.T) {
	env := NewPythonEnvironment("  ")
	assert.Equal(t, "python3", env.interpreter)
}
