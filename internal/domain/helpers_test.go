package domain

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	adaptermocks "razor.dev/pkg/razorbuild/internal/adapter/mocks"
	"razor.dev/pkg/razorbuild/internal/controller"
	m "razor.dev/pkg/razorbuild/internal/model"
)

func newTestUI(t *testing.T) (controller.UI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return controller.NewSimpleUI(cmd), &out, &errOut
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func relPaths(t *testing.T, base string, paths []m.Path) []string {
	t.Helper()

	rels := make([]string, 0, len(paths))

	for _, path := range paths {
		rel, err := filepath.Rel(base, string(path))
		require.NoError(t, err)

		rels = append(rels, filepath.ToSlash(rel))
	}

	return rels
}

// unitToolchain is a toolchain mock that also exposes the per-unit primitive.
type unitToolchain struct {
	*adaptermocks.MockToolchain
	*adaptermocks.MockUnitCompiler
}

func newUnitToolchain(t *testing.T) unitToolchain {
	t.Helper()

	return unitToolchain{
		MockToolchain:    adaptermocks.NewMockToolchain(t),
		MockUnitCompiler: adaptermocks.NewMockUnitCompiler(t),
	}
}
