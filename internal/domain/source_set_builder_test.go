package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"razor.dev/pkg/razorbuild/internal/adapter"
	adaptermocks "razor.dev/pkg/razorbuild/internal/adapter/mocks"
	m "razor.dev/pkg/razorbuild/internal/model"
)

func writeTree(t *testing.T, base string, files ...string) {
	t.Helper()

	for _, file := range files {
		writeFile(t, filepath.Join(base, filepath.FromSlash(file)), "// "+file+"\n")
	}
}

func TestSourceSetBuilder_DefaultLayout(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base,
		"third_party/abseil-cpp/absl/base/internal/spinlock.cc",
		"third_party/abseil-cpp/absl/strings/str_cat.cc",
		"third_party/abseil-cpp/absl/strings/str_cat_test.cc",
		"third_party/abseil-cpp/absl/strings/str_cat_benchmark.cc",
		"third_party/abseil-cpp/absl/synchronization/mutex_nonprod.cc",
		"third_party/abseil-cpp/absl/base/internal/spinlock_test_common.cc",
		"third_party/abseil-cpp/absl/flags/internal/flag.cc",
		"third_party/abseil-cpp/absl/random/gaussian_distribution_gentables.cc",
		"third_party/abseil-cpp/absl/random/benchmarks.cc",
		"razor/csrc/value.cpp",
		"razor/csrc/ops/add.cpp",
		"razor/csrc/ops/nested/skip.cpp",
		"razor/csrc/value.h",
		"third_party/client/client.cpp",
		"razor/lazy_tensor_core/csrc/tensor.cpp",
		"razor/lazy_tensors/computation_client/util.cc",
	)

	sources, err := NewSourceSetBuilder(adapter.NewLocalSourceFSAdapter()).Build(context.Background(), m.Path(base), DefaultSourceLayout())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"razor/csrc/ops/add.cpp",
		"razor/csrc/value.cpp",
		"razor/lazy_tensor_core/csrc/tensor.cpp",
		"razor/lazy_tensors/computation_client/util.cc",
		"third_party/abseil-cpp/absl/base/internal/spinlock.cc",
		"third_party/abseil-cpp/absl/strings/str_cat.cc",
		"third_party/client/client.cpp",
	}, relPaths(t, base, sources.Sorted()))
}

func TestSourceSetBuilder_OverlappingGroupsCollapse(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "src/a.cpp", "src/b.cpp")

	layout := SourceLayout{Groups: []GlobGroup{
		{Name: "first", Root: "src", Include: []string{"*.cpp", "a.cpp"}},
		{Name: "second", Root: ".", Include: []string{"src/**/*.cpp"}},
	}}

	sources, err := NewSourceSetBuilder(adapter.NewLocalSourceFSAdapter()).Build(context.Background(), m.Path(base), layout)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.cpp", "src/b.cpp"}, relPaths(t, base, sources.Sorted()))
}

func TestSourceSetBuilder_ExclusionIsPerGroup(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "lib/keep.cc", "lib/drop_test.cc")

	layout := SourceLayout{Groups: []GlobGroup{
		{Name: "filtered", Root: "lib", Include: []string{"*.cc"}, Exclude: []string{"*_test.cc"}},
		{Name: "unfiltered", Root: "lib", Include: []string{"drop_test.cc"}},
	}}

	sources, err := NewSourceSetBuilder(adapter.NewLocalSourceFSAdapter()).Build(context.Background(), m.Path(base), layout)
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/drop_test.cc", "lib/keep.cc"}, relPaths(t, base, sources.Sorted()))
}

func TestSourceSetBuilder_GlobError(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().GlobFiles(mock.Anything, "[").Return(nil, errors.New("bad pattern"))

	layout := SourceLayout{Groups: []GlobGroup{{Name: "broken", Root: ".", Include: []string{"["}}}}

	_, err := NewSourceSetBuilder(fsAdapter).Build(context.Background(), "/src", layout)
	require.Error(t, err)

	stage, _ := FailedStage(err)
	assert.Equal(t, StageSources, stage)
	assert.Contains(t, err.Error(), "group broken")
}

func TestSourceSetBuilder_Fingerprint(t *testing.T) {
	base := t.TempDir()
	writeTree(t, base, "a.cpp", "b.cpp")

	builder := NewSourceSetBuilder(adapter.NewLocalSourceFSAdapter())
	a := m.Path(filepath.Join(base, "a.cpp"))
	b := m.Path(filepath.Join(base, "b.cpp"))

	first, err := builder.Fingerprint(m.NewSourceSet(a, b))
	require.NoError(t, err)
	assert.Len(t, first, 64)

	again, err := builder.Fingerprint(m.NewSourceSet(b, a))
	require.NoError(t, err)
	assert.Equal(t, first, again, "fingerprint does not depend on insertion order")

	writeFile(t, string(b), "int changed;\n")

	changed, err := builder.Fingerprint(m.NewSourceSet(a, b))
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)

	subset, err := builder.Fingerprint(m.NewSourceSet(a))
	require.NoError(t, err)
	assert.NotEqual(t, changed, subset)

	_, err = builder.Fingerprint(m.NewSourceSet(m.Path(filepath.Join(base, "missing.cpp"))))
	require.Error(t, err)
}
