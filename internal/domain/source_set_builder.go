package domain

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"lukechampine.com/blake3"

	"razor.dev/pkg/razorbuild/internal/adapter"
	m "razor.dev/pkg/razorbuild/internal/model"
)

// GlobGroup selects files under Root: everything matching an Include pattern
// minus everything matching an Exclude pattern. Patterns are relative to Root
// and support "**".
type GlobGroup struct {
	Name    string   `mapstructure:"name" yaml:"name"`
	Root    m.Path   `mapstructure:"root" yaml:"root"`
	Include []string `mapstructure:"include" yaml:"include"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude,omitempty"`
}

// SourceLayout is the list of glob groups making up the extension sources.
type SourceLayout struct {
	Groups []GlobGroup `mapstructure:"groups" yaml:"groups"`
}

// IsZero reports whether the layout declares no groups.
func (l SourceLayout) IsZero() bool {
	return len(l.Groups) == 0
}

// DefaultSourceLayout returns the vendored abseil subset, the first-party
// directories and the lazy tensor core.
func DefaultSourceLayout() SourceLayout {
	return SourceLayout{Groups: []GlobGroup{
		{
			Name:    "vendored",
			Root:    "third_party/abseil-cpp/absl",
			Include: []string{"**/*.cc"},
			Exclude: []string{
				"**/*_test.cc",
				"**/*_testing.cc",
				"**/benchmarks.cc",
				"**/*_benchmark.cc",
				"**/*_benchmarks.cc",
				"**/spinlock_test_common.cc",
				"flags/**/*.cc",
				"**/mutex_nonprod.cc",
				"**/gaussian_distribution_gentables.cc",
			},
		},
		{
			Name: "first-party",
			Root: ".",
			Include: []string{
				"razor/csrc/*.cpp",
				"razor/csrc/ops/*.cpp",
				"razor/csrc/compiler/*.cpp",
				"razor/csrc/serialization/*.cpp",
				"razor/csrc/value_ext/*.cpp",
				"razor/csrc/pass_ext/*.cpp",
				"razor/csrc/utils/*.cpp",
				"third_party/client/*.cpp",
			},
		},
		{
			Name: "lazy-tensor-core",
			Root: ".",
			Include: []string{
				"razor/lazy_tensor_core/csrc/*.cpp",
				"razor/lazy_tensor_core/csrc/compiler/*.cpp",
				"razor/lazy_tensor_core/csrc/ops/*.cpp",
				"razor/lazy_tensors/**/*.cc",
			},
		},
	}}
}

// SourceSetBuilder discovers the files to compile.
type SourceSetBuilder interface {
	Build(ctx context.Context, baseDir m.Path, layout SourceLayout) (m.SourceSet, error)
	// Fingerprint hashes the member paths and their contents.
	Fingerprint(sources m.SourceSet) (string, error)
}

type sourceSetBuilder struct {
	adapter.SourceFSAdapter
}

// NewSourceSetBuilder constructs a SourceSetBuilder.
func NewSourceSetBuilder(fsAdapter adapter.SourceFSAdapter) SourceSetBuilder {
	return &sourceSetBuilder{SourceFSAdapter: fsAdapter}
}

func (b *sourceSetBuilder) Build(ctx context.Context, baseDir m.Path, layout SourceLayout) (m.SourceSet, error) {
	sources := m.NewSourceSet()

	for _, group := range layout.Groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		root := resolvePath(baseDir, group.Root)

		included, err := b.globAll(root, group.Include)
		if err != nil {
			return nil, newStageError(StageSources, "", fmt.Errorf("group %s: %w", group.Name, err))
		}

		excluded, err := b.globAll(root, group.Exclude)
		if err != nil {
			return nil, newStageError(StageSources, "", fmt.Errorf("group %s: %w", group.Name, err))
		}

		included.Subtract(excluded)
		slog.Debug("Collected sources", "group", group.Name, "root", root, "count", included.Len(), "excluded", excluded.Len())

		sources.Union(included)
	}

	return sources, nil
}

func (b *sourceSetBuilder) globAll(root m.Path, patterns []string) (m.SourceSet, error) {
	set := m.NewSourceSet()

	for _, pattern := range patterns {
		matches, err := b.GlobFiles(root, pattern)
		if err != nil {
			return nil, err
		}

		set.Add(matches...)
	}

	return set, nil
}

func (b *sourceSetBuilder) Fingerprint(sources m.SourceSet) (string, error) {
	hasher := blake3.New(32, nil)

	for _, path := range sources.Sorted() {
		digest, err := b.HashFile(path)
		if err != nil {
			return "", fmt.Errorf("fingerprint %s: %w", path, err)
		}

		fmt.Fprintf(hasher, "%s\x00%s\n", path, digest)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
