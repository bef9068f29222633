package domain

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "razor.dev/pkg/razorbuild/internal/adapter/mocks"
	m "razor.dev/pkg/razorbuild/internal/model"
)

func TestNewBuildContext_MissingUpstreamSource(t *testing.T) {
	// No expectations: the resolver must not run.
	revisions := adaptermocks.NewMockRevisionAdapter(t)

	bc, err := NewBuildContext(context.Background(), BuildArgs{BaseDir: "/src/razor"}, NewVersionResolver(revisions))
	require.Error(t, err)
	assert.Nil(t, bc)
	require.ErrorIs(t, err, ErrMissingUpstreamSource)

	stage, ok := FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, StageConfig, stage)
}

func TestNewBuildContext_ResolvesVersionOnce(t *testing.T) {
	ctx := context.Background()
	revisions := adaptermocks.NewMockRevisionAdapter(t)
	revisions.EXPECT().ShortHead(ctx, m.Path("/src/razor")).Return("abc1234", nil).Once()
	revisions.EXPECT().HasMetadata(m.Path("/src/pytorch")).Return(false).Once()

	bc, err := NewBuildContext(ctx, BuildArgs{
		BaseDir:        "/src/razor",
		UpstreamSource: "/src/pytorch",
		BaseVersion:    "1.0",
	}, NewVersionResolver(revisions))
	require.NoError(t, err)

	assert.Equal(t, "1.0+gitabc1234", bc.Version.Tag())
	assert.Empty(t, bc.Upstream.ShortHash)
	assert.False(t, bc.StartedAt.IsZero())
}

func TestBuildArgs_Defaults(t *testing.T) {
	args := BuildArgs{UpstreamSource: "/src/pytorch"}.withDefaults()

	assert.Equal(t, m.CommandBuild, args.Command)
	assert.Equal(t, m.Path("."), args.BaseDir)
	assert.Equal(t, "0.1", args.BaseVersion)
	assert.Equal(t, runtime.NumCPU(), args.Jobs)
	assert.Equal(t, m.ParsePlatform(runtime.GOOS), args.Platform)
	assert.Equal(t, "_RAZORC", args.ExtensionName)
	assert.Equal(t, "c++", args.Compiler)
	assert.Equal(t, "python3", args.Interpreter)
	assert.Equal(t, "torch", args.UpstreamName)
	assert.Equal(t, DefaultStampTargets(), args.Stamp)
	assert.Equal(t, DefaultSourceLayout(), args.Layout)
	assert.Len(t, args.Dependencies, 3)
	assert.Equal(t, m.Path("build/temp"), args.ObjectDir())
}

func TestBuildArgs_ObjectDirAbsoluteOutput(t *testing.T) {
	args := BuildArgs{BaseDir: "/src/razor", OutputDir: "/tmp/out"}
	assert.Equal(t, m.Path("/tmp/out/temp"), args.ObjectDir())

	args.OutputDir = "build"
	assert.Equal(t, m.Path("/src/razor/build/temp"), args.ObjectDir())
}
