package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "razor.dev/pkg/razorbuild/internal/adapter/mocks"
	m "razor.dev/pkg/razorbuild/internal/model"
)

func TestVersionResolver_Tag(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		release bool
		want    string
	}{
		{name: "development build", base: "0.1", want: "0.1+gitabc1234"},
		{name: "release build", base: "0.1", release: true, want: "0.1"},
		{name: "override development", base: "2.3.4", want: "2.3.4+gitabc1234"},
		{name: "override release", base: "2.3.4", release: true, want: "2.3.4"},
		{name: "default base", base: "", want: "0.1+gitabc1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revisions := adaptermocks.NewMockRevisionAdapter(t)
			revisions.EXPECT().ShortHead(context.Background(), m.Path("/src/razor")).Return("abc1234", nil)

			version, _, err := NewVersionResolver(revisions).Resolve(context.Background(), VersionInputs{
				BaseVersion: tt.base,
				Release:     tt.release,
				LocalRepo:   "/src/razor",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, version.Tag())
			assert.Equal(t, tt.release, version.ReleaseMode)
		})
	}
}

func TestVersionResolver_UpstreamWithoutMetadata(t *testing.T) {
	ctx := context.Background()
	revisions := adaptermocks.NewMockRevisionAdapter(t)
	revisions.EXPECT().ShortHead(ctx, m.Path("/src/razor")).Return("abc1234", nil)
	revisions.EXPECT().HasMetadata(m.Path("/src/pytorch")).Return(false)

	_, upstream, err := NewVersionResolver(revisions).Resolve(ctx, VersionInputs{
		LocalRepo:    "/src/razor",
		UpstreamRepo: "/src/pytorch",
	})
	require.NoError(t, err)
	assert.Equal(t, m.Path("/src/pytorch"), upstream.RepoPath)
	assert.Empty(t, upstream.ShortHash)
}

func TestVersionResolver_UpstreamWithMetadata(t *testing.T) {
	ctx := context.Background()
	revisions := adaptermocks.NewMockRevisionAdapter(t)
	revisions.EXPECT().ShortHead(ctx, m.Path("/src/razor")).Return("abc1234", nil)
	revisions.EXPECT().HasMetadata(m.Path("/src/pytorch")).Return(true)
	revisions.EXPECT().ShortHead(ctx, m.Path("/src/pytorch")).Return("deadbee", nil)

	_, upstream, err := NewVersionResolver(revisions).Resolve(ctx, VersionInputs{
		LocalRepo:    "/src/razor",
		UpstreamRepo: "/src/pytorch",
	})
	require.NoError(t, err)
	assert.Equal(t, "deadbee", upstream.ShortHash)
}

func TestVersionResolver_UpstreamQueryFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	revisions := adaptermocks.NewMockRevisionAdapter(t)
	revisions.EXPECT().ShortHead(ctx, m.Path("/src/razor")).Return("abc1234", nil)
	revisions.EXPECT().HasMetadata(m.Path("/src/pytorch")).Return(true)
	revisions.EXPECT().ShortHead(ctx, m.Path("/src/pytorch")).Return("", errors.New("bad object HEAD"))

	_, upstream, err := NewVersionResolver(revisions).Resolve(ctx, VersionInputs{
		LocalRepo:    "/src/razor",
		UpstreamRepo: "/src/pytorch",
	})
	require.NoError(t, err)
	assert.Empty(t, upstream.ShortHash)
}

func TestVersionResolver_LocalFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	revisions := adaptermocks.NewMockRevisionAdapter(t)
	revisions.EXPECT().ShortHead(ctx, m.Path("/src/razor")).Return("", errors.New("not a git repository"))

	_, _, err := NewVersionResolver(revisions).Resolve(ctx, VersionInputs{
		LocalRepo:    "/src/razor",
		UpstreamRepo: "/src/pytorch",
	})
	require.Error(t, err)

	stage, ok := FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, StageVersion, stage)
	assert.Contains(t, err.Error(), "git rev-parse --short HEAD")
}
