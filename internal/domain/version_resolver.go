package domain

import (
	"context"
	"log/slog"

	"razor.dev/pkg/razorbuild/internal/adapter"
	m "razor.dev/pkg/razorbuild/internal/model"
)

const revisionCommand = "git rev-parse --short HEAD"

// VersionInputs are the sources of the build version.
type VersionInputs struct {
	BaseVersion string
	Release     bool
	LocalRepo   m.Path
	// UpstreamRepo is optional. Its revision is best-effort.
	UpstreamRepo m.Path
}

// VersionResolver computes the build version from repository state.
type VersionResolver interface {
	Resolve(ctx context.Context, inputs VersionInputs) (m.BuildVersion, m.UpstreamRevision, error)
}

type versionResolver struct {
	revisions adapter.RevisionAdapter
}

// NewVersionResolver constructs a VersionResolver backed by a revision-control adapter.
func NewVersionResolver(revisions adapter.RevisionAdapter) VersionResolver {
	return &versionResolver{revisions: revisions}
}

func (r *versionResolver) Resolve(ctx context.Context, inputs VersionInputs) (m.BuildVersion, m.UpstreamRevision, error) {
	base := inputs.BaseVersion
	if base == "" {
		base = defaultBaseVersion
	}

	local, err := r.revisions.ShortHead(ctx, inputs.LocalRepo)
	if err != nil {
		slog.Error("Failed to resolve local revision", "repo", inputs.LocalRepo, "error", err)
		return m.BuildVersion{}, m.UpstreamRevision{}, newStageError(StageVersion, revisionCommand, err)
	}

	version := m.BuildVersion{
		BaseVersion:   base,
		LocalRevision: local,
		ReleaseMode:   inputs.Release,
	}

	upstream := m.UpstreamRevision{RepoPath: inputs.UpstreamRepo}
	if inputs.UpstreamRepo == "" || !r.revisions.HasMetadata(inputs.UpstreamRepo) {
		slog.Debug("Upstream tree has no revision metadata", "repo", inputs.UpstreamRepo)
		return version, upstream, nil
	}

	upstream.ShortHash, err = r.revisions.ShortHead(ctx, inputs.UpstreamRepo)
	if err != nil {
		slog.Warn("Failed to resolve upstream revision", "repo", inputs.UpstreamRepo, "error", err)
		upstream.ShortHash = ""
	}

	return version, upstream, nil
}
