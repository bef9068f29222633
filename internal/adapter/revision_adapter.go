package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	m "razor.dev/pkg/razorbuild/internal/model"
)

// RevisionAdapter queries revision-control state of a source tree.
type RevisionAdapter interface {
	// HasMetadata reports whether repo carries revision-control metadata.
	HasMetadata(repo m.Path) bool

	// ShortHead returns the abbreviated hash of the checked out revision.
	ShortHead(ctx context.Context, repo m.Path) (string, error)
}

// LocalGitAdapter implements RevisionAdapter with the git binary.
type LocalGitAdapter struct {
	binary string
}

// NewLocalGitAdapter constructs a LocalGitAdapter using git from PATH.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{binary: "git"}
}

// HasMetadata reports whether repo/.git is a directory.
func (a *LocalGitAdapter) HasMetadata(repo m.Path) bool {
	info, err := os.Stat(filepath.Join(string(repo), ".git"))
	if err != nil {
		return false
	}

	return info.IsDir()
}

// ShortHead runs 'git rev-parse --short HEAD' inside repo.
func (a *LocalGitAdapter) ShortHead(ctx context.Context, repo m.Path) (string, error) {
	cmd := exec.CommandContext(ctx, a.binary, "rev-parse", "--short", "HEAD")
	cmd.Dir = string(repo)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git rev-parse in %s: %w: %s", repo, err, strings.TrimSpace(stderr.String()))
	}

	hash := strings.TrimSpace(stdout.String())
	if hash == "" {
		return "", fmt.Errorf("git rev-parse in %s returned an empty hash", repo)
	}

	return hash, nil
}
