// Package adapter contains process, filesystem and toolchain adapters used by the build pipeline.
package adapter

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"lukechampine.com/blake3"

	m "razor.dev/pkg/razorbuild/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when discovering sources, stamping files and cleaning byproducts.
//
//nolint:interfacebloat // A richer interface keeps pipeline logic decoupled from os/fs.
type SourceFSAdapter interface {
	// GlobFiles expands a doublestar pattern relative to root and returns
	// regular files only, joined with root.
	GlobFiles(root m.Path, pattern string) ([]m.Path, error)

	// Glob expands a doublestar pattern relative to root and returns files
	// and directories, joined with root.
	Glob(root m.Path, pattern string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// HashFile returns a stable fingerprint (BLAKE3) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path m.Path) bool

	// Remove removes a single file or empty directory.
	Remove(path m.Path) error

	// RemoveAll removes a path and all its contents.
	RemoveAll(path m.Path) error
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the pipeline.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// GlobFiles expands pattern under root, keeping regular files only.
func (a *LocalSourceFSAdapter) GlobFiles(root m.Path, pattern string) ([]m.Path, error) {
	return a.glob(root, pattern, doublestar.WithFilesOnly())
}

// Glob expands pattern under root, keeping files and directories.
func (a *LocalSourceFSAdapter) Glob(root m.Path, pattern string) ([]m.Path, error) {
	return a.glob(root, pattern)
}

func (a *LocalSourceFSAdapter) glob(root m.Path, pattern string, opts ...doublestar.GlobOption) ([]m.Path, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.Glob(os.DirFS(string(root)), pattern, opts...)
	if err != nil {
		return nil, fmt.Errorf("glob %q under %s: %w", pattern, root, err)
	}

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(filepath.Join(string(root), filepath.FromSlash(match))))
	}

	return paths, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to path, creating the parent directory if needed.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// HashFile returns the hex BLAKE3-256 digest of the file at path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	// #nosec G304 - path comes from the computed source set
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := blake3.New(32, nil)
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// IsDir reports whether path is an existing directory.
func (a *LocalSourceFSAdapter) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))
	if err != nil {
		return false
	}

	return info.IsDir()
}

// Remove removes a file or an empty directory.
func (a *LocalSourceFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// RemoveAll removes a path and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(path m.Path) error {
	err := os.RemoveAll(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}
