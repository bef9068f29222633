package domain

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"razor.dev/pkg/razorbuild/internal/adapter"
	m "razor.dev/pkg/razorbuild/internal/model"
)

// notCleanMarker matches comment lines; the captured group is the marker that
// ends pattern consumption.
var notCleanMarker = regexp.MustCompile(`^#( BEGIN NOT-CLEAN-FILES )?`)

// CleanStage removes build byproducts listed in the ignore file.
type CleanStage interface {
	// Clean never fails on a single removal; it returns the removed paths.
	Clean(ctx context.Context, args CleanArgs) ([]m.Path, error)
}

type cleanStage struct {
	adapter.SourceFSAdapter
}

// NewCleanStage constructs a CleanStage.
func NewCleanStage(fsAdapter adapter.SourceFSAdapter) CleanStage {
	return &cleanStage{SourceFSAdapter: fsAdapter}
}

// ParseCleanPatterns returns the glob patterns of an ignore file up to the
// NOT-CLEAN-FILES marker. Comment lines are skipped.
func ParseCleanPatterns(content string) []string {
	var patterns []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if match := notCleanMarker.FindStringSubmatch(line); match != nil {
			if match[1] != "" {
				break
			}

			continue
		}

		patterns = append(patterns, line)
	}

	return patterns
}

func (c *cleanStage) Clean(ctx context.Context, args CleanArgs) ([]m.Path, error) {
	args = args.withDefaults()

	var removed []m.Path

	ignoreFile := resolvePath(args.BaseDir, args.IgnoreFile)

	content, err := c.ReadFile(ignoreFile)
	if err != nil {
		slog.Warn("Cannot read ignore file, skipping pattern removal", "path", ignoreFile, "error", err)
	}

	for _, pattern := range ParseCleanPatterns(string(content)) {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		removed = append(removed, c.removeMatches(args.BaseDir, pattern)...)
	}

	objectDir := resolvePath(args.BaseDir, m.Path(filepath.Join(string(args.OutputDir), tempDirName)))
	if c.IsDir(objectDir) {
		if err := c.RemoveAll(objectDir); err != nil {
			slog.Debug("Failed to remove object dir", "path", objectDir, "error", err)
		} else {
			removed = append(removed, objectDir)
		}
	}

	return removed, nil
}

// CleanGlob normalizes an ignore-file pattern into a glob relative to the
// base dir. It returns "" for patterns that name nothing below the base dir.
// A "**" run matches within one path segment, never across directories.
func CleanGlob(pattern string) string {
	glob := strings.Trim(strings.TrimSpace(pattern), "/")
	if glob == "" {
		return ""
	}

	for strings.Contains(glob, "**") {
		glob = strings.ReplaceAll(glob, "**", "*")
	}

	glob = path.Clean(glob)
	if glob == "." || glob == ".." || strings.HasPrefix(glob, "../") {
		return ""
	}

	return glob
}

func (c *cleanStage) removeMatches(baseDir m.Path, pattern string) []m.Path {
	glob := CleanGlob(pattern)
	if glob == "" {
		slog.Debug("Skipping clean pattern outside the base dir", "pattern", pattern)
		return nil
	}

	matches, err := c.Glob(baseDir, glob)
	if err != nil {
		slog.Debug("Skipping clean pattern", "pattern", pattern, "error", err)
		return nil
	}

	removed := make([]m.Path, 0, len(matches))

	for _, match := range matches {
		if err := c.Remove(match); err != nil {
			if err := c.RemoveAll(match); err != nil {
				slog.Debug("Failed to remove path", "path", match, "error", err)
				continue
			}
		}

		removed = append(removed, match)
	}

	return removed
}

func (a CleanArgs) withDefaults() CleanArgs {
	if a.BaseDir == "" {
		a.BaseDir = "."
	}

	if a.IgnoreFile == "" {
		a.IgnoreFile = defaultIgnoreFile
	}

	if a.OutputDir == "" {
		a.OutputDir = defaultOutputDir
	}

	return a
}
