package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/pmezard/go-difflib/difflib"

	"razor.dev/pkg/razorbuild/internal/adapter"
	m "razor.dev/pkg/razorbuild/internal/model"
)

const stampFilePerm = 0o644

var (
	pythonStampTemplate = template.Must(template.New("version.py").Funcs(stampFuncs).Parse(
		`"""Autogenerated file, do not edit!"""
__version__ = '{{ py .Version }}'
{{- range .Dependencies }}
__{{ .Name }}_version__ = '{{ py .Version }}'
{{- end }}
__{{ .UpstreamName }}_gitrev__ = '{{ py .UpstreamRevision }}'
`))

	cppStampTemplate = template.Must(template.New("version.cpp").Funcs(stampFuncs).Parse(
		`// Autogenerated file, do not edit!
#include "razor/csrc/version.h"

namespace razor {

const char RAZOR_VERSION[] = {"{{ c .Version }}"};
{{- range .Dependencies }}
const char {{ upper .Name }}_VERSION[] = {"{{ c .Version }}"};
{{- end }}
const char {{ upper .UpstreamName }}_GITREV[] = {"{{ c .UpstreamRevision }}"};

}  // namespace razor
`))

	stampFuncs = template.FuncMap{
		"py":    strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace,
		"c":     strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace,
		"upper": strings.ToUpper,
	}
)

// StampTargets are the generated provenance files, relative to the base dir.
type StampTargets struct {
	Python m.Path
	Cpp    m.Path
}

// DefaultStampTargets returns the locations read by the extension at runtime.
func DefaultStampTargets() StampTargets {
	return StampTargets{
		Python: "razor/version.py",
		Cpp:    "razor/csrc/version.cpp",
	}
}

// ProvenanceStamper builds the provenance record and writes it to both halves
// of the artifact.
type ProvenanceStamper interface {
	Record(ctx context.Context, bc *BuildContext) (m.ProvenanceRecord, error)
	Stamp(ctx context.Context, baseDir m.Path, targets StampTargets, record m.ProvenanceRecord) error
}

type provenanceStamper struct {
	adapter.SourceFSAdapter
	env adapter.ExtensionEnvironment
}

// NewProvenanceStamper constructs a ProvenanceStamper.
func NewProvenanceStamper(fsAdapter adapter.SourceFSAdapter, env adapter.ExtensionEnvironment) ProvenanceStamper {
	return &provenanceStamper{SourceFSAdapter: fsAdapter, env: env}
}

func (s *provenanceStamper) Record(ctx context.Context, bc *BuildContext) (m.ProvenanceRecord, error) {
	record := m.ProvenanceRecord{
		Version:            bc.Version.Tag(),
		DependencyVersions: map[string]string{},
		UpstreamName:       bc.Args.UpstreamName,
		UpstreamRevision:   bc.Upstream.ShortHash,
	}

	for _, dep := range bc.Args.Dependencies {
		if !dep.Stamp {
			continue
		}

		version, err := s.env.Library(dep).Version(ctx)
		if err != nil {
			slog.Error("Failed to query dependency version", "dependency", dep.Name, "error", err)
			return m.ProvenanceRecord{}, newStageError(StageProvenance, "import "+dep.Module, err)
		}

		record.DependencyVersions[dep.Name] = version
	}

	return record, nil
}

func (s *provenanceStamper) Stamp(ctx context.Context, baseDir m.Path, targets StampTargets, record m.ProvenanceRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	python, err := renderStamp(pythonStampTemplate, record)
	if err != nil {
		return newStageError(StageProvenance, "", err)
	}

	cpp, err := renderStamp(cppStampTemplate, record)
	if err != nil {
		return newStageError(StageProvenance, "", err)
	}

	for _, file := range []struct {
		path    m.Path
		content []byte
	}{
		{resolvePath(baseDir, targets.Python), python},
		{resolvePath(baseDir, targets.Cpp), cpp},
	} {
		s.logChange(file.path, file.content)

		if err := s.WriteFile(file.path, file.content, stampFilePerm); err != nil {
			slog.Error("Failed to write stamp file", "path", file.path, "error", err)
			return newStageError(StageProvenance, "write "+string(file.path), err)
		}
	}

	return nil
}

func (s *provenanceStamper) logChange(path m.Path, content []byte) {
	previous, err := s.ReadFile(path)
	if err != nil || bytes.Equal(previous, content) {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(previous)),
		B:        difflib.SplitLines(string(content)),
		FromFile: string(path),
		ToFile:   string(path),
		Context:  1,
	})
	if err != nil {
		return
	}

	slog.Debug("Stamp file changed", "path", path, "diff", diff)
}

type stampDependency struct {
	Name    string
	Version string
}

type stampData struct {
	Version          string
	Dependencies     []stampDependency
	UpstreamName     string
	UpstreamRevision string
}

func renderStamp(tmpl *template.Template, record m.ProvenanceRecord) ([]byte, error) {
	data := stampData{
		Version:          record.Version,
		UpstreamName:     record.UpstreamName,
		UpstreamRevision: record.UpstreamRevision,
	}

	if data.UpstreamName == "" {
		data.UpstreamName = defaultUpstreamName
	}

	for _, name := range record.DependencyNames() {
		data.Dependencies = append(data.Dependencies, stampDependency{Name: name, Version: record.DependencyVersions[name]})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}

	return buf.Bytes(), nil
}
