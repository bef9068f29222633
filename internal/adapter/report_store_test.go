package adapter

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "razor.dev/pkg/razorbuild/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "build", "report.yaml"))

	report := m.BuildReport{
		Version: "0.1+gitabc1234",
		Provenance: m.ProvenanceRecord{
			Version:            "0.1+gitabc1234",
			DependencyVersions: map[string]string{"raf": "0.2", "torch": "1.10.0"},
			UpstreamName:       "torch",
			UpstreamRevision:   "deadbee",
		},
		Platform:    m.PlatformLinux,
		Strategy:    "pooled",
		Workers:     8,
		SourceCount: 2,
		Results: []m.CompileResult{
			{Object: "build/a.o", Source: "a.cpp", Duration: time.Second},
			{Object: "build/b.o", Source: "b.cpp", Err: errors.New("compile b.cpp: exit status 1")},
		},
		Artifact: "build/_RAZORC.so",
	}

	require.NoError(t, store.SaveReport(path, report))

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)

	assert.Equal(t, report.Version, loaded.Version)
	assert.Equal(t, report.Provenance, loaded.Provenance)
	assert.Equal(t, "pooled", loaded.Strategy)
	require.Len(t, loaded.Results, 2)
	assert.Equal(t, time.Second, loaded.Results[0].Duration)
	assert.Empty(t, loaded.Results[0].Error)
	assert.Equal(t, "compile b.cpp: exit status 1", loaded.Results[1].Error)
	assert.True(t, loaded.Results[1].Failed())
	assert.Empty(t, report.Results[1].Error, "caller's report is not mutated")
}

func TestYAMLReportStore_LoadMissing(t *testing.T) {
	_, err := NewReportStore().LoadReport(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)
}
