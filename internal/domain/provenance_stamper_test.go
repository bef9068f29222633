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

const wantPythonStamp = `"""Autogenerated file, do not edit!"""
__version__ = '0.1+gitabc1234'
__raf_version__ = '0.2.0'
__torch_version__ = '1.12.0'
__torch_gitrev__ = 'deadbee'
`

const wantCppStamp = `// Autogenerated file, do not edit!
#include "razor/csrc/version.h"

namespace razor {

const char RAZOR_VERSION[] = {"0.1+gitabc1234"};
const char RAF_VERSION[] = {"0.2.0"};
const char TORCH_VERSION[] = {"1.12.0"};
const char TORCH_GITREV[] = {"deadbee"};

}  // namespace razor
`

func testRecord() m.ProvenanceRecord {
	return m.ProvenanceRecord{
		Version:            "0.1+gitabc1234",
		DependencyVersions: map[string]string{"torch": "1.12.0", "raf": "0.2.0"},
		UpstreamName:       "torch",
		UpstreamRevision:   "deadbee",
	}
}

func mockLibrary(t *testing.T, name, version string) *adaptermocks.MockUpstreamLibrary {
	t.Helper()

	lib := adaptermocks.NewMockUpstreamLibrary(t)
	lib.EXPECT().Version(mock.Anything).Return(version, nil).Maybe()
	lib.EXPECT().Name().Return(name).Maybe()

	return lib
}

func TestProvenanceStamper_Record(t *testing.T) {
	env := adaptermocks.NewMockExtensionEnvironment(t)
	env.EXPECT().Library(mock.MatchedBy(func(dep m.Dependency) bool { return dep.Name == "raf" })).Return(mockLibrary(t, "raf", "0.2.0"))
	env.EXPECT().Library(mock.MatchedBy(func(dep m.Dependency) bool { return dep.Name == "torch" })).Return(mockLibrary(t, "torch", "1.12.0"))

	bc := &BuildContext{
		Args:     BuildArgs{UpstreamName: "torch", Dependencies: DefaultDependencies()},
		Version:  m.BuildVersion{BaseVersion: "0.1", LocalRevision: "abc1234"},
		Upstream: m.UpstreamRevision{RepoPath: "/src/pytorch", ShortHash: "deadbee"},
	}

	record, err := NewProvenanceStamper(adapter.NewLocalSourceFSAdapter(), env).Record(context.Background(), bc)
	require.NoError(t, err)
	assert.Equal(t, testRecord(), record)
}

func TestProvenanceStamper_RecordDependencyFailure(t *testing.T) {
	lib := adaptermocks.NewMockUpstreamLibrary(t)
	lib.EXPECT().Version(mock.Anything).Return("", errors.New("No module named 'raf'"))

	env := adaptermocks.NewMockExtensionEnvironment(t)
	env.EXPECT().Library(mock.Anything).Return(lib)

	bc := &BuildContext{Args: BuildArgs{Dependencies: DefaultDependencies()}}

	_, err := NewProvenanceStamper(adapter.NewLocalSourceFSAdapter(), env).Record(context.Background(), bc)
	require.Error(t, err)

	stage, _ := FailedStage(err)
	assert.Equal(t, StageProvenance, stage)
	assert.Contains(t, err.Error(), "import raf")
}

func TestProvenanceStamper_StampWritesBothFiles(t *testing.T) {
	base := t.TempDir()
	stamper := NewProvenanceStamper(adapter.NewLocalSourceFSAdapter(), adaptermocks.NewMockExtensionEnvironment(t))

	err := stamper.Stamp(context.Background(), m.Path(base), DefaultStampTargets(), testRecord())
	require.NoError(t, err)

	assert.Equal(t, wantPythonStamp, readFile(t, filepath.Join(base, "razor", "version.py")))
	assert.Equal(t, wantCppStamp, readFile(t, filepath.Join(base, "razor", "csrc", "version.cpp")))
}

func TestProvenanceStamper_StampOverwritesExistingFiles(t *testing.T) {
	base := t.TempDir()
	pyPath := filepath.Join(base, "razor", "version.py")
	writeFile(t, pyPath, "__version__ = 'stale'\n")

	stamper := NewProvenanceStamper(adapter.NewLocalSourceFSAdapter(), adaptermocks.NewMockExtensionEnvironment(t))
	require.NoError(t, stamper.Stamp(context.Background(), m.Path(base), DefaultStampTargets(), testRecord()))

	assert.Equal(t, wantPythonStamp, readFile(t, pyPath))
}

func TestProvenanceStamper_StampEscapesQuotes(t *testing.T) {
	base := t.TempDir()
	record := m.ProvenanceRecord{Version: `1.0'"`, DependencyVersions: map[string]string{}}

	stamper := NewProvenanceStamper(adapter.NewLocalSourceFSAdapter(), adaptermocks.NewMockExtensionEnvironment(t))
	require.NoError(t, stamper.Stamp(context.Background(), m.Path(base), DefaultStampTargets(), record))

	assert.Contains(t, readFile(t, filepath.Join(base, "razor", "version.py")), `__version__ = '1.0\'"'`)
	assert.Contains(t, readFile(t, filepath.Join(base, "razor", "csrc", "version.cpp")), `RAZOR_VERSION[] = {"1.0'\""};`)
	assert.Contains(t, readFile(t, filepath.Join(base, "razor", "version.py")), "__torch_gitrev__ = ''")
}

func TestProvenanceStamper_StampWriteFailure(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
	fsAdapter.EXPECT().ReadFile(mock.Anything).Return(nil, errors.New("missing"))
	fsAdapter.EXPECT().WriteFile(m.Path(filepath.Join("/src/razor", "razor", "version.py")), mock.Anything, mock.Anything).
		Return(errors.New("read-only file system"))

	stamper := NewProvenanceStamper(fsAdapter, adaptermocks.NewMockExtensionEnvironment(t))
	err := stamper.Stamp(context.Background(), "/src/razor", DefaultStampTargets(), testRecord())
	require.Error(t, err)

	stage, _ := FailedStage(err)
	assert.Equal(t, StageProvenance, stage)
	assert.Contains(t, err.Error(), "version.py")
}
