package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersion_Tag(t *testing.T) {
	tests := []struct {
		name    string
		version BuildVersion
		want    string
	}{
		{"development", BuildVersion{BaseVersion: "0.1", LocalRevision: "abc1234"}, "0.1+gitabc1234"},
		{"release", BuildVersion{BaseVersion: "0.1", LocalRevision: "abc1234", ReleaseMode: true}, "0.1"},
		{"custom base", BuildVersion{BaseVersion: "2.0.0", LocalRevision: "f00"}, "2.0.0+gitf00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.version.Tag())
		})
	}
}

func TestProvenanceRecord_DependencyNames(t *testing.T) {
	record := ProvenanceRecord{DependencyVersions: map[string]string{"torch": "1", "raf": "2", "tvm": "3"}}
	assert.Equal(t, []string{"raf", "torch", "tvm"}, record.DependencyNames())
	assert.Empty(t, ProvenanceRecord{}.DependencyNames())
}

func TestBuildCommand_IsClean(t *testing.T) {
	assert.True(t, CommandClean.IsClean())
	assert.False(t, CommandBuild.IsClean())
	assert.False(t, BuildCommand("Clean").IsClean())
	assert.False(t, BuildCommand("").IsClean())
}
