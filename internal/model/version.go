package model

import "sort"

// BuildVersion identifies one build of the artifact.
type BuildVersion struct {
	BaseVersion   string
	LocalRevision string
	ReleaseMode   bool
}

// Tag returns the version string stamped into the artifact.
// Release builds carry the base version only.
func (v BuildVersion) Tag() string {
	if v.ReleaseMode {
		return v.BaseVersion
	}

	return v.BaseVersion + "+git" + v.LocalRevision
}

// UpstreamRevision records the revision of an upstream source tree.
// ShortHash is empty when the tree has no revision-control metadata.
type UpstreamRevision struct {
	RepoPath  Path
	ShortHash string
}

// ProvenanceRecord is the build identity exported to both halves of the artifact.
type ProvenanceRecord struct {
	Version            string            `yaml:"version"`
	DependencyVersions map[string]string `yaml:"dependency_versions"`
	UpstreamName       string            `yaml:"upstream_name"`
	UpstreamRevision   string            `yaml:"upstream_revision"`
}

// DependencyNames returns the dependency names in sorted order.
func (r ProvenanceRecord) DependencyNames() []string {
	names := make([]string, 0, len(r.DependencyVersions))
	for name := range r.DependencyVersions {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Dependency describes an upstream library the build queries but does not build.
type Dependency struct {
	Name string
	// Module is the import name used to query the dependency.
	Module string
	// Stamp includes the dependency version in the provenance record.
	Stamp bool
	// Libraries are linked when non-empty; LibDirExpr locates them.
	Libraries  []string
	LibDirExpr string
	// RuntimePath adds the dependency's install location to the runtime search path.
	RuntimePath bool
}
