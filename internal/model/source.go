package model

import "sort"

// SourceSet is a set of source file paths. Duplicates collapse.
type SourceSet map[Path]struct{}

// NewSourceSet builds a set from the given paths.
func NewSourceSet(paths ...Path) SourceSet {
	set := make(SourceSet, len(paths))
	set.Add(paths...)

	return set
}

// Add inserts paths into the set.
func (s SourceSet) Add(paths ...Path) {
	for _, path := range paths {
		s[path] = struct{}{}
	}
}

// Remove deletes paths from the set.
func (s SourceSet) Remove(paths ...Path) {
	for _, path := range paths {
		delete(s, path)
	}
}

// Union adds every member of other.
func (s SourceSet) Union(other SourceSet) {
	for path := range other {
		s[path] = struct{}{}
	}
}

// Subtract removes every member of other.
func (s SourceSet) Subtract(other SourceSet) {
	for path := range other {
		delete(s, path)
	}
}

// Contains reports membership.
func (s SourceSet) Contains(path Path) bool {
	_, ok := s[path]
	return ok
}

// Len returns the number of paths.
func (s SourceSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexical order.
func (s SourceSet) Sorted() []Path {
	paths := make([]Path, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool {
		return paths[i] < paths[j]
	})

	return paths
}

// CompileJob is one source-to-object compilation.
type CompileJob struct {
	ObjectPath   Path
	SourcePath   Path
	Extension    string
	CompilerArgs []string
}

// CompileOptions is the input to the toolchain's preparation step.
type CompileOptions struct {
	OutputDir   Path
	IncludeDirs []Path
	Macros      []string
	ExtraArgs   []string
}

// PreparedCompile is the toolchain's bookkeeping for one compilation call.
// Objects lists every expected object; Jobs holds only the objects that need
// (re)compilation.
type PreparedCompile struct {
	Objects []Path
	Jobs    map[Path]CompileJob
}
