// Package model defines the data structures shared by the build pipeline.
package model

// Path represents a file system path.
type Path string

// BuildCommand is the positional command selecting what an invocation does.
type BuildCommand string

const (
	// CommandClean removes build byproducts and bypasses the rest of the pipeline.
	CommandClean BuildCommand = "clean"
	// CommandBuild is used when no command is given.
	CommandBuild BuildCommand = "build"
)

// IsClean reports whether the command is exactly "clean".
func (c BuildCommand) IsClean() bool {
	return c == CommandClean
}
