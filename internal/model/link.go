package model

// Platform is the target platform of the link step.
type Platform string

const (
	// PlatformLinux uses $ORIGIN runtime paths.
	PlatformLinux Platform = "linux"
	// PlatformDarwin uses @loader_path runtime paths.
	PlatformDarwin Platform = "darwin"
	// PlatformGeneric is any other platform; it follows the linux conventions.
	PlatformGeneric Platform = "generic"
)

// ParsePlatform maps an OS name to a Platform.
func ParsePlatform(goos string) Platform {
	switch Platform(goos) {
	case PlatformLinux:
		return PlatformLinux
	case PlatformDarwin:
		return PlatformDarwin
	default:
		return PlatformGeneric
	}
}

// LinkConfiguration holds the flags for the single link step producing the artifact.
type LinkConfiguration struct {
	LibrarySearchPaths []string `yaml:"library_search_paths"`
	Libraries          []string `yaml:"libraries"`
	RuntimePaths       []string `yaml:"runtime_paths"`
	ExtraFlags         []string `yaml:"extra_flags"`
}

// Args renders the configuration as linker arguments.
func (c LinkConfiguration) Args() []string {
	args := make([]string, 0, len(c.LibrarySearchPaths)+len(c.Libraries)+len(c.RuntimePaths)+len(c.ExtraFlags))

	for _, dir := range c.LibrarySearchPaths {
		args = append(args, "-L"+dir)
	}

	for _, lib := range c.Libraries {
		args = append(args, "-l"+lib)
	}

	args = append(args, c.RuntimePaths...)
	args = append(args, c.ExtraFlags...)

	return args
}

// ToolchainFlags is the platform-aware flag plan for compile and link.
type ToolchainFlags struct {
	CompileArgs []string          `yaml:"compile_args"`
	IncludeDirs []Path            `yaml:"include_dirs"`
	Macros      []string          `yaml:"macros"`
	Link        LinkConfiguration `yaml:"link"`
}
