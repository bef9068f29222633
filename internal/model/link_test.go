package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkConfiguration_Args(t *testing.T) {
	link := LinkConfiguration{
		LibrarySearchPaths: []string{"/src/razor/lib", "/site/raf/lib"},
		Libraries:          []string{"raf", "tvm"},
		RuntimePaths:       []string{"-Wl,-rpath,$ORIGIN/", "-Wl,-rpath,/site"},
		ExtraFlags:         []string{"-shared"},
	}

	assert.Equal(t, []string{
		"-L/src/razor/lib", "-L/site/raf/lib",
		"-lraf", "-ltvm",
		"-Wl,-rpath,$ORIGIN/", "-Wl,-rpath,/site",
		"-shared",
	}, link.Args())

	assert.Empty(t, LinkConfiguration{}.Args())
}

func TestParsePlatform(t *testing.T) {
	assert.Equal(t, PlatformLinux, ParsePlatform("linux"))
	assert.Equal(t, PlatformDarwin, ParsePlatform("darwin"))
	assert.Equal(t, PlatformGeneric, ParsePlatform("freebsd"))
	assert.Equal(t, PlatformGeneric, ParsePlatform(""))
}
