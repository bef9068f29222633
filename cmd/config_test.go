package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"razor.dev/pkg/razorbuild/internal/domain"
	m "razor.dev/pkg/razorbuild/internal/model"
)

// neutralizeLegacyEnv blanks every legacy variable; empty values are ignored by the config layer.
func neutralizeLegacyEnv(t *testing.T) {
	t.Helper()

	for _, names := range legacyEnv {
		for _, name := range names {
			t.Setenv(name, "")
		}
	}
}

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "razorbuild", configBaseName)
	assert.Equal(t, "razorbuild.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "RAZORBUILD", envPrefix)
	assert.Equal(t, ".razorbuild.log", defaultLogFilename)
}

func TestEnvFlag(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"ON", true},
		{"on", true},
		{"1", true},
		{"yes", true},
		{"TRUE", true},
		{"y", true},
		{" true ", true},
		{"OFF", false},
		{"0", false},
		{"no", false},
		{"", false},
		{"enabled", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, envFlag(tt.value))
		})
	}
}

func TestBuildArgsFromConfig_Defaults(t *testing.T) {
	neutralizeLegacyEnv(t)

	args := buildArgsFromConfig()

	assert.Equal(t, m.Path("."), args.BaseDir)
	assert.Empty(t, args.UpstreamSource)
	assert.Equal(t, "0.1", args.BaseVersion)
	assert.False(t, args.Release)
	assert.False(t, args.Debug)
	assert.True(t, args.CompileParallel)
	assert.True(t, args.CppTests)
	assert.Equal(t, "c++", args.Compiler)
	assert.Equal(t, "python3", args.Interpreter)
	assert.Equal(t, m.Path("build"), args.OutputDir)
	assert.Equal(t, "_RAZORC", args.ExtensionName)
	assert.Equal(t, m.Path("scripts/generate_code.sh"), args.CodegenScript)
	assert.Equal(t, m.Path("test/cpp/run_tests.sh"), args.TestScript)
	assert.Equal(t, m.Path("build/razorbuild-report.yaml"), args.ReportPath)
	assert.Equal(t, domain.DefaultStampTargets(), args.Stamp)
	assert.True(t, args.Layout.IsZero())
	assert.Empty(t, args.Platform)
}

func TestBuildArgsFromConfig_LegacyEnv(t *testing.T) {
	neutralizeLegacyEnv(t)
	t.Setenv("PYTORCH_SOURCE_PATH", "/src/pytorch")
	t.Setenv("DEBUG", "ON")
	t.Setenv("RAZOR_VERSION", "2.0")
	t.Setenv("RELEASE_VERSION", "yes")
	t.Setenv("COMPILE_PARALLEL", "OFF")
	t.Setenv("BUILD_CPP_TESTS", "0")
	t.Setenv("CC", "gcc")
	t.Setenv("PYTHON", "python3.10")

	args := buildArgsFromConfig()

	assert.Equal(t, m.Path("/src/pytorch"), args.UpstreamSource)
	assert.True(t, args.Debug)
	assert.Equal(t, "2.0", args.BaseVersion)
	assert.True(t, args.Release)
	assert.False(t, args.CompileParallel)
	assert.False(t, args.CppTests)
	assert.Equal(t, "gcc", args.Compiler)
	assert.Equal(t, "python3.10", args.Interpreter)
}

func TestBuildArgsFromConfig_Precedence(t *testing.T) {
	neutralizeLegacyEnv(t)
	t.Setenv("RAZORBUILD_PATHS_UPSTREAM_SOURCE", "/prefixed")
	t.Setenv("PYTORCH_SOURCE_PATH", "/legacy")
	t.Setenv("CXX", "clang++")
	t.Setenv("CC", "clang")

	args := buildArgsFromConfig()

	assert.Equal(t, m.Path("/prefixed"), args.UpstreamSource)
	assert.Equal(t, "clang", args.Compiler, "CC is consulted before CXX")
}

func TestBuildArgsFromConfig_CompilerFallsBackToCXX(t *testing.T) {
	neutralizeLegacyEnv(t)
	t.Setenv("CXX", "clang++")

	assert.Equal(t, "clang++", buildArgsFromConfig().Compiler)
}

func TestBuildArgsFromConfig_PrefixedSettings(t *testing.T) {
	neutralizeLegacyEnv(t)
	t.Setenv("RAZORBUILD_BUILD_JOBS", "3")
	t.Setenv("RAZORBUILD_BUILD_PLATFORM", "linux")
	t.Setenv("RAZORBUILD_BUILD_OUTPUT_DIR", "out")
	t.Setenv("RAZORBUILD_REPORT_PATH", "out/report.yaml")

	args := buildArgsFromConfig()

	assert.Equal(t, 3, args.Jobs)
	assert.Equal(t, m.PlatformLinux, args.Platform)
	assert.Equal(t, m.Path("out"), args.OutputDir)
	assert.Equal(t, m.Path("out/report.yaml"), args.ReportPath)
}

func TestCleanArgsFromConfig(t *testing.T) {
	t.Setenv("RAZORBUILD_CLEAN_IGNORE_FILE", "clean.txt")

	assert.Equal(t, domain.CleanArgs{BaseDir: ".", IgnoreFile: "clean.txt", OutputDir: "build"}, cleanArgsFromConfig())
}

func TestParseSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseSlogLevel("debug", slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, parseSlogLevel("WARNING", slog.LevelInfo))
	assert.Equal(t, slog.LevelError, parseSlogLevel("error", slog.LevelInfo))
	assert.Equal(t, slog.Level(-4), parseSlogLevel("-4", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("loud", slog.LevelInfo))
}
