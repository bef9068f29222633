package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"razor.dev/pkg/razorbuild/internal/domain"
	m "razor.dev/pkg/razorbuild/internal/model"
)

const (
	configVersionKey     = "config_version"
	currentConfigVersion = 1

	configBaseName   = "razorbuild"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	baseDirFlagName = "base-dir"
	debugFlagName   = "debug"
	jobsFlagName    = "jobs"
	verboseFlagName = "verbose"
	logFileFlagName = "log-file"
	reportFlagName  = "report"

	upstreamSourceKey  = "paths.upstream_source"
	baseDirKey         = "paths.base_dir"
	debugKey           = "build.debug"
	baseVersionKey     = "version.base"
	releaseKey         = "version.release"
	compileParallelKey = "build.compile_parallel"
	cppTestsKey        = "build.cpp_tests"
	compilerKey        = "build.compiler"
	jobsKey            = "build.jobs"
	platformKey        = "build.platform"
	outputDirKey       = "build.output_dir"
	extensionNameKey   = "build.extension_name"
	interpreterKey     = "python.interpreter"
	codegenScriptKey   = "scripts.codegen"
	testScriptKey      = "scripts.cpp_tests"
	ignoreFileKey      = "clean.ignore_file"
	reportPathKey      = "report.path"
	stampPythonKey     = "stamp.python"
	stampCppKey        = "stamp.cpp"
	sourcesKey         = "sources"

	defaultBaseDir         = "."
	defaultBaseVersion     = "0.1"
	defaultCompileParallel = true
	defaultCppTests        = true
	defaultCompiler        = "c++"
	defaultOutputDir       = "build"
	defaultExtensionName   = "_RAZORC"
	defaultInterpreter     = "python3"
	defaultCodegenScript   = "scripts/generate_code.sh"
	defaultTestScript      = "test/cpp/run_tests.sh"
	defaultIgnoreFile      = ".gitignore"
	defaultReportPath      = "build/razorbuild-report.yaml"

	envPrefix = "RAZORBUILD"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".razorbuild.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// legacyEnv lists the environment names the build has always honored, in
// lookup order after the prefixed name.
var legacyEnv = map[string][]string{
	upstreamSourceKey:  {"PYTORCH_SOURCE_PATH"},
	debugKey:           {"DEBUG"},
	baseVersionKey:     {"RAZOR_VERSION"},
	releaseKey:         {"RELEASE_VERSION"},
	compileParallelKey: {"COMPILE_PARALLEL"},
	cppTestsKey:        {"BUILD_CPP_TESTS"},
	compilerKey:        {"CC", "CXX"},
	interpreterKey:     {"PYTHON"},
}

var envKeyReplacer = strings.NewReplacer("-", "_", ".", "_")

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)

	bindLegacyEnv()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(upstreamSourceKey, "")
	viper.SetDefault(baseDirKey, defaultBaseDir)
	viper.SetDefault(debugKey, false)
	viper.SetDefault(baseVersionKey, defaultBaseVersion)
	viper.SetDefault(releaseKey, false)
	viper.SetDefault(compileParallelKey, defaultCompileParallel)
	viper.SetDefault(cppTestsKey, defaultCppTests)
	viper.SetDefault(compilerKey, defaultCompiler)
	viper.SetDefault(jobsKey, 0)
	viper.SetDefault(platformKey, "")
	viper.SetDefault(outputDirKey, defaultOutputDir)
	viper.SetDefault(extensionNameKey, defaultExtensionName)
	viper.SetDefault(interpreterKey, defaultInterpreter)
	viper.SetDefault(codegenScriptKey, defaultCodegenScript)
	viper.SetDefault(testScriptKey, defaultTestScript)
	viper.SetDefault(ignoreFileKey, defaultIgnoreFile)
	viper.SetDefault(reportPathKey, defaultReportPath)

	stamp := domain.DefaultStampTargets()
	viper.SetDefault(stampPythonKey, string(stamp.Python))
	viper.SetDefault(stampCppKey, string(stamp.Cpp))

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// bindLegacyEnv binds each key to its prefixed variable first, then to the
// legacy names. The first variable that is set wins.
func bindLegacyEnv() {
	for key, names := range legacyEnv {
		prefixed := envPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))

		_ = viper.BindEnv(append([]string{key, prefixed}, names...)...)
	}
}

// envFlag parses a boolean setting. A value is on when its upper-cased form is
// one of ON, 1, YES, TRUE or Y.
func envFlag(value string) bool {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "ON", "1", "YES", "TRUE", "Y":
		return true
	default:
		return false
	}
}

func configFlag(key string) bool {
	return envFlag(viper.GetString(key))
}

// buildArgsFromConfig assembles the build arguments from flags, config file
// and environment.
func buildArgsFromConfig() domain.BuildArgs {
	args := domain.BuildArgs{
		BaseDir:         m.Path(viper.GetString(baseDirKey)),
		UpstreamSource:  m.Path(viper.GetString(upstreamSourceKey)),
		BaseVersion:     viper.GetString(baseVersionKey),
		Release:         configFlag(releaseKey),
		Debug:           configFlag(debugKey),
		CompileParallel: configFlag(compileParallelKey),
		CppTests:        configFlag(cppTestsKey),
		Compiler:        viper.GetString(compilerKey),
		Interpreter:     viper.GetString(interpreterKey),
		Jobs:            viper.GetInt(jobsKey),
		OutputDir:       m.Path(viper.GetString(outputDirKey)),
		ExtensionName:   viper.GetString(extensionNameKey),
		CodegenScript:   m.Path(viper.GetString(codegenScriptKey)),
		TestScript:      m.Path(viper.GetString(testScriptKey)),
		ReportPath:      m.Path(viper.GetString(reportPathKey)),
		Layout:          sourceLayoutFromConfig(),
		Stamp: domain.StampTargets{
			Python: m.Path(viper.GetString(stampPythonKey)),
			Cpp:    m.Path(viper.GetString(stampCppKey)),
		},
	}

	if platform := strings.TrimSpace(viper.GetString(platformKey)); platform != "" {
		args.Platform = m.ParsePlatform(platform)
	}

	return args
}

func cleanArgsFromConfig() domain.CleanArgs {
	return domain.CleanArgs{
		BaseDir:    m.Path(viper.GetString(baseDirKey)),
		IgnoreFile: m.Path(viper.GetString(ignoreFileKey)),
		OutputDir:  m.Path(viper.GetString(outputDirKey)),
	}
}

func reportArgsFromConfig() domain.ReportArgs {
	return domain.ReportArgs{
		BaseDir:    m.Path(viper.GetString(baseDirKey)),
		ReportPath: m.Path(viper.GetString(reportPathKey)),
	}
}

func sourcesArgsFromConfig() domain.SourcesArgs {
	return domain.SourcesArgs{
		BaseDir: m.Path(viper.GetString(baseDirKey)),
		Layout:  sourceLayoutFromConfig(),
	}
}

// sourceLayoutFromConfig returns the configured layout, or the zero layout
// when none is configured so the default applies.
func sourceLayoutFromConfig() domain.SourceLayout {
	var layout domain.SourceLayout

	if !viper.IsSet(sourcesKey) {
		return layout
	}

	if err := viper.UnmarshalKey(sourcesKey, &layout); err != nil {
		slog.Warn("Ignoring invalid source layout", "key", sourcesKey, "error", err)
		return domain.SourceLayout{}
	}

	return layout
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
