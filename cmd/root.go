// Package cmd provides the root command and CLI setup for razorbuild.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"razor.dev/pkg/razorbuild/internal/adapter"
	"razor.dev/pkg/razorbuild/internal/controller"
	"razor.dev/pkg/razorbuild/internal/domain"
	m "razor.dev/pkg/razorbuild/internal/model"
)

var ui controller.UI
var pipeline domain.Pipeline

var baseDirFlag string
var debugFlag bool
var jobsFlag int
var verboseFlag bool
var logFileFlag string
var reportFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	pipeline = domain.NewPipeline(
		fsAdapter,
		adapter.NewLocalGitAdapter(),
		adapter.NewLocalScriptRunner(),
		adapter.NewReportStore(),
		ui,
		func(compiler string, baseDir m.Path) adapter.Toolchain {
			return adapter.NewLocalToolchain(fsAdapter, compiler, baseDir, os.Stderr)
		},
		func(interpreter string) adapter.ExtensionEnvironment {
			return adapter.NewPythonEnvironment(interpreter)
		},
	)
}

const rootLongDescription = `razorbuild compiles the razor native extension against an upstream
framework source tree.

The optional command selects what to do:
  clean        remove build byproducts listed in the ignore file
  <anything>   stamp the build version, generate bindings, compile and link
               (build, develop, install, ... all run the full build)

The upstream source tree is mandatory for builds. Set it with
paths.upstream_source in razorbuild.yaml or the PYTORCH_SOURCE_PATH variable.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "razorbuild [command]",
		Short:        "Build the razor native extension",
		Long:         rootLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := m.CommandBuild
			if len(args) == 1 {
				command = m.BuildCommand(args[0])
			}

			slog.Info("Starting razorbuild", "command", command)

			if command.IsClean() {
				return pipeline.Clean(cmd.Context(), cleanArgsFromConfig())
			}

			buildArgs := buildArgsFromConfig()
			buildArgs.Command = command

			return pipeline.Build(cmd.Context(), buildArgs)
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&baseDirFlag, baseDirFlagName, "C", viper.GetString(baseDirKey), "project base directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(baseDirFlagName), baseDirKey)

	cmd.PersistentFlags().BoolVar(&debugFlag, debugFlagName, false, "build with debug information and no optimization")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(debugFlagName), debugKey)

	cmd.PersistentFlags().IntVarP(&jobsFlag, jobsFlagName, "j", viper.GetInt(jobsKey), "number of parallel compile workers (0 = number of CPUs)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(jobsFlagName), jobsKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().StringVar(&reportFlag, reportFlagName, viper.GetString(reportPathKey), "build report path, relative to the base directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportFlagName), reportPathKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
