package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the razorbuild version, the commit it was built from and the Go toolchain.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("razorbuild version\t", info.Main.Version)

			if revision := buildSetting(info, "vcs.revision"); revision != "" {
				if buildSetting(info, "vcs.modified") == "true" {
					revision += " (modified)"
				}

				cmd.Println("commit\t\t", revision)
			}

			cmd.Println("go version\t", info.GoVersion)
			cmd.Println("platform\t", runtime.GOOS+"/"+runtime.GOARCH)
		},
	}
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}

	return ""
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
