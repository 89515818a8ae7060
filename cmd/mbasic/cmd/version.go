package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/mbasic/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mBASIC v%s\n", version.Platform)
		fmt.Printf("  Git Commit: %s\n", version.Commit)
		fmt.Printf("  Build Date: %s\n", version.BuildDate)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		if verbose {
			for _, name := range version.Components() {
				fmt.Printf("  %-10s  %s\n", name+":", version.ComponentVersion(name))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
