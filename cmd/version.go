package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/search-gateway/internal/buildinfo"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Display detailed version information about the Search Gateway.

This includes the version number, git commit hash, build time,
and runtime information.`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
}

func runVersion(cmd *cobra.Command, args []string) {
	short, _ := cmd.Flags().GetBool("short")

	if short {
		fmt.Fprintf(cmd.OutOrStdout(), "v%s\n", buildinfo.Version)
		return
	}

	// Print detailed version information
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, buildinfo.Name)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "Version:      v%s\n", buildinfo.Version)
	fmt.Fprintf(out, "Git Commit:   %s\n", buildinfo.GitCommit)
	fmt.Fprintf(out, "Build Time:   %s\n", buildinfo.BuildTime)
	fmt.Fprintf(out, "Go Version:   %s\n", buildinfo.GoVersion)
	fmt.Fprintf(out, "OS/Arch:      %s/%s\n", buildinfo.OS, buildinfo.Arch)
	fmt.Fprintln(out, strings.Repeat("-", 40))
}
