// Package cmd 命令行子命令
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "postgen",
		Short: "Generate LinkedIn-style posts from the command line",
		Long: `postgen drafts a LinkedIn post for a topic using the configured
OpenAI-compatible completion endpoint (FIREWORKS_* environment variables).`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().String("config-dir", "configs", "directory containing config.yaml")
	root.AddCommand(newGenerateCmd())
	return root
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
