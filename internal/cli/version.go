package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyforge-labs/pyforge/internal/branding"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (commit %s, built %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
	},
}
