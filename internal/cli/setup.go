package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pyforge-labs/pyforge/internal/artifacts"
	"github.com/pyforge-labs/pyforge/internal/setup"
)

func init() {
	rootCmd.AddCommand(setupCmd)
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Reconcile the project's configuration files",
	Long: `Reconcile every managed configuration file against its desired state.

Missing files are created, structured files missing required keys get them
merged in additively, and files that are already correct are left alone.
Running setup twice in a row changes nothing on the second run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		p, err := artifacts.Load(cwd)
		if err != nil {
			return err
		}

		report, err := setup.Run(p, setup.Options{
			SearchPaths: searchPaths(),
			Version:     buildVersion,
		})
		if report != nil {
			printReport(report)
		}
		return err
	},
}
