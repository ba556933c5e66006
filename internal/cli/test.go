package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test [pytest args]",
	Short: "Run the project's test suite with pytest",
	RunE: func(cmd *cobra.Command, args []string) error {
		pytest := exec.Command("pytest", args...)
		pytest.Stdin = os.Stdin
		pytest.Stdout = os.Stdout
		pytest.Stderr = os.Stderr

		if err := pytest.Run(); err != nil {
			return fmt.Errorf("pytest: %w", err)
		}
		return nil
	},
}
