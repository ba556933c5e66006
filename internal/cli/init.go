package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pyforge-labs/pyforge/internal/artifacts"
	"github.com/pyforge-labs/pyforge/internal/setup"
)

var (
	initName        string
	initDescription string
)

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Distribution name (default: directory name)")
	initCmd.Flags().StringVar(&initDescription, "description", "", "Short project description")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Python project in the current directory",
	Long: `Initialize a new Python project.

Generates pyproject.toml, .gitignore, README/CONTRIBUTING/SECURITY, the CI
workflow, the py.typed marker, and a pytest conftest stub. Fails if the
directory already contains a pyproject.toml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		pyproject := filepath.Join(cwd, "pyproject.toml")
		if _, err := os.Stat(pyproject); err == nil {
			return fmt.Errorf("project already initialized: %s exists", pyproject)
		}

		p := artifacts.New(cwd, initName)
		if initDescription != "" {
			p.Description = initDescription
		}

		fmt.Printf("Initializing %s in %s\n", p.Name, cwd)
		report, err := setup.Run(p, setup.Options{
			SearchPaths: searchPaths(),
			Version:     buildVersion,
		})
		if report != nil {
			printReport(report)
		}
		if err != nil {
			return err
		}

		fmt.Println("\nProject initialized.")
		return nil
	},
}

func printReport(r *setup.Report) {
	for _, f := range r.Files {
		switch {
		case f.Err != nil:
			fmt.Printf("  [FAIL] %s (%s): %v\n", f.Path, f.Kind, f.Err)
		default:
			fmt.Printf("  [%s] %s\n", f.Action, f.Path)
		}
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}
}
