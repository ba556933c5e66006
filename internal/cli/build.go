package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pyforge-labs/pyforge/internal/artifacts"
	"github.com/pyforge-labs/pyforge/internal/builder"
	"github.com/pyforge-labs/pyforge/internal/plugin"
)

var buildOutputDir string

func init() {
	buildCmd.Flags().StringVar(&buildOutputDir, "output", "dist", "Output directory for built artifacts")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run all discovered builders and collect artifacts into dist/",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		p, err := artifacts.Load(cwd)
		if err != nil {
			return err
		}

		discovered := plugin.Discover(p, plugin.Options{
			SearchPaths: searchPaths(),
			Version:     buildVersion,
		})
		for _, w := range discovered.Errors {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
		}

		distDir := buildOutputDir
		if !filepath.IsAbs(distDir) {
			distDir = filepath.Join(cwd, distDir)
		}

		for _, entry := range discovered.Registry.Builders() {
			paths, err := builder.GetArtifacts(entry.Builder, distDir)
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Printf("  [built] %s\n", path)
			}
		}
		return nil
	},
}
