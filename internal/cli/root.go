package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pyforge-labs/pyforge/internal/branding"
	"github.com/pyforge-labs/pyforge/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose     bool
	pluginPaths []string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates and maintains the configuration files of a Python project
(pyproject.toml, CI workflow, documentation boilerplate, markers) and runs
build and test plugins contributed by the project's dependencies.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringSliceVar(&pluginPaths, "plugin-path", nil,
		"Directory to resolve installed plugin packages in (repeatable)")
}

// searchPaths merges the --plugin-path flags with the configured
// plugin_paths value (colon-separated).
func searchPaths() []string {
	paths := append([]string{}, pluginPaths...)
	if configured := config.Get("plugin_paths"); configured != "" {
		for _, p := range strings.Split(configured, ":") {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
