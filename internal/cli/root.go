package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/scaffoldkit/postgen/internal/branding"
	"github.com/scaffoldkit/postgen/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Flags shared by every command that works on a generated project.
var (
	projectDir  string
	answersFile string
	overrides   []string
	verbosity   int
)

var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` finalizes a project right after a template engine generated it.
Based on the template answers it removes files that do not apply, links the
documentation placeholders to their canonical files and writes the optional
editor and package-manager configuration.

Answers come from --answers (YAML, JSON or a cookiecutter replay file, "-" for
stdin), then from environment variables such as ` + branding.EnvVar("add_funding_file") + `,
then from --set key=value pairs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.Setup(cmd.ErrOrStderr(), verbosity)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&projectDir, "project-dir", "C", "", "Generated project root (default: current directory)")
	flags.StringVarP(&answersFile, "answers", "a", "", "Answers file (YAML or JSON, cookiecutter replay files accepted)")
	flags.StringArrayVar(&overrides, "set", nil, "Override an answer, as key=value (repeatable)")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v, -vv, -vvv)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
