package cli

import (
	"fmt"
	"io"

	"github.com/scaffoldkit/postgen/internal/finalizer"
	"github.com/spf13/cobra"
)

var runDryRun bool

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Report what would change without touching the project")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Finalize a generated project",
	Long: `Remove the files the answers opt out of, link docs/readme.md, docs/changelog.md
and (for open-source projects) docs/license.rst to their canonical files, and
write .vscode/launch.json and poetry.toml when requested.

A path scheduled for removal that does not exist aborts the run: it means the
template did not produce what the answers expect. Links and config files can be
applied again safely.

Examples:
  postgen run --answers ~/.cookiecutter_replay/python-template.json
  postgen run --set command_line_interface="No command-line interface" --set add_funding_file=n`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, runDryRun)
		if err != nil {
			return err
		}

		result, err := s.finalizer.Apply(s.actions)
		printResult(cmd.OutOrStdout(), result)
		if err != nil {
			return fmt.Errorf("finalizing %s: %w", s.layout.Root, err)
		}
		return nil
	},
}

func printResult(w io.Writer, result *finalizer.Result) {
	if result == nil {
		return
	}
	verb := func(done, dry string) string {
		if result.DryRun {
			return dry
		}
		return done
	}

	printList(w, verb("Removed", "Would remove"), result.Removed)
	printList(w, verb("Linked", "Would link"), result.Linked)
	printList(w, verb("Wrote", "Would write"), result.Written)
	printList(w, "Kept existing", result.Skipped)
}

func printList(w io.Writer, title string, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, p := range paths {
		fmt.Fprintf(w, "  %s\n", p)
	}
}
