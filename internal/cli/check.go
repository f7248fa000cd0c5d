package cli

import (
	"fmt"

	"github.com/scaffoldkit/postgen/internal/finalizer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a project was finalized for its answers",
	Long: `Check that every file the answers opt out of is gone, that the documentation
links exist and resolve, and that requested config files are present.
Exits non-zero when any check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, false)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Finalization check:")
		checks := s.finalizer.Verify(s.actions)
		for _, c := range checks {
			status := "[ OK ]"
			if !c.OK {
				status = "[FAIL]"
			}
			fmt.Fprintf(w, "  %s %-6s %s: %s\n", status, c.Action.Kind, s.layout.Rel(c.Action.Path), c.Detail)
		}

		if n := finalizer.Failed(checks); n > 0 {
			return fmt.Errorf("%d of %d checks failed", n, len(checks))
		}
		return nil
	},
}
