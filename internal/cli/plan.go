package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the actions run would take",
	Long: `Load and validate the answers and print the ordered list of actions without
touching the project.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Plan for %s (%d actions):\n", s.layout.Root, len(s.actions))
		for _, a := range s.actions {
			fmt.Fprintf(w, "  %s\n", s.finalizer.Describe(a))
		}
		return nil
	},
}
