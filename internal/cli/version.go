package cli

import (
	"encoding/json"
	"fmt"

	"github.com/scaffoldkit/postgen/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

// buildInfo is what the binary knows about itself.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Repo    string `json:"repo"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version: buildVersion,
		Commit:  buildCommit,
		Date:    buildDate,
		Repo:    branding.GitHubRepo(),
	}
}

func (b buildInfo) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", branding.CLIName(), b.Version, b.Commit, b.Date)
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentBuild()
		w := cmd.OutOrStdout()

		switch {
		case versionShort:
			fmt.Fprintln(w, info.Version)
		case versionJSON:
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling build info: %w", err)
			}
			fmt.Fprintln(w, string(out))
		default:
			fmt.Fprintln(w, info)
		}
		return nil
	},
}
