package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scaffoldkit/postgen/internal/answers"
	"github.com/scaffoldkit/postgen/internal/compat"
	"github.com/scaffoldkit/postgen/internal/config"
	"github.com/scaffoldkit/postgen/internal/finalizer"
	"github.com/scaffoldkit/postgen/internal/logging"
	"github.com/spf13/cobra"
)

// session is everything a command needs once the answers are decoded.
type session struct {
	layout    finalizer.Layout
	actions   []finalizer.Action
	finalizer *finalizer.Finalizer
}

// newSession loads and validates the answers, checks the version
// requirement and plans the actions. Nothing on disk changes here.
func newSession(cmd *cobra.Command, dryRun bool) (*session, error) {
	pairs, err := config.ParseOverrides(overrides)
	if err != nil {
		return nil, err
	}

	raw, err := config.Load(config.Sources{
		AnswersFile: answersFile,
		Stdin:       cmd.InOrStdin(),
		Overrides:   pairs,
	})
	if err != nil {
		return nil, err
	}

	ans, err := answers.Load(raw)
	if err != nil {
		return nil, err
	}

	if err := compat.Check(buildVersion, ans.MinVersion); err != nil {
		return nil, err
	}

	root, err := resolveProjectDir(projectDir)
	if err != nil {
		return nil, err
	}

	layout := finalizer.NewLayout(root, ans.ProjectSlug)
	actions, err := finalizer.Plan(ans, layout)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", root).
		Str("interface", ans.Interface.String()).
		Str("license", ans.License.String()).
		Int("actions", len(actions)).
		Msg("Planned finalization")

	return &session{
		layout:  layout,
		actions: actions,
		finalizer: finalizer.New(layout,
			finalizer.WithLogger(logging.Component("finalizer")),
			finalizer.WithDryRun(dryRun),
		),
	}, nil
}

// resolveProjectDir returns the absolute project root, defaulting to the
// working directory the template engine runs the hook in.
func resolveProjectDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		dir = cwd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project directory %s is not a directory", abs)
	}
	return abs, nil
}
