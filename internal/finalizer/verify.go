package finalizer

import (
	"errors"
	"io/fs"
	"os"

	"github.com/scaffoldkit/postgen/internal/platform"
)

// Check is the verification outcome of one action.
type Check struct {
	Action Action
	OK     bool
	Detail string
}

// Verify reports, for each action, whether the project is in the state the
// action leaves behind. It never modifies the filesystem.
func (f *Finalizer) Verify(actions []Action) []Check {
	checks := make([]Check, 0, len(actions))
	for _, a := range actions {
		checks = append(checks, f.verifyOne(a))
	}
	return checks
}

// Failed counts checks that did not pass.
func Failed(checks []Check) int {
	n := 0
	for _, c := range checks {
		if !c.OK {
			n++
		}
	}
	return n
}

func (f *Finalizer) verifyOne(a Action) Check {
	c := Check{Action: a}

	switch a.Kind {
	case ActionRemove:
		_, err := os.Lstat(a.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			c.OK, c.Detail = true, "absent"
		case err != nil:
			c.Detail = err.Error()
		default:
			c.Detail = "still present"
		}

	case ActionLink:
		isLink, err := platform.IsSymlink(a.Path)
		if err != nil {
			c.Detail = err.Error()
			break
		}
		if !isLink {
			if _, statErr := os.Lstat(a.Path); statErr == nil {
				c.Detail = "exists but is not a symlink"
			} else {
				c.Detail = "missing"
			}
			break
		}
		target, err := platform.ReadSymlinkTarget(a.Path)
		if err != nil {
			c.Detail = err.Error()
			break
		}
		if target != a.Target {
			c.Detail = "points to " + target + ", want " + a.Target
			break
		}
		resolved, err := platform.ResolveTarget(a.Path)
		if err != nil {
			c.Detail = err.Error()
			break
		}
		if _, err := os.Stat(resolved); err != nil {
			c.Detail = "-> " + target + " (target does not exist)"
			break
		}
		c.OK, c.Detail = true, "-> "+target

	case ActionWrite:
		data, err := os.ReadFile(a.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			c.Detail = "missing"
		case err != nil:
			c.Detail = err.Error()
		case string(data) != string(a.Contents):
			c.OK, c.Detail = true, "present (modified)"
		default:
			c.OK, c.Detail = true, "present"
		}

	default:
		c.Detail = "unknown action"
	}

	return c
}
