package finalizer

import (
	"fmt"
	"strings"
)

// Result holds the outcome of applying a plan. Paths are relative to the
// project root.
type Result struct {
	Removed  []string
	Linked   []string
	Replaced []string // links that existed and were recreated
	Written  []string
	Skipped  []string // files left alone because they already existed
	DryRun   bool
}

// Apply executes actions in order and stops at the first failure. The
// returned Result covers the actions completed before the failure.
func (f *Finalizer) Apply(actions []Action) (*Result, error) {
	result := &Result{DryRun: f.dryRun}

	for _, a := range actions {
		rel := f.layout.Rel(a.Path)
		switch a.Kind {
		case ActionRemove:
			if err := f.Remove(a.Path); err != nil {
				return result, err
			}
			result.Removed = append(result.Removed, rel)

		case ActionLink:
			replaced, err := f.Link(a.Path, a.Target, a.IsDir)
			if err != nil {
				return result, err
			}
			result.Linked = append(result.Linked, rel)
			if replaced {
				result.Replaced = append(result.Replaced, rel)
			}

		case ActionWrite:
			written, err := f.WriteIfAbsent(a.Path, a.Contents)
			if err != nil {
				return result, err
			}
			if written {
				result.Written = append(result.Written, rel)
			} else {
				result.Skipped = append(result.Skipped, rel)
			}

		default:
			return result, fmt.Errorf("unknown action kind %d for %s", a.Kind, rel)
		}
	}

	return result, nil
}

// Describe renders an action as a single human-readable line.
func (f *Finalizer) Describe(a Action) string {
	rel := f.layout.Rel(a.Path)
	var b strings.Builder
	switch a.Kind {
	case ActionLink:
		fmt.Fprintf(&b, "link   %s -> %s", rel, a.Target)
	case ActionWrite:
		fmt.Fprintf(&b, "write  %s (if absent)", rel)
	default:
		fmt.Fprintf(&b, "%-6s %s", a.Kind, rel)
	}
	if a.Reason != "" {
		fmt.Fprintf(&b, "  [%s]", a.Reason)
	}
	return b.String()
}
