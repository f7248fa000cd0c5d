package compat

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version string of builds without ldflags.
const DevVersion = "dev"

// IncompatibleError reports a running version outside the template's constraint.
type IncompatibleError struct {
	Current    string
	Constraint string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("template requires version %s, running %s", e.Constraint, e.Current)
}

// Check verifies current against requirement. A bare version ("1.2.0") means
// ">= 1.2.0"; anything else is parsed as a semver constraint. An empty
// requirement or a development build always passes.
func Check(current, requirement string) error {
	requirement = strings.TrimSpace(requirement)
	if requirement == "" || current == DevVersion || current == "" {
		return nil
	}

	constraint, err := parseConstraint(requirement)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", requirement, err)
	}

	cv, err := parseSemver(current)
	if err != nil {
		return fmt.Errorf("parsing current version %q: %w", current, err)
	}

	if !constraint.Check(cv) {
		return &IncompatibleError{Current: current, Constraint: requirement}
	}
	return nil
}

// parseConstraint turns a bare version into a lower bound.
func parseConstraint(requirement string) (*semver.Constraints, error) {
	if _, err := parseSemver(requirement); err == nil {
		requirement = ">= " + strings.TrimPrefix(requirement, "v")
	}
	return semver.NewConstraint(requirement)
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
