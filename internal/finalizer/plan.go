package finalizer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/scaffoldkit/postgen/internal/answers"
	"github.com/scaffoldkit/postgen/internal/assets"
)

// moduleExt is the extension of the generated source and test modules.
const moduleExt = ".py"

// ActionKind identifies what an Action does.
type ActionKind int

const (
	ActionRemove ActionKind = iota
	ActionLink
	ActionWrite
)

func (k ActionKind) String() string {
	switch k {
	case ActionRemove:
		return "remove"
	case ActionLink:
		return "link"
	case ActionWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Action is a single planned filesystem step.
type Action struct {
	Kind     ActionKind
	Path     string // absolute
	Target   string // link target, relative to the link's directory
	IsDir    bool   // link points to a directory
	Contents []byte // file contents for ActionWrite
	Reason   string // answer that triggered the action
}

// Plan turns answers into the ordered list of actions for layout. Every
// answer resolves to either an action or nothing; the only error is a
// missing project slug when the CLI module must be removed.
func Plan(a *answers.Answers, l Layout) ([]Action, error) {
	var actions []Action

	remove := func(path, reason string) {
		actions = append(actions, Action{Kind: ActionRemove, Path: l.Abs(path), Reason: reason})
	}
	link := func(path, target, reason string) {
		actions = append(actions, Action{Kind: ActionLink, Path: path, Target: target, Reason: reason})
	}

	if !a.Interface.HasCLI() {
		if a.ProjectSlug == "" {
			return nil, errors.New("project_slug is required to remove the command-line interface module")
		}
		reason := "no command-line interface"
		remove(filepath.Join(l.Tests, "test_cli"+moduleExt), reason)
		remove(filepath.Join(l.Source, "cli"+moduleExt), reason)
	}

	if a.License.OpenSource() {
		link(filepath.Join(l.Docs, "license.rst"), "../LICENSE.rst", "license "+a.License.String())
	} else {
		remove("LICENSE.rst", "not open source")
	}

	optional := []struct {
		wanted bool
		path   string
		key    string
	}{
		{a.CodeOfConduct, "CODE_OF_CONDUCT.md", answers.KeyCodeOfConduct},
		{a.Contributing, "CONTRIBUTING.md", answers.KeyContributing},
		{a.SecurityPolicy, "SECURITY.md", answers.KeySecurityPolicy},
		{a.Codeowners, filepath.Join(".github", "CODEOWNERS"), answers.KeyCodeowners},
		{a.Funding, filepath.Join(".github", "FUNDING.yml"), answers.KeyFunding},
		{a.Citation, "CITATION.cff", answers.KeyCitation},
	}
	for _, o := range optional {
		if !o.wanted {
			remove(o.path, o.key+" not wanted")
		}
	}

	if a.EditorLaunchConfig {
		contents, err := assets.Get(assets.LaunchJSON)
		if err != nil {
			return nil, fmt.Errorf("loading editor launch config: %w", err)
		}
		actions = append(actions, Action{
			Kind:     ActionWrite,
			Path:     filepath.Join(l.Editor, assets.LaunchJSON),
			Contents: contents,
			Reason:   answers.KeyEditorLaunchConfig,
		})
	}

	if a.PackageManagerConfig {
		contents, err := assets.Get(assets.PoetryTOML)
		if err != nil {
			return nil, fmt.Errorf("loading package manager config: %w", err)
		}
		actions = append(actions, Action{
			Kind:     ActionWrite,
			Path:     l.Abs(assets.PoetryTOML),
			Contents: contents,
			Reason:   answers.KeyPackageManagerConfig,
		})
	}

	link(filepath.Join(l.Docs, "readme.md"), "../README.md", "always")
	link(filepath.Join(l.Docs, "changelog.md"), "../CHANGELOG.md", "always")

	return actions, nil
}
