package finalizer

import "path/filepath"

// Layout holds the absolute directories of a generated project.
type Layout struct {
	Root   string // project root
	Tests  string // test suite
	Source string // importable package, src/<slug>
	Docs   string // documentation sources
	Editor string // editor configuration (.vscode)
}

// NewLayout derives the standard directories under root for a package slug.
func NewLayout(root, slug string) Layout {
	root = filepath.Clean(root)
	return Layout{
		Root:   root,
		Tests:  filepath.Join(root, "tests"),
		Source: filepath.Join(root, "src", slug),
		Docs:   filepath.Join(root, "docs"),
		Editor: filepath.Join(root, ".vscode"),
	}
}

// Abs resolves a project-relative path against the root. Absolute paths are
// returned unchanged.
func (l Layout) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(l.Root, path)
}

// Rel returns path relative to the root for display, falling back to path.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
