package finalizer

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/scaffoldkit/postgen/internal/answers"
	"github.com/scaffoldkit/postgen/internal/assets"
	"github.com/stretchr/testify/require"
)

const testSlug = "example_project"

// generatedFiles mirrors what the template produces before finalization.
var generatedFiles = map[string]string{
	"README.md":                       "# Example Project\n",
	"CHANGELOG.md":                    "# Changelog\n",
	"LICENSE.rst":                     "MIT License\n",
	"CODE_OF_CONDUCT.md":              "# Code of Conduct\n",
	"CONTRIBUTING.md":                 "# Contributing\n",
	"SECURITY.md":                     "# Security\n",
	"CITATION.cff":                    "cff-version: 1.2.0\n",
	".github/CODEOWNERS":              "* @example\n",
	".github/FUNDING.yml":             "github: example\n",
	"tests/test_cli.py":               "def test_cli(): pass\n",
	"tests/test_example_project.py":   "def test_import(): pass\n",
	"src/example_project/__init__.py": "",
	"src/example_project/cli.py":      "def main(): pass\n",
	"docs/index.md":                   "# Docs\n",
}

// setupProject writes a freshly generated project tree and returns its layout.
func setupProject(t *testing.T) Layout {
	t.Helper()
	root := t.TempDir()
	for rel, content := range generatedFiles {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return NewLayout(root, testSlug)
}

func skipWithoutSymlinks(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("native symlinks required")
	}
}

// allWanted answers yes to every optional feature.
func allWanted() *answers.Answers {
	return &answers.Answers{
		ProjectSlug:          testSlug,
		Interface:            answers.InterfaceTyper,
		License:              answers.LicenseMIT,
		CodeOfConduct:        true,
		Contributing:         true,
		SecurityPolicy:       true,
		Codeowners:           true,
		Funding:              true,
		Citation:             true,
		EditorLaunchConfig:   true,
		PackageManagerConfig: true,
	}
}

// noneWanted answers no to every optional feature.
func noneWanted() *answers.Answers {
	return &answers.Answers{
		ProjectSlug: testSlug,
		Interface:   answers.InterfaceNone,
		License:     answers.LicenseNone,
	}
}

func exists(t *testing.T, l Layout, rel string) bool {
	t.Helper()
	_, err := os.Lstat(l.Abs(filepath.FromSlash(rel)))
	return err == nil
}

func readFile(t *testing.T, l Layout, rel string) string {
	t.Helper()
	data, err := os.ReadFile(l.Abs(filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// embedded returns the fixed contents a write action is expected to carry.
func embedded(t *testing.T, name string) []byte {
	t.Helper()
	data, err := assets.Get(name)
	require.NoError(t, err)
	return data
}
