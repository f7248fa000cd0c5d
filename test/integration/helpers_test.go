//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/scaffoldkit/postgen/internal/answers"
	"github.com/scaffoldkit/postgen/internal/config"
	"github.com/scaffoldkit/postgen/internal/finalizer"
)

// testEnv holds an isolated generated project and the directory holding its
// answers, the way a template engine leaves them before the hook runs.
type testEnv struct {
	ProjectDir string // the generated project
	ReplayDir  string // where answer and replay files are written
	Slug       string
}

// setupTestEnv renders a synthetic project that contains every file the
// template can produce. POSTGEN_* variables from the caller's shell are
// cleared so only the test decides the answers.
func setupTestEnv(t *testing.T, slug string) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("integration flow needs native symlinks")
	}

	env := &testEnv{
		ProjectDir: t.TempDir(),
		ReplayDir:  t.TempDir(),
		Slug:       slug,
	}
	for _, key := range config.Keys() {
		t.Setenv("POSTGEN_"+strings.ToUpper(key), "")
		os.Unsetenv("POSTGEN_" + strings.ToUpper(key))
	}

	files := map[string]string{
		"README.md":                        "# " + slug + "\n",
		"CHANGELOG.md":                     "# Changelog\n",
		"LICENSE.rst":                      "MIT License\n",
		"CODE_OF_CONDUCT.md":               "# Code of Conduct\n",
		"CONTRIBUTING.md":                  "# Contributing\n",
		"SECURITY.md":                      "# Security\n",
		"CITATION.cff":                     "cff-version: 1.2.0\n",
		"pyproject.toml":                   "[tool.poetry]\nname = \"" + slug + "\"\n",
		".github/CODEOWNERS":               "* @maintainer\n",
		".github/FUNDING.yml":              "github: maintainer\n",
		".github/workflows/ci.yml":         "name: CI\n",
		"docs/index.md":                    "```{include} ../README.md\n```\n",
		"tests/__init__.py":                "",
		"tests/test_cli.py":                "def test_cli(): ...\n",
		"tests/test_" + slug + ".py":       "def test_import(): ...\n",
		"src/" + slug + "/__init__.py":     "",
		"src/" + slug + "/cli.py":          "def main(): ...\n",
		"src/" + slug + "/" + slug + ".py": "",
	}
	for rel, content := range files {
		writeFile(t, filepath.Join(env.ProjectDir, filepath.FromSlash(rel)), content)
	}
	return env
}

// writeReplay stores answers the way cookiecutter records them in its replay
// directory and returns the file path.
func writeReplay(t *testing.T, env *testEnv, body string) string {
	t.Helper()
	path := filepath.Join(env.ReplayDir, "python-template.json")
	writeFile(t, path, body)
	return path
}

// finalize runs the same pipeline as "postgen run" and returns the plan
// together with the apply result.
func finalize(t *testing.T, env *testEnv, src config.Sources) ([]finalizer.Action, *finalizer.Result, error) {
	t.Helper()

	raw, err := config.Load(src)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	ans, err := answers.Load(raw)
	if err != nil {
		t.Fatalf("answers.Load: %v", err)
	}

	layout := finalizer.NewLayout(env.ProjectDir, ans.ProjectSlug)
	actions, err := finalizer.Plan(ans, layout)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	result, err := finalizer.New(layout).Apply(actions)
	return actions, result, err
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if nothing, not even a symlink, is at path.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertSymlinkTo fails unless path is a symlink whose stored target is want.
func assertSymlinkTo(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.Readlink(path)
	if err != nil {
		t.Errorf("expected symlink at %s: %v", path, err)
		return
	}
	if got != want {
		t.Errorf("symlink %s points to %q, want %q", path, got, want)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
