package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCreateSymlink(t *testing.T) {
	tmp := t.TempDir()

	targetPath := filepath.Join(tmp, "README.md")
	if err := os.WriteFile(targetPath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(tmp, "readme.md")
	if err := CreateSymlink(targetPath, linkPath, false); err != nil {
		t.Fatalf("CreateSymlink failed: %v", err)
	}

	data, err := os.ReadFile(linkPath)
	if err != nil {
		t.Fatalf("reading link: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("link content = %q, want %q", string(data), "hello")
	}
}

func TestCreateSymlinkRelative(t *testing.T) {
	tmp := t.TempDir()
	docs := filepath.Join(tmp, "docs")
	if err := os.MkdirAll(docs, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "LICENSE.rst"), []byte("MIT"), 0644); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(docs, "license.rst")
	if err := CreateSymlink("../LICENSE.rst", linkPath, false); err != nil {
		t.Fatalf("CreateSymlink (relative) failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		target, err := os.Readlink(linkPath)
		if err != nil {
			t.Fatalf("Readlink failed: %v", err)
		}
		if target != "../LICENSE.rst" {
			t.Errorf("symlink target = %q, want %q", target, "../LICENSE.rst")
		}
	}

	data, err := os.ReadFile(linkPath)
	if err != nil {
		t.Fatalf("reading through link: %v", err)
	}
	if string(data) != "MIT" {
		t.Errorf("link content = %q, want %q", string(data), "MIT")
	}
}

func TestCreateSymlinkExistingPathFails(t *testing.T) {
	tmp := t.TempDir()
	linkPath := filepath.Join(tmp, "taken")
	if err := os.WriteFile(linkPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CreateSymlink("elsewhere", linkPath, false); err == nil {
		t.Fatal("expected error when the link path is occupied")
	}
}

func TestRemoveSymlink(t *testing.T) {
	tmp := t.TempDir()

	targetPath := filepath.Join(tmp, "target.txt")
	if err := os.WriteFile(targetPath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(tmp, "link.txt")
	if err := CreateSymlink(targetPath, linkPath, false); err != nil {
		t.Fatal(err)
	}

	if err := RemoveSymlink(linkPath); err != nil {
		t.Fatalf("RemoveSymlink failed: %v", err)
	}

	if _, err := os.Lstat(linkPath); !os.IsNotExist(err) {
		t.Error("link still exists after RemoveSymlink")
	}
	if _, err := os.Stat(targetPath); err != nil {
		t.Errorf("target should survive RemoveSymlink: %v", err)
	}
}

func TestIsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("native symlinks required")
	}
	tmp := t.TempDir()

	regular := filepath.Join(tmp, "regular")
	if err := os.WriteFile(regular, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "link")
	if err := os.Symlink(regular, link); err != nil {
		t.Fatal(err)
	}
	dangling := filepath.Join(tmp, "dangling")
	if err := os.Symlink(filepath.Join(tmp, "missing"), dangling); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", regular, false},
		{"symlink", link, true},
		{"dangling symlink", dangling, true},
		{"directory", tmp, false},
		{"missing", filepath.Join(tmp, "nope"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsSymlink(tt.path)
			if err != nil {
				t.Fatalf("IsSymlink error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsSymlink(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestReadSymlinkTarget(t *testing.T) {
	tmp := t.TempDir()

	targetPath := filepath.Join(tmp, "target.txt")
	if err := os.WriteFile(targetPath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(tmp, "link.txt")
	if err := CreateSymlink(targetPath, linkPath, false); err != nil {
		t.Fatal(err)
	}

	got, err := ReadSymlinkTarget(linkPath)
	if err != nil {
		t.Fatalf("ReadSymlinkTarget failed: %v", err)
	}
	if got != targetPath {
		t.Errorf("ReadSymlinkTarget = %q, want %q", got, targetPath)
	}
}

func TestResolveTarget(t *testing.T) {
	tmp := t.TempDir()
	docs := filepath.Join(tmp, "docs")
	if err := os.MkdirAll(docs, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmp, "README.md"), []byte("# hi"), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(docs, "readme.md")
	if err := CreateSymlink("../README.md", link, false); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveTarget(link)
	if err != nil {
		t.Fatalf("ResolveTarget failed: %v", err)
	}
	want := filepath.Join(tmp, "README.md")
	if got != want {
		t.Errorf("ResolveTarget = %q, want %q", got, want)
	}
}
