package platform

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// sidecarSuffix marks the file recording the target of a copy fallback.
const sidecarSuffix = ".target"

// ErrDirLinkUnsupported is returned on Windows when a directory link is
// requested and native symlinks are unavailable.
var ErrDirLinkUnsupported = errors.New("directory symlinks are not supported on this system")

// CreateSymlink creates a symbolic link at link pointing to target.
// On Unix systems this is os.Symlink. On Windows it tries os.Symlink first
// (requires developer mode), then falls back to copying the file and writing
// a .target sidecar. isDir selects the directory flavour of the link.
func CreateSymlink(target, link string, isDir bool) error {
	err := os.Symlink(target, link)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}

	if isDir {
		return fmt.Errorf("linking %s -> %s: %w", link, target, ErrDirLinkUnsupported)
	}

	if err := copyFileForSymlink(target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}

	// The copy succeeded; the sidecar is only needed by ReadSymlinkTarget.
	_ = os.WriteFile(link+sidecarSuffix, []byte(target), 0644)
	return nil
}

// RemoveSymlink removes a symlink (or its fallback copy and sidecar).
func RemoveSymlink(path string) error {
	err := os.Remove(path)
	os.Remove(path + sidecarSuffix) // best-effort
	return err
}

// IsSymlink reports whether path is a symbolic link or a copy fallback
// created by CreateSymlink. A missing path is not an error.
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return true, nil
	}
	if runtime.GOOS == "windows" {
		if _, err := os.Stat(path + sidecarSuffix); err == nil {
			return true, nil
		}
	}
	return false, nil
}

// ReadSymlinkTarget returns the target of a symlink.
// On Windows, if os.Readlink fails (because a copy fallback was used),
// it reads from the .target sidecar file.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}

	if runtime.GOOS != "windows" {
		return "", err
	}

	data, readErr := os.ReadFile(path + sidecarSuffix)
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no .target sidecar found: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ResolveTarget returns the absolute path a link points to. Relative targets
// are resolved against the directory containing the link.
func ResolveTarget(link string) (string, error) {
	target, err := ReadSymlinkTarget(link)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(target) {
		return target, nil
	}
	return filepath.Join(filepath.Dir(link), target), nil
}

// copyFileForSymlink copies src to dst. Relative sources resolve against the
// directory containing dst, the same way the OS resolves a relative link.
func copyFileForSymlink(src, dst string) error {
	resolvedSrc := src
	if !filepath.IsAbs(src) {
		resolvedSrc = filepath.Join(filepath.Dir(dst), src)
	}

	in, err := os.Open(resolvedSrc)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
