package finalizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/scaffoldkit/postgen/internal/platform"
)

// Finalizer performs filesystem actions relative to a project Layout.
type Finalizer struct {
	layout Layout
	log    zerolog.Logger
	dryRun bool
}

// Option configures a Finalizer.
type Option func(*Finalizer)

// WithLogger sets the logger used for per-action diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(f *Finalizer) { f.log = l }
}

// WithDryRun makes every operation report what it would do without touching
// the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(f *Finalizer) { f.dryRun = dryRun }
}

// New returns a Finalizer for the given layout.
func New(layout Layout, opts ...Option) *Finalizer {
	f := &Finalizer{
		layout: layout,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Remove deletes the file or directory at path. A missing path is reported
// as *NotFoundError.
func (f *Finalizer) Remove(path string) error {
	abs := f.layout.Abs(path)
	rel := f.layout.Rel(abs)

	info, err := os.Lstat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Path: rel, Err: err}
	}
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", rel, err)
	}

	if f.dryRun {
		f.log.Info().Str("path", rel).Bool("dry_run", true).Msg("Would remove")
		return nil
	}

	if info.IsDir() {
		err = os.RemoveAll(abs)
	} else {
		err = os.Remove(abs)
	}
	if err != nil {
		return fmt.Errorf("removing %s: %w", rel, err)
	}

	f.log.Info().Str("path", rel).Msg("Removed")
	return nil
}

// Link creates a symbolic link at path pointing to target. An existing
// symbolic link at path is replaced; any other entry there is left alone and
// reported as *OccupiedError. It returns true when a link was replaced.
func (f *Finalizer) Link(path, target string, isDir bool) (bool, error) {
	abs := f.layout.Abs(path)
	rel := f.layout.Rel(abs)

	isLink, err := platform.IsSymlink(abs)
	if err != nil {
		return false, fmt.Errorf("inspecting %s: %w", rel, err)
	}
	if !isLink {
		info, err := os.Lstat(abs)
		if err == nil {
			return false, &OccupiedError{Path: rel, Mode: info.Mode()}
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("inspecting %s: %w", rel, err)
		}
	}

	if f.dryRun {
		f.log.Info().Str("path", rel).Str("target", target).Bool("dry_run", true).Msg("Would link")
		return isLink, nil
	}

	if isLink {
		if err := platform.RemoveSymlink(abs); err != nil {
			return false, fmt.Errorf("removing existing link %s: %w", rel, err)
		}
		f.log.Debug().Str("path", rel).Msg("Removed existing link")
	}

	if err := platform.CreateSymlink(target, abs, isDir); err != nil {
		return false, fmt.Errorf("linking %s -> %s: %w", rel, target, err)
	}

	f.log.Info().Str("path", rel).Str("target", target).Msg("Linked")
	return isLink, nil
}

// WriteIfAbsent writes contents to path unless something already exists
// there, creating the parent directory first. Existing files are never
// overwritten. It returns true when the file was written.
func (f *Finalizer) WriteIfAbsent(path string, contents []byte) (bool, error) {
	abs := f.layout.Abs(path)
	rel := f.layout.Rel(abs)

	if _, err := os.Lstat(abs); err == nil {
		f.log.Debug().Str("path", rel).Msg("Exists, not overwriting")
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("inspecting %s: %w", rel, err)
	}

	if f.dryRun {
		f.log.Info().Str("path", rel).Bool("dry_run", true).Msg("Would write")
		return true, nil
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", f.layout.Rel(dir), err)
	}

	// O_EXCL keeps the write-once guarantee even if the file appeared
	// after the check above.
	file, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", rel, err)
	}

	if _, err := file.Write(contents); err != nil {
		file.Close()
		return false, fmt.Errorf("writing %s: %w", rel, err)
	}
	if err := file.Close(); err != nil {
		return false, fmt.Errorf("writing %s: %w", rel, err)
	}

	f.log.Info().Str("path", rel).Int("bytes", len(contents)).Msg("Wrote")
	return true, nil
}
