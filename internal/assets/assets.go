package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed files
var filesFS embed.FS

const filesDir = "files"

// Names of the embedded assets.
const (
	LaunchJSON = "launch.json"
	PoetryTOML = "poetry.toml"
)

// Get returns a copy of the embedded asset with the given name.
func Get(name string) ([]byte, error) {
	data, err := fs.ReadFile(filesFS, path.Join(filesDir, name))
	if err != nil {
		return nil, fmt.Errorf("asset %q not found: %w", name, err)
	}
	return data, nil
}
