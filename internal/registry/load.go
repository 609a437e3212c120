package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/wwisedsl/internal/wwise"
)

// indexFile is the on-disk shape of a provided registry index.
type indexFile struct {
	Objects []indexEntry `yaml:"objects"`
}

type indexEntry struct {
	Path   string `yaml:"path"`
	Type   string `yaml:"type"`
	ID     string `yaml:"id,omitempty"`
	Folder bool   `yaml:"folder,omitempty"`
}

// LoadIndex builds a Registry from a YAML index file, for runs that have no
// live project tree to scan. Entries are registered in file order, so the
// index author controls the tie-break order the same way a tree walk would.
func LoadIndex(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry index: %w", err)
	}

	var idx indexFile
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing registry index %s: %w", path, err)
	}

	reg := New()
	for i, entry := range idx.Objects {
		if entry.Path == "" {
			return nil, fmt.Errorf("registry index %s: object %d has no path", path, i)
		}
		kind, _ := wwise.NormalizeType(entry.Type)
		reg.Register(entry.Path, kind, entry.ID)
		if entry.Folder {
			reg.MarkPlainFolder(entry.Path)
		}
	}
	return reg, nil
}
