package mode

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog file
type File struct {
	Modes []Mode `yaml:"modes"`
}

// Load reads one YAML catalog file into a fresh catalog
func Load(path string) (*Catalog, error) {
	c := NewCatalog()
	if err := loadInto(c, path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadGlob loads every catalog file matching a doublestar pattern into a
// fresh catalog in filename order, so later files replace same-named
// modes from earlier ones. A pattern matching nothing yields an empty
// catalog
func LoadGlob(pattern string) (*Catalog, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad catalog pattern %q: %w", pattern, err)
	}
	sort.Strings(paths)

	c := NewCatalog()
	for _, path := range paths {
		if err := loadInto(c, path); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func loadInto(c *Catalog, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	for _, m := range f.Modes {
		if err := c.Add(m); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
