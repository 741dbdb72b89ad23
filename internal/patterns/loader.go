package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-life/internal/registry"
)

// Loader handles loading patterns from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new pattern loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pattern files.
// Invalid files are skipped. Returns patterns sorted by name.
func (l *Loader) LoadAll() ([]registry.Pattern, error) {
	var loaded []registry.Pattern

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		p, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		loaded = append(loaded, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("patterns: scan %s: %w", l.Root, err)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].Name < loaded[j].Name
	})
	return loaded, nil
}

// LoadFile loads a single pattern file.
func (l *Loader) LoadFile(path string) (registry.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return registry.Pattern{}, fmt.Errorf("patterns: read %s: %w", path, err)
	}
	return ParseYAML(data)
}

// LoadDir loads every pattern under dir into the registry, replacing
// built-ins of the same name. Returns the number of patterns loaded.
func LoadDir(dir string) (int, error) {
	loaded, err := NewLoader(dir).LoadAll()
	if err != nil {
		return 0, err
	}
	for _, p := range loaded {
		registry.Replace(p)
	}
	return len(loaded), nil
}

func isSupportedExtension(ext string) bool {
	for _, e := range FormatExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}
