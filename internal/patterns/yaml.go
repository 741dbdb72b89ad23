// Package patterns loads seed patterns from YAML and places them on a grid.
//
// The built-in library is embedded and registered on import. Users can add
// their own patterns from a directory with LoadDir.
package patterns

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// YAMLPattern represents the YAML structure for a pattern file.
// Cells may be given as drawn rows ('O' live, '.' dead), as explicit
// [x, y] pairs, or both.
type YAMLPattern struct {
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Rows        []string `yaml:"rows,omitempty"`
	Cells       [][2]int `yaml:"cells,omitempty"`
}

// ParseYAML parses a YAML pattern file.
func ParseYAML(data []byte) (registry.Pattern, error) {
	var yp YAMLPattern
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return registry.Pattern{}, fmt.Errorf("patterns: yaml unmarshal: %w", err)
	}

	if strings.TrimSpace(yp.Name) == "" {
		return registry.Pattern{}, fmt.Errorf("patterns: missing name")
	}

	title := yp.Title
	if title == "" {
		title = yp.Name
	}

	live := life.NewCellSet()
	for y, row := range yp.Rows {
		for x, r := range []rune(row) {
			switch r {
			case 'O', 'o', '*', '#':
				live[life.C(x, y)] = struct{}{}
			case '.', ' ', '_':
			default:
				return registry.Pattern{}, fmt.Errorf("patterns: %s: row %d: unexpected %q", yp.Name, y, r)
			}
		}
	}
	for _, xy := range yp.Cells {
		if xy[0] < 0 || xy[1] < 0 {
			return registry.Pattern{}, fmt.Errorf("patterns: %s: negative cell %v", yp.Name, xy)
		}
		live[life.C(xy[0], xy[1])] = struct{}{}
	}

	if len(live) == 0 {
		return registry.Pattern{}, fmt.Errorf("patterns: %s: no live cells", yp.Name)
	}

	return registry.Pattern{
		Name:        yp.Name,
		Title:       title,
		Description: yp.Description,
		Cells:       live.Sorted(),
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
