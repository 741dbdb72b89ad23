package patterns

import (
	"embed"
	"io/fs"
	"path"

	"github.com/vovakirdan/tui-life/internal/registry"
)

//go:embed library/*.yaml
var library embed.FS

func init() {
	entries, err := fs.ReadDir(library, "library")
	if err != nil {
		panic("patterns: embedded library unreadable: " + err.Error())
	}
	for _, e := range entries {
		data, err := library.ReadFile(path.Join("library", e.Name()))
		if err != nil {
			panic("patterns: " + err.Error())
		}
		p, err := ParseYAML(data)
		if err != nil {
			panic(err.Error())
		}
		registry.Register(p)
	}
}
