package rules

import (
	"bytes"
	"io/fs"
	"path"
)

// Load reads a rule file from a file system. Files ending in .star are
// Starlark scripts, .yaml and .yml are YAML, anything else is rule text.
func Load(filesys fs.FS, name string, verbose bool) (prog *Program, err error) {
	data, err := fs.ReadFile(filesys, name)
	if err != nil {
		return
	}

	switch path.Ext(name) {
	case ".star":
		prog, err = ParseStarlark(name, data)
	case ".yaml", ".yml":
		prog, err = ParseYAML(bytes.NewReader(data))
	default:
		ps := &Parser{Verbose: verbose}
		prog, err = ps.Parse(bytes.NewReader(data))
	}
	if err != nil {
		return
	}

	prog.Verbose = verbose

	return
}
