package config

import (
	"path/filepath"
	"strings"
)

// FileName returns the name of the generated Atom file
func (d *Document) FileName() string {
	return d.Name + ".xml"
}

// nameFromPath strips directory and .yml/.yaml extension
func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
