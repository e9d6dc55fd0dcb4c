package config

import "github.com/lysyi3m/pub-atom/app/atom"

// Document is one feed description: feed metadata plus its entries in
// document order.
type Document struct {
	Name    string              `yaml:"-"` // Derived from filename (without extension)
	Feed    atom.FeedOptions    `yaml:"feed"`
	Entries []atom.EntryOptions `yaml:"entries"`
}
