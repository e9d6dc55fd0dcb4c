package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lysyi3m/pub-atom/app/atom"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of feed documents
type Loader struct {
	feedsDir string
}

// NewLoader creates a new document loader
func NewLoader(feedsDir string) *Loader {
	return &Loader{feedsDir: feedsDir}
}

// LoadAll loads all YAML documents from the feeds directory, keyed by path
func (l *Loader) LoadAll() (map[string]*Document, error) {
	docs := make(map[string]*Document)

	// Check if feeds directory exists
	if _, err := os.Stat(l.feedsDir); os.IsNotExist(err) {
		return docs, nil // Return empty map if directory doesn't exist
	}

	files, err := filepath.Glob(filepath.Join(l.feedsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	// Also check for .yml extension
	ymlFiles, err := filepath.Glob(filepath.Join(l.feedsDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	names := make(map[string]string, len(files))
	for _, file := range files {
		doc, err := LoadFile(file)
		if err != nil {
			return nil, err
		}

		if other, ok := names[doc.Name]; ok {
			return nil, fmt.Errorf("documents %s and %s both produce %s", other, file, doc.FileName())
		}
		names[doc.Name] = file

		docs[file] = doc
		slog.Debug("Document loaded", "file", file, "feed", doc.Feed.ID, "entries", len(doc.Entries))
	}

	return docs, nil
}

// LoadFile loads and validates a single YAML document
func LoadFile(path string) (*Document, error) {
	doc, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}

	setDefaults(doc, path)

	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("invalid document %s: %w", path, err)
	}

	return doc, nil
}

func loadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &doc, nil
}

// setDefaults applies default values to a document
func setDefaults(doc *Document, path string) {
	doc.Name = nameFromPath(path)
	doc.Feed.Domain = strings.TrimSpace(doc.Feed.Domain)
	for i := range doc.Entries {
		doc.Entries[i].Path = strings.TrimSpace(doc.Entries[i].Path)
	}
}

// validate runs the document through the atom constructors so that shape
// problems surface at load time. Domain and author resolution depend on the
// generator's settings and are left to feed.Generator.
func validate(doc *Document) error {
	if _, err := atom.NewFeed(doc.Feed); err != nil {
		return err
	}

	for i, entry := range doc.Entries {
		if _, err := atom.NewEntry(entry); err != nil {
			return fmt.Errorf("entry at index %d: %w", i, err)
		}
	}

	return nil
}
