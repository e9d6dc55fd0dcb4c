package feed

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lysyi3m/pub-atom/app/atom"
	"github.com/lysyi3m/pub-atom/app/config"
)

// Generator turns feed documents into Atom XML.
type Generator struct {
	outputDir string
	domain    string
	options   []atom.Option
}

// NewGenerator creates a generator writing into outputDir. domain fills in
// the tag URI domain of documents that do not set one.
func NewGenerator(outputDir, domain string, options ...atom.Option) *Generator {
	return &Generator{
		outputDir: outputDir,
		domain:    domain,
		options:   options,
	}
}

func (g *Generator) Run(doc *config.Document) (string, error) {
	f, err := g.Build(doc)
	if err != nil {
		return "", err
	}
	return f.Render()
}

// Build assembles the feed, adding entries in document order. The first
// failing entry aborts the document.
func (g *Generator) Build(doc *config.Document) (*atom.Feed, error) {
	opts := doc.Feed
	if opts.Domain == "" {
		opts.Domain = g.domain
	}

	f, err := atom.NewFeed(opts, g.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed %s: %w", doc.Name, err)
	}

	for i, entry := range doc.Entries {
		added, err := f.AddEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to add entry %d to feed %s: %w", i, doc.Name, err)
		}
		slog.Debug("Entry added", "feed", doc.Name, "id", added.ID)
	}

	return f, nil
}

// WriteFile generates doc and writes it to <outputDir>/<name>.xml
func (g *Generator) WriteFile(doc *config.Document) (string, error) {
	out, err := g.Run(doc)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(g.outputDir, doc.FileName())
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
