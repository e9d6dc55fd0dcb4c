package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lysyi3m/pub-atom/app/atom"
	"github.com/lysyi3m/pub-atom/app/cfg"
	"github.com/lysyi3m/pub-atom/app/config"
	"github.com/lysyi3m/pub-atom/app/feed"
)

const minimalDocument = "feed:\n  id: urn:feed\n  title: Feed\n"

func TestLoadDocumentsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.yml")
	if err := os.WriteFile(path, []byte(minimalDocument), 0644); err != nil {
		t.Fatal(err)
	}

	docs, err := loadDocuments(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(docs) != 1 || docs[path] == nil || docs[path].Name != "single" {
		t.Errorf("Expected the single document keyed by path, got %v", docs)
	}
}

func TestLoadDocumentsFromDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yml", "b.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(minimalDocument), 0644); err != nil {
			t.Fatal(err)
		}
	}

	docs, err := loadDocuments(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("Expected 2 documents, got %d", len(docs))
	}
}

func TestLoadDocumentsMissingInput(t *testing.T) {
	if _, err := loadDocuments(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing input")
	}
}

func TestFeedOptionsStampBuildVersion(t *testing.T) {
	generator := feed.NewGenerator(t.TempDir(), "", feedOptions(&cfg.Cfg{Version: "1.2.3"})...)

	out, err := generator.Run(&config.Document{
		Name: "versioned",
		Feed: atom.FeedOptions{ID: "urn:feed", Title: "Feed"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := `<generator version="1.2.3" uri="https://github.com/lysyi3m/pub-atom">pub-atom</generator>`
	if !strings.Contains(out, want) {
		t.Errorf("Output should contain %s, got:\n%s", want, out)
	}
}
