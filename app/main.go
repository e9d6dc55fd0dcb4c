package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/lysyi3m/pub-atom/app/atom"
	"github.com/lysyi3m/pub-atom/app/cfg"
	"github.com/lysyi3m/pub-atom/app/config"
	"github.com/lysyi3m/pub-atom/app/feed"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting pub-atom", "version", appCfg.Version, "input", appCfg.Input, "output_dir", appCfg.OutputDir)

	docs, err := loadDocuments(appCfg.Input)
	if err != nil {
		slog.Error("Failed to load feed documents", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded feed documents", "count", len(docs))

	generator := feed.NewGenerator(appCfg.OutputDir, appCfg.Domain, feedOptions(appCfg)...)

	files := make([]string, 0, len(docs))
	for file := range docs {
		files = append(files, file)
	}
	sort.Strings(files)

	failed := 0
	for _, file := range files {
		path, err := generator.WriteFile(docs[file])
		if err != nil {
			slog.Error("Failed to generate feed", "file", file, "error", err)
			failed++
			continue
		}
		slog.Info("Feed written", "file", file, "output", path, "entries", len(docs[file].Entries))
	}

	slog.Info("Generation complete", "written", len(files)-failed, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// feedOptions stamps generated feeds with the running build's version
func feedOptions(appCfg *cfg.Cfg) []atom.Option {
	generator := atom.DefaultGenerator()
	generator.Version = appCfg.Version
	return []atom.Option{atom.WithDefaultGenerator(generator)}
}

// loadDocuments accepts a single document or a directory of documents
func loadDocuments(input string) (map[string]*config.Document, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if !info.IsDir() {
		doc, err := config.LoadFile(input)
		if err != nil {
			return nil, err
		}
		return map[string]*config.Document{input: doc}, nil
	}

	return config.NewLoader(input).LoadAll()
}
