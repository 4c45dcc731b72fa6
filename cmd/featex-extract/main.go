// featex-extract runs the configured feature-extraction pipeline over a
// directory of documents and prints one feature line per (document,
// feature) pair.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/lexcore/featex/pkg/featex"
	"github.com/lexcore/featex/pkg/featex/analyzers"
	"github.com/lexcore/featex/pkg/featex/config"
	"github.com/lexcore/featex/pkg/featex/corpus"
)

func main() {
	var (
		configPath = flag.String("config", "", "Pipeline config file (required)")
		docsDir    = flag.String("docs", "", "Directory of documents to analyze (required)")
		workers    = flag.Int("workers", 0, "Concurrent workers (default: NumCPU)")
	)
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}
	if *docsDir == "" {
		log.Fatal("--docs required")
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	docs, err := readDocs(*docsDir)
	if err != nil {
		log.Fatal("Failed to read documents: ", err)
	}

	switch cfg.ValueType {
	case config.ValueWeight:
		err = run[float64](ctx, cfg, docs, *workers)
	default:
		err = run[uint64](ctx, cfg, docs, *workers)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run[T analyzers.Value](ctx context.Context, cfg *config.Config, docs []*corpus.Document, workers int) error {
	prototype, err := config.Build(ctx, cfg, analyzers.Default[T]())
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	engine, err := featex.New(featex.Options[T]{Prototype: prototype, Workers: workers})
	if err != nil {
		return err
	}

	results, err := engine.AnalyzeBatch(ctx, docs)
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err != nil {
			log.Printf("skipping %s: %v", res.Doc.Path, res.Err)
			continue
		}
		keys := make([]string, 0, len(res.Features))
		for k := range res.Features {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s\t%s\t%v\n", res.Doc.Path, k, res.Features[k])
		}
	}
	return nil
}

func readDocs(dir string) ([]*corpus.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []*corpus.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		doc, err := corpus.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
