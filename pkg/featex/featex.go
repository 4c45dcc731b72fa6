// Package featex is a document feature-extraction pipeline: documents
// go in, sparse string-keyed feature maps come out, ready for a
// downstream indexing system.
//
// An Engine holds one immutable analyzer prototype. For parallel work
// it clones the prototype once per worker; clones share only the
// read-only heavy resources loaded at construction (such as a tagging
// model), so no locking is needed anywhere on the analysis path.
package featex

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/lexcore/featex/pkg/featex/analyzers"
	"github.com/lexcore/featex/pkg/featex/corpus"
	"github.com/lexcore/featex/pkg/featex/internalerr"
)

// Result is the outcome of analyzing one document. Err is set for
// per-document failures; the rest of the batch is unaffected.
type Result[T analyzers.Value] struct {
	Doc      *corpus.Document
	Features analyzers.FeatureMap[T]
	Err      error
}

// Options configures an Engine.
type Options[T analyzers.Value] struct {
	// Prototype is the configured analyzer cloned per worker.
	Prototype analyzers.Analyzer[T]
	// Workers is the number of concurrent clones; defaults to NumCPU.
	Workers int
}

// Engine runs documents through a prototype analyzer, one clone per
// concurrent worker.
type Engine[T analyzers.Value] struct {
	prototype analyzers.Analyzer[T]
	workers   int
}

// New creates an engine around a prototype.
func New[T analyzers.Value](opts Options[T]) (*Engine[T], error) {
	if opts.Prototype == nil {
		return nil, fmt.Errorf("%w: engine requires a prototype analyzer", internalerr.ErrInvalidConfig)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine[T]{prototype: opts.Prototype, workers: workers}, nil
}

// Analyze runs a single document through a fresh clone.
func (e *Engine[T]) Analyze(doc *corpus.Document) (analyzers.FeatureMap[T], error) {
	return analyzers.Analyze(e.prototype.Clone(), doc)
}

// AnalyzeBatch analyzes every document concurrently and returns one
// Result per document, in input order. Feature maps are pure functions
// of (document, configuration), so scheduling order never changes the
// output.
//
// If ctx is cancelled the batch is abandoned: in-flight partial feature
// maps are discarded and the context error is returned instead of
// results.
func (e *Engine[T]) AnalyzeBatch(ctx context.Context, docs []*corpus.Document) ([]Result[T], error) {
	results := make([]Result[T], len(docs))

	jobs := make(chan int, len(docs))
	for i := range docs {
		jobs <- i
	}
	close(jobs)

	workers := e.workers
	if workers > len(docs) {
		workers = len(docs)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clone := e.prototype.Clone()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				features, err := analyzers.Analyze(clone, docs[i])
				results[i] = Result[T]{Doc: docs[i], Features: features, Err: err}
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
