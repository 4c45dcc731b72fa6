// Package analyzers defines the feature-extraction contract and the
// concrete extractors shipped with the pipeline. An Analyzer turns one
// document into sparse feature counts; prototypes are built once from
// configuration and cloned per worker for lock-free parallel use.
package analyzers

import (
	"fmt"

	"github.com/lexcore/featex/pkg/featex/corpus"
)

// Value is the feature weight type of one pipeline instantiation:
// unsigned integer counts for discrete occurrence counting, or real
// values for weighted features. The choice is fixed per pipeline build.
type Value interface {
	~uint64 | ~float64
}

// FeatureMap accumulates observed features and their weights for one
// document. Keys are unique; insertion order carries no meaning.
type FeatureMap[T Value] map[string]T

// Analyzer produces feature counts from documents.
//
// Tokenize accumulates into a caller-supplied map so that several
// analyzer stages can write into the same map without reallocating it.
// Clone returns a fully independent instance: mutable scratch state is
// freshly allocated while heavy immutable resources (a tagging model)
// are shared by reference. Clone never fails; a clone that cannot be
// built indicates broken prototype construction, which is fatal.
type Analyzer[T Value] interface {
	Tokenize(doc *corpus.Document, counts FeatureMap[T]) error
	Clone() Analyzer[T]
}

// Analyze runs one document through an analyzer and returns its feature
// map. A per-document failure returns a nil map and an error; it does
// not invalidate the analyzer for subsequent documents.
func Analyze[T Value](a Analyzer[T], doc *corpus.Document) (FeatureMap[T], error) {
	counts := make(FeatureMap[T])
	if err := a.Tokenize(doc, counts); err != nil {
		return nil, fmt.Errorf("analyze %s: %w", doc.Path, err)
	}
	return counts, nil
}

// ngramSeparator joins the members of one window into a feature key.
const ngramSeparator = "_"

// countNgrams slides a window of width n over items and increments one
// feature per window position. Sequences shorter than n contribute
// nothing.
func countNgrams[T Value](counts FeatureMap[T], n int, items []string) {
	for i := 0; i+n <= len(items); i++ {
		key := items[i]
		for _, item := range items[i+1 : i+n] {
			key += ngramSeparator + item
		}
		counts[key] += 1
	}
}
