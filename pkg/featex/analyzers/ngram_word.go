package analyzers

import (
	"fmt"

	"github.com/lexcore/featex/pkg/featex/corpus"
	"github.com/lexcore/featex/pkg/featex/internalerr"
	"github.com/lexcore/featex/pkg/featex/tokens"
)

// NgramWord counts n-grams over the word tokens produced by the
// configured filter chain. Windows never cross a sentence boundary
// marker, and the markers themselves are never part of a feature.
type NgramWord[T Value] struct {
	n     int
	chain tokens.Chain
}

// NewNgramWord builds an n-gram-over-words prototype. The window width
// must be positive and the filter chain must resolve against the
// registry; both are validated here, once, at prototype construction.
func NewNgramWord[T Value](n int, filters *tokens.Registry, specs []tokens.FilterSpec) (*NgramWord[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: ngram must be a positive integer, got %d", internalerr.ErrInvalidConfig, n)
	}
	chain, err := filters.Compile(specs)
	if err != nil {
		return nil, err
	}
	return &NgramWord[T]{n: n, chain: chain}, nil
}

// Tokenize implements Analyzer.
func (a *NgramWord[T]) Tokenize(doc *corpus.Document, counts FeatureMap[T]) error {
	stream := a.chain.Wrap(tokens.NewBaseStream(doc.Content))

	var segment []string
	for {
		tok, ok := stream.Next()
		if !ok {
			break
		}
		if tok == tokens.SentenceBoundary {
			countNgrams(counts, a.n, segment)
			segment = segment[:0]
			continue
		}
		segment = append(segment, tok)
	}
	countNgrams(counts, a.n, segment)
	return nil
}

// Clone implements Analyzer. The prototype carries only immutable
// configuration, so a shallow copy is a fully independent instance.
func (a *NgramWord[T]) Clone() Analyzer[T] {
	c := *a
	return &c
}
