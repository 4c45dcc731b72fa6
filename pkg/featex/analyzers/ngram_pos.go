package analyzers

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lexcore/featex/pkg/featex/corpus"
	"github.com/lexcore/featex/pkg/featex/internalerr"
	"github.com/lexcore/featex/pkg/featex/sequence"
	"github.com/lexcore/featex/pkg/featex/tokens"
)

// segmentCacheSize bounds each clone's private decode memo.
const segmentCacheSize = 1024

// NgramPOS counts n-grams over the tag sequence assigned by a sequence
// tagger instead of over the words themselves. The filter chain splits
// the document into sentence segments via boundary markers; each
// segment is tagged independently.
//
// The tagging model and observer are loaded once at prototype
// construction and shared read-only by every clone. The decode cache is
// the clone's private scratch state.
type NgramPOS[T Value] struct {
	n      int
	chain  tokens.Chain
	tagger *sequence.Tagger
	cache  *lru.Cache[string, []string]
}

// NewNgramPOS builds a tagger-backed n-gram prototype. Loading the
// model from modelPath happens here, once; a missing or corrupt model
// is fatal to pipeline setup, not a per-document condition.
func NewNgramPOS[T Value](ctx context.Context, n int, filters *tokens.Registry, specs []tokens.FilterSpec, modelPath string) (*NgramPOS[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: ngram must be a positive integer, got %d", internalerr.ErrInvalidConfig, n)
	}
	chain, err := filters.Compile(specs)
	if err != nil {
		return nil, err
	}

	model, err := sequence.LoadModel(ctx, modelPath)
	if err != nil {
		return nil, err
	}

	return &NgramPOS[T]{
		n:      n,
		chain:  chain,
		tagger: sequence.NewTagger(model, sequence.NewObserver()),
		cache:  newSegmentCache(),
	}, nil
}

// Tokenize implements Analyzer.
func (a *NgramPOS[T]) Tokenize(doc *corpus.Document, counts FeatureMap[T]) error {
	stream := a.chain.Wrap(tokens.NewBaseStream(doc.Content))

	var segment []string
	flush := func() {
		if len(segment) == 0 {
			return
		}
		countNgrams(counts, a.n, a.tagSegment(segment))
		segment = segment[:0]
	}

	for {
		tok, ok := stream.Next()
		if !ok {
			break
		}
		if tok == tokens.SentenceBoundary {
			flush()
			continue
		}
		segment = append(segment, tok)
	}
	flush()
	return nil
}

// tagSegment decodes one segment, memoizing by surface form. Repeated
// sentences are common in boilerplate-heavy corpora.
func (a *NgramPOS[T]) tagSegment(segment []string) []string {
	key := strings.Join(segment, "\x1f")
	if tags, ok := a.cache.Get(key); ok {
		return tags
	}
	tags := a.tagger.Tag(segment)
	a.cache.Add(key, tags)
	return tags
}

// Clone implements Analyzer. The model and observer behind the tagger
// are shared by reference; the decode cache is allocated fresh so that
// sibling clones never touch each other's state.
func (a *NgramPOS[T]) Clone() Analyzer[T] {
	c := *a
	c.cache = newSegmentCache()
	return &c
}

func newSegmentCache() *lru.Cache[string, []string] {
	cache, err := lru.New[string, []string](segmentCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant
		panic(fmt.Sprintf("featex: segment cache: %v", err))
	}
	return cache
}
