package tokens

import (
	"strings"
	"unicode"
)

// lowercaseFilter folds every token to lower case.
type lowercaseFilter struct {
	src Stream
}

// NewLowercaseFilter wraps src so that every token is lowercased.
func NewLowercaseFilter(src Stream) Stream {
	return &lowercaseFilter{src: src}
}

func (f *lowercaseFilter) Next() (string, bool) {
	tok, ok := f.src.Next()
	if !ok {
		return "", false
	}
	return strings.ToLower(tok), true
}

// alphaFilter drops tokens that contain no letter or digit, i.e. bare
// punctuation. Sentence boundary markers pass through unchanged.
type alphaFilter struct {
	src Stream
}

// NewAlphaFilter wraps src so that punctuation-only tokens are dropped.
func NewAlphaFilter(src Stream) Stream {
	return &alphaFilter{src: src}
}

func (f *alphaFilter) Next() (string, bool) {
	for {
		tok, ok := f.src.Next()
		if !ok {
			return "", false
		}
		if tok == SentenceBoundary || hasAlnum(tok) {
			return tok, true
		}
	}
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// lengthFilter drops tokens whose rune length falls outside [min, max].
type lengthFilter struct {
	src Stream
	min int
	max int
}

// NewLengthFilter wraps src so that tokens shorter than min or longer
// than max runes are dropped. Sentence boundary markers always pass.
func NewLengthFilter(src Stream, min, max int) Stream {
	return &lengthFilter{src: src, min: min, max: max}
}

func (f *lengthFilter) Next() (string, bool) {
	for {
		tok, ok := f.src.Next()
		if !ok {
			return "", false
		}
		if tok == SentenceBoundary {
			return tok, true
		}
		n := len([]rune(tok))
		if n >= f.min && n <= f.max {
			return tok, true
		}
	}
}

// stopwordFilter drops tokens found in a fixed stopword set.
type stopwordFilter struct {
	src   Stream
	stops map[string]struct{}
}

// NewStopwordFilter wraps src so that any token in terms is dropped.
// Matching is case-insensitive against the lowercased term list.
func NewStopwordFilter(src Stream, terms []string) Stream {
	stops := make(map[string]struct{}, len(terms))
	for _, w := range terms {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &stopwordFilter{src: src, stops: stops}
}

func (f *stopwordFilter) Next() (string, bool) {
	for {
		tok, ok := f.src.Next()
		if !ok {
			return "", false
		}
		if _, stop := f.stops[strings.ToLower(tok)]; !stop {
			return tok, true
		}
	}
}

// sentenceFilter rewrites terminal punctuation into sentence boundary
// markers. Consecutive terminators collapse into a single marker, so a
// segment between two markers is never empty because of "?!" or "...".
type sentenceFilter struct {
	src    Stream
	marked bool
}

// NewSentenceFilter wraps src so that '.', '!' and '?' tokens become
// SentenceBoundary markers. The tagger-backed extractors rely on these
// markers to delimit the segments handed to the tagger.
func NewSentenceFilter(src Stream) Stream {
	return &sentenceFilter{src: src}
}

func (f *sentenceFilter) Next() (string, bool) {
	for {
		tok, ok := f.src.Next()
		if !ok {
			return "", false
		}
		switch tok {
		case ".", "!", "?":
			if f.marked {
				continue
			}
			f.marked = true
			return SentenceBoundary, true
		default:
			f.marked = false
			return tok, true
		}
	}
}
