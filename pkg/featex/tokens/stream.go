// Package tokens provides the token stream contract used by the
// extraction pipeline, a base stream over raw text, and a registry of
// named stream filters that are composed into chains from configuration.
package tokens

import "unicode"

// SentenceBoundary is the marker token emitted by the sentence-boundary
// filter. Downstream consumers treat it as a segment separator, never as
// a word.
const SentenceBoundary = "</s>"

// Stream is a lazily-produced ordered sequence of tokens. Next returns
// the next token and true, or "" and false once the stream is exhausted.
// A Stream is single-use and owned by exactly one consumer.
type Stream interface {
	Next() (string, bool)
}

// baseStream scans raw text into word and punctuation tokens on demand.
// Words are maximal runs of letters, digits and interior hyphens;
// every other non-space rune is emitted as a single-rune token so that
// filters further down the chain can observe punctuation.
type baseStream struct {
	runes []rune
	pos   int
}

// NewBaseStream creates the base token stream over raw document text.
// No characters are consumed until Next is called.
func NewBaseStream(text string) Stream {
	return &baseStream{runes: []rune(text)}
}

func wordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-'
}

// Next implements Stream.
func (s *baseStream) Next() (string, bool) {
	// Skip whitespace
	for s.pos < len(s.runes) && unicode.IsSpace(s.runes[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.runes) {
		return "", false
	}

	if !wordRune(s.runes[s.pos]) {
		tok := string(s.runes[s.pos])
		s.pos++
		return tok, true
	}

	start := s.pos
	for s.pos < len(s.runes) && wordRune(s.runes[s.pos]) {
		s.pos++
	}
	return string(s.runes[start:s.pos]), true
}

// Drain pulls every remaining token from a stream into a slice.
// Intended for tests and small inputs; production consumers pull lazily.
func Drain(s Stream) []string {
	var out []string
	for {
		tok, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}
