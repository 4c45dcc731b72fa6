package sequence

import (
	"fmt"
	"strings"
)

// maxSuffix is the longest suffix observation generated per token.
const maxSuffix = 3

// Observer derives the model's decoding observations from a token.
// The same observation scheme is used at training and decode time, so
// the two must share one Observer definition. An Observer is immutable
// and shared read-only across extractor clones.
type Observer struct{}

// NewObserver creates the standard observer.
func NewObserver() *Observer {
	return &Observer{}
}

// Observe returns the observation features for one token: the
// lowercased surface form plus its suffixes up to maxSuffix runes.
func (o *Observer) Observe(token string) []string {
	lower := strings.ToLower(token)
	feats := []string{"w=" + lower}

	runes := []rune(lower)
	for n := 1; n <= maxSuffix && n < len(runes); n++ {
		feats = append(feats, fmt.Sprintf("s%d=%s", n, string(runes[len(runes)-n:])))
	}
	return feats
}
