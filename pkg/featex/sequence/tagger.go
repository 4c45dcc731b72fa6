package sequence

// Tagger assigns one tag per input token using a loaded model and an
// observation scheme. Tag is a pure function of its input: the only
// state behind it is the shared read-only model, so one Tagger may be
// used from any number of goroutines.
type Tagger struct {
	model    *Model
	observer *Observer
}

// NewTagger creates a tagger over a loaded model.
func NewTagger(model *Model, observer *Observer) *Tagger {
	return &Tagger{model: model, observer: observer}
}

// Tag returns the tag sequence for one segment, one tag per token in
// order. An empty segment yields an empty sequence, never an error.
// Decoding is greedy left-to-right: each position takes the tag with
// the highest emission-plus-transition score, ties broken by tag order.
func (t *Tagger) Tag(tokens []string) []string {
	tags := make([]string, 0, len(tokens))

	prev := startTag
	for _, token := range tokens {
		feats := t.observer.Observe(token)

		best := t.model.defaultTag
		bestScore := 0.0
		scored := false
		for _, tag := range t.model.tags {
			score := t.model.transitions[prev][tag]
			for _, f := range feats {
				score += t.model.emissions[f][tag]
			}
			if !scored || score > bestScore {
				best = tag
				bestScore = score
				scored = true
			}
		}
		if bestScore == 0 {
			// Nothing known about this token in this context
			best = t.model.defaultTag
		}

		tags = append(tags, best)
		prev = best
	}

	return tags
}
