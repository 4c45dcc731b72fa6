package analyzers

import "github.com/lexcore/featex/pkg/featex/corpus"

// Multi runs several analyzers over the same document, accumulating all
// of their features into one shared map.
type Multi[T Value] struct {
	stages []Analyzer[T]
}

// NewMulti combines analyzers into a single composite stage.
func NewMulti[T Value](stages ...Analyzer[T]) *Multi[T] {
	return &Multi[T]{stages: stages}
}

// Tokenize implements Analyzer by running every stage in order against
// the same counts map. The first stage error aborts the document.
func (m *Multi[T]) Tokenize(doc *corpus.Document, counts FeatureMap[T]) error {
	for _, stage := range m.stages {
		if err := stage.Tokenize(doc, counts); err != nil {
			return err
		}
	}
	return nil
}

// Clone implements Analyzer by cloning every stage.
func (m *Multi[T]) Clone() Analyzer[T] {
	stages := make([]Analyzer[T], len(m.stages))
	for i, stage := range m.stages {
		stages[i] = stage.Clone()
	}
	return &Multi[T]{stages: stages}
}
