package analyzers

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lexcore/featex/pkg/featex/corpus"
	"github.com/lexcore/featex/pkg/featex/internalerr"
	"github.com/lexcore/featex/pkg/featex/sequence"
	"github.com/lexcore/featex/pkg/featex/tokens"
)

// trainTestModel writes a small tagging model file and returns its path.
func trainTestModel(t *testing.T) string {
	t.Helper()

	trainer := sequence.NewTrainer()
	sentences := [][2][]string{
		{{"the", "dog", "runs"}, {"DT", "NN", "VB"}},
		{{"the", "cat", "runs"}, {"DT", "NN", "VB"}},
		{{"a", "dog", "barks"}, {"DT", "NN", "VB"}},
	}
	for _, s := range sentences {
		if err := trainer.Add(s[0], s[1]); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "model.db")
	if err := trainer.Save(context.Background(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	return path
}

func newPOSAnalyzer(t *testing.T, n int) *NgramPOS[uint64] {
	t.Helper()
	a, err := NewNgramPOS[uint64](context.Background(), n, tokens.DefaultRegistry(),
		[]tokens.FilterSpec{{Type: "sentence-boundary"}, {Type: "lowercase"}}, trainTestModel(t))
	if err != nil {
		t.Fatalf("NewNgramPOS failed: %v", err)
	}
	return a
}

func TestNgramPOSBigramsOverTags(t *testing.T) {
	a := newPOSAnalyzer(t, 2)

	counts, err := Analyze[uint64](a, corpus.NewDocument("d", "The dog runs."))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	want := FeatureMap[uint64]{"DT_NN": 1, "NN_VB": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("Expected %v, got %v", want, counts)
	}
}

func TestNgramPOSSegmentsIndependently(t *testing.T) {
	a := newPOSAnalyzer(t, 2)

	counts, err := Analyze[uint64](a, corpus.NewDocument("d", "The dog runs. The cat runs."))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// Two identical-tag sentences; windows never span the boundary
	want := FeatureMap[uint64]{"DT_NN": 2, "NN_VB": 2}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("Expected %v, got %v", want, counts)
	}
}

func TestNgramPOSWindowWiderThanSegment(t *testing.T) {
	a := newPOSAnalyzer(t, 4)

	counts, err := Analyze[uint64](a, corpus.NewDocument("d", "The dog runs."))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("Window wider than segment should yield no features, got %v", counts)
	}
}

func TestNgramPOSCloneIndependence(t *testing.T) {
	proto := newPOSAnalyzer(t, 2)
	doc := corpus.NewDocument("d", "The dog runs. A cat barks.")

	c1 := proto.Clone()
	c2 := proto.Clone()

	m1, err := Analyze[uint64](c1, doc)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	m2, err := Analyze[uint64](c2, doc)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if !reflect.DeepEqual(m1, m2) {
		t.Errorf("Sibling clones should agree on identical input: %v vs %v", m1, m2)
	}

	// The prototype stays behaviorally equivalent to its clones
	m3, err := Analyze[uint64](proto, doc)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !reflect.DeepEqual(m1, m3) {
		t.Errorf("Prototype and clone disagree: %v vs %v", m3, m1)
	}
}

func TestNgramPOSMissingModel(t *testing.T) {
	_, err := NewNgramPOS[uint64](context.Background(), 2, tokens.DefaultRegistry(), nil,
		filepath.Join(t.TempDir(), "absent.db"))
	if !errors.Is(err, internalerr.ErrResourceLoad) {
		t.Errorf("Expected ErrResourceLoad, got %v", err)
	}
}

func TestNgramPOSRejectsNonPositiveN(t *testing.T) {
	_, err := NewNgramPOS[uint64](context.Background(), 0, tokens.DefaultRegistry(), nil, trainTestModel(t))
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestNgramPOSEmptyDocument(t *testing.T) {
	a := newPOSAnalyzer(t, 2)

	counts, err := Analyze[uint64](a, corpus.NewDocument("d", ""))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("Empty document should yield no features, got %v", counts)
	}
}
