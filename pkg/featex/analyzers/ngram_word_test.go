package analyzers

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lexcore/featex/pkg/featex/corpus"
	"github.com/lexcore/featex/pkg/featex/internalerr"
	"github.com/lexcore/featex/pkg/featex/tokens"
)

func TestNgramWordBigrams(t *testing.T) {
	a, err := NewNgramWord[uint64](2, tokens.DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("NewNgramWord failed: %v", err)
	}

	counts, err := Analyze[uint64](a, corpus.NewDocument("d", "the dog barks"))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	want := FeatureMap[uint64]{"the_dog": 1, "dog_barks": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("Expected %v, got %v", want, counts)
	}
}

func TestNgramWordWindowCount(t *testing.T) {
	// L tokens and window n yield exactly L-n+1 occurrences
	a, err := NewNgramWord[uint64](3, tokens.DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("NewNgramWord failed: %v", err)
	}

	counts, err := Analyze[uint64](a, corpus.NewDocument("d", "a b c d e"))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	var total uint64
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Errorf("Expected 3 window occurrences, got %d (%v)", total, counts)
	}
}

func TestNgramWordShortInput(t *testing.T) {
	a, err := NewNgramWord[uint64](4, tokens.DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("NewNgramWord failed: %v", err)
	}

	counts, err := Analyze[uint64](a, corpus.NewDocument("d", "too short"))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("Window wider than input should yield no features, got %v", counts)
	}
}

func TestNgramWordRejectsNonPositiveN(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := NewNgramWord[uint64](n, tokens.DefaultRegistry(), nil)
		if !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("n=%d: expected ErrInvalidConfig, got %v", n, err)
		}
	}
}

func TestNgramWordRejectsUnknownFilter(t *testing.T) {
	_, err := NewNgramWord[uint64](1, tokens.DefaultRegistry(), []tokens.FilterSpec{{Type: "bogus"}})
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestNgramWordRespectsSentenceBoundaries(t *testing.T) {
	a, err := NewNgramWord[uint64](2, tokens.DefaultRegistry(), []tokens.FilterSpec{
		{Type: "sentence-boundary"},
	})
	if err != nil {
		t.Fatalf("NewNgramWord failed: %v", err)
	}

	counts, err := Analyze[uint64](a, corpus.NewDocument("d", "a b. c d."))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	want := FeatureMap[uint64]{"a_b": 1, "c_d": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("Windows should not cross sentence boundaries: expected %v, got %v", want, counts)
	}
}

func TestNgramWordRealValued(t *testing.T) {
	a, err := NewNgramWord[float64](1, tokens.DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("NewNgramWord failed: %v", err)
	}

	counts, err := Analyze[float64](a, corpus.NewDocument("d", "dog dog cat"))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	want := FeatureMap[float64]{"dog": 2, "cat": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("Expected %v, got %v", want, counts)
	}
}
