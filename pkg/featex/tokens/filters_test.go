package tokens

import (
	"reflect"
	"testing"
)

func TestLowercaseFilter(t *testing.T) {
	got := Drain(NewLowercaseFilter(NewBaseStream("The BIG Dog")))
	want := []string{"the", "big", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAlphaFilterDropsPunctuation(t *testing.T) {
	got := Drain(NewAlphaFilter(NewBaseStream("dog , cat ;")))
	want := []string{"dog", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAlphaFilterKeepsBoundaryMarker(t *testing.T) {
	// sentence-boundary runs first, alpha must not eat the marker
	got := Drain(NewAlphaFilter(NewSentenceFilter(NewBaseStream("dog . cat"))))
	want := []string{"dog", SentenceBoundary, "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLengthFilter(t *testing.T) {
	got := Drain(NewLengthFilter(NewBaseStream("a bb ccc dddd"), 2, 3))
	want := []string{"bb", "ccc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestStopwordFilter(t *testing.T) {
	got := Drain(NewStopwordFilter(NewBaseStream("The dog and the cat"), []string{"the", "and"}))
	want := []string{"dog", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSentenceFilterMarksBoundaries(t *testing.T) {
	got := Drain(NewSentenceFilter(NewBaseStream("Dogs bark. Cats meow.")))
	want := []string{"Dogs", "bark", SentenceBoundary, "Cats", "meow", SentenceBoundary}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSentenceFilterCollapsesRuns(t *testing.T) {
	// "?!" and "..." must not create empty segments
	got := Drain(NewSentenceFilter(NewBaseStream("Really?! Wow...")))
	want := []string{"Really", SentenceBoundary, "Wow", SentenceBoundary}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
