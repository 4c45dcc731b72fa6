package sequence

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lexcore/featex/pkg/featex/internalerr"
)

// trainTestModel writes a small model to a temp file and loads it back.
func trainTestModel(t *testing.T) *Model {
	t.Helper()

	trainer := NewTrainer()
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

	model, err := LoadModel(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}
	return model
}

func TestTaggerTagsKnownSentence(t *testing.T) {
	tagger := NewTagger(trainTestModel(t), NewObserver())

	got := tagger.Tag([]string{"the", "dog", "runs"})
	want := []string{"DT", "NN", "VB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestTaggerOutputLengthMatchesInput(t *testing.T) {
	tagger := NewTagger(trainTestModel(t), NewObserver())

	for _, tokens := range [][]string{
		{"the"},
		{"the", "dog"},
		{"zzz", "qqq", "www", "rrr"},
	} {
		tags := tagger.Tag(tokens)
		if len(tags) != len(tokens) {
			t.Errorf("Tag(%v): expected %d tags, got %d", tokens, len(tokens), len(tags))
		}
	}
}

func TestTaggerEmptySegment(t *testing.T) {
	tagger := NewTagger(trainTestModel(t), NewObserver())

	if tags := tagger.Tag(nil); len(tags) != 0 {
		t.Errorf("Empty input should yield empty tags, got %v", tags)
	}
}

func TestTaggerDeterministic(t *testing.T) {
	model := trainTestModel(t)
	a := NewTagger(model, NewObserver())
	b := NewTagger(model, NewObserver())

	tokens := []string{"a", "cat", "barks", "loudly"}
	if !reflect.DeepEqual(a.Tag(tokens), b.Tag(tokens)) {
		t.Error("Tagging should be deterministic for a fixed model and input")
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")
	_, err := LoadModel(context.Background(), path)
	if !errors.Is(err, internalerr.ErrResourceLoad) {
		t.Errorf("Expected ErrResourceLoad, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("Error should carry the resource path, got %v", err)
	}
}

func TestTrainerAddLengthMismatch(t *testing.T) {
	trainer := NewTrainer()
	err := trainer.Add([]string{"one", "two"}, []string{"X"})
	if !errors.Is(err, internalerr.ErrMalformedDoc) {
		t.Errorf("Expected ErrMalformedDoc, got %v", err)
	}
}

func TestModelTags(t *testing.T) {
	model := trainTestModel(t)
	want := []string{"DT", "NN", "VB"}
	if got := model.Tags(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected tag inventory %v, got %v", want, got)
	}
}
