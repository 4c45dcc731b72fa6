package sequence

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lexcore/featex/pkg/featex/internalerr"
)

// Trainer accumulates emission and transition counts from tagged
// segments and writes them out as a model file. Training is an offline
// step; the extraction pipeline only ever loads the result.
type Trainer struct {
	observer    *Observer
	emissions   map[string]map[string]float64
	transitions map[string]map[string]float64
}

// NewTrainer creates an empty trainer using the standard observer.
func NewTrainer() *Trainer {
	return &Trainer{
		observer:    NewObserver(),
		emissions:   make(map[string]map[string]float64),
		transitions: make(map[string]map[string]float64),
	}
}

// Add counts one tagged segment. tokens and tags must be parallel.
func (tr *Trainer) Add(tokens, tags []string) error {
	if len(tokens) != len(tags) {
		return fmt.Errorf("%w: %d tokens vs %d tags", internalerr.ErrMalformedDoc, len(tokens), len(tags))
	}

	prev := startTag
	for i, token := range tokens {
		tag := tags[i]
		for _, f := range tr.observer.Observe(token) {
			if tr.emissions[f] == nil {
				tr.emissions[f] = make(map[string]float64)
			}
			tr.emissions[f][tag]++
		}
		if tr.transitions[prev] == nil {
			tr.transitions[prev] = make(map[string]float64)
		}
		tr.transitions[prev][tag]++
		prev = tag
	}
	return nil
}

// Save writes the accumulated counts to a SQLite model file at path,
// replacing any existing tables.
func (tr *Trainer) Save(ctx context.Context, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("save tagger model: %w", err)
	}
	defer db.Close()

	schema := `
DROP TABLE IF EXISTS emissions;
DROP TABLE IF EXISTS transitions;
CREATE TABLE emissions (
	feature TEXT NOT NULL,
	tag TEXT NOT NULL,
	weight REAL NOT NULL,
	PRIMARY KEY(feature, tag)
);
CREATE TABLE transitions (
	prev TEXT NOT NULL,
	next TEXT NOT NULL,
	weight REAL NOT NULL,
	PRIMARY KEY(prev, next)
);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("save tagger model: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save tagger model: %w", err)
	}
	defer tx.Rollback()

	for feature, byTag := range tr.emissions {
		for tag, weight := range byTag {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO emissions (feature, tag, weight) VALUES (?, ?, ?)",
				feature, tag, weight); err != nil {
				return fmt.Errorf("save tagger model: %w", err)
			}
		}
	}
	for prev, byNext := range tr.transitions {
		for next, weight := range byNext {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO transitions (prev, next, weight) VALUES (?, ?, ?)",
				prev, next, weight); err != nil {
				return fmt.Errorf("save tagger model: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save tagger model: %w", err)
	}
	return nil
}
