// Package sequence wraps an externally-trained sequence-labeling model
// behind a small adapter: given a token segment, produce one tag per
// token. The model resource is a SQLite file holding feature emission
// and tag transition weights; it is loaded fully into immutable
// in-memory tables at construction and shared read-only afterwards.
package sequence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/lexcore/featex/pkg/featex/internalerr"
)

// startTag is the synthetic predecessor of the first token in a segment.
const startTag = "<s>"

// Model holds the decoded weight tables of a trained tagging model.
// A Model is immutable after LoadModel returns and may be shared by any
// number of concurrent readers.
type Model struct {
	emissions   map[string]map[string]float64 // observation feature -> tag -> weight
	transitions map[string]map[string]float64 // previous tag -> tag -> weight
	tags        []string                      // sorted tag inventory
	defaultTag  string
}

// Tags returns the model's tag inventory in sorted order.
func (m *Model) Tags() []string {
	out := make([]string, len(m.tags))
	copy(out, m.tags)
	return out
}

// LoadModel reads a trained tagging model from a SQLite file. A missing,
// unreadable or empty model file is a resource-load error carrying the
// path; this is fatal at prototype construction and never retried.
func LoadModel(ctx context.Context, path string) (*Model, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: tagger model %s: %v", internalerr.ErrResourceLoad, path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: tagger model %s: %v", internalerr.ErrResourceLoad, path, err)
	}
	defer db.Close()

	m := &Model{
		emissions:   make(map[string]map[string]float64),
		transitions: make(map[string]map[string]float64),
	}

	tagSet := make(map[string]struct{})
	totals := make(map[string]float64)

	rows, err := db.QueryContext(ctx, "SELECT feature, tag, weight FROM emissions")
	if err != nil {
		return nil, fmt.Errorf("%w: tagger model %s: %v", internalerr.ErrResourceLoad, path, err)
	}
	for rows.Next() {
		var feature, tag string
		var weight float64
		if err := rows.Scan(&feature, &tag, &weight); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: tagger model %s: %v", internalerr.ErrResourceLoad, path, err)
		}
		if m.emissions[feature] == nil {
			m.emissions[feature] = make(map[string]float64)
		}
		m.emissions[feature][tag] = weight
		tagSet[tag] = struct{}{}
		totals[tag] += weight
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: tagger model %s: %v", internalerr.ErrResourceLoad, path, err)
	}
	rows.Close()

	rows, err = db.QueryContext(ctx, "SELECT prev, next, weight FROM transitions")
	if err != nil {
		return nil, fmt.Errorf("%w: tagger model %s: %v", internalerr.ErrResourceLoad, path, err)
	}
	for rows.Next() {
		var prev, next string
		var weight float64
		if err := rows.Scan(&prev, &next, &weight); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: tagger model %s: %v", internalerr.ErrResourceLoad, path, err)
		}
		if m.transitions[prev] == nil {
			m.transitions[prev] = make(map[string]float64)
		}
		m.transitions[prev][next] = weight
		if prev != startTag {
			tagSet[prev] = struct{}{}
		}
		tagSet[next] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: tagger model %s: %v", internalerr.ErrResourceLoad, path, err)
	}
	rows.Close()

	if len(tagSet) == 0 {
		return nil, fmt.Errorf("%w: tagger model %s: no tags", internalerr.ErrResourceLoad, path)
	}

	m.tags = make([]string, 0, len(tagSet))
	for tag := range tagSet {
		m.tags = append(m.tags, tag)
	}
	sort.Strings(m.tags)

	// Most frequent tag overall, ties broken lexicographically by the
	// sorted iteration order.
	for _, tag := range m.tags {
		if m.defaultTag == "" || totals[tag] > totals[m.defaultTag] {
			m.defaultTag = tag
		}
	}

	return m, nil
}
