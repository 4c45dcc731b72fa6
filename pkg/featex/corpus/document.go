// Package corpus defines the document type consumed by the extraction
// pipeline. Documents are immutable once constructed: extractors borrow
// them read-only and never retain references past an analyze call.
package corpus

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Document is one unit of input to the pipeline: an opaque identifier,
// the raw textual content, and the source path it was read from.
type Document struct {
	ID      string
	Path    string
	Content string
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

func newID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}

// NewDocument creates a document from plain text content.
func NewDocument(path, content string) *Document {
	return &Document{
		ID:      newID(),
		Path:    path,
		Content: content,
	}
}

// NewHTMLDocument creates a document from HTML content, keeping only the
// visible text. Script and style subtrees are dropped entirely.
func NewHTMLDocument(path, markup string) *Document {
	return NewDocument(path, StripHTML(markup))
}

// ReadFile loads a document from disk, dispatching on the file extension:
// .html and .htm sources are stripped to visible text, everything else is
// taken verbatim.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return NewHTMLDocument(path, string(data)), nil
	default:
		return NewDocument(path, string(data)), nil
	}
}
