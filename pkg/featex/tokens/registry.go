package tokens

import (
	"fmt"

	"github.com/lexcore/featex/pkg/featex/internalerr"
)

// Params is the loosely-typed parameter block attached to one filter
// configuration entry.
type Params map[string]any

// String returns a required string parameter.
func (p Params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%w: filter parameter %q missing", internalerr.ErrInvalidConfig, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: filter parameter %q must be a string", internalerr.ErrInvalidConfig, key)
	}
	return s, nil
}

// Int returns a required integer parameter. YAML decoding may deliver
// the value as any integer width, so all of them are accepted.
func (p Params) Int(key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: filter parameter %q missing", internalerr.ErrInvalidConfig, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: filter parameter %q must be an integer", internalerr.ErrInvalidConfig, key)
	}
}

// IntOr returns an optional integer parameter, or def when absent.
func (p Params) IntOr(key string, def int) (int, error) {
	if _, ok := p[key]; !ok {
		return def, nil
	}
	return p.Int(key)
}

// Strings returns an optional string-list parameter.
func (p Params) Strings(key string) ([]string, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		if ss, ok := v.([]string); ok {
			return ss, nil
		}
		return nil, fmt.Errorf("%w: filter parameter %q must be a list of strings", internalerr.ErrInvalidConfig, key)
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, fmt.Errorf("%w: filter parameter %q must be a list of strings", internalerr.ErrInvalidConfig, key)
		}
		out = append(out, s)
	}
	return out, nil
}

// FilterSpec names one filter in a chain plus its parameters.
type FilterSpec struct {
	Type   string
	Params Params
}

// Transform wraps a stream with one configured filter. A Transform is
// created once per chain compilation and applied once per document;
// each application builds a fresh filter instance, so any per-stream
// state is never shared between documents.
type Transform func(src Stream) Stream

// FilterFactory validates one filter's parameters and returns its
// Transform. All parameter work, including loading referenced resource
// files, happens here, once, at chain compilation.
type FilterFactory func(p Params) (Transform, error)

// Registry maps filter identifiers to factories. It is populated by an
// explicit registration step at pipeline startup; there is no implicit
// load-time registration.
type Registry struct {
	factories map[string]FilterFactory
}

// NewRegistry creates an empty filter registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]FilterFactory)}
}

// Register adds a filter factory under id. Registering the same id twice
// is a setup error.
func (r *Registry) Register(id string, f FilterFactory) error {
	if _, ok := r.factories[id]; ok {
		return fmt.Errorf("%w: filter %q already registered", internalerr.ErrDuplicate, id)
	}
	r.factories[id] = f
	return nil
}

// Chain is a compiled filter chain, ready to wrap one stream per
// document. A Chain is immutable and safely shared across extractor
// clones.
type Chain []Transform

// Wrap applies the chain's filters to base in list order. The result is
// lazy: nothing is read from base until the returned stream is pulled.
func (c Chain) Wrap(base Stream) Stream {
	out := base
	for _, transform := range c {
		out = transform(out)
	}
	return out
}

// Compile resolves each configured filter against the registry and
// validates its parameters. Unknown identifiers and bad parameters are
// configuration errors surfaced here, not at analysis time.
func (r *Registry) Compile(specs []FilterSpec) (Chain, error) {
	chain := make(Chain, 0, len(specs))
	for _, spec := range specs {
		factory, ok := r.factories[spec.Type]
		if !ok {
			return nil, fmt.Errorf("%w: unknown filter %q", internalerr.ErrInvalidConfig, spec.Type)
		}
		transform, err := factory(spec.Params)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", spec.Type, err)
		}
		chain = append(chain, transform)
	}
	return chain, nil
}

// DefaultRegistry returns a registry with the built-in filters:
// lowercase, alpha, length, stopword and sentence-boundary.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(r.Register("lowercase", func(Params) (Transform, error) {
		return NewLowercaseFilter, nil
	}))
	must(r.Register("alpha", func(Params) (Transform, error) {
		return NewAlphaFilter, nil
	}))
	must(r.Register("length", func(p Params) (Transform, error) {
		min, err := p.Int("min")
		if err != nil {
			return nil, err
		}
		max, err := p.IntOr("max", 1<<30)
		if err != nil {
			return nil, err
		}
		if min < 0 || max < min {
			return nil, fmt.Errorf("%w: length filter requires 0 <= min <= max", internalerr.ErrInvalidConfig)
		}
		return func(src Stream) Stream {
			return NewLengthFilter(src, min, max)
		}, nil
	}))
	must(r.Register("stopword", func(p Params) (Transform, error) {
		terms, err := p.Strings("terms")
		if err != nil {
			return nil, err
		}
		if _, ok := p["file"]; ok {
			path, err := p.String("file")
			if err != nil {
				return nil, err
			}
			fileTerms, err := LoadStoplist(path)
			if err != nil {
				return nil, err
			}
			terms = append(terms, fileTerms...)
		}
		if len(terms) == 0 {
			return nil, fmt.Errorf("%w: stopword filter requires %q or %q", internalerr.ErrInvalidConfig, "terms", "file")
		}
		return func(src Stream) Stream {
			return NewStopwordFilter(src, terms)
		}, nil
	}))
	must(r.Register("sentence-boundary", func(Params) (Transform, error) {
		return NewSentenceFilter, nil
	}))
	return r
}
