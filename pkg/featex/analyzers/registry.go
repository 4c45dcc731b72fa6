package analyzers

import (
	"context"
	"fmt"

	"github.com/lexcore/featex/pkg/featex/internalerr"
	"github.com/lexcore/featex/pkg/featex/tokens"
)

// Factory constructs an analyzer prototype from the global pipeline
// configuration and the analyzer's local block.
type Factory[T Value] func(ctx context.Context, global, local Params) (Analyzer[T], error)

// Registry maps method identifiers to analyzer factories. It is
// populated by an explicit registration step at pipeline startup; a
// failed construction registers nothing and leaves the registry as-is.
type Registry[T Value] struct {
	factories map[string]Factory[T]
}

// NewRegistry creates an empty analyzer registry.
func NewRegistry[T Value]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// Register adds a factory under id. Registering the same identifier
// twice is a fatal setup error.
func (r *Registry[T]) Register(id string, f Factory[T]) error {
	if _, ok := r.factories[id]; ok {
		return fmt.Errorf("%w: analyzer %q already registered", internalerr.ErrDuplicate, id)
	}
	r.factories[id] = f
	return nil
}

// New constructs a prototype for the given method identifier.
func (r *Registry[T]) New(ctx context.Context, id string, global, local Params) (Analyzer[T], error) {
	factory, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: analyzer method %q", internalerr.ErrNotFound, id)
	}
	a, err := factory(ctx, global, local)
	if err != nil {
		return nil, fmt.Errorf("analyzer %q: %w", id, err)
	}
	return a, nil
}

// Default returns a registry holding every built-in analyzer, resolving
// filter chains against the built-in filter registry.
func Default[T Value]() *Registry[T] {
	filters := tokens.DefaultRegistry()
	r := NewRegistry[T]()
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(r.Register("ngram-word", func(_ context.Context, global, local Params) (Analyzer[T], error) {
		n, err := local.Int("ngram")
		if err != nil {
			return nil, err
		}
		specs, err := local.Filters("filter")
		if err != nil {
			return nil, err
		}
		return NewNgramWord[T](n, filters, withGlobalStoplist(specs, global))
	}))

	must(r.Register("ngram-pos", func(ctx context.Context, global, local Params) (Analyzer[T], error) {
		n, err := local.Int("ngram")
		if err != nil {
			return nil, err
		}
		modelPath, err := local.String("crf-prefix")
		if err != nil {
			return nil, err
		}
		specs, err := local.Filters("filter")
		if err != nil {
			return nil, err
		}
		return NewNgramPOS[T](ctx, n, filters, withGlobalStoplist(specs, global), modelPath)
	}))

	must(r.Register("tree-depth", func(context.Context, Params, Params) (Analyzer[T], error) {
		return NewTreeDepth[T](), nil
	}))

	must(r.Register("tree-branch", func(context.Context, Params, Params) (Analyzer[T], error) {
		return NewTreeBranch[T](), nil
	}))

	return r
}

// withGlobalStoplist fills the pipeline-wide stoplist path into stopword
// filter specs that name neither terms nor a file of their own. Local
// stopword configuration always wins over the global one.
func withGlobalStoplist(specs []tokens.FilterSpec, global Params) []tokens.FilterSpec {
	path, _ := global["stoplist"].(string)
	if path == "" {
		return specs
	}
	out := make([]tokens.FilterSpec, len(specs))
	copy(out, specs)
	for i, spec := range out {
		if spec.Type != "stopword" {
			continue
		}
		if _, ok := spec.Params["file"]; ok {
			continue
		}
		if _, ok := spec.Params["terms"]; ok {
			continue
		}
		p := make(tokens.Params, len(spec.Params)+1)
		for k, v := range spec.Params {
			p[k] = v
		}
		p["file"] = path
		out[i].Params = p
	}
	return out
}
