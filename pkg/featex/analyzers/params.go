package analyzers

import (
	"fmt"

	"github.com/lexcore/featex/pkg/featex/internalerr"
	"github.com/lexcore/featex/pkg/featex/tokens"
)

// Params is one configuration scope handed to an analyzer factory: the
// global pipeline block or the analyzer's local block. Values come
// straight out of the YAML decoder, so integer and list shapes vary.
type Params map[string]any

// String returns a required string field.
func (p Params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%w: field %q missing", internalerr.ErrInvalidConfig, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q must be a string", internalerr.ErrInvalidConfig, key)
	}
	return s, nil
}

// Int returns a required integer field.
func (p Params) Int(key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: field %q missing", internalerr.ErrInvalidConfig, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: field %q must be an integer", internalerr.ErrInvalidConfig, key)
	}
}

// Filters returns the filter chain configured under key, accepting
// either ready-made specs or the raw YAML list shape. An absent field
// yields an empty chain.
func (p Params) Filters(key string) ([]tokens.FilterSpec, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}

	if specs, ok := v.([]tokens.FilterSpec); ok {
		return specs, nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: field %q must be a list of filter blocks", internalerr.ErrInvalidConfig, key)
	}

	specs := make([]tokens.FilterSpec, 0, len(items))
	for _, item := range items {
		block, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: field %q must be a list of filter blocks", internalerr.ErrInvalidConfig, key)
		}
		spec := tokens.FilterSpec{Params: make(tokens.Params, len(block))}
		for k, val := range block {
			if k == "type" {
				s, ok := val.(string)
				if !ok {
					return nil, fmt.Errorf("%w: filter %q must name its type as a string", internalerr.ErrInvalidConfig, key)
				}
				spec.Type = s
				continue
			}
			spec.Params[k] = val
		}
		if spec.Type == "" {
			return nil, fmt.Errorf("%w: filter block missing %q", internalerr.ErrInvalidConfig, "type")
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
