package config

import (
	"context"
	"fmt"

	"github.com/lexcore/featex/pkg/featex/analyzers"
	"github.com/lexcore/featex/pkg/featex/internalerr"
)

// Build constructs the configured analyzer prototype. Each block's
// "method" field selects the registered variant; the rest of the block
// is that variant's local configuration. Multiple blocks compose into a
// single multi-analyzer writing into one feature map.
//
// The value type parameter must match the config's value-type field;
// callers select it once per run (see cmd/featex-extract).
func Build[T analyzers.Value](ctx context.Context, cfg *Config, registry *analyzers.Registry[T]) (analyzers.Analyzer[T], error) {
	global := analyzers.Params{
		"stoplist":   cfg.Stoplist,
		"value-type": cfg.ValueType,
	}

	protos := make([]analyzers.Analyzer[T], 0, len(cfg.Analyzers))
	for i, block := range cfg.Analyzers {
		local := analyzers.Params(block)
		method, err := local.String("method")
		if err != nil {
			return nil, fmt.Errorf("%w: analyzer block %d missing method", internalerr.ErrInvalidConfig, i)
		}
		proto, err := registry.New(ctx, method, global, local)
		if err != nil {
			return nil, err
		}
		protos = append(protos, proto)
	}

	if len(protos) == 1 {
		return protos[0], nil
	}
	return analyzers.NewMulti(protos...), nil
}
