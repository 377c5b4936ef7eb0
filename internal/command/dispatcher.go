package command

import (
	"context"

	"github.com/kapu/namevibes-bot/internal/domain"
)

// NormalizeFunc converts a domain command type plus params into the registry key
// and normalized parameter map used for execution.
type NormalizeFunc func(domain.CommandType, map[string]any) (string, map[string]any)

// ObserveFunc is told about every command that executed successfully.
type ObserveFunc func(domain.CommandType)

type sequentialDispatcher struct {
	registry  *Registry
	normalize NormalizeFunc
	observe   ObserveFunc
}

// NewSequentialDispatcher creates a dispatcher that executes command events in
// the order they are received. observe may be nil.
func NewSequentialDispatcher(registry *Registry, normalize NormalizeFunc, observe ObserveFunc) Dispatcher {
	if normalize == nil {
		normalize = NormalizeCommand
	}
	return &sequentialDispatcher{registry: registry, normalize: normalize, observe: observe}
}

func (d *sequentialDispatcher) Publish(ctx context.Context, cmdCtx *domain.CommandContext, events ...CommandEvent) (int, error) {
	if d == nil || d.registry == nil {
		return 0, nil
	}

	executed := 0
	for _, event := range events {
		if event.Type == domain.CommandUnknown {
			continue
		}

		key, params := d.normalize(event.Type, cloneParams(event.Params))
		if err := d.registry.Execute(ctx, cmdCtx, key, params); err != nil {
			return executed, err
		}
		if d.observe != nil {
			d.observe(event.Type)
		}
		executed++
	}
	return executed, nil
}

func cloneParams(src map[string]any) map[string]any {
	if len(src) == 0 {
		return map[string]any{}
	}
	clone := make(map[string]any, len(src))
	for k, v := range src {
		clone[k] = v
	}
	return clone
}
