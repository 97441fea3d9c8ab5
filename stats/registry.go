package stats

import (
	"context"
	"fmt"

	"github.com/kbukum/streamcalc/errors"
	"github.com/kbukum/streamcalc/logger"
	"github.com/kbukum/streamcalc/provider"
)

// None disables every backend when it appears in a priority list.
const None = "none"

var registry = provider.NewRegistry[Backend]()

// Register adds a backend factory under name, replacing any earlier one.
func Register(name string, factory provider.Factory[Backend]) {
	registry.RegisterFactory(name, factory)
}

// Backends returns the sorted names of every registered backend.
func Backends() []string {
	return registry.List()
}

// Select builds the named backends and returns the first available one, in
// the order given. Unknown names are skipped with a warning; "none" is
// skipped silently. A MISSING_DEPENDENCY error is returned when nothing is
// left.
func Select(ctx context.Context, names []string) (Backend, error) {
	log := logger.Get("stats")
	candidates := make(map[string]Backend, len(names))
	priority := make([]string, 0, len(names))
	for _, name := range names {
		if name == None || name == "" {
			continue
		}
		if !registry.Has(name) {
			log.Warn("unknown statistics backend", logger.Fields("backend", name, "known", Backends()))
			continue
		}
		b, err := registry.Create(name, nil)
		if err != nil {
			log.Warn("statistics backend failed to start", logger.MergeWithError(logger.Fields("backend", name), err))
			continue
		}
		candidates[name] = b
		priority = append(priority, name)
	}

	selector := &provider.PrioritySelector[Backend]{Priority: priority}
	b, err := selector.Select(ctx, candidates)
	if err != nil {
		return nil, errors.New(errors.ErrCodeMissingDependency,
			fmt.Sprintf("no statistics backend available (configured: %v)", names)).WithCause(err)
	}
	log.Debug("statistics backend selected", logger.Fields("backend", b.Name()))
	return b, nil
}
