package collections

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"shopsync/internal/highlevel"
)

// Lister is the slice of the catalog client the resolver needs.
type Lister interface {
	ListCollections(ctx context.Context) ([]highlevel.Collection, error)
}

// Resolver maps human-entered collection names to downstream ids.
type Resolver struct {
	lister Lister
}

func NewResolver(lister Lister) *Resolver {
	return &Resolver{lister: lister}
}

// Resolve fetches the location's collections and matches name against
// them. The observed names come back either way so a miss can be
// diagnosed without server-side log access.
func (r *Resolver) Resolve(ctx context.Context, name string) (highlevel.Collection, []string, error) {
	cols, err := r.lister.ListCollections(ctx)
	if err != nil {
		return highlevel.Collection{}, nil, fmt.Errorf("list collections: %w", err)
	}

	observed := lo.Map(cols, func(c highlevel.Collection, _ int) string {
		return c.Name
	})

	col, ok := Match(cols, name)
	if !ok {
		return highlevel.Collection{}, observed, nil
	}
	return col, observed, nil
}

// Match finds a collection by name, case-insensitively. An exact trimmed
// match always wins; failing that, the first collection whose name
// contains the target is taken. Humans vary casing and abbreviate, so
// "summer" must hit "Summer" before "Summer Sale".
func Match(cols []highlevel.Collection, name string) (highlevel.Collection, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return highlevel.Collection{}, false
	}

	if col, ok := lo.Find(cols, func(c highlevel.Collection) bool {
		return strings.ToLower(strings.TrimSpace(c.Name)) == target
	}); ok {
		return col, true
	}

	return lo.Find(cols, func(c highlevel.Collection) bool {
		return strings.Contains(strings.ToLower(c.Name), target)
	})
}
