// Package selector builds the value selectors that construction heuristics and local search iterate.
package selector

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"valuesort/internal/domain"
	"valuesort/pkg/logger"
	"valuesort/pkg/sorter"
)

// ErrUnknownOverride is returned when a manner override names a variable the domain does not declare.
var ErrUnknownOverride = errors.New("sorter manner override matches no planning variable")

// ValueSelector exposes the candidate values of one planning variable in iteration order.
type ValueSelector interface {
	Variable() *domain.VariableDescriptor
	Values() []any
	// Sorted reports whether Values was pre-sorted by strength.
	Sorted() bool
}

type valueSelector struct {
	variable *domain.VariableDescriptor
	values   []any
	sorted   bool
}

func (s *valueSelector) Variable() *domain.VariableDescriptor { return s.variable }
func (s *valueSelector) Values() []any                        { return s.values }
func (s *valueSelector) Sorted() bool                         { return s.sorted }

// Factory builds value selectors for a configured sorter manner.
type Factory struct {
	Manner sorter.Manner
	// Overrides replaces Manner for the variables keyed by "Entity.variable".
	Overrides map[string]sorter.Manner
}

// MannerFor returns the manner that applies to v.
func (f Factory) MannerFor(v *domain.VariableDescriptor) sorter.Manner {
	if m, ok := f.Overrides[v.QualifiedName()]; ok {
		return m
	}
	return f.Manner
}

// CheckOverrides fails when an override key matches none of vars.
func (f Factory) CheckOverrides(vars []*domain.VariableDescriptor) error {
	declared := make(map[string]bool, len(vars))
	for _, v := range vars {
		declared[v.QualifiedName()] = true
	}
	keys := make([]string, 0, len(f.Overrides))
	for key := range f.Overrides {
		if !declared[key] {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	slices.Sort(keys)
	return fmt.Errorf("%w: %v", ErrUnknownOverride, keys)
}

// Build returns a selector over the values of v. Values are sorted only when the manner supports
// ordering for v; a manner that requires a sorter v cannot provide fails with a *sorter.ConfigurationError.
func (f Factory) Build(v *domain.VariableDescriptor) (ValueSelector, error) {
	m := f.MannerFor(v)
	if !m.SupportsOrdering(v) {
		logger.Debug("Building unsorted value selector", "variable", v.QualifiedName(), "manner", m.String())
		return &valueSelector{variable: v, values: v.ValueRange()}, nil
	}

	s, err := m.ResolveOrdering(v)
	if err != nil {
		return nil, err
	}
	logger.Debug("Building sorted value selector", "variable", v.QualifiedName(), "manner", m.String())
	return &valueSelector{variable: v, values: s.Sort(v.ValueRange()), sorted: true}, nil
}

// BuildAll builds selectors for vars concurrently, at most parallelism at a time (unbounded when
// parallelism <= 0). Results keep the order of vars. The first failure cancels the remaining builds.
// Overrides naming none of vars fail before any selector is built.
func BuildAll(ctx context.Context, f Factory, vars []*domain.VariableDescriptor, parallelism int) ([]ValueSelector, error) {
	if err := f.CheckOverrides(vars); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	selectors := make([]ValueSelector, len(vars))
	for i, v := range vars {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := f.Build(v)
			if err != nil {
				return err
			}
			selectors[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return selectors, nil
}
