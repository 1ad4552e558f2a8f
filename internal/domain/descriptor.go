// Package domain builds the planning variable metadata that sorter manners resolve against.
// Descriptors are immutable once built and safe to share between goroutines.
package domain

import (
	"valuesort/pkg/sorter"
)

// Value is one candidate value of a planning variable.
type Value struct {
	ID         string
	Attributes map[string]any
}

func (v Value) String() string {
	return v.ID
}

// VariableDescriptor describes one planning variable and implements sorter.Variable.
type VariableDescriptor struct {
	entityName     string
	name           string
	values         []Value
	strengthSorter sorter.Sorter
}

var _ sorter.Variable = (*VariableDescriptor)(nil)

func (d *VariableDescriptor) EntityTypeName() string {
	return d.entityName
}

func (d *VariableDescriptor) VariableName() string {
	return d.name
}

// IncreasingStrengthSorter reports false when the variable has no strength expression.
func (d *VariableDescriptor) IncreasingStrengthSorter() (sorter.Sorter, bool) {
	return d.strengthSorter, d.strengthSorter != nil
}

// ValueRange returns the candidate values in declaration order.
func (d *VariableDescriptor) ValueRange() []any {
	out := make([]any, len(d.values))
	for i, v := range d.values {
		out[i] = v
	}
	return out
}

// QualifiedName returns "Entity.variable".
func (d *VariableDescriptor) QualifiedName() string {
	return d.entityName + "." + d.name
}

// EntityDescriptor describes a planning entity type.
type EntityDescriptor struct {
	name      string
	variables []*VariableDescriptor
}

func (e *EntityDescriptor) Name() string {
	return e.name
}

func (e *EntityDescriptor) Variables() []*VariableDescriptor {
	return e.variables
}

// Variable returns the variable with the given name, or nil.
func (e *EntityDescriptor) Variable(name string) *VariableDescriptor {
	for _, v := range e.variables {
		if v.name == name {
			return v
		}
	}
	return nil
}

// SolutionDescriptor holds every planning entity type of a domain.
type SolutionDescriptor struct {
	entities []*EntityDescriptor
}

func (s *SolutionDescriptor) Entities() []*EntityDescriptor {
	return s.entities
}

// Entity returns the entity with the given name, or nil.
func (s *SolutionDescriptor) Entity(name string) *EntityDescriptor {
	for _, e := range s.entities {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Variables flattens the variables of all entities in declaration order.
func (s *SolutionDescriptor) Variables() []*VariableDescriptor {
	var out []*VariableDescriptor
	for _, e := range s.entities {
		out = append(out, e.variables...)
	}
	return out
}
