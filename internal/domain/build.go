package domain

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"valuesort/internal/config"
	"valuesort/pkg/sorter"
)

// ErrInvalidDomain wraps every error returned by Build.
var ErrInvalidDomain = errors.New("invalid domain")

// Build creates the solution descriptor from the domain declaration.
func Build(cfg config.DomainConfig) (*SolutionDescriptor, error) {
	solution := &SolutionDescriptor{}
	seenEntities := make(map[string]bool, len(cfg.Entities))

	for _, ec := range cfg.Entities {
		if ec.Name == "" {
			return nil, fmt.Errorf("%w: entity without a name", ErrInvalidDomain)
		}
		if seenEntities[ec.Name] {
			return nil, fmt.Errorf("%w: duplicate entity (%s)", ErrInvalidDomain, ec.Name)
		}
		seenEntities[ec.Name] = true

		entity := &EntityDescriptor{name: ec.Name}
		seenVariables := make(map[string]bool, len(ec.Variables))
		for _, vc := range ec.Variables {
			if vc.Name == "" {
				return nil, fmt.Errorf("%w: entity (%s) has a variable without a name", ErrInvalidDomain, ec.Name)
			}
			if seenVariables[vc.Name] {
				return nil, fmt.Errorf("%w: entity (%s) declares variable (%s) twice", ErrInvalidDomain, ec.Name, vc.Name)
			}
			seenVariables[vc.Name] = true

			variable, err := buildVariable(ec.Name, vc)
			if err != nil {
				return nil, err
			}
			entity.variables = append(entity.variables, variable)
		}
		solution.entities = append(solution.entities, entity)
	}
	return solution, nil
}

func buildVariable(entityName string, vc config.VariableConfig) (*VariableDescriptor, error) {
	d := &VariableDescriptor{entityName: entityName, name: vc.Name}

	seen := make(map[string]bool, len(vc.Values))
	for _, val := range vc.Values {
		if val.ID == "" {
			return nil, fmt.Errorf("%w: entity (%s)'s variable (%s) has a value without an id",
				ErrInvalidDomain, entityName, vc.Name)
		}
		if seen[val.ID] {
			return nil, fmt.Errorf("%w: entity (%s)'s variable (%s) declares value (%s) twice",
				ErrInvalidDomain, entityName, vc.Name, val.ID)
		}
		seen[val.ID] = true
		d.values = append(d.values, Value{ID: val.ID, Attributes: val.Attributes})
	}

	if vc.Strength == "" {
		return d, nil
	}

	// Compile once; weights are fixed for the lifetime of the descriptor.
	program, err := expr.Compile(vc.Strength, expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("%w: entity (%s)'s variable (%s) strength %q does not compile: %v",
			ErrInvalidDomain, entityName, vc.Name, vc.Strength, err)
	}
	weights := make(map[string]float64, len(d.values))
	for _, v := range d.values {
		w, err := strengthOf(program, v)
		if err != nil {
			return nil, fmt.Errorf("%w: entity (%s)'s variable (%s) strength of value (%s): %v",
				ErrInvalidDomain, entityName, vc.Name, v.ID, err)
		}
		weights[v.ID] = w
	}
	d.strengthSorter = sorter.NewComparatorSorter(weightComparator(weights), sorter.Ascending)
	return d, nil
}

func strengthOf(program *vm.Program, v Value) (float64, error) {
	env := make(map[string]any, len(v.Attributes)+1)
	for k, a := range v.Attributes {
		env[k] = a
	}
	env["id"] = v.ID

	out, err := expr.Run(program, env)
	if err != nil {
		return 0, err
	}
	w, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("evaluated to %v (%T), expected a number", out, out)
	}
	return w, nil
}

// weightComparator orders values by increasing weight. Values without a weight order last.
func weightComparator(weights map[string]float64) sorter.Comparator {
	lookup := func(x any) (float64, bool) {
		v, ok := x.(Value)
		if !ok {
			return 0, false
		}
		w, ok := weights[v.ID]
		return w, ok
	}
	return func(a, b any) int {
		wa, okA := lookup(a)
		wb, okB := lookup(b)
		switch {
		case okA && okB:
			return cmp.Compare(wa, wb)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	}
}
