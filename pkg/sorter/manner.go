// Package sorter decides whether the candidate values of a planning variable get sorted by strength
// before selectors iterate them, and which Sorter does it.
package sorter

import "fmt"

// Variable is the view of a planning variable's metadata a Manner needs.
type Variable interface {
	// EntityTypeName returns the name of the planning entity type declaring the variable.
	EntityTypeName() string
	// VariableName returns the name of the variable on its entity.
	VariableName() string
	// IncreasingStrengthSorter returns the sorter ordering the variable's values by increasing strength.
	// It reports false when the domain model declares no strength comparison.
	IncreasingStrengthSorter() (Sorter, bool)
}

// Manner is a built-in way of sorting the values of a planning variable.
type Manner int

const (
	// IncreasingStrength always sorts by increasing strength. Resolving it fails when the variable has no
	// strength comparison.
	IncreasingStrength Manner = iota + 1
	// IncreasingStrengthIfAvailable sorts by increasing strength only when the variable has a strength
	// comparison.
	IncreasingStrengthIfAvailable
	// None never sorts.
	None
)

var mannerNames = map[Manner]string{
	IncreasingStrength:            "INCREASING_STRENGTH",
	IncreasingStrengthIfAvailable: "INCREASING_STRENGTH_IF_AVAILABLE",
	None:                          "NONE",
}

// Manners returns every manner in declaration order.
func Manners() []Manner {
	return []Manner{IncreasingStrength, IncreasingStrengthIfAvailable, None}
}

// ParseManner returns the manner with exactly the given name.
func ParseManner(name string) (Manner, error) {
	for _, m := range Manners() {
		if mannerNames[m] == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownManner, name)
}

func (m Manner) String() string {
	if name, ok := mannerNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Manner(%d)", int(m))
}

func (m Manner) MarshalText() ([]byte, error) {
	if _, ok := mannerNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownManner, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Manner) UnmarshalText(text []byte) error {
	parsed, err := ParseManner(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// SupportsOrdering reports whether ResolveOrdering should be called for v.
//
// IncreasingStrength always reports true: a missing strength comparison surfaces as a ConfigurationError
// from ResolveOrdering rather than being hidden here.
func (m Manner) SupportsOrdering(v Variable) bool {
	switch m {
	case IncreasingStrength:
		return true
	case IncreasingStrengthIfAvailable:
		_, ok := v.IncreasingStrengthSorter()
		return ok
	case None:
		return false
	default:
		panic(&InvariantError{Manner: m, Reason: "the sorterManner is not implemented"})
	}
}

// ResolveOrdering returns the sorter for v. It returns a *ConfigurationError when v declares no strength
// comparison. Calling it on None panics with an *InvariantError, because SupportsOrdering reports false
// for None and callers must not get here.
func (m Manner) ResolveOrdering(v Variable) (Sorter, error) {
	switch m {
	case IncreasingStrength, IncreasingStrengthIfAvailable:
		s, ok := v.IncreasingStrengthSorter()
		if !ok {
			return nil, &ConfigurationError{
				Manner:       m,
				EntityType:   v.EntityTypeName(),
				VariableName: v.VariableName(),
			}
		}
		return s, nil
	case None:
		panic(&InvariantError{Manner: m, Reason: "SupportsOrdering() should have returned false"})
	default:
		panic(&InvariantError{Manner: m, Reason: "the sorterManner is not implemented"})
	}
}
