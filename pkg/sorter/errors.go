package sorter

import (
	"errors"
	"fmt"
)

// Resolution errors
var (
	// ErrNoStrengthComparison indicates that a manner required a strength based sorter for a variable whose
	// domain model declares no strength comparison.
	ErrNoStrengthComparison = errors.New("variable declares no strength comparison")

	// ErrImpossibleState indicates a caller broke the SupportsOrdering/ResolveOrdering protocol or used a
	// Manner outside the closed set.
	ErrImpossibleState = errors.New("impossible state")
)

// Configuration errors
var (
	// ErrUnknownManner is returned when parsing a sorter manner name that does not exist.
	ErrUnknownManner = errors.New("unknown value sorter manner")
)

// ConfigurationError reports a manner that cannot be satisfied by the domain model of a variable.
// The solver must not start when one is returned.
type ConfigurationError struct {
	Manner       Manner
	EntityType   string
	VariableName string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("the sorterManner (%s) on entity type (%s)'s variable (%s) fails because that variable"+
		" does not declare any strength comparison", e.Manner, e.EntityType, e.VariableName)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrNoStrengthComparison
}

// InvariantError is the panic value raised when a manner is resolved in a state that correct callers
// can never reach.
type InvariantError struct {
	Manner Manner
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("impossible state for sorterManner (%s): %s", e.Manner, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrImpossibleState
}
