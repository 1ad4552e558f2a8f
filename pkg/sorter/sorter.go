package sorter

import (
	"slices"
)

// Sorter produces a total order over the candidate values of one planning variable.
type Sorter interface {
	// Sort returns a new slice holding values in sorted order. The input is left untouched.
	Sort(values []any) []any
}

// Comparator returns a negative number when a orders before b, a positive number when
// it orders after b and zero when both are equally strong.
type Comparator func(a, b any) int

// Order is the direction a ComparatorSorter applies its comparator in.
type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// ComparatorSorter sorts values with a Comparator. Ties keep their input order.
type ComparatorSorter struct {
	cmp   Comparator
	order Order
}

// NewComparatorSorter creates a sorter from cmp. A nil comparator is a programming error.
func NewComparatorSorter(cmp Comparator, order Order) *ComparatorSorter {
	if cmp == nil {
		panic("sorter: NewComparatorSorter called with a nil comparator")
	}
	return &ComparatorSorter{cmp: cmp, order: order}
}

// Order returns the direction the comparator is applied in.
func (s *ComparatorSorter) Order() Order {
	return s.order
}

func (s *ComparatorSorter) Sort(values []any) []any {
	sorted := slices.Clone(values)
	if s.order == Descending {
		slices.SortStableFunc(sorted, func(a, b any) int { return s.cmp(b, a) })
	} else {
		slices.SortStableFunc(sorted, s.cmp)
	}
	return sorted
}
