package sorter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComparatorSorter_Sort(t *testing.T) {
	byFirstLetter := func(a, b any) int {
		return int(a.(string)[0]) - int(b.(string)[0])
	}

	tests := []struct {
		name     string
		order    Order
		input    []any
		expected []any
	}{
		{"ascending", Ascending, []any{"c1", "a1", "b1"}, []any{"a1", "b1", "c1"}},
		{"descending", Descending, []any{"c1", "a1", "b1"}, []any{"c1", "b1", "a1"}},
		{"ascending keeps ties stable", Ascending, []any{"b2", "a1", "b1", "a2"}, []any{"a1", "a2", "b2", "b1"}},
		{"descending keeps ties stable", Descending, []any{"b2", "a1", "b1", "a2"}, []any{"b2", "b1", "a1", "a2"}},
		{"empty", Ascending, []any{}, []any{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewComparatorSorter(byFirstLetter, tc.order)
			got := s.Sort(tc.input)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("unexpected order (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComparatorSorter_DoesNotMutateInput(t *testing.T) {
	input := []any{3, 1, 2}
	s := NewComparatorSorter(func(a, b any) int { return a.(int) - b.(int) }, Ascending)

	got := s.Sort(input)
	if diff := cmp.Diff([]any{1, 2, 3}, got); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{3, 1, 2}, input); diff != "" {
		t.Errorf("input was mutated (-want +got):\n%s", diff)
	}
}

func TestNewComparatorSorter_NilComparator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil comparator")
		}
	}()
	NewComparatorSorter(nil, Ascending)
}

func TestOrder_String(t *testing.T) {
	if Ascending.String() != "ascending" || Descending.String() != "descending" {
		t.Errorf("unexpected order names: %s, %s", Ascending, Descending)
	}
}
