package ordered_test

import (
	"errors"
	"slices"
	"testing"

	"gitlab.com/pala-software/teardown/pkg/ordered"
)

func newList(values ...string) *ordered.List[string] {
	list := ordered.NewList[string]()
	for _, value := range values {
		list.Add(value)
	}
	return list
}

func TestPut(t *testing.T) {
	list := newList("a", "b", "c")

	err := list.Put(1, "x")
	if err != nil {
		t.Error(err)
		return
	}

	expected := []string{"a", "x", "c"}
	actual := slices.Collect(list.Values())
	if !slices.Equal(actual, expected) {
		t.Errorf("expected %v, got %v", expected, actual)
	}

	if list.Contains("b") {
		t.Error("expected replaced value 'b' to be absent")
	}
	if !list.Contains("x") {
		t.Error("expected 'x' to be a member")
	}
}

func TestPutDuplicate(t *testing.T) {
	list := newList("a", "b", "c")

	err := list.Put(0, "c")
	if !errors.Is(err, ordered.ErrDuplicateValue) {
		t.Errorf("expected ErrDuplicateValue, got '%v'", err)
		return
	}

	// Writing a value back to its own position is not a conflict.
	err = list.Put(2, "c")
	if err != nil {
		t.Error(err)
	}
}

func TestPutOutOfRange(t *testing.T) {
	list := newList("a")

	err := list.Put(1, "b")
	if !errors.Is(err, ordered.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got '%v'", err)
	}
}

func TestInsert(t *testing.T) {
	list := newList("a", "c")

	err := list.Insert(1, "b")
	if err != nil {
		t.Error(err)
		return
	}

	// Insert at Len appends.
	err = list.Insert(3, "d")
	if err != nil {
		t.Error(err)
		return
	}

	expected := []string{"a", "b", "c", "d"}
	actual := slices.Collect(list.Values())
	if !slices.Equal(actual, expected) {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}

func TestInsertDuplicate(t *testing.T) {
	list := newList("a", "b")

	err := list.Insert(0, "b")
	if !errors.Is(err, ordered.ErrDuplicateValue) {
		t.Errorf("expected ErrDuplicateValue, got '%v'", err)
		return
	}
	if list.Len() != 2 {
		t.Errorf("expected length 2, got %d", list.Len())
	}
}

func TestRemoveAt(t *testing.T) {
	list := newList("a", "b", "c")

	item, err := list.RemoveAt(1)
	if err != nil {
		t.Error(err)
		return
	}
	if item != "b" {
		t.Errorf("expected removed item 'b', got '%s'", item)
	}
	if list.Contains("b") {
		t.Error("expected 'b' to be absent after removal")
	}

	expected := []string{"a", "c"}
	actual := slices.Collect(list.Values())
	if !slices.Equal(actual, expected) {
		t.Errorf("expected %v, got %v", expected, actual)
	}

	_, err = list.RemoveAt(2)
	if !errors.Is(err, ordered.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got '%v'", err)
	}
}
