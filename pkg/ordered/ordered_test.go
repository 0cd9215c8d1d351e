package ordered_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"gitlab.com/pala-software/teardown/pkg/ordered"
)

func TestAddKeepsFirstOccurrenceOrder(t *testing.T) {
	set := ordered.New[string]()

	for _, value := range []string{"a", "b", "a", "c", "b", "a"} {
		set.Add(value)
	}

	if set.Len() != 3 {
		t.Errorf("expected length 3, got %d", set.Len())
		return
	}

	expected := []string{"a", "b", "c"}
	actual := slices.Collect(set.Values())
	if !slices.Equal(actual, expected) {
		t.Errorf("expected order %v, got %v", expected, actual)
	}
}

func TestAddReportsChange(t *testing.T) {
	set := ordered.New[int]()

	if !set.Add(1) {
		t.Error("expected first add to report true")
		return
	}
	if set.Add(1) {
		t.Error("expected duplicate add to report false")
	}
}

func TestContainsAfterRemove(t *testing.T) {
	set := ordered.New[string]()
	set.Add("a")
	set.Add("b")

	if !set.Remove("a") {
		t.Error("expected remove of member to report true")
		return
	}
	if set.Contains("a") {
		t.Error("expected 'a' to be absent after removal")
	}
	if !set.Contains("b") {
		t.Error("expected 'b' to remain a member")
	}
	if set.Remove("a") {
		t.Error("expected remove of non-member to report false")
	}
}

func TestCaseInsensitiveNormalizer(t *testing.T) {
	set := ordered.New(ordered.WithNormalizer(strings.ToLower))

	set.Add("Alpha")
	if set.Add("ALPHA") {
		t.Error("expected 'ALPHA' to be treated as a duplicate of 'Alpha'")
		return
	}

	if !set.Contains("alpha") {
		t.Error("expected 'alpha' to be a member")
	}
	if index := set.IndexOf("aLpHa"); index != 0 {
		t.Errorf("expected index 0, got %d", index)
	}

	// Stored value is the one first added, not the normalized form.
	item, err := set.At(0)
	if err != nil {
		t.Error(err)
		return
	}
	if item != "Alpha" {
		t.Errorf("expected stored value 'Alpha', got '%s'", item)
	}
}

func TestAtOutOfRange(t *testing.T) {
	set := ordered.New[int]()
	set.Add(1)

	_, err := set.At(1)
	if !errors.Is(err, ordered.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got '%v'", err)
	}
	_, err = set.At(-1)
	if !errors.Is(err, ordered.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got '%v'", err)
	}
}

func TestExceptWithPreservesOrder(t *testing.T) {
	set := ordered.New[string]()
	for _, value := range []string{"a", "b", "c", "d", "e"} {
		set.Add(value)
	}

	if !set.ExceptWith([]string{"b", "d", "x"}) {
		t.Error("expected removal to report true")
		return
	}

	expected := []string{"a", "c", "e"}
	actual := slices.Collect(set.Values())
	if !slices.Equal(actual, expected) {
		t.Errorf("expected order %v, got %v", expected, actual)
	}

	if set.ExceptWith([]string{"x", "y"}) {
		t.Error("expected removal of non-members to report false")
	}
}

func TestExceptWhere(t *testing.T) {
	set := ordered.New[int]()
	for value := 1; value <= 6; value++ {
		set.Add(value)
	}

	if !set.ExceptWhere(func(value int) bool { return value%2 == 0 }) {
		t.Error("expected removal to report true")
		return
	}

	expected := []int{1, 3, 5}
	actual := slices.Collect(set.Values())
	if !slices.Equal(actual, expected) {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}

func TestUnionWith(t *testing.T) {
	set := ordered.New[string]()
	set.Add("a")

	changed, err := set.UnionWith([]string{"a", "b", "c"}, false)
	if err != nil {
		t.Error(err)
		return
	}
	if !changed {
		t.Error("expected union to report change")
	}

	expected := []string{"a", "b", "c"}
	actual := slices.Collect(set.Values())
	if !slices.Equal(actual, expected) {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}

func TestUnionWithNil(t *testing.T) {
	one := 1
	two := 2
	set := ordered.New[*int]()

	_, err := set.UnionWith([]*int{&one, nil, &two}, false)
	if !errors.Is(err, ordered.ErrNilValue) {
		t.Errorf("expected ErrNilValue, got '%v'", err)
		return
	}

	// Items before the nil stay added, items after it were never reached.
	if !set.Contains(&one) {
		t.Error("expected item before nil to be added")
	}
	if set.Contains(&two) {
		t.Error("expected item after nil to be absent")
	}

	changed, err := set.UnionWith([]*int{&two, nil}, true)
	if err != nil {
		t.Error(err)
		return
	}
	if !changed {
		t.Error("expected union to report change")
	}
	if set.Len() != 3 {
		t.Errorf("expected length 3, got %d", set.Len())
	}
}

func TestValuesRestartable(t *testing.T) {
	set := ordered.New[int]()
	set.Add(1)
	set.Add(2)

	values := set.Values()
	first := slices.Collect(values)
	second := slices.Collect(values)
	if !slices.Equal(first, second) {
		t.Errorf("expected restarted iteration %v to equal %v", second, first)
	}
}

func TestClear(t *testing.T) {
	set := ordered.New[string]()
	set.Add("a")
	set.Clear()

	if set.Len() != 0 {
		t.Errorf("expected length 0, got %d", set.Len())
	}
	if set.Contains("a") {
		t.Error("expected 'a' to be absent after clear")
	}

	// The set stays usable after Clear.
	if !set.Add("a") {
		t.Error("expected add after clear to report true")
	}
}
