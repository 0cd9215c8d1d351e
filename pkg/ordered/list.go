package ordered

import "slices"

// List is the positionally-addressed variant of Set. Where Set quietly
// ignores a duplicate Add, List reports conflicts on positional writes:
// callers addressing elements by index need to be told when a value would
// occupy two positions.
//
// List is not safe for concurrent use.
type List[T comparable] struct {
	Set[T]
}

// NewList creates an empty List with the provided options.
func NewList[T comparable](opts ...Option[T]) *List[T] {
	var o Options[T]
	for _, fn := range opts {
		fn(&o)
	}
	list := &List[T]{}
	list.members = make(map[T]struct{})
	list.opt = o
	return list
}

// Put replaces the element at position i with value. It fails with
// ErrDuplicateValue when value is already a member at a different
// position.
func (l *List[T]) Put(i int, value T) error {
	if i < 0 || i >= len(l.seq) {
		return outOfRange(i, len(l.seq))
	}

	key := l.normalize(value)
	if _, ok := l.members[key]; ok && l.IndexOf(value) != i {
		return ErrDuplicateValue
	}

	delete(l.members, l.normalize(l.seq[i]))
	l.members[key] = struct{}{}
	l.seq[i] = value
	return nil
}

// Insert places value at position i, shifting later elements. Inserting
// at i == Len appends. It fails with ErrDuplicateValue when value is
// already a member.
func (l *List[T]) Insert(i int, value T) error {
	if i < 0 || i > len(l.seq) {
		return outOfRange(i, len(l.seq))
	}

	key := l.normalize(value)
	if _, ok := l.members[key]; ok {
		return ErrDuplicateValue
	}

	l.members[key] = struct{}{}
	l.seq = slices.Insert(l.seq, i, value)
	return nil
}

// RemoveAt removes and returns the element at position i.
func (l *List[T]) RemoveAt(i int) (item T, err error) {
	if i < 0 || i >= len(l.seq) {
		err = outOfRange(i, len(l.seq))
		return
	}

	item = l.seq[i]
	delete(l.members, l.normalize(item))
	l.seq = slices.Delete(l.seq, i, i+1)
	return
}
