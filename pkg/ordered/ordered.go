// Package ordered provides insertion-ordered collections with hashed
// membership testing.
//
// Both structures in this package keep two views of the same elements: a
// sequence defining iteration and positional order, and a membership map
// used for O(1) existence checks. A single normalizer decides equality for
// both views; relying on the sequence's own comparison is a bug this
// package exists to prevent.
package ordered

import "iter"

// Options control collection behavior.
type Options[T comparable] struct {
	// Normalizer canonicalizes elements before any comparison or map
	// access. Two elements are equal when their normalized forms are
	// equal under ==. If nil, elements are used as-is.
	Normalizer func(T) T
}

// Option modifies Options.
type Option[T comparable] func(*Options[T])

// WithNormalizer sets the equality normalizer. For example, a
// case-insensitive string set uses strings.ToLower.
func WithNormalizer[T comparable](fn func(T) T) Option[T] {
	return func(o *Options[T]) { o.Normalizer = fn }
}

// Set is an insertion-ordered set. Adding an element that is already a
// member is a silent no-op. The zero value is not usable; construct with
// New.
//
// Set is not safe for concurrent use. Mutating a Set while an iteration
// from Values is in flight is undefined.
type Set[T comparable] struct {
	seq     []T
	members map[T]struct{}
	opt     Options[T]
}

// New creates an empty Set with the provided options.
func New[T comparable](opts ...Option[T]) *Set[T] {
	var o Options[T]
	for _, fn := range opts {
		fn(&o)
	}
	return &Set[T]{
		members: make(map[T]struct{}),
		opt:     o,
	}
}

func (s *Set[T]) normalize(item T) T {
	if s.opt.Normalizer != nil {
		return s.opt.Normalizer(item)
	}
	return item
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.seq)
}

// Contains reports whether item is a member.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.members[s.normalize(item)]
	return ok
}

// Add appends item if no equal element is present. It reports whether the
// set changed.
func (s *Set[T]) Add(item T) bool {
	key := s.normalize(item)
	if _, ok := s.members[key]; ok {
		return false
	}
	s.members[key] = struct{}{}
	s.seq = append(s.seq, item)
	return true
}

// IndexOf returns the position of the element equal to item, or -1. The
// scan compares normalized forms, never the stored values directly.
func (s *Set[T]) IndexOf(item T) int {
	key := s.normalize(item)
	for i, elem := range s.seq {
		if s.normalize(elem) == key {
			return i
		}
	}
	return -1
}

// At returns the element at position i.
func (s *Set[T]) At(i int) (item T, err error) {
	if i < 0 || i >= len(s.seq) {
		err = outOfRange(i, len(s.seq))
		return
	}
	item = s.seq[i]
	return
}

// Remove deletes the element equal to item. It reports whether an element
// was removed.
func (s *Set[T]) Remove(item T) bool {
	key := s.normalize(item)
	if _, ok := s.members[key]; !ok {
		return false
	}
	delete(s.members, key)

	index := s.IndexOf(item)
	s.seq = append(s.seq[:index], s.seq[index+1:]...)
	return true
}

// ExceptWith removes every element equal to a member of items. It reports
// whether the set changed.
//
// Removal is computed against the membership map first; when the map
// shrank, the sequence is rebuilt in one filtering pass rather than by
// repeated single-element removal.
func (s *Set[T]) ExceptWith(items []T) bool {
	before := len(s.members)
	for _, item := range items {
		delete(s.members, s.normalize(item))
	}
	if len(s.members) == before {
		return false
	}
	s.purge()
	return true
}

// ExceptWhere removes every element for which pred returns true. It
// reports whether the set changed.
func (s *Set[T]) ExceptWhere(pred func(T) bool) bool {
	before := len(s.members)
	for _, elem := range s.seq {
		if pred(elem) {
			delete(s.members, s.normalize(elem))
		}
	}
	if len(s.members) == before {
		return false
	}
	s.purge()
	return true
}

// purge rebuilds the sequence from the elements still present in the
// membership map, keeping their relative order.
func (s *Set[T]) purge() {
	kept := s.seq[:0]
	for _, elem := range s.seq {
		if _, ok := s.members[s.normalize(elem)]; ok {
			kept = append(kept, elem)
		}
	}
	clear(s.seq[len(kept):])
	s.seq = kept
}

// UnionWith adds every item via Add. When acceptNil is false, a
// nil-equivalent item aborts with ErrNilValue before any further item is
// added; items added earlier in the same call remain. It reports whether
// the set changed.
func (s *Set[T]) UnionWith(items []T, acceptNil bool) (changed bool, err error) {
	for _, item := range items {
		if !acceptNil && isNil(item) {
			err = ErrNilValue
			return
		}
		if s.Add(item) {
			changed = true
		}
	}
	return
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	s.seq = nil
	clear(s.members)
}

// Items returns a copy of the sequence.
func (s *Set[T]) Items() []T {
	items := make([]T, len(s.seq))
	copy(items, s.seq)
	return items
}

// Values returns a lazy, restartable iterator over the elements in
// sequence order. Each restart observes the sequence as of that moment.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, elem := range s.seq {
			if !yield(elem) {
				return
			}
		}
	}
}
