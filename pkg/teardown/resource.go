// Package teardown tracks externally-owned resources and releases them in
// reverse registration order when the process shuts down.
//
// The registry never computes dependency order: callers register a
// dependency before the resources built on it, and the reverse walk then
// releases dependents first.
package teardown

import "io"

// Resource is anything the registry can release. The registry does not
// own the resource for any purpose other than lifetime tracking; it only
// ever invokes Release and, when offered, the Checkable query.
type Resource interface {
	Release() error
}

// Checkable is an optional capability of a Resource. Resources reporting
// Released() == true are skipped by the release walk, guarding against
// double-release when external code already closed them.
type Checkable interface {
	Released() bool
}

// ReleaseFunc adapts a plain function to the Resource interface. The
// returned value is pointer-backed so it can serve as a membership key;
// a bare func type cannot.
func ReleaseFunc(fn func() error) Resource {
	return &funcResource{fn: fn}
}

type funcResource struct {
	fn func() error
}

func (res *funcResource) Release() error {
	return res.fn()
}

// Close adapts an io.Closer to a Resource. The result also implements
// Checkable: once Release has run, later walks skip it regardless of
// whether Close returned an error, matching the io.Closer contract that
// behavior after the first Close is undefined.
func Close(c io.Closer) Resource {
	return &closerResource{c: c}
}

type closerResource struct {
	c        io.Closer
	released bool
}

func (res *closerResource) Release() error {
	res.released = true
	return res.c.Close()
}

func (res *closerResource) Released() bool {
	return res.released
}
