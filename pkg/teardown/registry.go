package teardown

import (
	"errors"
	"sync"

	"gitlab.com/pala-software/teardown/pkg/ordered"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var name = "gitlab.com/pala-software/teardown/pkg/teardown"
var logger = otelslog.NewLogger(name)

// Registry tracks registered resources and releases them in reverse
// registration order. All methods serialize on one mutex and hold it for
// their full duration; release calls run inside the critical section.
//
// A Release implementation must therefore not call back into the same
// Registry — doing so deadlocks. This contract is deliberate: releasing
// under the lock keeps the reverse order exact with respect to concurrent
// Register calls.
type Registry struct {
	mu      sync.Mutex
	entries *ordered.Set[Resource]
}

// NewRegistry creates an empty registry. Most callers want Default
// instead, which also hooks process termination.
func NewRegistry() *Registry {
	return &Registry{
		entries: ordered.New[Resource](),
	}
}

// Register adds resources in argument order. A resource that is already
// registered is skipped without error. A nil resource fails with
// ErrNilResource; resources earlier in the same call remain registered.
func (reg *Registry) Register(resources ...Resource) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	_, err := reg.entries.UnionWith(resources, false)
	if errors.Is(err, ordered.ErrNilValue) {
		return ErrNilResource
	}
	return err
}

// Unregister removes the resource without releasing it. It reports
// whether the resource was registered. After Unregister the caller is
// solely responsible for releasing the resource.
func (reg *Registry) Unregister(resource Resource) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.entries.Remove(resource)
}

// Contains reports whether the resource is registered.
func (reg *Registry) Contains(resource Resource) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.entries.Contains(resource)
}

// Len returns the number of registered resources.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.entries.Len()
}

// ReleaseAll releases every registered resource, walking from the most
// recently registered to the first. Resources whose Checkable query
// reports true are skipped. A failing release does not stop the walk;
// every remaining resource is still attempted. Afterwards the registry is
// empty regardless of failures: released or not, the resources are no
// longer its responsibility.
//
// The first failure encountered during the walk is returned as a
// *ReleaseError; later failures are discarded after being attempted.
func (reg *Registry) ReleaseAll() error {
	return reg.releaseAll(false)
}

func (reg *Registry) releaseAll(terminating bool) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	var first *ReleaseError
	items := reg.entries.Items()
	for i := len(items) - 1; i >= 0; i-- {
		resource := items[i]
		if check, ok := resource.(Checkable); ok && check.Released() {
			continue
		}

		err := resource.Release()
		if err == nil {
			continue
		}
		if terminating {
			logger.Error("release failed during shutdown", "error", err)
		}
		if first == nil {
			first = &ReleaseError{Resource: resource, Err: err}
		}
	}

	reg.entries.Clear()

	if first != nil && !terminating {
		return first
	}
	return nil
}

// PurgeReleased drops entries whose Checkable query reports true, without
// invoking Release on them. Use it when external code released a resource
// directly and the bookkeeping needs to catch up. It reports whether any
// entry was dropped.
func (reg *Registry) PurgeReleased() bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	return reg.entries.ExceptWhere(func(resource Resource) bool {
		check, ok := resource.(Checkable)
		return ok && check.Released()
	})
}
