package teardown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first use.
// Creation also subscribes once to SIGINT and SIGTERM; on signal the
// registry releases everything in the terminating mode, where failures
// are logged and never propagated so shutdown cannot be blocked by a
// faulty resource.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()

		terminate := make(chan os.Signal, 1)
		signal.Notify(terminate, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-terminate
			defaultRegistry.releaseAll(true)
		}()
	})
	return defaultRegistry
}

// AutoRelease registers res with the Default registry and returns it
// unchanged, for fluent use at construction sites:
//
//	pool := teardown.AutoRelease(database.NewPool(raw))
//
// Passing register = false unregisters instead. AutoRelease panics on a
// nil resource; reaching it with nil is a programming error at the call
// site, not a runtime condition.
func AutoRelease[T Resource](res T, register ...bool) T {
	add := true
	if len(register) > 0 {
		add = register[0]
	}

	if add {
		if err := Default().Register(res); err != nil {
			panic(err)
		}
	} else {
		Default().Unregister(res)
	}
	return res
}
