package main

import (
	"net/http"

	"gitlab.com/pala-software/teardown/pkg/teardown"
	"go.uber.org/dig"
)

// Feature follows the provider/invoker convention: Provider returns a
// constructor function for the container, Invoker returns a function that
// sets the feature up once its dependencies resolve.
type Feature interface {
	Provider() any
	Invoker() any
}

func container(features []Feature) (c *dig.Container, err error) {
	c = dig.New()

	err = c.Provide(http.NewServeMux)
	if err != nil {
		return
	}

	// The daemon releases everything itself after the HTTP server has
	// drained. Default would add a second driver: its signal hook could
	// release the pool and the otel SDK while requests are still in
	// flight.
	err = c.Provide(teardown.NewRegistry)
	if err != nil {
		return
	}

	for _, feature := range features {
		err = c.Provide(feature.Provider())
		if err != nil {
			return
		}
	}

	return
}
