package main

import (
	"fmt"

	"gitlab.com/pala-software/teardown/pkg/database"
	"gitlab.com/pala-software/teardown/pkg/otel"
)

func start() (err error) {
	features := []Feature{
		otel.OTelFromEnv(),
		database.DatabaseFromEnv(),
	}

	c, err := container(features)
	if err != nil {
		return
	}

	// Invocation order is registration order, which fixes the release
	// order. The otel SDK is registered first so it is released last and
	// can still export telemetry while later resources shut down.
	for _, feature := range features {
		err = c.Invoke(feature.Invoker())
		if err != nil {
			return
		}
	}

	err = c.Invoke(startHttpServer)
	if err != nil {
		return
	}

	fmt.Println("Server stopped.")
	return
}
