package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"

	"gitlab.com/pala-software/teardown/pkg/otel"
	"gitlab.com/pala-software/teardown/pkg/teardown"
)

func startHttpServer(
	mux *http.ServeMux,
	registry *teardown.Registry,
	tel *otel.OTel,
) (err error) {
	addr := os.Getenv("TEARDOWN_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Start listening
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux.HandleFunc("/health", func(
		writer http.ResponseWriter,
		request *http.Request,
	) {
		fmt.Fprintf(writer, "ok, %d resources registered\n", registry.Len())
	})

	// Handle SIGINT (CTRL+C) gracefully.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer func() {
		err = errors.Join(err, registry.ReleaseAll())
	}()

	// Serve HTTP
	srv := &http.Server{
		Handler: tel.Middleware()(mux),
	}
	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Serve(listener)
	}()

	fmt.Printf("Server started on %s!\n", addr)

	// Wait for interruption.
	select {
	case err = <-srvErr:
		// Error when starting HTTP server.
		return
	case <-ctx.Done():
		// Wait for first CTRL+C.
		// Stop receiving signal notifications as soon as possible.
		stop()
	}

	// When Shutdown is called, Serve immediately returns ErrServerClosed.
	err = srv.Shutdown(context.Background())
	return
}
