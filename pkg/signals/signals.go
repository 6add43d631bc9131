package signals

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var onlyOneSignalHandler = make(chan struct{})

// SetupSignalHandler returns a context that is canceled on SIGINT or SIGTERM.
// A second signal terminates the process with exit code 1. Lambda sends
// SIGTERM before shutting an execution environment down, so the same
// handler serves every transport.
func SetupSignalHandler() context.Context {
	close(onlyOneSignalHandler) // panics when called twice

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-c
		_, _ = fmt.Fprintf(os.Stderr, "Received %s, shutting down...\n", sig)
		cancel()
		<-c
		os.Exit(1) // second signal. Exit directly.
	}()

	return ctx
}
