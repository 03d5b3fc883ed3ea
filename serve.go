package main

import (
	"os"
	"os/signal"

	"github.com/jrpctcp/jrpctcp/internal/fakerpc"
)

// runServe starts the demo echo responder. It exists so the client has
// something to talk to; it is not a production dispatcher.
func runServe(options Options) error {
	server, err := fakerpc.Listen(options.Serve.Bind)
	if err != nil {
		return err
	}
	logger.Infof("Echo server (version %s) listening on: %s", Version, server.Addr())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh
	logger.Info("Shutting down...")
	return server.Close()
}
