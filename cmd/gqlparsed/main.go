// Command gqlparsed serves the GraphQL lexer and parser over HTTP and
// WebSocket.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Protocol-Lattice/gqlparse/config"
	"github.com/Protocol-Lattice/gqlparse/handler"
	logger "github.com/Protocol-Lattice/gqlparse/log"
)

var log = logger.Get()

func main() {
	conf, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	logger.SetLevel(conf.LogLevel)
	logger.SetFormat(conf.LogFormat)

	h, err := handler.New(conf, log)
	if err != nil {
		log.WithError(err).Fatal("Could not create handler")
	}

	server := &http.Server{
		Addr:              conf.ListenAddr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.WithField("addr", conf.ListenAddr).Info("Parse service listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatalf("Could not listen on %s", conf.ListenAddr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}
	log.Info("Server exiting")
}
