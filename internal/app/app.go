// Package app provides application lifecycle management for the registry server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/stacklok/descriptor-registry-server/internal/config"
)

// RegistryApp encapsulates all components needed to run the registry API server
// It provides lifecycle management and graceful shutdown capabilities
type RegistryApp struct {
	config     *config.Config
	components *AppComponents
	httpServer *http.Server

	mu        sync.Mutex
	listener  net.Listener
	listenErr error
	ready     chan struct{}
	readyOnce sync.Once

	cleanup  func()
	stopOnce sync.Once
	stopErr  error
}

// Start listens on the configured address and serves HTTP requests.
// This method blocks until the HTTP server stops or encounters an error
func (app *RegistryApp) Start() error {
	listener, err := net.Listen("tcp", app.httpServer.Addr)
	if err != nil {
		err = fmt.Errorf("failed to listen on %s: %w", app.httpServer.Addr, err)
		app.mu.Lock()
		app.listenErr = err
		app.mu.Unlock()
		app.readyOnce.Do(func() { close(app.ready) })
		return err
	}

	app.mu.Lock()
	app.listener = listener
	app.mu.Unlock()
	app.readyOnce.Do(func() { close(app.ready) })

	slog.Info("Server listening", "address", listener.Addr().String())
	if err := app.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

// Stop gracefully stops the application with the given timeout.
// It shuts down the HTTP server and then releases the storage resources.
// Calling Stop more than once returns the result of the first call.
func (app *RegistryApp) Stop(timeout time.Duration) error {
	app.stopOnce.Do(func() {
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
			app.stopErr = fmt.Errorf("server forced to shutdown: %w", err)
		}

		if app.cleanup != nil {
			app.cleanup()
		}

		slog.Info("Server shutdown complete")
	})
	return app.stopErr
}

// Run starts the application and stops it gracefully once ctx is done.
// It returns the first error of either the server or the shutdown.
func (app *RegistryApp) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(app.Start)
	g.Go(func() error {
		<-gctx.Done()
		return app.Stop(shutdownTimeout)
	})

	return g.Wait()
}

// Ready is closed once Start has either bound its listener or failed to.
// ListenErr tells the two apart.
func (app *RegistryApp) Ready() <-chan struct{} {
	return app.ready
}

// ListenErr returns the error Start got while binding its listener, if any
func (app *RegistryApp) ListenErr() error {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.listenErr
}

// Addr returns the address the server listens on, or the configured address
// before the server has started
func (app *RegistryApp) Addr() string {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.listener != nil {
		return app.listener.Addr().String()
	}
	return app.httpServer.Addr
}

// GetConfig returns the application configuration
func (app *RegistryApp) GetConfig() *config.Config {
	return app.config
}

// GetHTTPServer returns the HTTP server
func (app *RegistryApp) GetHTTPServer() *http.Server {
	return app.httpServer
}
