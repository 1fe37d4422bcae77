package http

import (
	"context"
	"errors"
	"fxconverter/internal/config"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Start runs HTTP server and shuts it down gracefully on ctx cancellation.
func Start(ctx context.Context, cfg config.HTTPServer, handler http.Handler) error {
	listener, listenErr := net.Listen("tcp", cfg.Addr())
	if listenErr != nil {
		return listenErr
	}
	return Serve(ctx, cfg, listener, handler)
}

// Serve is Start for an already bound listener.
func Serve(ctx context.Context, cfg config.HTTPServer, listener net.Listener, handler http.Handler) error {
	logrus.Infof("✅ HTTP server listening on http://%s", listener.Addr())

	readHeaderTimeout := time.Duration(cfg.ReadHeaderTimeoutSec) * time.Second
	if readHeaderTimeout <= 0 {
		readHeaderTimeout = 5 * time.Second
	}
	shutdownTimeout := time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	server := &http.Server{Handler: handler, ReadHeaderTimeout: readHeaderTimeout}
	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logrus.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			return shutdownErr
		}
		return nil
	case serveErr := <-errCh:
		return serveErr
	}
}
