package httpd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"

	"github.com/daily-yolk/yolk-app-sheets/log"
)

const shutdownTimeout = 5 * time.Second

// Listen opens the TCP listener for the HTTP server, limiting the number of
// simultaneous connections if 'max' is greater than 0.
func Listen(bind string, max int) (net.Listener, error) {
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return nil, err
	}

	if max > 0 {
		return netutil.LimitListener(listener, max), nil
	}

	return listener, nil
}

// Serve runs the HTTP server on 'listener' until the context is cancelled and
// then shuts it down gracefully.
func Serve(ctx context.Context, listener net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler: handler,
	}

	errs := make(chan error, 1)

	go func() {
		log.Infof("listening on %v", listener.Addr())

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}

		close(errs)
	}()

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
		log.Infof("shutting down")

		shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdown)
	}
}
