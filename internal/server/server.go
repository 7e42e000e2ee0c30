package server

import (
	"context"
	"net"
	"net/http"
	"time"
)

// HTTPServer wraps http.Server with context-driven shutdown.
type HTTPServer struct {
	s *http.Server
}

// NewHTTPServer creates a server bound to addr.
func NewHTTPServer(ctx context.Context, addr string, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		s: &http.Server{
			Handler:           handler,
			Addr:              addr,
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext: func(listener net.Listener) context.Context {
				return ctx
			},
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error)
	go func() {
		errCh <- s.s.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.s.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
