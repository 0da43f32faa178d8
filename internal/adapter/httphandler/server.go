package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	handlerTimeout    = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 2 * time.Second
)

// An HTTPServer serves the storefront REST API. Every handler runs
// under a hard timeout so a stuck catalog or order query cannot hold
// a connection open.
type HTTPServer struct {
	addr   string
	server *http.Server
}

func NewHTTPServer(addr string, handler http.Handler) HTTPServer {
	s := &http.Server{
		Addr:              addr,
		Handler:           http.TimeoutHandler(handler, handlerTimeout, "unavailable"),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	return HTTPServer{addr, s}
}

// Run serves until Close. Any listen failure stops the whole
// application through stopFn.
func (s HTTPServer) Run(stopFn context.CancelFunc) {
	const op = "HTTPServer.Run"
	log := slog.With("op", op, "addr", s.addr)

	defer stopFn()

	log.Info("storefront api is listening")
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("storefront api went down", "err", err)
	}
}

func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op, "addr", s.addr)

	log.Info("closing storefront api...")

	if err := s.server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
		return
	}
	log.Info("storefront api is closed")
}
