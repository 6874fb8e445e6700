package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/storserv/storserv/internal/logging"
)

// Server wraps the HTTP listener around the gateway handler, with request
// middleware and graceful shutdown.
type Server struct {
	logger logging.Logger
	server *http.Server
}

func NewServer(addr string, logger logging.Logger, handler *Handler) *Server {
	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(handler),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return &Server{
		logger: logger.With("module", "http_server"),
		server: srv,
	}
}

// newRouter wires the gateway routes: login and ping are open, everything
// under /v1/data sits behind the token gate.
func newRouter(handler *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/v1/ping", handler.ping)
	r.Post("/v1/login", handler.login)

	r.Route("/v1/data", func(r chi.Router) {
		r.Use(handler.requireToken)
		r.Get("/*", handler.get)
		r.Put("/*", handler.put)
		r.Post("/*", handler.post)
		r.Delete("/*", handler.delete)
	})

	return r
}

func (s *Server) Addr() string {
	return s.server.Addr
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the listener fails.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	s.logger.Info(ctx, "starting HTTP server", "address", s.server.Addr)

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errChan:
		s.logger.Error(ctx, "HTTP server error", "error", err)
		return err
	}
}
