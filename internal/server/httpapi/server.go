// Package httpapi exposes the auth subsystem over HTTP/JSON and hosts the
// access guard applied to protected routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Werffios/AntilleanController/internal/logging"
	"github.com/Werffios/AntilleanController/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	users     *services.UserService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *services.UserService, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
