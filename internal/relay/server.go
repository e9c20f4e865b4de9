package relay

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/five82/snip/internal/config"
	"github.com/five82/snip/internal/redirect"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// Server wraps http.Server so the injector can shut it down.
type Server struct {
	srv         *http.Server
	resolveBase string
	logger      *zap.Logger
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Serve accepts connections on l until Shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("relay listening",
		zap.String("addr", l.Addr().String()),
		zap.String("resolve_base", s.resolveBase),
	)
	if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests. It satisfies do.Shutdownable.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewInjector wires the relay's services.
func NewInjector(cfg config.Config, logger *zap.Logger) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	do.Provide(injector, func(i *do.Injector) (*redirect.Redirector, error) {
		return redirect.New(do.MustInvoke[config.Config](i).ResolveBase)
	})
	do.Provide(injector, func(i *do.Injector) (*Handler, error) {
		r, err := do.Invoke[*redirect.Redirector](i)
		if err != nil {
			return nil, err
		}
		return NewHandler(r, do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (*chi.Mux, error) {
		h, err := do.Invoke[*Handler](i)
		if err != nil {
			return nil, err
		}
		return NewRouter(h, do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (*Server, error) {
		router, err := do.Invoke[*chi.Mux](i)
		if err != nil {
			return nil, err
		}
		redirector, err := do.Invoke[*redirect.Redirector](i)
		if err != nil {
			return nil, err
		}
		return &Server{
			srv: &http.Server{
				Addr:              do.MustInvoke[config.Config](i).ListenAddr,
				Handler:           router,
				ReadHeaderTimeout: readHeaderTimeout,
			},
			resolveBase: redirector.Base(),
			logger:      do.MustInvoke[*zap.Logger](i),
		}, nil
	})

	return injector
}

// Run serves the relay until ctx is cancelled, then shuts every service down.
func Run(ctx context.Context, injector *do.Injector) error {
	server, err := do.Invoke[*Server](injector)
	if err != nil {
		return fmt.Errorf("init relay: %w", err)
	}
	l, err := net.Listen("tcp", server.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", server.Addr(), err)
	}
	return serveUntilDone(ctx, injector, server, l)
}

func serveUntilDone(ctx context.Context, injector *do.Injector, server *Server, l net.Listener) error {
	logger := do.MustInvoke[*zap.Logger](injector)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve(l) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := injector.Shutdown(); err != nil {
		return fmt.Errorf("shutdown relay: %w", err)
	}
	logger.Info("shutdown complete")
	return <-errCh
}
