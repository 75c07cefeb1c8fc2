package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prodash/prodash/config"
	"github.com/prodash/prodash/logger"
)

// Options configures the created server.
type Options struct {
	Config  *config.Config
	Handler http.Handler
	// Middlewares wrap the provided Handler during creation, in order.
	Middlewares []func(http.Handler) http.Handler
}

type Server struct {
	srv *http.Server
	log *logger.Logger
}

// New assembles the HTTP server from config: address, timeouts and the
// middleware chain. It also installs the process logger according to the
// debug flag.
func New(opts Options) (*Server, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("server: config is required")
	}
	if opts.Handler == nil {
		return nil, fmt.Errorf("server: handler is required")
	}

	log := logger.NewConsole(os.Stdout, logger.LevelInfo, true)
	if cfg.App.Debug {
		log = logger.NewConsole(os.Stdout, logger.LevelDebug, true)
	}
	logger.SetStd(log)

	h := opts.Handler
	for i := len(opts.Middlewares) - 1; i >= 0; i-- {
		h = opts.Middlewares[i](h)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      h,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	return &Server{srv: srv, log: log}, nil
}

// Start runs the HTTP server until it stops.
func (s *Server) Start() error {
	s.log.Info("server.start", logger.Fields{"addr": s.srv.Addr})
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen failed: %w", err)
	}
	return nil
}
