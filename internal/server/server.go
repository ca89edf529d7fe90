package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ledmatrix/sportsticker/internal/config"
	"github.com/ledmatrix/sportsticker/internal/logos"
	"github.com/ledmatrix/sportsticker/internal/metrics"
	"github.com/ledmatrix/sportsticker/internal/poller"
	"github.com/ledmatrix/sportsticker/internal/providers"
	"github.com/ledmatrix/sportsticker/internal/render"
	"github.com/ledmatrix/sportsticker/internal/store"
	"github.com/ledmatrix/sportsticker/internal/ticker"
)

var metricsSetup = metrics.Setup

// Server owns the daemon's components: poller, snapshot store, ticker loop,
// and the HTTP surface.
type Server struct {
	cfg         config.Config
	opts        config.Options
	logger      *slog.Logger
	metrics     *metrics.Recorder
	store       *store.SnapshotStore
	ticker      *ticker.Ticker
	poller      *poller.Poller
	httpServer  httpServer
	metricsStop func(context.Context) error
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	opts, err := config.LoadOptions(cfg.OptionsFile)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	provider := buildProvider(cfg, opts, logger)
	return newServerWithProvider(cfg, opts, logger, provider)
}

func newServerWithProvider(cfg config.Config, opts config.Options, logger *slog.Logger, provider providers.ScoreboardProvider) (*Server, error) {
	recorder, metricsHandler, metricsShutdown := buildMetrics(cfg, logger)

	fonts, err := render.LoadFonts(opts.FontPath, opts.FontSize)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	loader := logos.NewLoader(cfg.LogoCacheDir, logger)
	renderer := render.New(opts, fonts, loader, cfg.DisplayWidth, cfg.DisplayHeight)

	snapStore := store.NewSnapshotStore()
	tick := ticker.New(opts, renderer, snapStore, logger, recorder)

	loc := providers.ResolveTimezone(cfg.Timezone)
	plr := poller.New(provider, snapStore, logger, recorder, cfg.UpdateInterval, loc, opts.Enabled)

	handler := NewHandler(tick, logger, plr.Status, cfg.Provider, cfg.DisplayWidth, cfg.DisplayHeight)
	router := NewRouter(handler, metricsHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:         cfg,
		opts:        opts,
		logger:      logger,
		metrics:     recorder,
		store:       snapStore,
		ticker:      tick,
		poller:      plr,
		httpServer:  netHTTPServer{srv: srv},
		metricsStop: metricsShutdown,
	}, nil
}

// Run starts the poller, ticker loop, and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.poller.Start(ctx)
	go s.ticker.Run(ctx)
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}
	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Warn("http server failed", "error", err)
			}
			if stop != nil {
				stop()
			}
		}
	}()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.poller.Stop()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
