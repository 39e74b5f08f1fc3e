package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"nba-bot-service/internal/app/nba"
	"nba-bot-service/internal/bot"
	"nba-bot-service/internal/config"
	httpapi "nba-bot-service/internal/http"
	"nba-bot-service/internal/metrics"
	"nba-bot-service/internal/providers"
	"nba-bot-service/internal/providers/balldontlie"
	"nba-bot-service/internal/store"
	"nba-bot-service/internal/syncer"
	"nba-bot-service/internal/transport/discord"
)

var metricsSetup = metrics.Setup

// backgroundSyncer is the surface Run needs from the sync loop.
type backgroundSyncer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() syncer.Status
}

// chatTransport is an optional long-lived chat connection (Discord).
type chatTransport interface {
	Start() error
	Stop() error
}

// Server owns every long-lived component: the HTTP server, the optional
// metrics server, the optional background syncer, the optional Discord
// transport, and the Redis client when one is configured.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Store
	service       *nba.Service
	dispatcher    *bot.Dispatcher
	httpServer    httpServer
	metricsServer httpServer
	syncer        backgroundSyncer
	transport     chatTransport
	redisClient   *redis.Client
	metricsStop   func(context.Context) error
}

// New wires the full dependency graph from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	st, redisClient := buildStore(cfg, recorder)

	client := balldontlie.NewClient(balldontlie.Config{
		BaseURL: cfg.Balldontlie.BaseURL,
		APIKey:  cfg.Balldontlie.APIKey,
	})
	provider := providers.NewLoggingProvider(client, logger, recorder)

	service := nba.NewService(provider, st, logger)
	dispatcher := bot.NewDispatcher(service, cfg.AppBaseURI, logger, recorder)

	var sync backgroundSyncer
	if cfg.Sync.Enabled {
		sync = syncer.New(service, logger, recorder, cfg.Sync.Interval)
	}

	var transport chatTransport
	if cfg.Discord.Enabled() {
		adapter, err := discord.New(cfg.Discord.Token, cfg.Discord.Prefix, dispatcher, logger, cfg.TurnTimeout)
		if err != nil {
			if logger != nil {
				logger.Warn("discord transport setup failed, continuing without it", "error", err)
			}
		} else {
			transport = adapter
		}
	}

	httpSrv := buildHTTPServer(cfg, dispatcher, service, sync, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		service:       service,
		dispatcher:    dispatcher,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		syncer:        sync,
		transport:     transport,
		redisClient:   redisClient,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, sync backgroundSyncer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		syncer:     sync,
	}
}

func buildStore(cfg config.Config, recorder *metrics.Recorder) (store.Store, *redis.Client) {
	if !cfg.Redis.Enabled() {
		return store.NewMemoryStore(recorder), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return store.NewRedisStore(client, recorder), client
}

func buildHTTPServer(cfg config.Config, dispatcher *bot.Dispatcher, service *nba.Service, sync backgroundSyncer, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	ready := func() bool { return true }
	if sync != nil {
		ready = func() bool { return sync.Status().IsReady() }
	}

	handler := httpapi.NewHandler(dispatcher, service, ready, logger, cfg.AdminToken, cfg.TurnTimeout)
	router := httpapi.NewRouter(handler)
	wrapped := httpapi.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts every component, then waits for context cancellation to shut
// down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.syncer != nil {
		s.syncer.Start(ctx)
	}
	s.startTransport()

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) startTransport() {
	if s.transport == nil {
		return
	}
	if err := s.transport.Start(); err != nil && s.logger != nil {
		s.logger.Warn("discord transport failed to start, continuing without it", "error", err)
	}
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.transport != nil {
		if err := s.transport.Stop(); err != nil && s.logger != nil {
			s.logger.Warn("discord transport shutdown failed", "error", err)
		}
	}

	if s.syncer != nil {
		if err := s.syncer.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop syncer", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil && s.logger != nil {
			s.logger.Warn("redis close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
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

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: mux,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
