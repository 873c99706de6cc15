package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskibarqy/fantasy-draft/external/anubis"
	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/broadcast"
	"github.com/riskibarqy/fantasy-draft/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-draft/internal/platform/id"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

// NewHTTPServer wires storage, the draft hub and the use cases behind the
// HTTP router. The returned cleanup releases everything the server holds and
// must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanups := []func() error{repos.close}
	cleanup := func() error {
		var errs []error
		for i := len(cleanups) - 1; i >= 0; i-- {
			errs = append(errs, cleanups[i]())
		}
		return errors.Join(errs...)
	}

	var (
		registry       *prometheus.Registry
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}
	metrics := broadcast.NewMetrics(registry)

	hub, err := broadcast.NewHub(broadcast.Config{
		SendTimeout: cfg.DraftSendTimeout,
		Buffer:      cfg.DraftSubscriberBuffer,
		Workers:     cfg.DraftFanoutWorkers,
	}, metrics, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("create draft hub: %w", err)
	}
	cleanups = append(cleanups, func() error {
		hub.Close()
		return nil
	})

	if cfg.NATSEnabled {
		bridge, err := broadcast.NewNATSBridge(cfg.NATSURL, cfg.NATSSubjectPrefix, metrics, logger)
		if err != nil {
			_ = cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, bridge.Close)
		if err := bridge.Listen(hub.Deliver); err != nil {
			_ = cleanup()
			return nil, nil, err
		}
		hub.SetBridge(bridge)
		logger.Info("draft events bridged over nats", "url", cfg.NATSURL, "subject_prefix", cfg.NATSSubjectPrefix)
	}

	anubisClient := anubis.NewClient(anubis.Config{
		BaseURL:        cfg.AnubisBaseURL,
		IntrospectPath: cfg.AnubisIntrospectURL,
		AdminKey:       cfg.AnubisAdminKey,
		Timeout:        cfg.AnubisTimeout,
		CacheTTL:       cfg.AnubisCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AnubisCircuitEnabled,
			FailureThreshold: cfg.AnubisCircuitFailureCount,
			OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
		},
	}, logger)

	rosterSvc := usecase.NewRosterService(repos.leagues, repos.players, repos.rosters, id.NewRandomGenerator(), logger)
	handler := httpapi.NewHandler(
		usecase.NewLeagueService(repos.leagues, id.NewRandomGenerator(), logger),
		usecase.NewLineupService(
			repos.leagues,
			repos.players,
			repos.rosters,
			repos.submissions,
			usecase.NewLockService(repos.stats),
			logger,
		),
		usecase.NewWaiverService(repos.leagues, rosterSvc, logger),
		usecase.NewDraftService(repos.leagues, repos.players, repos.rosters, rosterSvc, hub, logger),
		usecase.NewStatService(repos.stats, logger),
		usecase.NewPlayerService(repos.leagues, repos.players, repos.rosters),
		usecase.NewTradeService(repos.leagues, repos.players, repos.rosters, repos.trades, id.NewRandomGenerator(), logger),
		hub,
		cfg.DraftKeepaliveInterval,
		logger,
	)
	router := httpapi.NewRouter(handler, anubisClient, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
		Metrics:            metricsHandler,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}
