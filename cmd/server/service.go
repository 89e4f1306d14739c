package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JaimeStill/route-docs/internal/config"
	"github.com/JaimeStill/route-docs/internal/logger"
	"github.com/JaimeStill/route-docs/internal/routes"
	"github.com/JaimeStill/route-docs/internal/server"
	"github.com/JaimeStill/route-docs/pkg/endpoints"
	"github.com/JaimeStill/route-docs/pkg/routetable"
	"github.com/JaimeStill/route-docs/web/docs"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	ctx        context.Context
	cancel     context.CancelFunc
	shutdownWg sync.WaitGroup

	logger  logger.System
	server  server.System
	handler http.Handler
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	loggerSys := logger.New(&cfg.Logging)
	routeSys := routes.New(loggerSys.Module("routes"))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	endpoints.Register(cfg.Docs.RootTable, routeSys)
	parser := endpoints.New(endpoints.Config{
		Resolver:  endpoints.Chain{endpoints.Tables(), routetable.FileResolver{Dir: "."}},
		RootTable: cfg.Docs.RootTable,
	}, loggerSys.Module("endpoints"))

	docsHandler, err := docs.New(parser, docs.Config{
		BasePath:   cfg.Docs.BasePath,
		Version:    cfg.Version,
		Options:    cfg.Docs.Options(),
		OpenAPI:    cfg.Docs.OpenAPI,
		Registerer: registry,
	}, loggerSys.Logger())
	if err != nil {
		return nil, fmt.Errorf("docs init failed: %w", err)
	}

	registerRoutes(routeSys, cfg, loggerSys, docsHandler, registry)

	mux, err := routeSys.Build()
	if err != nil {
		return nil, fmt.Errorf("route build failed: %w", err)
	}
	handler := buildMiddleware(loggerSys, cfg).Apply(mux)

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		ctx:     ctx,
		cancel:  cancel,
		logger:  loggerSys,
		server:  server.New(cfg, handler, loggerSys.Logger()),
		handler: handler,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.logger.Logger().Info("starting service")

	if err := s.server.Start(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.logger.Logger().Info("service started", "addr", s.server.Addr())
	return nil
}

// Shutdown gracefully stops all subsystems within the provided context deadline.
func (s *Service) Shutdown(ctx context.Context) error {
	s.logger.Logger().Info("initiating shutdown")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Logger().Info("all subsystems shut down successfully")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
