package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"toxiscan/internal/analyzer"
	"toxiscan/internal/common/config"
	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
	"toxiscan/internal/common/observability"
	"toxiscan/internal/normalizer"
	"toxiscan/internal/providers/composition"
	"toxiscan/internal/providers/encyclopedia"
	"toxiscan/internal/providers/registry"
	"toxiscan/internal/providers/structure"
	"toxiscan/internal/server"
	"toxiscan/internal/taxonomy"
)

const taxonomyLoadTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	log.Info("starting service", map[string]interface{}{
		"name":        cfg.App.Name,
		"environment": cfg.App.Environment,
		"port":        cfg.Server.Port,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	registryService := registry.NewService(registry.ServiceDependencies{
		Logger: log,
		Client: httpx.NewClient(config.GetDuration(cfg.Providers.Registry.Timeout), cfg.Providers.UserAgent),
	}, &registry.Config{
		BaseURL:     cfg.Providers.Registry.BaseURL,
		TaxonomyURL: cfg.Providers.Registry.TaxonomyURL,
		Timeout:     config.GetDuration(cfg.Providers.Registry.Timeout),
		PageSize:    cfg.Providers.Registry.PageSize,
	})

	encyclopediaService := encyclopedia.NewService(encyclopedia.ServiceDependencies{
		Logger: log,
		Client: httpx.NewClient(config.GetDuration(cfg.Providers.Encyclopedia.Timeout), cfg.Providers.UserAgent),
	}, &encyclopedia.Config{
		BaseURL: cfg.Providers.Encyclopedia.BaseURL,
		Timeout: config.GetDuration(cfg.Providers.Encyclopedia.Timeout),
	})

	compositionService := composition.NewService(composition.ServiceDependencies{
		Logger: log,
		Client: httpx.NewClient(config.GetDuration(cfg.Providers.Composition.Timeout), cfg.Providers.UserAgent),
	}, &composition.Config{
		SearchURL: cfg.Providers.Composition.SearchURL,
		APIKey:    cfg.Providers.Composition.APIKey,
		Timeout:   config.GetDuration(cfg.Providers.Composition.Timeout),
	})

	structureService := structure.NewService(structure.ServiceDependencies{
		Logger: log,
		Client: httpx.NewClient(config.GetDuration(cfg.Providers.Structure.Timeout), cfg.Providers.UserAgent),
	}, &structure.Config{
		BaseURL: cfg.Providers.Structure.BaseURL,
		Timeout: config.GetDuration(cfg.Providers.Structure.Timeout),
	})

	var index *taxonomy.Index
	if path := cfg.Providers.Registry.SnapshotPath; path != "" {
		index = taxonomy.BuildFromSnapshot(path, log)
	} else {
		taxCtx, taxCancel := context.WithTimeout(context.Background(), taxonomyLoadTimeout)
		index = taxonomy.Build(taxCtx, registryService, log)
		taxCancel()
	}

	analyzeService := analyzer.NewService(analyzer.ServiceDependencies{
		Logger:        log,
		Observability: obs,
		Normalizer:    normalizer.New(index),
		Registry:      registryService,
		Encyclopedia:  encyclopediaService,
		Composition:   compositionService,
		Structure:     structureService,
	})

	srv := server.New(analyzeService, index, log)
	router := srv.SetupRouter(cfg.App.Environment)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	log.Info("server listening", map[string]interface{}{"addr": httpServer.Addr})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down", nil)

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed", nil)
	}
}
