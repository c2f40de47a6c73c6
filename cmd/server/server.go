package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SoerenD/equipment-calculator-web/internal/catalogs"
	catalogclient "github.com/SoerenD/equipment-calculator-web/internal/clients/catalog"
	"github.com/SoerenD/equipment-calculator-web/internal/config"
	"github.com/SoerenD/equipment-calculator-web/internal/engine/exhaustive"
	v1alpha1 "github.com/SoerenD/equipment-calculator-web/internal/handlers/api/v1alpha1"
	loadoutorch "github.com/SoerenD/equipment-calculator-web/internal/orchestrators/loadout"
	"github.com/SoerenD/equipment-calculator-web/internal/pkg/clock"
	"github.com/SoerenD/equipment-calculator-web/internal/pkg/idgen"
	redisclient "github.com/SoerenD/equipment-calculator-web/internal/redis"
	"github.com/SoerenD/equipment-calculator-web/internal/repositories/preferences"
	"github.com/SoerenD/equipment-calculator-web/internal/repositories/results"
	loadoutsvc "github.com/SoerenD/equipment-calculator-web/internal/services/loadout"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the equipment calculator HTTP server with all configured services.`,
	RunE:  runServer,
}

var listenAddress string

func init() {
	serverCmd.Flags().StringVar(&listenAddress, "address", "", "listen address, overrides HTTP_ADDRESS")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if listenAddress != "" {
		cfg.HTTPAddress = listenAddress
	}

	service, err := buildService(cfg)
	if err != nil {
		return err
	}

	// Warm the snapshot before serving. A failing source is not
	// fatal: the store keeps serving empty catalogs until a refresh
	// succeeds.
	if output, err := service.RefreshCatalogs(ctx, &loadoutsvc.RefreshCatalogsInput{}); err != nil {
		slog.Warn("initial catalog refresh failed, serving empty catalogs", "error", err)
	} else {
		slog.Info("initial catalogs loaded", "counts", output.Counts)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		LoadoutService: service,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           withMiddleware(mux, idgen.NewUUID("req")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "address", cfg.HTTPAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err)
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func buildService(cfg *config.Config) (loadoutsvc.Service, error) {
	redisClient, err := redisclient.NewClient(cfg.RedisAddress, &redisclient.Options{
		Password: cfg.RedisPassword,
	})
	if err != nil {
		return nil, err
	}

	prefsRepo, err := preferences.NewRedis(&preferences.RedisConfig{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, err
	}

	resultsRepo, err := results.NewRedis(&results.RedisConfig{
		Client: redisClient,
		TTL:    cfg.ResultCacheTTL,
	})
	if err != nil {
		return nil, err
	}

	catalogClient, err := catalogclient.NewHTTP(&catalogclient.HTTPConfig{
		URL:          cfg.CatalogURL,
		FallbackFile: cfg.CatalogFallbackFile,
	})
	if err != nil {
		return nil, err
	}

	return loadoutorch.NewOrchestrator(&loadoutorch.Config{
		Engine:          exhaustive.New(),
		CatalogClient:   catalogClient,
		CatalogStore:    catalogs.NewStore(),
		PreferencesRepo: prefsRepo,
		ResultsRepo:     resultsRepo,
	})
}
