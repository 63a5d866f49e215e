package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/tng/internal/config"
	"github.com/aretw0/tng/internal/logging"
	"github.com/aretw0/tng/internal/metrics"
	"github.com/aretw0/tng/internal/presentation/tui"
	"github.com/aretw0/tng/pkg/adapters/file"
	httpAdapter "github.com/aretw0/tng/pkg/adapters/http"
	"github.com/aretw0/tng/pkg/adapters/memory"
	"github.com/aretw0/tng/pkg/adapters/redis"
	"github.com/aretw0/tng/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the engine in server mode, exposing program execution over a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		logLevel, _ := cmd.Flags().GetString("log-level")
		debug, _ := cmd.Flags().GetBool("debug")

		level := logging.ParseLevel(logLevel)
		if debug {
			level = slog.LevelDebug
		}

		if err := runServe(configPath, level); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Config file (defaults to ./tng.yaml when present)")
	serveCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

func runServe(configPath string, level slog.Level) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.New(level)

	store := buildStore(cfg)

	source, err := file.NewSource(cfg.Programs)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)

	api := httpAdapter.NewHandler(source, store,
		httpAdapter.WithBudget(cfg.Budget),
		httpAdapter.WithMetrics(m),
		httpAdapter.WithLogger(logger),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/", api)

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		tui.PrintBanner()
		fmt.Printf("Starting tng server on %s\n", srv.Addr)
		fmt.Printf("Serving programs from: %s (store: %s)\n", cfg.Programs, cfg.Store)
		logger.Info("Server starting", "addr", srv.Addr, "store", cfg.Store)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt or terminate signals.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("killing server: %w", err)
			}
		}
		fmt.Println("tng server stopped gracefully")
	}
	return nil
}

func buildStore(cfg *config.Config) ports.RunStore {
	if cfg.Store == "redis" {
		return redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}
	return memory.NewStore()
}
