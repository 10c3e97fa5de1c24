package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"phishguard/internal/app/server/api"
	"phishguard/internal/config"
	"phishguard/internal/infrastructure/storage/memory"
	"phishguard/internal/infrastructure/storage/postgres"
	"phishguard/internal/utils/logger"
)

const shutdownTimeout = 5 * time.Second

var rootCmd = &cobra.Command{
	Use:   "phishguard-server",
	Short: "PhishGuard - эвристический детектор фишинга",
	Long: `PhishGuard принимает URL или скриншот страницы и возвращает
эвристический вердикт phishing/suspicious/safe с уверенностью,
историей сканов и обратной связью.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	repos, closeStorage, err := buildRepositories(conf, log)
	if err != nil {
		return fmt.Errorf("storage init: %w", err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	mux := api.New(repos, log)

	server := &http.Server{
		Addr:    conf.Server.RunAddress,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "address", conf.Server.RunAddress, "storage", conf.Storage.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func buildRepositories(conf *config.Config, log *slog.Logger) (api.Repositories, func() error, error) {
	switch conf.Storage.Backend {
	case config.BackendPostgres:
		storage, err := postgres.New(conf)
		if err != nil {
			return api.Repositories{}, nil, err
		}
		return api.Repositories{
			Scans:    postgres.NewScanRepository(storage, log),
			Feedback: postgres.NewFeedbackRepository(storage, log),
			Users:    postgres.NewUserRepository(storage, log),
		}, storage.Close, nil
	default:
		storage := memory.New()
		return api.Repositories{
			Scans:    memory.NewScanRepository(storage, log),
			Feedback: memory.NewFeedbackRepository(storage, log),
			Users:    memory.NewUserRepository(storage, log),
		}, storage.Close, nil
	}
}
