package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"orderflow/api"
	"orderflow/cmd"
	orderhttp "orderflow/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	loadDotEnv()
	configs := cmd.LoadConfigFromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	app := cmd.NewCompositionRoot(configs, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := newWebServer(ctx, &app, logger)

	logger.InfoContext(ctx, "Order service starting",
		"port", configs.HTTPPort,
		"job_interval", configs.JobInterval.String(),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	jobManager.StopAll()
	if err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
	logger.Info("Order service stopped")
}

// loadDotEnv reads .env when present; the process environment wins over it.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func newWebServer(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) *echo.Echo {
	doc, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}

	e, err := orderhttp.NewRouter(app.CreateServer(), doc, app.Metrics(), logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}
	return e
}
