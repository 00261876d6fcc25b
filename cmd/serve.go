package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	config "task-management.com/task-management/internal/configs"
	httpapi "task-management.com/task-management/internal/http"
	middleware "task-management.com/task-management/internal/http/middlewares"
	"task-management.com/task-management/internal/http/validators"
	repository "task-management.com/task-management/internal/repositories"
	"task-management.com/task-management/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		slog.SetDefault(logger)

		taskRepo := repository.NewInMemoryTaskRepository()
		taskService := services.NewTaskService(taskRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		e.Validator = validators.New()
		e.HTTPErrorHandler = httpapi.ErrorHandler

		e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
			Generator: uuid.NewString,
		}))
		e.Use(echomw.Recover())
		e.Use(middleware.RequestLogger(logger))
		e.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))

		handler := httpapi.NewHandler(taskService)
		httpapi.Register(e, handler)

		go func() {
			logger.Info("HTTP server listening", "addr", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info("server stopped", "error", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
