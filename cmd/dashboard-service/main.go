package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/config"
	delivery "github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/delivery/http"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/repository"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/dashboard/service"
	"github.com/gracie007-cloud/stock-scanner-dashboard/internal/entity"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/jsonstore"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/telegram"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Dashboard Service", logger.Field("name", cfg.App.Name))

	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		appLogger.Fatal("Failed to create data directory", logger.ErrorField(err))
	}

	store := jsonstore.New(appLogger)

	// Repositories
	sheetsRepo := repository.NewSheetsRepository(cfg, appLogger)
	alertRepo := repository.NewAlertRepository(store, dataDir, appLogger)
	earningsRepo := repository.NewEarningsRepository(store, dataDir, appLogger)
	settingsRepo := repository.NewSettingsRepository(store, dataDir, appLogger)
	callRepo := repository.NewCoveredCallRepository(store, dataDir, appLogger)
	positionRepo := repository.NewStockPositionRepository(store, dataDir, appLogger)
	routineRepo := repository.NewRoutineRepository(store, dataDir, appLogger)
	historyRepo := repository.NewHistoryRepository(store, dataDir, appLogger)

	// Scan cache
	cacheTTL := 300 * time.Second
	if cfg.Cache.Duration != "" {
		cacheTTL, err = time.ParseDuration(cfg.Cache.Duration)
		if err != nil {
			appLogger.Fatal("Invalid cache duration", logger.ErrorField(err))
		}
	}
	fetch := func(ctx context.Context) (*entity.ScanSnapshot, error) {
		values, err := sheetsRepo.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		return service.ParseSheet(values)
	}
	archive := func(ctx context.Context, snap *entity.ScanSnapshot, at time.Time) error {
		_, err := historyRepo.Save(ctx, snap, at)
		return err
	}
	scanCache := service.NewSnapshotCache(cacheTTL, fetch, archive, appLogger)

	// Services
	scanSvc := service.NewScanService(scanCache, settingsRepo, appLogger)
	alertSvc := service.NewAlertService(alertRepo, appLogger)
	earningsSvc := service.NewEarningsService(earningsRepo, appLogger)
	settingsSvc := service.NewSettingsService(settingsRepo, appLogger)
	callSvc := service.NewCoveredCallService(callRepo, cfg.Scanner.CapitalBase, appLogger)
	positionSvc := service.NewStockPositionService(positionRepo, appLogger)
	routineSvc := service.NewRoutineService(routineRepo, appLogger)
	historySvc := service.NewHistoryService(historyRepo, appLogger)

	// Background alert sweep
	if cfg.Alerts.SweepSchedule != "" {
		notifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
		notifyTTL := 30 * time.Minute
		if cfg.Alerts.NotifyCacheDuration != "" {
			notifyTTL, err = time.ParseDuration(cfg.Alerts.NotifyCacheDuration)
			if err != nil {
				appLogger.Fatal("Invalid notify cache duration", logger.ErrorField(err))
			}
		}
		sweepSvc, err := service.NewSweepService(scanCache, alertRepo, notifier, cfg.Alerts.SweepSchedule, notifyTTL, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize alert sweep", logger.ErrorField(err))
		}
		go sweepSvc.Start(ctx)
	}

	// Echo server and routes
	e := echo.New()
	e.HideBanner = true

	api := e.Group("/api")
	delivery.NewScanHandler(scanSvc, appLogger).RegisterRoutes(api)
	delivery.NewAlertHandler(alertSvc, appLogger).RegisterRoutes(api.Group("/alerts"))
	delivery.NewEarningsHandler(earningsSvc, appLogger).RegisterRoutes(api.Group("/earnings"))
	delivery.NewSettingsHandler(settingsSvc, appLogger).RegisterRoutes(api.Group("/settings"))
	delivery.NewHistoryHandler(historySvc, appLogger).RegisterRoutes(api.Group("/history"))
	delivery.NewRoutineHandler(routineSvc, appLogger).RegisterRoutes(api)
	delivery.NewCallHandler(callSvc, appLogger).RegisterRoutes(api.Group("/calls"))
	delivery.NewPositionHandler(positionSvc, appLogger).RegisterRoutes(api.Group("/positions"))
	delivery.NewSystemHandler(cfg).RegisterRoutes(api)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func main() {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
