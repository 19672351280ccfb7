package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoicing-backend/config"
	"invoicing-backend/routes"
	"invoicing-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := config.NewLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDB(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := services.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	store := services.NewStore(db)
	if err := store.Seed(context.Background(), logger); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	renderer, err := services.NewInvoiceRenderer(cfg.Print.CurrencySymbol)
	if err != nil {
		logger.Fatal("failed to load invoice template", zap.Error(err))
	}

	var notifier services.Notifier = services.NewLogNotifier(logger)
	if cfg.TwilioEnabled() {
		notifier = services.NewTwilioNotifier(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, logger)
	}
	reminders := services.NewReminderService(store, notifier, renderer, logger)
	if cfg.Reminder.Enabled {
		if err := reminders.Start(cfg.Reminder.Schedule); err != nil {
			logger.Fatal("failed to start reminders", zap.Error(err))
		}
		defer reminders.Stop()
	}

	r := routes.SetupRouter(routes.Dependencies{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Renderer:  renderer,
		Reminders: reminders,
	})
	printRoutes(r, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine, logger *zap.Logger) {
	for _, route := range r.Routes() {
		logger.Debug("route", zap.String("method", route.Method), zap.String("path", route.Path))
	}
}
