// Command server runs the wishboard web application.
//
// @title Wishboard API
// @version 1.0
// @description Read-only JSON API over the wishes collected for an event.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wishboard/config"
	"wishboard/internal/adapters/email"
	"wishboard/internal/adapters/qrcode"
	httpdelivery "wishboard/internal/delivery/http"
	"wishboard/internal/delivery/http/controllers"
	"wishboard/internal/delivery/http/views"
	"wishboard/internal/metrics"
	"wishboard/internal/repository/sqlstore"
	"wishboard/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlstore.CreateSchema(ctx, db); err != nil {
		return err
	}

	eventRepo := sqlstore.NewEventRepository(db)
	wishRepo := sqlstore.NewWishRepository(db)

	mailer := email.NewMailer(logger, email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.Region,
			AccessKeyID:        cfg.Email.AccessKeyID,
			SecretAccessKey:    cfg.Email.SecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	notifier := services.NewWishNotifier(logger, mailer, email.NewTemplateRenderer(), cfg.Email.NotifyAddress, cfg.PublicBaseURL)

	eventSvc := services.NewEventService(eventRepo, cfg.ContextTimeout)
	wishSvc := services.NewWishService(logger, eventRepo, wishRepo, notifier, cfg.ContextTimeout)
	exportSvc := services.NewExportService(eventRepo, wishRepo, cfg.ContextTimeout)

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	router := httpdelivery.NewRouter(logger, httpdelivery.Handlers{
		Events:   controllers.NewEventController(logger, eventSvc, renderer),
		Wishes:   controllers.NewWishController(logger, eventSvc, wishSvc, qrcode.NewGenerator(), renderer, cfg.PublicBaseURL),
		Admin:    controllers.NewAdminController(logger, wishSvc, exportSvc, renderer),
		API:      controllers.NewAPIController(logger, wishSvc),
		Health:   controllers.NewHealthController(logger, db),
		NotFound: &controllers.NotFoundPage{Logger: logger, Views: renderer},
	}, metrics.New(), cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "db_driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
