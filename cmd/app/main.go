package main

import (
	"clinic-portal/internal/config"
	apptGet "clinic-portal/internal/http-server/handlers/appointments/get"
	apptNote "clinic-portal/internal/http-server/handlers/appointments/note"
	apptStatus "clinic-portal/internal/http-server/handlers/appointments/status"
	callFinish "clinic-portal/internal/http-server/handlers/calls/finish"
	callGet "clinic-portal/internal/http-server/handlers/calls/get"
	callStart "clinic-portal/internal/http-server/handlers/calls/start"
	confirmDay "clinic-portal/internal/http-server/handlers/confirmations/confirm"
	confirmGet "clinic-portal/internal/http-server/handlers/confirmations/get"
	regCreate "clinic-portal/internal/http-server/handlers/registrations/create"
	regDecide "clinic-portal/internal/http-server/handlers/registrations/decide"
	regGet "clinic-portal/internal/http-server/handlers/registrations/get"
	settingsGet "clinic-portal/internal/http-server/handlers/settings/get"
	settingsSet "clinic-portal/internal/http-server/handlers/settings/set"
	"clinic-portal/internal/kv"
	"clinic-portal/internal/notify"
	"clinic-portal/internal/seed"
	svc "clinic-portal/internal/service"
	"clinic-portal/internal/storage/postgres"
	"clinic-portal/internal/store"
	"clinic-portal/pkg/handlers/slogpretty"
	"clinic-portal/pkg/middleware/mwlogger"
	"clinic-portal/pkg/sl"
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting clinic portal", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	var source seed.Source = seed.Static{}
	var storage *postgres.Storage

	if cfg.SeedSource == "postgres" {
		var err error
		storage, err = postgres.New(cfg.StoragePath)
		if err != nil {
			log.Error("Failed to init storage", sl.Err(err))
			os.Exit(1)
		}
		source = storage
	}

	snapCtx, snapCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	snapshot, err := source.Snapshot(snapCtx)
	snapCancel()
	if err != nil {
		log.Error("Failed to load seed snapshot", sl.Err(err))
		os.Exit(1)
	}

	scheduleStore := store.New(snapshot)

	settingsKV, err := kv.NewRedisKV(cfg.RedisAddr)
	if err != nil {
		log.Error("Failed to init redis kv", sl.Err(err))
		os.Exit(1)
	}

	mailer := notify.NewLogMailer(log)

	service := svc.NewService(scheduleStore, settingsKV, mailer)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(CORS)

	// Schedule
	router.Get("/schedule", apptGet.New(log, service))
	router.Put("/appointments/{id}/status", apptStatus.New(log, service))
	router.Put("/appointments/{id}/note", apptNote.New(log, service))

	// Doctor confirmations
	router.Get("/confirmations", confirmGet.New(log, service))
	router.Post("/confirmations/{doctorID}/confirm", confirmDay.New(log, service))

	// Call tasks
	router.Get("/calls", callGet.New(log, service))
	router.Post("/calls/{id}/start", callStart.New(log, service))
	router.Post("/calls/{id}/finish", callFinish.New(log, service))

	// Staff registrations
	router.Post("/registrations", regCreate.New(log, service))
	router.Get("/registrations", regGet.New(log, service))
	router.Post("/registrations/{id}/decide", regDecide.New(log, service))

	// Portal settings
	router.Get("/settings/{staffID}", settingsGet.New(log, service))
	router.Put("/settings/{staffID}", settingsSet.New(log, service))

	serv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErrCh := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", slog.String("addr", cfg.Address))
		if err := serv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		} else {
			serverErrCh <- nil
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErrCh:
		if err != nil {
			log.Error("HTTP server stopped unexpectedly", sl.Err(err))
		} else {
			log.Info("HTTP server stopped gracefully")
		}
	}

	shutdownTimeout := cfg.HTTPServer.ShutdownTimeout

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down HTTP server", slog.String("timeout", shutdownTimeout.String()))

	if err := serv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", sl.Err(err))
	} else {
		log.Info("Server shutdown complete")
	}

	if storage != nil {
		if err := storage.Close(); err != nil {
			log.Error("Failed to close storage", sl.Err(err))
		} else {
			log.Info("Storage closed")
		}
	}

	if settingsKV != nil {
		if err := settingsKV.Close(); err != nil {
			log.Error("Failed to close redis kv", sl.Err(err))
		} else {
			log.Info("Redis kv closed")
		}
	}

	log.Info("Shutdown finished, server stopped")

}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
