package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ms-rsvp/internal/admin/admin_api"
	"ms-rsvp/internal/config"
	"ms-rsvp/internal/database"
	"ms-rsvp/internal/locale"
	"ms-rsvp/internal/logger"
	"ms-rsvp/internal/qr"
	"ms-rsvp/internal/rsvp/db"
	"ms-rsvp/internal/rsvp/rsvp_api"
	"ms-rsvp/internal/rsvp/service"
	"ms-rsvp/internal/server"
)

func main() {
	_ = godotenv.Load() // Loads .env file if present

	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if cfg.UsesDefaultCredentials() {
		log.LogSecurity("DEFAULT_CREDENTIALS", "admin area uses the built-in credentials; set ADMIN_USER and ADMIN_PASS")
	}

	ctx := context.Background()
	bunDB, err := database.Open(ctx, cfg.Database.Path, log)
	if err != nil {
		log.Fatal("DATABASE", err.Error())
	}
	defer bunDB.Close()

	qrGen, err := qr.NewQRGenerator(cfg.RSVP.PublicURL)
	if err != nil {
		log.Fatal("SERVER", fmt.Sprintf("invalid PUBLIC_URL %q: %v", cfg.RSVP.PublicURL, err))
	}

	msgs := locale.For(cfg.RSVP.Locale)
	svc := service.NewRsvpService(&db.DB{Bun: bunDB}, log)

	srv := &http.Server{
		Addr: cfg.Server.Port,
		Handler: server.NewRouter(cfg,
			rsvp_api.NewHandler(svc, msgs, log),
			admin_api.NewHandler(svc, msgs, qrGen, log),
			log,
		),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("SERVER", fmt.Sprintf("RSVP service listening on %s (locale %s)", cfg.Server.Port, msgs.Lang))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", fmt.Sprintf("HTTP error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error("SERVER", fmt.Sprintf("shutdown: %v", err))
	}
	log.Info("SERVER", "RSVP service shutdown complete")
}
