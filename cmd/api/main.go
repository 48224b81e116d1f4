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

	"github.com/joho/godotenv"

	"github.com/oakfield/london-property-agent/backend/internal/config"
	"github.com/oakfield/london-property-agent/backend/internal/handler"
	"github.com/oakfield/london-property-agent/backend/internal/handler/chat"
	"github.com/oakfield/london-property-agent/backend/internal/handler/leads"
	"github.com/oakfield/london-property-agent/backend/internal/service/ai"
	"github.com/oakfield/london-property-agent/backend/internal/service/notify"
	"github.com/oakfield/london-property-agent/backend/internal/store/leadcsv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store, err := leadcsv.New(cfg.Store.Path)
	if err != nil {
		log.Fatalf("failed to initialize lead store: %v", err)
	}
	log.Printf("lead store ready at %s", cfg.Store.Path)

	// The whole service relays through the chat model; refuse to start
	// without usable credentials.
	aiService, err := ai.NewService(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize AI service: %v", err)
	}
	log.Println("AI service initialized successfully")

	mailer := notify.NewMailer(cfg.SMTP)
	if cfg.SMTP.Enabled() {
		log.Printf("lead notifications enabled, recipient=%s", cfg.SMTP.Recipient)
	} else {
		log.Println("SMTP sender/recipient not configured, lead notifications disabled")
	}

	router := handler.NewRouter(
		chat.New(aiService, store, mailer),
		leads.New(store),
	)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("London Property Agent backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
