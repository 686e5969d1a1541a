package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"twitch_status_relay/internal/config"
	"twitch_status_relay/internal/middleware"

	twitchClient "twitch_status_relay/internal/client/twitch-client"
	twitchOauthClient "twitch_status_relay/internal/client/twitch-oauth-client"

	twitchHandler "twitch_status_relay/internal/handlers/twitch"

	twitchService "twitch_status_relay/internal/service/twitch"
	twitchTokenService "twitch_status_relay/internal/service/twitch_token"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("cannot load config: %v", err)
	}

	setupLogger(cfg)

	httpClient := &http.Client{
		Timeout: cfg.Twitch.Timeout,
	}

	var (
		twitchOauthClient = twitchOauthClient.NewTwitchOauthClient(httpClient, cfg.Twitch.IDBaseURL, cfg.Twitch.ClientID, cfg.Twitch.ClientSecret)
		twitchClient      = twitchClient.NewTwitchClient(httpClient, cfg.Twitch.APIBaseURL, cfg.Twitch.ClientID)
	)

	tts := twitchTokenService.NewTwitchTokenService(twitchOauthClient)
	if cfg.Twitch.TokenSyncInterval > 0 {
		go tts.SyncBg(ctx, cfg.Twitch.TokenSyncInterval)
	}

	twitchService := twitchService.NewService(twitchClient, tts)
	twitchHandler := twitchHandler.NewTwitchHandler(twitchService)

	router := mux.NewRouter()
	router.Use(middleware.LogRequests)
	twitchHandler.Register(router)

	srv := &http.Server{
		Handler:      middleware.ConfigureCORS(router, cfg.AllowedOrigins()),
		Addr:         cfg.Addr,
		WriteTimeout: 2*cfg.Twitch.Timeout + time.Second,
		ReadTimeout:  5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("server shutdown: %v", err)
		}
	}()

	logrus.Infof("server start on %s...", cfg.Addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatal(err)
	}

	logrus.Info("server stopped")
}

func setupLogger(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	switch cfg.Env {
	case config.ProdENV:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
