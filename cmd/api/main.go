package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/knitviz/di-graph-backend/config"
	"github.com/knitviz/di-graph-backend/internal/bootstrap"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/explorer"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/service"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/session"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/upstream"
	"github.com/knitviz/di-graph-backend/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Base().Fatal("config", "err", err)
	}
	logger.Init(logger.Options{Level: cfg.App.LogLevel, Format: cfg.App.LogFormat})
	log := logger.Base()
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := bootstrap.OpenStore(ctx, bootstrap.StoreOptions{
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
		DocumentTTL:   cfg.Redis.DocumentTTL,
	})
	if err != nil {
		log.Fatal("open document store", "err", err)
	}
	defer closeStore()

	sessions := session.NewManager(cfg.Session.TTL)
	sweeper, err := session.NewSweeper(sessions, cfg.Session.SweepSpec)
	if err != nil {
		log.Fatal("session sweeper", "err", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	var remote domain.Provider
	if cfg.Provider.URL != "" {
		remote = upstream.NewClient(cfg.Provider.URL, upstream.Options{
			Timeout: cfg.Provider.Timeout,
			Rate:    cfg.Provider.Rate,
			Burst:   cfg.Provider.Burst,
		})
		log.Info("using remote class-info provider", "url", cfg.Provider.URL)
	}

	svc := service.New(st, sessions, service.Options{
		Limits: explorer.Limits{
			MaxDepth:       cfg.Explore.MaxDepth,
			AttributeDepth: cfg.Explore.AttributeDepth,
			ChildDepth:     cfg.Explore.ChildDepth,
			MaxParameters:  cfg.Explore.MaxParameters,
			MaxComponents:  cfg.Explore.MaxComponents,
			MaxInjections:  cfg.Explore.MaxInjections,
			MaxChildren:    cfg.Explore.MaxChildren,
		},
		Remote: remote,
	})

	if cfg.Knit.DataPath != "" {
		if _, err := svc.LoadFile(ctx, cfg.Knit.DataPath); err != nil {
			log.Warn("knit data not loaded", "path", cfg.Knit.DataPath, "err", err)
		}
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		Service:        svc,
		CORSOrigins:    cfg.Server.CORSAllowedOrigins,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "err", err)
		}
	}()

	log.Info("listening", "port", cfg.Server.Port, "env", cfg.App.Environment, "store", st.Name())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server", "err", err)
	}
}
