package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"anchor-sim/internal/api"
	"anchor-sim/internal/config"
	"anchor-sim/internal/data"
	"anchor-sim/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(logger.Config{
		Level:       env.LogLevel,
		File:        env.LogFile,
		MaxSize:     env.LogMaxSize,
		MaxBackups:  env.LogMaxBackups,
		MaxAge:      env.LogMaxAge,
		Compress:    env.LogCompress,
		Console:     env.LogConsole,
		Development: !env.IsProduction(),
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions, err := data.NewSessionCache(env.MaxSessions, lg)
	if err != nil {
		lg.Fatal("session cache", zap.Error(err))
	}

	router := api.NewRouter(api.RouterConfig{
		Sessions:       sessions,
		AssetDir:       env.AssetDir,
		StaticDir:      env.StaticDir,
		CORSOrigins:    env.AllowedOrigins(),
		StreamInterval: env.StreamInterval,
		Logger:         lg,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", env.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		lg.Info("http listening",
			zap.String("addr", server.Addr),
			zap.String("env", env.Env),
			zap.Int("max_sessions", env.MaxSessions),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("http", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShut); err != nil {
		lg.Warn("http shutdown", zap.Error(err))
	}
	// Stops every session ticker.
	sessions.Purge()
	lg.Info("shutdown complete")
}
