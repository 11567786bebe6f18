package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vtpartner/internal/cache"
	"vtpartner/internal/config"
	"vtpartner/internal/controllers"
	"vtpartner/internal/logger"
	"vtpartner/internal/middleware"
	"vtpartner/internal/models"
	"vtpartner/internal/routes"
	"vtpartner/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	// Initialize structured logging to file
	accessLog := logger.Setup(cfg.LogFile, cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := openStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("store initialisation failed")
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = config.OpenRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable, catalog cache disabled")
		} else {
			defer rdb.Close()
		}
	}
	var catalogCache *cache.Cache
	if rdb != nil {
		catalogCache = cache.New(rdb, cfg.CacheTTL)
	}

	jwt := middleware.NewJWT(cfg.JWTSecret, cfg.JWTTTL)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMin)
	defer loginLimiter.Stop()
	r := routes.SetupRouter(routes.Options{
		Controller:   controllers.New(st, jwt, catalogCache),
		JWT:          jwt,
		LoginLimiter: loginLimiter,
		CORSOrigins:  cfg.CORSOrigins,
		AccessLog:    accessLog,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.StoreDriver == "memory" {
		logrus.Warn("using in-memory store, data is lost on restart")
		mem := store.NewMemory()
		if cfg.SeedAdminEmail != "" {
			hash, err := controllers.HashPassword(cfg.SeedAdminPassword)
			if err != nil {
				return nil, err
			}
			mem.AddAdmin(models.Admin{AdminName: "admin", Email: cfg.SeedAdminEmail, Password: hash, AdminRole: "admin"})
		}
		return mem, nil
	}

	db, err := config.OpenDB(cfg.DB, logger.GormLogger())
	if err != nil {
		return nil, err
	}
	pg := store.NewGorm(db)
	if cfg.DB.AutoMigrate {
		if err := pg.Migrate(cfg.DB.Schema); err != nil {
			return nil, err
		}
		logrus.Info("database schema migrated")
	}
	return pg, nil
}
