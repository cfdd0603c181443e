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

	"github.com/BruksfildServices01/rental-booking/internal/audit"
	"github.com/BruksfildServices01/rental-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/rental-booking/internal/db"
	"github.com/BruksfildServices01/rental-booking/internal/infra/lock"
	"github.com/BruksfildServices01/rental-booking/internal/logger"
	"github.com/BruksfildServices01/rental-booking/internal/routes"
	"github.com/BruksfildServices01/rental-booking/internal/storage"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "rental-booking",
	})

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("database connection failed", "error", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal("database migration failed", "error", err)
	}

	// ------------------------------
	// Booking lock
	// ------------------------------
	var locker lock.Locker = lock.Nop{}
	if cfg.RedisEnabled() {
		rdb, err := dbpkg.NewRedis(context.Background(), cfg)
		if err != nil {
			log.Fatal("redis connection failed", "error", err)
		}
		defer rdb.Close()
		locker = lock.NewRedisLocker(rdb)
		log.Info("booking lock backed by redis")
	}

	// ------------------------------
	// Image storage
	// ------------------------------
	var images storage.ImageStore
	if cfg.S3Enabled() {
		images = storage.NewS3Store(cfg)
		log.Info("image storage enabled", "bucket", cfg.S3Bucket)
	}

	// ------------------------------
	// Audit
	// ------------------------------
	var sinks []audit.Sink
	if cfg.KafkaEnabled() {
		ks, err := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
		if err != nil {
			log.Fatal("kafka sink setup failed", "error", err)
		}
		defer ks.Close()
		sinks = append(sinks, ks)
		log.Info("audit events published to kafka", "topic", cfg.KafkaAuditTopic)
	}
	dispatcher := audit.NewDispatcher(audit.New(db), log, sinks...)

	// ------------------------------
	// HTTP
	// ------------------------------
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := routes.RegisterRoutes(r, db, cfg, routes.Dependencies{
		Log:    log,
		Locker: locker,
		Images: images,
		Audit:  dispatcher,
	}); err != nil {
		log.Fatal("route setup failed", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", "error", err)
	}

	// flush queued audit events before the sinks close
	dispatcher.Close()
}
