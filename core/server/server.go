package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotpoll/core/cache"
	"slotpoll/core/config"
	"slotpoll/core/constants"
	"slotpoll/core/database"
	"slotpoll/core/logger"
	"slotpoll/core/middleware"
	"slotpoll/modules/event"
	eventService "slotpoll/modules/event/service"
	"slotpoll/modules/schedule"
	scheduleService "slotpoll/modules/schedule/service"
	"slotpoll/modules/schedule/worker"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the HTTP server and, when redis is configured, the
// background schedule worker. It blocks until shutdown.
func Run() error {
	config.Load()

	db, err := initDatabase()
	if err != nil {
		return err
	}

	// Redis is optional: without it recommendations are computed on
	// demand and no background worker runs.
	redisCache, redisOpts := initRedis()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	mw := middleware.NewMiddleware()
	e.Use(mw.RequestID())
	e.Use(mw.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	var recCache scheduleService.RecommendationCache
	if redisCache != nil {
		recCache = redisCache
	}
	scheduleSvc := schedule.Init(e, &db, recCache, mw)

	var queue eventService.ScheduleQueue
	var asynqClient *asynq.Client
	var asynqServer *asynq.Server
	if redisOpts != nil {
		asynqClient = asynq.NewClient(*redisOpts)
		queue = worker.NewEnqueuer(asynqClient)

		asynqServer = asynq.NewServer(*redisOpts, asynq.Config{
			Concurrency: 2,
		})
	}
	event.Init(e, &db, queue, mw)

	if asynqServer != nil {
		mux := asynq.NewServeMux()
		worker.NewHandler(scheduleSvc).Register(mux)
		go func() {
			if err := asynqServer.Run(mux); err != nil {
				logger.Error("Schedule worker stopped", err)
			}
		}()
	}

	port := config.GetOrDefault("PORT", constants.DefaultServerPort)
	go func() {
		logger.Info("Server starting", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout*time.Second)
	defer cancel()

	if asynqServer != nil {
		asynqServer.Shutdown()
	}
	if asynqClient != nil {
		_ = asynqClient.Close()
	}
	return e.Shutdown(shutdownCtx)
}

func initDatabase() (database.Database, error) {
	host, err := config.GetSafe("DB_HOST")
	if err != nil {
		return database.Database{}, fmt.Errorf("database is not configured: %w", err)
	}

	dbName, err := config.GetSafe("DB_NAME")
	if err != nil {
		return database.Database{}, fmt.Errorf("database is not configured: %w", err)
	}

	return database.InitDB(database.DatabaseConfig{
		Host:     host,
		Port:     config.GetInt("DB_PORT", 5432),
		User:     config.Get("DB_USER"),
		Password: config.Get("DB_PASSWORD"),
		DBName:   dbName,
		SSLMode:  config.Get("DB_SSLMODE"),
	})
}

func initRedis() (*cache.Cache, *asynq.RedisClientOpt) {
	addr := config.Get("REDIS_ADDR")
	if addr == "" {
		logger.Info("Redis not configured, running without cache and worker")
		return nil, nil
	}

	redisCache, err := cache.InitCache(addr, config.Get("REDIS_PASSWORD"), config.GetInt("REDIS_DB", 0))
	if err != nil {
		logger.Warn("Redis unavailable, running without cache and worker", "error", err)
		return nil, nil
	}

	return redisCache, &asynq.RedisClientOpt{
		Addr:     addr,
		Password: config.Get("REDIS_PASSWORD"),
		DB:       config.GetInt("REDIS_DB", 0),
	}
}
