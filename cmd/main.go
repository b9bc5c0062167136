package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/civic_issue_map/internal/config"
	"github.com/shenikar/civic_issue_map/internal/feed"
	v1 "github.com/shenikar/civic_issue_map/internal/handler/http/v1"
	"github.com/shenikar/civic_issue_map/internal/metrics"
	"github.com/shenikar/civic_issue_map/internal/repository"
	"github.com/shenikar/civic_issue_map/internal/service"
	"github.com/shenikar/civic_issue_map/internal/view"
	"github.com/shenikar/civic_issue_map/pkg/logger"
	redisclient "github.com/shenikar/civic_issue_map/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/civic_issue_map/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Civic Issue Map API
// @version 1.0
// @description Read-only map of SeeClickFix civic issues with a nearby-issues panel.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis необязателен: без него ответы ленты не кешируются
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, feed cache disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info("Successfully connected to Redis")
		}
	}

	// Клиент ленты SeeClickFix
	feedClient := feed.NewClient(cfg, log)

	// Инициализация репозиториев
	issueRepo := repository.NewIssueRepository(feedClient, redisClient, cfg.FeedCacheTTL, log)

	// Инициализация сервисов
	tracker := view.NewTracker(cfg.ViewSessionTTL)
	issueService := service.NewIssueService(issueRepo, log, cfg, tracker)

	// Инициализация хэндлеров
	handler := v1.NewHandler(issueService, log)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.RequestIDMiddleware(log), metrics.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithField("feed", cfg.FeedBaseURL).Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
