// File: rane/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rane/config"
	"rane/database"
	referenceRepo "rane/database/repository/reference"
	scheduleRepo "rane/database/repository/schedule"
	"rane/handlers"
	"rane/middleware"
	"rane/routes"
	"rane/services/wizard"
	"rane/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Reference data and the authoritative schedule come from Mongo in
	// production; development runs on the built-in catalog.
	var refs referenceRepo.Repository
	var schedule scheduleRepo.Repository
	if config.IsProduction() {
		database.InitDB()
		refs = referenceRepo.NewMongoReferenceRepo(config.AppConfig.DatabaseName)
		schedule = scheduleRepo.NewMongoScheduleRepo(config.AppConfig.DatabaseName)
		utils.StartHealthMonitor([]*redis.Client{utils.CacheClient, utils.SessionCacheClient}, database.MongoClient)
	} else {
		refs = referenceRepo.NewStaticReferenceRepo()
		schedule = scheduleRepo.NewMemoryScheduleRepo()
	}

	// Confirmation tasks are optional; without a client, submit still works.
	var taskClient *asynq.Client
	if config.AppConfig.TasksEnabled {
		taskClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskDB,
		})
		defer taskClient.Close()
	}

	wizardService := &wizard.DefaultWizardService{
		Refs:       refs,
		Schedule:   schedule,
		Cache:      utils.GetSessionCacheClient(),
		TaskClient: taskClient,
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	referenceHandler := handlers.NewReferenceHandler(refs, wizardService, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, referenceHandler, wizardHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
