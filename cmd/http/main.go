package main

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/delivery/http/routers"
	"agenda-service/internal/app/drivers/database"
	"agenda-service/internal/app/drivers/logger"
	"agenda-service/internal/app/drivers/messaging"
	"agenda-service/internal/app/drivers/storage"
	"agenda-service/internal/app/services/core/auth"
	"agenda-service/internal/app/services/core/schedule"
	"agenda-service/internal/app/services/core/session"
	"agenda-service/internal/app/services/core/settings"
	"agenda-service/internal/app/services/shared/events"
	redisRepo "agenda-service/internal/app/services/shared/redis"
	minioStorage "agenda-service/internal/app/services/shared/storage"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConnection,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to close connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)

	eventPublisher, err := events.NewEventPublisher(bootstrap.RabbitMQ)
	if err != nil {
		logrus.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}

	minioClient := storage.NewMinio(bootstrap.DriverConfig)
	objectStorage := minioStorage.NewMinioStorage(
		minioClient,
		bootstrap.InternalConfig.Minio.BucketName,
		bootstrap.InternalConfig.Minio.PublicURL,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Schedule
	scheduleMongoRepository := schedule.NewScheduleMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	scheduleUsecase := schedule.NewScheduleUsecase(
		scheduleMongoRepository,
		redisRepository,
		sessionService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	scheduleController := schedule.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Settings
	companyMongoRepository := settings.NewCompanyMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	settingsUsecase := settings.NewSettingsUsecase(
		companyMongoRepository,
		redisRepository,
		sessionService,
		eventPublisher,
		objectStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	settingsController := settings.NewSettingsController(bootstrap.Logger, settingsUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		scheduleController,
		settingsController,
	)
}
