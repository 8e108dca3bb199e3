package main

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/controllers"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/delivery/http/routers"
	"carelink-service/internal/app/drivers/database"
	"carelink-service/internal/app/drivers/logger"
	"carelink-service/internal/app/drivers/storage"
	"carelink-service/internal/app/services/core/accounts"
	"carelink-service/internal/app/services/core/auth"
	"carelink-service/internal/app/services/core/histories"
	"carelink-service/internal/app/services/core/inquiries"
	"carelink-service/internal/app/services/core/reservations"
	"carelink-service/internal/app/services/shared/jwtmanager"
	"carelink-service/internal/app/services/shared/ratelimiter"
	"carelink-service/internal/app/services/shared/redis"
	sharedStorage "carelink-service/internal/app/services/shared/storage"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	storage.EnsureBucket(minioClient, internalConfig.Minio.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server is starting", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	signinLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	tokenManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Repositories
	accountMongoRepository := accounts.NewAccountMongoRepository(bootstrap.MongoDB, dbName)
	historyMongoRepository := histories.NewHistoryMongoRepository(bootstrap.MongoDB, dbName)
	inquiryMongoRepository := inquiries.NewInquiryMongoRepository(bootstrap.MongoDB, dbName)
	reservationMongoRepository := reservations.NewReservationMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	accountUsecase := accounts.NewAccountUsecase(
		accountMongoRepository,
		historyMongoRepository,
		reservationMongoRepository,
		bootstrap.Logger,
	)
	authUsecase := auth.NewAuthUsecase(
		accountMongoRepository,
		accountUsecase,
		tokenManager,
		signinLimiter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	inquiryUsecase := inquiries.NewInquiryUsecase(inquiryMongoRepository, accountMongoRepository, bootstrap.Logger)
	historyUsecase := histories.NewHistoryUsecase(
		historyMongoRepository,
		accountMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	accountController := controllers.NewAccountController(bootstrap.Logger, accountUsecase)
	inquiryController := controllers.NewInquiryController(bootstrap.Logger, inquiryUsecase)
	historyController := controllers.NewHistoryController(bootstrap.Logger, historyUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig, middlewares.NewMetrics())

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		accountController,
		inquiryController,
		historyController,
	)
	return nil
}
