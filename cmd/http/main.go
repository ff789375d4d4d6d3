package main

import (
	"aesthetics-service/internal/app/config"
	"aesthetics-service/internal/app/contracts"
	"aesthetics-service/internal/app/delivery/http/controllers"
	"aesthetics-service/internal/app/delivery/http/middlewares"
	"aesthetics-service/internal/app/delivery/http/routers"
	"aesthetics-service/internal/app/drivers/database"
	"aesthetics-service/internal/app/drivers/logger"
	"aesthetics-service/internal/app/drivers/messaging"
	"aesthetics-service/internal/app/drivers/storage"
	"aesthetics-service/internal/app/services/airtable"
	"aesthetics-service/internal/app/services/core/flow"
	"aesthetics-service/internal/app/services/core/providers"
	"aesthetics-service/internal/app/services/core/scans"
	"aesthetics-service/internal/app/services/inference"
	"aesthetics-service/internal/app/services/shared/memstore"
	sharedMessaging "aesthetics-service/internal/app/services/shared/messaging"
	"aesthetics-service/internal/app/services/shared/ratelimiter"
	"aesthetics-service/internal/app/services/shared/redis"
	sharedStorage "aesthetics-service/internal/app/services/shared/storage"
	"context"
	"errors"
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

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrap.Redis, err = database.NewRedisClient(driverConfig, log)
	if err != nil {
		log.Warn("Redis unavailable, sessions are kept in memory", zap.Error(err))
	}

	bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, scan events are not published", zap.Error(err))
	}

	bootstrap.Minio, err = storage.NewMinio(driverConfig, internalConfig.Minio.BucketName, log)
	if err != nil {
		log.Warn("Minio unavailable, scan uploads are disabled", zap.Error(err))
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting",
			zap.String("address", internalConfig.App.Port),
			zap.Bool("demo_mode", internalConfig.App.DemoMode),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Session and counter stores
	var sessionStore contracts.SessionStore
	var counterStore contracts.CounterStore
	sessionTTL := time.Duration(internalConfig.Session.ExpiredTimeInMinutes) * time.Minute
	if bootstrap.Redis != nil {
		sessionStore = redis.NewRedisSessionStore(bootstrap.Redis, sessionTTL)
		counterStore = redis.NewRedisCounterStore(bootstrap.Redis)
	} else {
		sessionStore = memstore.NewMemorySessionStore(sessionTTL)
		counterStore = memstore.NewMemoryCounterStore()
	}

	// Directory
	var directoryClient contracts.DirectoryClient
	if internalConfig.App.DemoMode {
		directoryClient = airtable.NewDemoDirectory(internalConfig.Airtable.ProviderTable, internalConfig.Airtable.PatientTable, log)
	} else {
		directoryClient = airtable.NewAirtableClient(internalConfig.Airtable, log)
	}

	// Scan collaborators
	var objectStorage contracts.Storage
	if bootstrap.Minio != nil {
		objectStorage = sharedStorage.NewMinioStorage(bootstrap.Minio, internalConfig.Minio.BucketName, internalConfig.Minio.PublicBaseUrl, log)
	} else {
		objectStorage = sharedStorage.NewUnavailableStorage()
	}

	eventPublisher := sharedMessaging.NewNoopPublisher(log)
	if bootstrap.RabbitMQ != nil {
		publisher, err := sharedMessaging.NewEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.ScanEventQueue, log)
		if err != nil {
			log.Warn("Scan event queue unavailable, scan events are not published", zap.Error(err))
		} else {
			eventPublisher = publisher
		}
	}

	inferenceClient := inference.NewInferenceClient(internalConfig.Inference, log)

	// Usecases
	flowUsecase := flow.NewFlowUsecase(sessionStore, log)
	providerUsecase := providers.NewProviderUsecase(directoryClient, sessionStore, internalConfig, log)
	scanUsecase := scans.NewScanUsecase(objectStorage, inferenceClient, eventPublisher, internalConfig, log)

	// Middlewares
	scanLimiter := ratelimiter.NewResourceLimiter(counterStore, log)
	middlewares := middlewares.NewMiddlewares(log, providerUsecase, scanLimiter, internalConfig)

	// Controllers
	flowController := controllers.NewFlowController(log, flowUsecase, internalConfig)
	providerController := controllers.NewProviderController(log, providerUsecase, scanUsecase, internalConfig)
	healthController := controllers.NewHealthController(internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, flowController, providerController, healthController)
}
