package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/delivery/http/routers"
	"agenda-service/internal/app/drivers/database"
	"agenda-service/internal/app/drivers/logger"
	"agenda-service/internal/app/drivers/messaging"
	"agenda-service/internal/app/drivers/storage"
	"agenda-service/internal/app/services/audit"
	"agenda-service/internal/app/services/bookings"
	"agenda-service/internal/app/services/documents"
	"agenda-service/internal/app/services/printing"
	"agenda-service/internal/app/services/scheduling"
	"agenda-service/internal/app/services/shared/notifier"
	sharedRedis "agenda-service/internal/app/services/shared/redis"
	sharedStorage "agenda-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("agenda-service listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	documentArchive := sharedStorage.NewMinioArchive(
		bootstrap.Minio,
		bootstrap.InternalConfig.Documents.ArchiveBucketName,
	)
	noticesNotifier := notifier.NewAmqpNotifier(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Documents.NoticesQueue,
		bootstrap.Logger,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Upstream clients
	schedulingBackendClient := scheduling.NewSchedulingBackendClient(
		bootstrap.InternalConfig.Scheduling.BaseUrl,
		bootstrap.Logger,
	)
	sadtClient := documents.NewSadtRestClient(
		bootstrap.InternalConfig.Sadt.BaseUrl,
		bootstrap.Logger,
	)

	// Documents
	documentResolver := documents.NewDocumentResolver(sadtClient, bootstrap.InternalConfig, bootstrap.Logger)
	printWindowOpener := printing.NewSpoolWindowOpener(bootstrap.InternalConfig.Documents.PrintSpoolDir)
	printRenderer := printing.NewPrintRenderer(printWindowOpener, bootstrap.Logger)

	// Audit
	bookingAuditRepository := audit.NewBookingAuditMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Bookings
	bookingUsecase := bookings.NewBookingUsecase(
		schedulingBackendClient,
		documentResolver,
		documentArchive,
		printRenderer,
		bookingAuditRepository,
		redisRepository,
		noticesNotifier,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)
	documentController := controllers.NewDocumentController(bootstrap.Logger, bookingUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, bookingController, documentController)
}
