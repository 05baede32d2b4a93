// File: easyislanders/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easyislanders/config"
	"easyislanders/cron"
	"easyislanders/database"
	bookingRepoPkg "easyislanders/database/repository/booking"
	catalogRepoPkg "easyislanders/database/repository/catalog"
	notificationRepoPkg "easyislanders/database/repository/notification"
	"easyislanders/handlers"
	"easyislanders/middleware"
	"easyislanders/routes"
	"easyislanders/services/booking"
	"easyislanders/services/catalog"
	"easyislanders/services/notification"
	"easyislanders/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Storage backends. Mongo mode carries the full stack (redis cache,
	// reminder queue); memory mode runs self-contained with seeded fixtures.
	var (
		bookingStore bookingRepoPkg.BookingRepository
		notifStore   notificationRepoPkg.NotificationRepository
		catalogStore catalogRepoPkg.CatalogRepository
		cacheClient  *redis.Client
	)
	useMongo := config.AppConfig.StorageMode == "mongo"
	if useMongo {
		database.InitDB()
		utils.InitCache()
		cacheClient = utils.GetCacheClient()
		bookingStore = bookingRepoPkg.NewMongoBookingRepo()
		notifStore = notificationRepoPkg.NewMongoNotificationRepo()
		catalogStore = catalogRepoPkg.NewMongoCatalogRepo()
	} else {
		bookingStore = bookingRepoPkg.NewMemoryBookingRepo()
		notifStore = notificationRepoPkg.NewMemoryNotificationRepo()
		catalogStore = catalogRepoPkg.NewSeededMemoryCatalogRepo()
	}

	utils.FirebaseInit()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(
		notifStore, logger, config.AppConfig.NotificationRetention)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	if utils.FCMClient != nil {
		notificationService.Pusher = &notification.FCMPusher{Client: utils.FCMClient}
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo:     catalogStore,
		Cache:    cacheClient,
		CacheTTL: 10 * time.Minute,
	}

	var payments booking.PaymentProvider = &booking.SimulatedPaymentProvider{}
	if config.AppConfig.StripeKey != "" {
		stripe.Key = config.AppConfig.StripeKey
		payments = &booking.StripePaymentProvider{Logger: logger}
	}

	bookingService := &booking.DefaultBookingService{
		Repo:            bookingStore,
		CatalogSvc:      catalogService,
		NotificationSvc: notificationService,
		Payments:        payments,
		Logger:          logger,
	}

	// lifecycle engine.
	engine := booking.NewLifecycleEngine(bookingService, logger)
	engine.Interval = time.Duration(config.AppConfig.LifecycleTickSeconds) * time.Second
	engine.Thresholds = booking.Thresholds{
		PaymentConfirm: config.AppConfig.PaymentConfirmThreshold,
		ViewingConfirm: config.AppConfig.ViewingConfirmThreshold,
		DriverArriving: config.AppConfig.DriverArrivingThreshold,
	}
	if useMongo {
		// The reminder queue shares the redis deployment with the cache.
		cron.InitReminderWorker(notificationService)
		engine.Reminders = cron.NewAsynqReminderScheduler(
			time.Duration(config.AppConfig.ViewingReminderLeadMinutes) * time.Minute)
	}
	engine.Start()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBooking:   bookingHandler.CreateBookingHandler,
		CompletePayment: bookingHandler.CompletePaymentHandler,
		DispatchTaxi:    bookingHandler.DispatchTaxiHandler,
		GetBooking:      bookingHandler.GetBookingHandler,
		ListBookings:    bookingHandler.ListBookingsHandler,

		ListNotifications:    notificationHandler.ListNotificationsHandler,
		MarkNotificationRead: notificationHandler.MarkReadHandler,

		SearchCatalog:  catalogHandler.SearchHandler,
		GetCatalogItem: catalogHandler.GetItemHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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

	engine.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
