package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	bookingRepo "salonbook/database/repository/booking"
	memoryRepo "salonbook/database/repository/memory"
	salonRepo "salonbook/database/repository/salon"
	serviceRepo "salonbook/database/repository/service"
	staffRepo "salonbook/database/repository/staff"
	userRepoPkg "salonbook/database/repository/user"
	"salonbook/handlers"
	"salonbook/metrics"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/booking"
	"salonbook/services/notification"
	"salonbook/services/salon"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// indexer is implemented by the Mongo repositories.
type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// openStores builds the repositories for the configured driver. The mongo client is nil for the memory driver.
func openStores(ctx context.Context, cfg config.Config) (booking.Repositories, userRepoPkg.UserRepository, *mongo.Client, error) {
	if cfg.StoreDriver == "memory" {
		s := memoryRepo.NewStores()
		return booking.Repositories{Salons: s.Salons, Staff: s.Staff, Services: s.Services, Bookings: s.Bookings}, s.Users, nil, nil
	}

	client, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return booking.Repositories{}, nil, nil, err
	}
	db := client.Database(cfg.DatabaseName)

	salons := salonRepo.NewMongoSalonRepo(db)
	staff := staffRepo.NewMongoStaffRepo(db)
	services := serviceRepo.NewMongoServiceRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(client, db)
	users := userRepoPkg.NewMongoUserRepo(db)

	for _, ix := range []indexer{salons, staff, services, bookings, users} {
		if err := ix.EnsureIndexes(ctx); err != nil {
			return booking.Repositories{}, nil, nil, err
		}
	}
	return booking.Repositories{Salons: salons, Staff: staff, Services: services, Bookings: bookings}, users, client, nil
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, users, mongoClient, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal("main: failed to open stores", zap.Error(err))
	}

	var (
		redisClients []*redis.Client
		authCache    *redis.Client
	)
	if cfg.LockDriver == "redis" || cfg.NotificationsEnabled {
		utils.InitRedis()
		authCache = utils.GetAuthCacheClient()
		redisClients = []*redis.Client{utils.GetCacheClient(), authCache}
	}
	utils.StartHealthMonitor(ctx, redisClients, mongoClient)

	var locker booking.Locker = booking.NewLocalLocker()
	if cfg.LockDriver == "redis" {
		locker = booking.NewRedisLocker(utils.GetCacheClient(), time.Duration(cfg.LockTTLSeconds)*time.Second)
	}

	var notifier notification.NotificationService = notification.NoopNotificationService{}
	if cfg.NotificationsEnabled {
		redisOpt := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		queue := asynq.NewClient(redisOpt)
		defer queue.Close()

		queued, err := notification.NewQueueNotificationService(queue, time.Duration(cfg.ReminderLeadHours)*time.Hour)
		if err != nil {
			logger.Fatal("main: failed to initialize notifications", zap.Error(err))
		}
		notifier = queued

		worker := cron.NewWorker(redisOpt, repos.Bookings, cron.LogSender{Logger: logger})
		worker.Start()
		defer worker.Shutdown()
	}

	bookingService := booking.NewBookingService(repos, notifier, locker, booking.SystemClock{}, booking.Options{
		SlotInterval:       cfg.SlotIntervalMinutes,
		CancellationWindow: time.Duration(cfg.CancellationWindowHours) * time.Hour,
	})
	catalogService := salon.NewCatalogService(repos.Salons, repos.Staff, repos.Services)

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  users,
		AuthCache: authCache,
		Booking:   handlers.NewBookingHandler(bookingService),
		Salon:     handlers.NewSalonHandler(catalogService),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
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

	<-ctx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(shutdownCtx)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
