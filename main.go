package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photostudio/app"
	"photostudio/config"
	"photostudio/cron"
	"photostudio/database"
	bookingRepo "photostudio/database/repository/booking"
	catalogRepo "photostudio/database/repository/catalog"
	contactRepo "photostudio/database/repository/contact"
	userRepoPkg "photostudio/database/repository/user"
	"photostudio/routes"
	"photostudio/services/catalog"
	"photostudio/services/notification"
	"photostudio/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer utils.SyncLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var deps app.Dependencies
	if config.AppConfig.StorageBackend == "memory" {
		logger.Warn("main: using in-memory storage, records are lost on exit")
		deps, _ = app.MemoryDependencies()
	} else {
		if err := database.Connect(ctx); err != nil {
			logger.Fatal("main: database unavailable", zap.Error(err))
		}
		db := database.DB()

		bookings := bookingRepo.NewMongoBookingRepo(db)
		contacts := contactRepo.NewMongoContactRepo(db)
		users := userRepoPkg.NewMongoUserRepo(db)

		indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		for name, ensure := range map[string]func(context.Context) error{
			bookingRepo.CollectionName: bookings.EnsureIndexes,
			contactRepo.CollectionName: contacts.EnsureIndexes,
			userRepoPkg.CollectionName: users.EnsureIndexes,
		} {
			if err := ensure(indexCtx); err != nil {
				logger.Sugar().Fatalf("main: failed to create %s indexes: %v", name, err)
			}
		}
		cancel()

		deps = app.Dependencies{
			Bookings:  bookings,
			Contacts:  contacts,
			Services:  catalogRepo.NewMongoServiceRepo(db),
			Portfolio: catalogRepo.NewMongoPortfolioRepo(db),
			Users:     users,
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := database.Close(closeCtx); err != nil {
				logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
			}
		}()
	}

	redisClient := utils.InitCache()
	deps.Cache = catalog.NewRedisServiceCache(redisClient, config.AppConfig.CatalogCacheTTL())
	utils.StartHealthMonitor(ctx, redisClient, database.MongoClient)

	deps.Notifier = notification.NoopNotifier{}
	if config.AppConfig.NotificationsEnabled {
		queue := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer queue.Close()
		deps.Notifier = notification.NewQueueNotifier(queue, logger)

		mailer := notification.NewSMTPMailer(
			config.AppConfig.SMTPHost,
			config.AppConfig.SMTPPort,
			config.AppConfig.SMTPUser,
			config.AppConfig.SMTPPassword,
			config.AppConfig.StudioEmail,
		)
		stopWorker := cron.StartNotificationWorker(mailer, logger)
		defer stopWorker()
	}

	deps.Logger = logger
	deps.TokenTTL = config.AppConfig.JWTTTL()
	deps.Routes = routes.Options{
		FrontendURL:       config.AppConfig.FrontendURL,
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
	}
	router := app.NewRouter(deps)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	logger.Info("main: server stopped gracefully")
}
