package config

import (
	"context"
	"errors"
	"fmt"
	"io"

	"hotel-booking/jobs"
	"hotel-booking/middleware"
	"hotel-booking/repository"
	"hotel-booking/routes"
	"hotel-booking/services"
	"hotel-booking/services/gateway"
	"hotel-booking/services/logger"
	"hotel-booking/services/notification"
	"hotel-booking/services/storage"
	"hotel-booking/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App is the wired application.
type App struct {
	Config Config
	Router *gin.Engine
	Cron   *cron.Cron
	DB     *gorm.DB
	Logger *logger.LogrusLogger

	closers []io.Closer
}

// InitApp connects the stores and integrations and builds the router.
func InitApp(ctx context.Context, cfg Config) (*App, error) {
	log := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid HOTEL_TIMEZONE: %w", err)
	}

	db, err := ConnectDB(cfg, log)
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, DB: db, Logger: log, Cron: cron.New(cron.WithLocation(loc))}
	if sqlDB, err := db.DB(); err == nil {
		app.closers = append(app.closers, sqlDB)
	}

	var cache services.Cache = services.NoopCache{}
	rdb, err := ConnectRedis(ctx, cfg)
	switch {
	case err != nil:
		log.Warn("redis unavailable, caching disabled: %v", err)
	case rdb != nil:
		cache = services.NewRedisCache(rdb)
		app.closers = append(app.closers, rdb)
		log.Info("connected to redis at %s", cfg.RedisAddr)
	}

	var publisher notification.Publisher = notification.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		amqp := notification.NewAMQPPublisher(cfg.RabbitMQURL, cfg.BookingEventsQueue)
		publisher = amqp
		app.closers = append(app.closers, amqp)
	}

	var gw gateway.Gateway
	if cfg.StripeSecretKey != "" {
		gw = gateway.NewStripeGateway(cfg.StripeSecretKey)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, card payments are disabled")
	}

	var uploader storage.ImageUploader = storage.DisabledUploader{}
	if cfg.CloudinaryCloudName != "" {
		cld, err := storage.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
		}
		uploader = cld
	}

	repo := repository.New(db)
	policy := services.DefaultPolicy()
	processor := services.NewPaymentProcessor(gw, cfg.PaymentCurrency)

	bookings := services.NewBookingFacade(services.BookingFacadeOptions{
		Repo:      repo,
		Payments:  processor,
		Policy:    policy,
		Cache:     cache,
		Publisher: publisher,
		Logger:    log,
		Location:  loc,
		CacheTTL:  cfg.CacheTTL,
	})
	svc := routes.Services{
		Bookings:     bookings,
		Availability: services.NewAvailabilityService(repo),
		Payments: services.NewPaymentService(services.PaymentServiceOptions{
			Repo:      repo,
			Payments:  processor,
			Policy:    policy,
			Cache:     cache,
			Publisher: publisher,
			Logger:    log,
		}),
		AddOns:  services.NewAddOnService(services.AddOnServiceOptions{Repo: repo, Policy: policy, Cache: cache, Logger: log}),
		Catalog: services.NewCatalogService(repo, policy),
		Ratings: services.NewRatingService(services.RatingServiceOptions{Repo: repo, Policy: policy, Cache: cache, Logger: log, CacheTTL: cfg.CacheTTL}),
		Rooms: services.NewRoomService(services.RoomServiceOptions{
			Repo:     repo,
			Policy:   policy,
			Uploader: uploader,
			Cache:    cache,
			Logger:   log,
			CacheTTL: cfg.CacheTTL,
		}),
		Users:  services.NewUserService(services.UserServiceOptions{Repo: repo, Policy: policy, Logger: log}),
		Tokens: services.NewTokenParser(cfg.JWTSecret),
		Policy: policy,
	}

	app.Router = newRouter(cfg, log)
	routes.SetupRoutes(app.Router, svc)

	if err := jobs.InitCronJobs(app.Cron, cfg.OccupancyReportCron, jobs.NewOccupancyJob(bookings, log)); err != nil {
		return nil, fmt.Errorf("failed to initialize cron jobs: %w", err)
	}

	log.Info("all components initialized successfully")
	return app, nil
}

func newRouter(cfg Config, log *logger.LogrusLogger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.RegisterGinValidations()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	configCors.AddExposeHeaders("X-Request-ID")
	configCors.AllowCredentials = true
	if len(cfg.CORSOrigins) > 0 {
		configCors.AllowOrigins = cfg.CORSOrigins
	} else {
		configCors.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	router.Use(cors.New(configCors))
	router.Use(middleware.ErrorHandler(log))

	_ = router.SetTrustedProxies(nil)
	return router
}

// Close stops the scheduler and releases the connections.
func (a *App) Close() {
	<-a.Cron.Stop().Done()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.Logger.Warn("close failed: %v", err)
		}
	}
}
