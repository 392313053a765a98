// File: doctorsportal/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	"doctorsportal/database/repository"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/authz"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/payment"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := cfg.CheckSecrets(); err != nil {
		if config.IsProduction() {
			logger.Fatal("main: refusing to start", zap.Error(err))
		}
		logger.Warn("main: tokens are signed with an empty key and can be forged", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// storage context.
	var (
		store       *repository.Store
		mongoClient *mongo.Client
	)
	switch cfg.DBDriver {
	case "memory":
		logger.Warn("main: using in-memory storage; data is lost on restart",
			zap.String("seedFile", cfg.ServicesSeedFile))
		memStore, err := repository.NewSeededMemoryStore(cfg.ServicesSeedFile)
		if err != nil {
			logger.Fatal("main: failed to seed in-memory services", zap.Error(err))
		}
		store = memStore
	default:
		client, err := database.Connect(ctx, cfg.MongoURI(), logger)
		if err != nil {
			logger.Fatal("main: failed to initialize database", zap.Error(err))
		}
		mongoClient = client
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
			}
		}()
		store = repository.NewMongoStore(ctx, mongoClient, cfg.DBName, logger)
	}

	cacheClient, err := utils.NewCacheClient(ctx, cfg)
	if err != nil {
		logger.Warn("main: service catalog cache disabled", zap.Error(err))
	}
	if cacheClient != nil {
		defer func(c *redis.Client) { _ = c.Close() }(cacheClient)
		store.Services = serviceRepo.NewCachedServiceRepo(store.Services, cacheClient, cfg.ServiceCacheTTL, logger)
	}

	healthMonitor := utils.NewHealthMonitor(mongoClient, cacheClient, logger)
	healthMonitor.Start(ctx, 60*time.Second)

	// services.
	tokens := utils.NewTokenManager(cfg.JWTSecret)
	authorizer := authz.NewRoleAuthorizer(store.Users)
	bookingService := booking.NewBookingService(store, logger)
	userService := user.NewUserService(store, tokens, logger)
	doctorService := doctor.NewDoctorService(store, logger)
	paymentService := payment.NewPaymentService(payment.NewStripeGateway(cfg.StripeKey, nil), logger)

	handlerBundle := &handlers.HandlerBundle{
		Tokens:     tokens,
		Authorizer: authorizer,
		Booking:    handlers.NewBookingHandler(bookingService, logger),
		User:       handlers.NewUserHandler(userService, logger),
		Admin:      handlers.NewAdminHandler(userService, logger),
		Doctor:     handlers.NewDoctorHandler(doctorService, logger),
		Payment:    handlers.NewPaymentHandler(paymentService, logger),
		Health:     handlers.NewHealthHandler(healthMonitor),
	}
	if cfg.MetricsEnabled {
		handlerBundle.Metrics = middleware.NewMetrics(prometheus.DefaultRegisterer, "doctors-portal")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogging(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Dr Faust is listening", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
