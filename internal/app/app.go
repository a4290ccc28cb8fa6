package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alimikegami/point-of-sales/ecommerce-service/config"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/controller"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/cache"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/metrics"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/tracing"
	custommiddleware "github.com/alimikegami/point-of-sales/ecommerce-service/internal/middleware"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/repository"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/service"
	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config        *config.Config
	Store         *mongodb.Store
	Server        *echo.Echo
	MetricsServer *echo.Echo

	cache          cache.ProductCache
	publisher      kafka.EventPublisher
	scheduler      gocron.Scheduler
	tracerProvider *sdktrace.TracerProvider
}

// Setup connects to MongoDB and builds the HTTP server with every
// dependency wired in. Redis, Kafka and the trace collector are optional.
func (app *App) Setup() error {
	if err := app.Config.Validate(); err != nil {
		return err
	}

	db, err := mongodb.ConnectToMongoDB(app.Config.MongoDBConfig.URL, app.Config.MongoDBConfig.DBName)
	if err != nil {
		return err
	}
	app.Store = mongodb.NewStore(db)

	if err := app.Store.EnsureIndexes(context.Background()); err != nil {
		log.Warn().Err(err).Msg("Failed to ensure indexes")
	}

	app.tracerProvider, err = tracing.InitTracing(app.Config.TracingConfig.CollectorHost, app.Config.TracingConfig.ServiceName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	}

	app.cache = cache.CreateProductCache(app.Config)
	app.publisher = kafka.CreateEventPublisher(app.Config)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.Logger)
	if app.tracerProvider != nil {
		e.Use(tracing.Middleware(app.tracerProvider.Tracer(app.Config.TracingConfig.ServiceName)))
	}
	// Used empty string so that metrics are not prefixed with the service name
	e.Use(echoprometheus.NewMiddleware(""))

	g := e.Group("")

	productRepo := repository.CreateNewProductRepository(app.Store)
	orderRepo := repository.CreateNewOrderRepository(app.Store)

	productSvc := service.CreateProductService(productRepo, app.cache, app.publisher)
	orderSvc := service.CreateOrderService(orderRepo, productRepo, app.cache, app.publisher)

	controller.CreateProductController(g, productSvc)
	controller.CreateOrderController(g, orderSvc)
	controller.CreateHealthController(g, app.Store)

	app.Server = e

	app.MetricsServer = echo.New()
	app.MetricsServer.HideBanner = true
	app.MetricsServer.GET("/metrics", echoprometheus.NewHandler())

	app.scheduler, err = app.createHealthCheckScheduler()
	if err != nil {
		return err
	}

	return nil
}

func (app *App) createHealthCheckScheduler() (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			app.Config.HealthCheckInterval,
		),
		gocron.NewTask(
			app.checkDatabase,
		),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (app *App) checkDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := app.Store.Ping(ctx)
	metrics.SetMongoDBUp(err == nil)
	if err != nil {
		log.Error().Err(err).Str("component", "HealthCheck").Msg("")
	}
}

// Start serves HTTP until StopServer is called. Setup must run first.
func (app *App) Start() error {
	go func() {
		if err := app.MetricsServer.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	app.scheduler.Start()

	log.Info().Str("port", app.Config.ServicePort).Msg("Starting server")
	if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// StopServer drains in-flight requests and releases every shared client.
func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if app.Server != nil {
		errs = append(errs, app.Server.Shutdown(ctx))
	}
	if app.MetricsServer != nil {
		errs = append(errs, app.MetricsServer.Shutdown(ctx))
	}
	if app.scheduler != nil {
		errs = append(errs, app.scheduler.Shutdown())
	}
	if app.publisher != nil {
		errs = append(errs, app.publisher.Close())
	}
	if app.cache != nil {
		errs = append(errs, app.cache.Close())
	}
	if app.tracerProvider != nil {
		errs = append(errs, app.tracerProvider.Shutdown(ctx))
	}
	if app.Store != nil {
		errs = append(errs, app.Store.Disconnect(ctx))
	}

	return errors.Join(errs...)
}

// Migrate creates the collection indexes and disconnects.
func Migrate(ctx context.Context, conf *config.Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}

	db, err := mongodb.ConnectToMongoDB(conf.MongoDBConfig.URL, conf.MongoDBConfig.DBName)
	if err != nil {
		return err
	}

	store := mongodb.NewStore(db)
	defer store.Disconnect(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		return err
	}

	log.Info().Str("database", conf.MongoDBConfig.DBName).Msg("Indexes created")

	return nil
}
