package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/toy-town/config"
	"github.com/alimikegami/toy-town/internal/controller"
	"github.com/alimikegami/toy-town/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/toy-town/internal/infrastructure/tracing"
	appmiddleware "github.com/alimikegami/toy-town/internal/middleware"
	"github.com/alimikegami/toy-town/internal/repository"
	"github.com/alimikegami/toy-town/internal/service"
	"github.com/alimikegami/toy-town/pkg/errs"
	"github.com/alimikegami/toy-town/pkg/response"
	"github.com/alimikegami/toy-town/pkg/validator"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const serviceName = "toy-town"

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo

	metrics       *echo.Echo
	traceProvider *sdktrace.TracerProvider
	kafkaCloser   func() error
}

func SetupLogger(cfg *config.Config) {
	var logger zerolog.Logger
	if cfg.Environment == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
}

// Start wires the HTTP server and blocks until it stops.
func (app *App) Start() error {
	if app.Server == nil {
		app.Setup()
	}

	log.Info().Str("port", app.Config.ServicePort).Msg("Starting toy-town")

	err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Setup builds the echo server and its dependencies without serving.
func (app *App) Setup() {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = HTTPErrorHandler

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost, serviceName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		app.traceProvider = traceProvider
		e.Use(tracing.Middleware(traceProvider.Tracer(serviceName)))
	}

	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	if app.Config.MetricsPort != "" {
		// Used empty string so that metrics are not prefixed with the service name
		e.Use(echoprometheus.NewMiddleware(""))
		app.startMetricsServer()
	}

	toyRepo := repository.CreateNewMongoDBRepository(app.DB)
	blogRepo := app.blogRepository()

	toySvc := service.CreateToyService(toyRepo, app.Config.CatalogConfig, app.eventPublisher())
	blogSvc := service.CreateBlogService(blogRepo)

	controller.CreateController(e, toySvc, blogSvc)

	app.Server = e
}

func (app *App) startMetricsServer() {
	metrics := echo.New()
	metrics.HideBanner = true
	metrics.HidePort = true
	metrics.GET("/metrics", echoprometheus.NewHandler())
	app.metrics = metrics

	go func() {
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()
}

func (app *App) blogRepository() repository.BlogRepository {
	if app.Config.CatalogConfig.BlogSource == config.BlogSourceStatic {
		repo, err := repository.CreateNewStaticBlogRepository()
		if err == nil {
			return repo
		}
		log.Error().Err(err).Msg("Failed to load bundled blogs, falling back to the blogs collection")
	}

	return repository.CreateNewMongoDBBlogRepository(app.DB)
}

// eventPublisher dials the broker once. Without a reachable broker toy events
// are dropped.
func (app *App) eventPublisher() service.EventPublisher {
	if app.Config.KafkaConfig.BrokerAddress == "" {
		log.Info().Msg("BROKER_ADDRESS not set, toy events are disabled")
		return kafka.NoopPublisher{}
	}

	conn, err := kafka.CreateKafkaProducer(app.Config)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to Kafka, toy events are disabled")
		return kafka.NoopPublisher{}
	}

	app.kafkaCloser = conn.Close
	return kafka.CreateEventPublisher(conn, app.Config.KafkaConfig)
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var stopErr error
	if app.Server != nil {
		stopErr = app.Server.Shutdown(ctx)
	}

	if app.metrics != nil {
		if err := app.metrics.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to stop metrics server")
		}
	}

	if app.kafkaCloser != nil {
		if err := app.kafkaCloser(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka connection")
		}
	}

	if app.traceProvider != nil {
		if err := app.traceProvider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}

	return stopErr
}

// HTTPErrorHandler renders errors that escape a handler, such as unknown
// routes, in the response envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message := http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok && he.Code < http.StatusInternalServerError {
			message = msg
		}

		if writeErr := response.WriteStatusResponse(c, he.Code, message, nil); writeErr != nil {
			log.Ctx(c.Request().Context()).Error().Err(writeErr).Msg("")
		}
		return
	}

	log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "HTTPErrorHandler").Msg("")
	if writeErr := response.WriteErrorResponse(c, errs.ErrInternalServer, nil); writeErr != nil {
		log.Ctx(c.Request().Context()).Error().Err(writeErr).Msg("")
	}
}
