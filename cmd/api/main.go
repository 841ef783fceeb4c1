package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/Ramsey-B/laurel/config"
	"github.com/Ramsey-B/laurel/internal/processor"
	batchrepo "github.com/Ramsey-B/laurel/internal/repositories/batch"
	labelprofilerepo "github.com/Ramsey-B/laurel/internal/repositories/labelprofile"
	productrepo "github.com/Ramsey-B/laurel/internal/repositories/product"
	supplierrepo "github.com/Ramsey-B/laurel/internal/repositories/supplier"
	labelservice "github.com/Ramsey-B/laurel/internal/services/label"
	"github.com/Ramsey-B/laurel/pkg/database"
	"github.com/Ramsey-B/laurel/pkg/kafka"
	"github.com/Ramsey-B/laurel/pkg/middleware"
	"github.com/Ramsey-B/laurel/pkg/redis"
	batchroutes "github.com/Ramsey-B/laurel/pkg/routes/batch"
	"github.com/Ramsey-B/laurel/pkg/routes/health"
	labelprofileroutes "github.com/Ramsey-B/laurel/pkg/routes/labelprofile"
	labelroutes "github.com/Ramsey-B/laurel/pkg/routes/labels"
	productroutes "github.com/Ramsey-B/laurel/pkg/routes/product"
	supplierroutes "github.com/Ramsey-B/laurel/pkg/routes/supplier"
	tenantroutes "github.com/Ramsey-B/laurel/pkg/routes/tenant"
	"github.com/Ramsey-B/laurel/pkg/startup"
	"github.com/Ramsey-B/laurel/pkg/tracing"
	"github.com/Ramsey-B/laurel/pkg/tracing/exporters"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const version = "1.0.0"

// dependency adapts closures to the startup.Dependency interface
type dependency struct {
	name      string
	dependsOn []string
	start     func(ctx context.Context) error
	stop      func(ctx context.Context) error
}

func (d *dependency) GetName() string     { return d.name }
func (d *dependency) DependsOn() []string { return d.dependsOn }
func (d *dependency) Start(ctx context.Context) error {
	return d.start(ctx)
}
func (d *dependency) Stop(ctx context.Context) error {
	if d.stop == nil {
		return nil
	}
	return d.stop(ctx)
}

func main() {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("Service exited with error")
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) ectologger.Logger {
	var zapLogger *zap.Logger
	if cfg.PrettyLogs {
		zapLogger, _ = zap.NewDevelopment()
	} else {
		zapLogger, _ = zap.NewProduction()
	}
	return zapadapter.NewZapEctoLogger(zapLogger, nil)
}

func run(cfg config.Config, logger ectologger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.TracingEnabled {
		shutdown, err := initTracing(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer shutdown(context.Background())
	}

	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		return fmt.Errorf("failed to create DI container: %w", err)
	}
	if err := ectoinject.RegisterInstance[ectologger.Logger](container, logger); err != nil {
		return err
	}

	// Wired during startup, used by the http server and consumer afterwards
	var (
		db          database.DB
		redisClient *redis.Client
		service     *labelservice.Service
		producer    *kafka.Producer
		consumer    *kafka.Consumer
		proc        *processor.Processor
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	var checker *health.Checker

	boot := startup.New(logger, cfg.StartupMaxAttempts)

	boot.AddDependency(&dependency{
		name: "database",
		start: func(ctx context.Context) error {
			dsn := fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseUserName,
				cfg.DatabasePassword, cfg.DatabaseName, cfg.DatabaseSSLMode,
			)

			sqlxDB, err := sqlx.ConnectContext(ctx, "postgres", dsn)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}

			db = database.NewDatabaseInstance(sqlxDB, logger)
			db.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
			db.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
			db.SetConnMaxLifetime(cfg.DatabaseConnMaxLifetime)

			migrations := database.NewMigrationService(logger, &database.MigrationConfig{
				MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
				Version:             uint(cfg.DatabaseMigrationVersion),
				Force:               cfg.DatabaseMigrationForce,
				AutoRollback:        cfg.DatabaseMigrationAutoRollback,
			})
			return migrations.Migrate(cfg.DatabaseName, sqlxDB.DB)
		},
		stop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	boot.AddDependency(&dependency{
		name: "redis",
		start: func(ctx context.Context) error {
			if !cfg.RedisEnabled {
				logger.Info("Redis disabled, label caching is off")
				return nil
			}
			client, err := redis.NewClient(redis.Config{
				Host:     cfg.RedisHost,
				Port:     cfg.RedisPort,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			}, logger)
			if err != nil {
				return err
			}
			redisClient = client
			return nil
		},
		stop: func(ctx context.Context) error {
			if redisClient == nil {
				return nil
			}
			return redisClient.Close()
		},
	})

	boot.AddDependency(&dependency{
		name:      "dependency-injection",
		dependsOn: []string{"database", "redis"},
		start: func(ctx context.Context) error {
			products := productrepo.NewRepository(db, logger)
			batches := batchrepo.NewRepository(db, logger)
			suppliers := supplierrepo.NewRepository(db, logger)
			profiles := labelprofilerepo.NewRepository(db, logger)

			var cache *labelservice.Cache
			if redisClient != nil {
				ttl := time.Duration(cfg.LabelCacheTTLSeconds) * time.Second
				cache = labelservice.NewCache(redisClient, ttl, logger)
			}

			service = labelservice.NewService(logger, products, batches, suppliers, profiles, cache)

			if err := ectoinject.RegisterInstance[database.DB](container, db); err != nil {
				return err
			}
			if err := ectoinject.RegisterInstance[productrepo.ProductRepository](container, products); err != nil {
				return err
			}
			if err := ectoinject.RegisterInstance[batchrepo.BatchRepository](container, batches); err != nil {
				return err
			}
			if err := ectoinject.RegisterInstance[supplierrepo.SupplierRepository](container, suppliers); err != nil {
				return err
			}
			if err := ectoinject.RegisterInstance[labelprofilerepo.LabelProfileRepository](container, profiles); err != nil {
				return err
			}
			return ectoinject.RegisterInstance[*labelservice.Service](container, service)
		},
	})

	boot.AddDependency(&dependency{
		name:      "kafka",
		dependsOn: []string{"dependency-injection"},
		start: func(ctx context.Context) error {
			if !cfg.KafkaConsumerEnabled {
				logger.Info("Kafka consumer disabled")
				return nil
			}

			producerConfig := kafka.DefaultProducerConfig()
			producerConfig.Brokers = cfg.KafkaBrokers
			producerConfig.Topic = cfg.KafkaOutputTopic
			producerConfig.ErrorTopic = cfg.KafkaErrorTopic
			producerConfig.BatchSize = cfg.KafkaBatchSize
			producerConfig.BatchTimeout = time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond
			producerConfig.RequiredAcks = cfg.KafkaRequiredAcks
			producerConfig.Compression = cfg.KafkaCompression

			var err error
			producer, err = kafka.NewProducer(producerConfig, logger)
			if err != nil {
				return err
			}

			proc = processor.NewProcessor(processor.Config{
				WorkerCount:    cfg.ProcessorWorkerCount,
				ProcessTimeout: time.Duration(cfg.ProcessorTimeoutSeconds) * time.Second,
			}, service, producer, logger)
			if err := proc.Start(); err != nil {
				return err
			}

			consumerConfig := kafka.DefaultConsumerConfig()
			consumerConfig.Brokers = cfg.KafkaBrokers
			consumerConfig.Topic = cfg.KafkaInputTopic
			consumerConfig.GroupID = cfg.KafkaConsumerGroup

			consumer, err = kafka.NewConsumer(consumerConfig, logger)
			if err != nil {
				return err
			}
			return consumer.Start(context.Background(), proc.MessageHandler())
		},
		stop: func(ctx context.Context) error {
			if consumer != nil {
				if err := consumer.Stop(); err != nil {
					return err
				}
			}
			if proc != nil {
				if err := proc.Stop(); err != nil {
					return err
				}
			}
			if producer != nil {
				return producer.Close()
			}
			return nil
		},
	})

	boot.AddDependency(&dependency{
		name:      "http-server",
		dependsOn: []string{"dependency-injection"},
		start: func(ctx context.Context) error {
			e.HTTPErrorHandler = middleware.Error(logger)
			e.Use(otelecho.Middleware(cfg.AppName))
			e.Use(middleware.Context())
			e.Use(middleware.Logger(logger))
			if cfg.AuthEnabled {
				e.Use(middleware.Authentication(logger, cfg.AuthIssuerURL, cfg.AuthClientID))
			}

			api := e.Group("/api/v1")
			productroutes.Register(api.Group("/products"))
			batchroutes.Register(api)
			supplierroutes.Register(api.Group("/suppliers"))
			labelprofileroutes.Register(api.Group("/label-profile"))
			labelroutes.Register(api.Group("/labels"))
			tenantroutes.Register(api)

			var redisPinger health.Pinger
			if redisClient != nil {
				redisPinger = redisClient
			}
			checker = health.NewChecker(db, redisPinger, version)
			checker.RegisterRoutes(e)

			e.Server.ReadTimeout = time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second
			e.Server.WriteTimeout = time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second
			e.Server.IdleTimeout = time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second
			e.Server.ReadHeaderTimeout = time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second
			e.Server.MaxHeaderBytes = cfg.MaxHeaderBytes

			go func() {
				addr := fmt.Sprintf(":%d", cfg.Port)
				logger.Infof("HTTP server listening on %s", addr)
				if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
					logger.WithError(err).Error("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		stop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	})

	if err := boot.Start(ctx); err != nil {
		return err
	}

	checker.SetReady(true)
	logger.Infof("%s started", cfg.AppName)

	<-ctx.Done()
	logger.Info("Shutdown signal received")
	checker.SetReady(false)

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return boot.Stop(stopCtx)
}

// initTracing configures the global tracer provider with an OTLP exporter
func initTracing(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	exporterConfig := exporters.DefaultOTLPConfig()
	exporterConfig.Endpoint = cfg.TracingOTLPEndpoint

	exporter, err := exporters.NewOTLPExporter(ctx, exporterConfig)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)
	tracing.SetTracer(provider.Tracer(cfg.AppName))

	return provider.Shutdown, nil
}
