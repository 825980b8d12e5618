package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	cache_adapter "sharespace/internal/adapters/cache"
	token_adapter "sharespace/internal/adapters/jwt"
	logger_adapter "sharespace/internal/adapters/logger"
	postgres_adapter "sharespace/internal/adapters/postgres"
	rabbitmq_adapter "sharespace/internal/adapters/rabbitmq"
	"sharespace/internal/adapters/rest"
	"sharespace/internal/configs"
	"sharespace/internal/constants"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
	"sharespace/internal/core/usecase"
	fluentlogger "sharespace/pkg/fluent_logger"
	"sharespace/pkg/postgres"
	"sharespace/pkg/rabbitmq/rabbitmq_common"
	"sharespace/pkg/rabbitmq/rabbitmq_consumer"
	"sharespace/pkg/rabbitmq/rabbitmq_producer"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	rabbitMQConnManager *rabbitmq_common.ConnectionManager
	eventsProducer      *rabbitmq_producer.Publisher
	eventsConsumer      *rabbitmq_adapter.ListingEventsConsumerAdapter

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, appConfig.AppName, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ ---
	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	application := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	if err := application.wire(baseLogger); err != nil {
		application.closeResources()
		return nil, err
	}
	return application, nil
}

// wire создает адаптеры, use cases и HTTP сервер. При ошибке уже открытые ресурсы
// закрывает вызывающая сторона.
func (a *App) wire(baseLogger port.LoggerPort) error {
	cfg := a.config
	appLogger := a.logger

	// --- 3. ХРАНИЛИЩЕ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL: cfg.Database.URL,
		MaxConns:    int32(cfg.Database.MaxConns),
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	a.dbPool = dbPool
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	listingStorage, err := postgres_adapter.NewListingStorageAdapter(dbPool)
	if err != nil {
		appLogger.Error("Failed to create listing storage adapter", err, nil)
		return fmt.Errorf("failed to create listing storage adapter: %w", err)
	}

	featuredCache := cache_adapter.NewFeaturedCache(cfg.Listings.FeaturedCacheTTL)

	tokenService, err := token_adapter.NewTokenService(cfg.Auth.JWTSigningKey)
	if err != nil {
		appLogger.Error("Failed to create token service", err, nil)
		return fmt.Errorf("failed to create token service: %w", err)
	}

	// --- 4. СОБЫТИЯ ОБ ИЗМЕНЕНИИ ОБЪЯВЛЕНИЙ ---
	var eventsPublisher port.ListingEventsPublisherPort = rabbitmq_adapter.NoopListingEventsPublisher{}
	handleChangedUseCase := usecase.NewHandleListingChangedUseCase(featuredCache)

	if cfg.RabbitMQ.Enabled {
		pkgLogger := logger_adapter.NewKeyValueAdapter(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

		connManager, err := rabbitmq_common.NewManager(rabbitmq_common.Config{URL: cfg.RabbitMQ.URL}, pkgLogger)
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ connection manager", err, nil)
			return fmt.Errorf("failed to create RabbitMQ connection manager: %w", err)
		}
		a.rabbitMQConnManager = connManager

		producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: cfg.RabbitMQ.URL},
			ExchangeName:             constants.ListingsExchange,
			ExchangeType:             constants.ListingsExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   pkgLogger,
		}, connManager)
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ publisher", err, nil)
			return fmt.Errorf("failed to create RabbitMQ publisher: %w", err)
		}
		a.eventsProducer = producer

		publisherAdapter, err := rabbitmq_adapter.NewListingEventsPublisherAdapter(producer)
		if err != nil {
			return err
		}
		eventsPublisher = publisherAdapter

		// Эксклюзивная очередь на каждый экземпляр: событие должно дойти до всех.
		consumerAdapter, err := rabbitmq_adapter.NewListingEventsConsumerAdapter(rabbitmq_consumer.ConsumerConfig{
			Config:                 rabbitmq_common.Config{URL: cfg.RabbitMQ.URL},
			QueueName:              "",
			ExclusiveQueue:         true,
			AutoDeleteQueue:        true,
			ExchangeNameForBind:    constants.ListingsExchange,
			DeclareExchangeForBind: true,
			ExchangeTypeForBind:    constants.ListingsExchangeType,
			DurableExchangeForBind: true,
			RoutingKeyForBind:      constants.ListingAnyRoutingKey,
			PrefetchCount:          10,
			ConsumerTag:            constants.ListingEventsConsumerTag,
		}, handleChangedUseCase, baseLogger, connManager)
		if err != nil {
			appLogger.Error("Failed to create listing events consumer", err, nil)
			return fmt.Errorf("failed to create listing events consumer: %w", err)
		}
		a.eventsConsumer = consumerAdapter
		appLogger.Info("RabbitMQ publisher and consumer initialized.", nil)
	} else {
		appLogger.Warn("RabbitMQ is disabled, listing events are not published", nil)
	}
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 5. USE CASES ---
	rules := domain.ListingRules{
		RequiredLocationTokens: cfg.Listings.LocationTokens,
		MaxImages:              domain.DefaultMaxImages,
	}

	searchSessions := usecase.NewSearchSessions(usecase.NewSearchListingsUseCase(listingStorage, cfg.Search.FilterMode))
	featuredUseCase := usecase.NewGetFeaturedListingsUseCase(listingStorage, featuredCache, cfg.Listings.FeaturedLimit)
	getListingUseCase := usecase.NewGetListingUseCase(listingStorage)
	ownerListingsUseCase := usecase.NewGetOwnerListingsUseCase(listingStorage)
	createUseCase := usecase.NewCreateListingUseCase(listingStorage, eventsPublisher, featuredCache, rules)
	updateUseCase := usecase.NewUpdateListingUseCase(listingStorage, eventsPublisher, featuredCache, rules)
	deleteUseCase := usecase.NewDeleteListingUseCase(listingStorage, eventsPublisher, featuredCache)
	deleteOwnerUseCase := usecase.NewDeleteOwnerListingsUseCase(listingStorage, eventsPublisher, featuredCache)
	appLogger.Info("Use cases initialized.", port.Fields{"filter_mode": cfg.Search.FilterMode})

	// --- 6. REST API ---
	handlers := rest.NewListingsHandler(
		searchSessions,
		featuredUseCase,
		getListingUseCase,
		ownerListingsUseCase,
		createUseCase,
		updateUseCase,
		deleteUseCase,
		deleteOwnerUseCase,
	)
	a.apiServer = rest.NewServer(rest.ServerConfig{
		Port:           cfg.Rest.PORT,
		AllowedOrigins: cfg.Rest.AllowedOrigins,
	}, handlers, rest.NewAuthMiddleware(tokenService), baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
			cancel()
		}

		a.closeResources()
		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	componentErrors := make(chan error, 2)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			componentErrors <- fmt.Errorf("http server: %w", err)
		}
	}()

	if a.eventsConsumer != nil {
		go func() {
			a.logger.Info("Starting listing events consumer...", nil)
			if err := a.eventsConsumer.StartConsuming(appCtx); err != nil && appCtx.Err() == nil {
				componentErrors <- fmt.Errorf("listing events consumer: %w", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or component error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-componentErrors:
		a.logger.Error("Component failed, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

// closeResources закрывает все, кроме HTTP сервера и fluent клиента.
func (a *App) closeResources() {
	if a.eventsConsumer != nil {
		if err := a.eventsConsumer.Close(); err != nil {
			a.logger.Error("Error closing listing events consumer", err, nil)
		}
		a.eventsConsumer = nil
	}
	if a.eventsProducer != nil {
		if err := a.eventsProducer.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ publisher", err, nil)
		}
		a.eventsProducer = nil
	}
	if a.rabbitMQConnManager != nil {
		if err := a.rabbitMQConnManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection manager", err, nil)
		}
		a.rabbitMQConnManager = nil
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
		a.dbPool = nil
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
