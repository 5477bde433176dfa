package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	token_adapter "property-management-service/internal/adapters/jwt"
	logger_adapter "property-management-service/internal/adapters/logger"
	postgres_adapter "property-management-service/internal/adapters/postgres"
	rabbitmq_adapter "property-management-service/internal/adapters/rabbitmq"
	"property-management-service/internal/adapters/rest"
	"property-management-service/internal/configs"
	"property-management-service/internal/constants"
	"property-management-service/internal/core/port"
	"property-management-service/internal/core/usecase"
	"property-management-service/pkg/fluentlogger"
	"property-management-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	paymentEventsListener port.EventListenerPort
	reportsPublisher      *rabbitmq_adapter.Publisher
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	propertyRepository, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create property repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	tenantRepository, err := postgres_adapter.NewTenantRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create tenant repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create tenant repository: %w", err)
	}
	paymentRepository, err := postgres_adapter.NewPaymentRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create payment repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create payment repository: %w", err)
	}
	userRepository, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create user repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	appLogger.Info("Postgres repositories initialized.", nil)

	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.SigningKey)
	if err != nil {
		appLogger.Error("Failed to create token service", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	publisherLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_publisher"})
	reportsPublisher, err := rabbitmq_adapter.NewPublisher(rabbitmq_adapter.PublisherConfig{
		URL:             appConfig.RabbitMQ.URL,
		ExchangeName:    constants.PaymentsExchange,
		ExchangeType:    "direct",
		DurableExchange: true,
	}, publisherLogger)
	if err != nil {
		appLogger.Error("Failed to create reports publisher", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create reports publisher: %w", err)
	}
	appLogger.Info("RabbitMQ reports publisher initialized.", nil)

	importReporter, err := rabbitmq_adapter.NewImportReporterAdapter(reportsPublisher, constants.RoutingKeyImportReports)
	if err != nil {
		appLogger.Error("Failed to create import reporter", err, nil)
		dbPool.Close()
		return nil, err
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 4. USE CASES (ядро бизнес-логики) ---
	getDashboardUseCase := usecase.NewGetDashboardUseCase(propertyRepository, tenantRepository, paymentRepository)

	createPropertyUseCase := usecase.NewCreatePropertyUseCase(propertyRepository)
	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(propertyRepository)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(propertyRepository, tenantRepository)

	createTenantUseCase := usecase.NewCreateTenantUseCase(tenantRepository, propertyRepository)
	findTenantsUseCase := usecase.NewFindTenantsUseCase(tenantRepository)

	savePaymentUseCase := usecase.NewSavePaymentUseCase(paymentRepository)
	findPaymentsUseCase := usecase.NewFindPaymentsUseCase(paymentRepository)

	registerUserUseCase := usecase.NewRegisterUserUseCase(userRepository)
	loginUserUseCase := usecase.NewLoginUserUseCase(userRepository, tokenService,
		time.Duration(appConfig.Auth.TokenTTLMinutes)*time.Minute)

	appLogger.Info("All use cases initialized.", nil)

	// --- 5. ВХОДЯЩИЕ АДАПТЕРЫ (те, которые ВЫЗЫВАЮТ наше ядро) ---
	paymentEventsListener, err := rabbitmq_adapter.NewPaymentEventsConsumerAdapter(rabbitmq_adapter.ConsumerConfig{
		URL:           appConfig.RabbitMQ.URL,
		QueueName:     constants.QueuePaymentEvents,
		ExchangeName:  constants.PaymentsExchange,
		RoutingKey:    constants.RoutingKeyPaymentEvents,
		ConsumerTag:   "payment-saver-adapter",
		PrefetchCount: 1,
	}, savePaymentUseCase, importReporter, baseLogger)
	if err != nil {
		appLogger.Error("Failed to create Payment Events listener", err, nil)
		dbPool.Close()
		return nil, err
	}
	appLogger.Info("Payment Events Listener initialized.", nil)

	// REST API Server
	dashboardHandler := rest.NewDashboardHandler(getDashboardUseCase)
	propertyHandler := rest.NewPropertyHandler(createPropertyUseCase, findPropertiesUseCase, getPropertyDetailsUseCase)
	tenantHandler := rest.NewTenantHandler(createTenantUseCase, findTenantsUseCase)
	paymentHandler := rest.NewPaymentHandler(savePaymentUseCase, findPaymentsUseCase)
	authHandler := rest.NewAuthHandler(registerUserUseCase, loginUserUseCase)
	authMiddleware := rest.NewAuthMiddleware(tokenService)

	apiServer := rest.NewServer(appConfig.Rest.PORT,
		dashboardHandler, propertyHandler, tenantHandler, paymentHandler, authHandler,
		authMiddleware, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	// --- 6. Собираем приложение ---
	application := &App{
		config:                appConfig,
		dbPool:                dbPool,
		apiServer:             apiServer,
		paymentEventsListener: paymentEventsListener,
		reportsPublisher:      reportsPublisher,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Создаем единый контекст для всего приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	// Используем WaitGroup для ожидания завершения всех фоновых задач
	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		// Ждем завершения всех запущенных горутин (слушателей)
		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		// Теперь безопасно закрываем ресурсы
		if a.paymentEventsListener != nil {
			if err := a.paymentEventsListener.Close(); err != nil {
				a.logger.Error("Error closing payment events listener", err, nil)
			}
		}

		if a.reportsPublisher != nil {
			if err := a.reportsPublisher.Close(); err != nil {
				a.logger.Error("Error closing reports publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	// Функция-хелпер для запуска слушателей
	startListener := func(name string, listener port.EventListenerPort) {
		defer wg.Done()
		listenerLogger := a.logger.WithFields(port.Fields{"listener_name": name})
		listenerLogger.Info("Starting listener...", nil)

		if err := listener.Start(appCtx); err != nil {
			listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
			errorsCh <- fmt.Errorf("%s error: %w", name, err)
		} else {
			listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
		}
	}

	wg.Add(1)
	go startListener("Payment Events Listener", a.paymentEventsListener)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
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
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
