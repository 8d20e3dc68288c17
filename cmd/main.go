package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers"
	bookAppointmentHandler "github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers/cancel_appointment"
	endConversationHandler "github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers/end_conversation"
	fetchSlotsHandler "github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers/fetch_slots"
	healthHandler "github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers/health"
	identifyUserHandler "github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers/identify_user"
	modifyAppointmentHandler "github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers/modify_appointment"
	retrieveAppointmentsHandler "github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers/retrieve_appointments"
	toolCatalogHandler "github.com/m04kA/SMC-AppointmentAssistant/internal/api/handlers/tool_catalog"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/config"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/infra/session"
	appointmentRepo "github.com/m04kA/SMC-AppointmentAssistant/internal/infra/storage/appointment"
	profileRepo "github.com/m04kA/SMC-AppointmentAssistant/internal/infra/storage/profile"
	summaryRepo "github.com/m04kA/SMC-AppointmentAssistant/internal/infra/storage/summary"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/integrations/eventbus"
	frontendClient "github.com/m04kA/SMC-AppointmentAssistant/internal/integrations/frontend"
	appointmentsService "github.com/m04kA/SMC-AppointmentAssistant/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/costs"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/datetime"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/identifier"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/notifications"
	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/slots"
	bookAppointmentUC "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/cancel_appointment"
	endConversationUC "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/end_conversation"
	fetchSlotsUC "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/fetch_slots"
	identifyUserUC "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/identify_user"
	modifyAppointmentUC "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/modify_appointment"
	retrieveAppointmentsUC "github.com/m04kA/SMC-AppointmentAssistant/internal/usecase/retrieve_appointments"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/logger"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/txmanager"
)

// Период очистки просроченных сессий в памяти
const sessionSweepInterval = time.Minute

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AppointmentAssistant...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все методы ничего не делают
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		profileRepository     *profileRepo.Repository
		summaryRepository     *summaryRepo.Repository
		pinger                healthHandler.Pinger
	)

	// Интерфейс для transaction manager (используется в ledger)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		summaryRepository = summaryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		pinger = wrappedDB
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		summaryRepository = summaryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
		pinger = db
	}

	// Политика расписания
	schedulingCfg := config.LoadScheduling(cfg.Scheduling.ConfigFile, cfg.Scheduling.Timezone, log)
	catalog := slots.NewCatalog(schedulingCfg)
	interpreter := datetime.NewInterpreter()
	resolver := identifier.NewResolver(interpreter)

	// Хранилище сессий
	var sessionStore handlers.SessionStore
	switch cfg.Sessions.Driver {
	case config.SessionDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Sessions.RedisAddr,
			Password: cfg.Sessions.RedisPassword,
			DB:       cfg.Sessions.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Sessions.RedisAddr, err)
		}
		sessionStore = session.NewRedisStore(rdb, cfg.Sessions.TTL(), cfg.Sessions.KeyPrefix)
		log.Info("Session store: redis (addr=%s, ttl=%s)", cfg.Sessions.RedisAddr, cfg.Sessions.TTL())
	default:
		memoryStore := session.NewMemoryStore(cfg.Sessions.TTL())
		sweepCtx, stopSweep := context.WithCancel(context.Background())
		defer stopSweep()
		memoryStore.StartSweeper(sweepCtx, sessionSweepInterval)
		sessionStore = memoryStore
		log.Info("Session store: memory (ttl=%s, sweep=%s)", cfg.Sessions.TTL(), sessionSweepInterval)
	}

	// Получатель уведомлений
	var sink notifications.Sink
	switch cfg.Notifications.Driver {
	case config.NotifyDriverWebhook:
		sink = frontendClient.NewClient(cfg.Notifications.WebhookURL, cfg.Notifications.Timeout(), log)
		log.Info("Notifications: webhook (url=%s, timeout=%s)", cfg.Notifications.WebhookURL, cfg.Notifications.Timeout())
	case config.NotifyDriverKafka:
		publisher := eventbus.NewPublisher(cfg.Notifications.KafkaBrokers, cfg.Notifications.TopicPrefix, cfg.Notifications.Timeout())
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error("Failed to close kafka publisher: %v", err)
			}
		}()
		sink = publisher
		log.Info("Notifications: kafka (brokers=%v, topic_prefix=%s)", cfg.Notifications.KafkaBrokers, cfg.Notifications.TopicPrefix)
	default:
		sink = notifications.NopSink{Logger: log}
		log.Info("Notifications: disabled")
	}

	outbox := notifications.NewOutbox(sink, notifications.Config{
		QueueSize: cfg.Notifications.QueueSize,
		Timeout:   cfg.Notifications.Timeout(),
	}, metricsCollector, log)

	outboxCtx, stopOutbox := context.WithCancel(context.Background())
	outbox.Start(outboxCtx)

	// Инициализируем сервисы
	ledger := appointmentsService.NewLedger(
		appointmentRepository,
		profileRepository,
		txMgr,
		catalog,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	identifyUserUseCase := identifyUserUC.NewUseCase(profileRepository, log)
	fetchSlotsUseCase := fetchSlotsUC.NewUseCase(catalog, ledger, interpreter, log)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(ledger, interpreter, catalog, outbox, log)
	retrieveAppointmentsUseCase := retrieveAppointmentsUC.NewUseCase(ledger, log)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(ledger, resolver, outbox, log)
	modifyAppointmentUseCase := modifyAppointmentUC.NewUseCase(ledger, resolver, interpreter, catalog, outbox, log)
	endConversationUseCase := endConversationUC.NewUseCase(
		ledger,
		summaryRepository,
		costs.NewCalculator(cfg.Costs),
		outbox,
		log,
	)

	// Инициализируем handlers
	identifyUser := identifyUserHandler.NewHandler(identifyUserUseCase, sessionStore, metricsCollector, log)
	fetchSlots := fetchSlotsHandler.NewHandler(fetchSlotsUseCase, metricsCollector, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, sessionStore, metricsCollector, log)
	retrieveAppointments := retrieveAppointmentsHandler.NewHandler(retrieveAppointmentsUseCase, sessionStore, metricsCollector, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, sessionStore, metricsCollector, log)
	modifyAppointment := modifyAppointmentHandler.NewHandler(modifyAppointmentUseCase, sessionStore, metricsCollector, log)
	endConversation := endConversationHandler.NewHandler(endConversationUseCase, sessionStore, metricsCollector, log)
	toolCatalog := toolCatalogHandler.NewHandler()
	health := healthHandler.NewHandler(pinger, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Healthz).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Readyz).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.AccessLog(log))

	// Каталог инструментов для оркестратора разговора
	api.HandleFunc("/tools", toolCatalog.Handle).Methods(http.MethodGet)

	// ============================================================
	// TOOLS (вызовы одной сессии выполняются по очереди)
	// ============================================================

	tools := api.PathPrefix("/sessions/{" + handlers.SessionIDVar + "}/tools").Subrouter()
	tools.Use(middleware.SessionSerializer(middleware.NewSessionLocker(), handlers.SessionIDVar))

	tools.HandleFunc("/"+domain.ToolIdentifyUser, identifyUser.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/"+domain.ToolFetchSlots, fetchSlots.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/"+domain.ToolBookAppointment, bookAppointment.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/"+domain.ToolRetrieveAppointments, retrieveAppointments.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/"+domain.ToolCancelAppointment, cancelAppointment.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/"+domain.ToolModifyAppointment, modifyAppointment.Handle).Methods(http.MethodPost)
	tools.HandleFunc("/"+domain.ToolEndConversation, endConversation.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Доставляем уже поставленные уведомления
	stopOutbox()
	outbox.Wait()
	log.Info("Notification outbox drained")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
