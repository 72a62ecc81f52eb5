package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/get_booking"
	getChargingSlotsHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/get_charging_slots"
	getEnergyConfigHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/get_energy_config"
	getGuestReportHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/get_guest_report"
	getHotelBookingsHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/get_hotel_bookings"
	getHotelDashboardHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/get_hotel_dashboard"
	getHotelReportHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/get_hotel_report"
	getUserBookingsHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/update_booking_status"
	updateEnergyConfigHandler "github.com/electristay/ES-ChargingService/internal/api/handlers/update_energy_config"
	"github.com/electristay/ES-ChargingService/internal/api/middleware"
	"github.com/electristay/ES-ChargingService/internal/config"
	"github.com/electristay/ES-ChargingService/internal/infra/cache"
	bookingRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/booking"
	configRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/hotelconfig"
	sessionRepo "github.com/electristay/ES-ChargingService/internal/infra/storage/session"
	weatherClient "github.com/electristay/ES-ChargingService/internal/integrations/weatherservice"
	analyticsService "github.com/electristay/ES-ChargingService/internal/service/analytics"
	bookingsService "github.com/electristay/ES-ChargingService/internal/service/bookings"
	hotelConfigService "github.com/electristay/ES-ChargingService/internal/service/hotelconfig"
	createBookingUC "github.com/electristay/ES-ChargingService/internal/usecase/create_booking"
	getChargingSlotsUC "github.com/electristay/ES-ChargingService/internal/usecase/get_charging_slots"
	"github.com/electristay/ES-ChargingService/pkg/dbmetrics"
	"github.com/electristay/ES-ChargingService/pkg/logger"
	"github.com/electristay/ES-ChargingService/pkg/metrics"
	"github.com/electristay/ES-ChargingService/pkg/simpletxmanager"
	"github.com/electristay/ES-ChargingService/pkg/txmanager"
)

// noopSlotMetrics подменяет метрики движка при выключенных метриках
type noopSlotMetrics struct{}

func (noopSlotMetrics) ObserveSlotComputation(slots int) {}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting ES-ChargingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Подключаемся к Redis (если включен кеш котировок)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// Кеш опциональный: работаем без него, движок пересчитает
			log.Warn("Redis unavailable, quote cache disabled: %v", err)
			redisClient = nil
		} else {
			log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		}
	}
	defer func() {
		if redisClient != nil {
			redisClient.Close()
		}
	}()

	// Клиент внешнего сервиса прогноза погоды
	weather := weatherClient.NewClient(
		cfg.WeatherService.URL,
		time.Duration(cfg.WeatherService.Timeout)*time.Second,
		log,
	)
	log.Info("WeatherService client initialized (url=%s, timeout=%ds)",
		cfg.WeatherService.URL, cfg.WeatherService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		configRepository  *configRepo.Repository
		sessionRepository *sessionRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Кеш котировок
	quoteCache := cache.NewQuoteCache(
		redisClient,
		time.Duration(cfg.Redis.QuoteTTLSec)*time.Second,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		configRepository,
		log,
	)
	hotelConfigSvc := hotelConfigService.NewService(
		configRepository,
		quoteCache,
		log,
	)
	analyticsSvc := analyticsService.NewService(
		sessionRepository,
		configRepository,
		log,
	)

	// Инициализируем use cases
	var slotMetrics getChargingSlotsUC.MetricsRecorder = noopSlotMetrics{}
	if cfg.Metrics.Enabled {
		slotMetrics = metricsCollector
	}

	getChargingSlotsUseCase := getChargingSlotsUC.NewUseCase(
		configRepository,
		weather,
		quoteCache,
		slotMetrics,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		configRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getChargingSlots := getChargingSlotsHandler.NewHandler(getChargingSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getHotelBookings := getHotelBookingsHandler.NewHandler(bookingSvc, log)
	getEnergyConfig := getEnergyConfigHandler.NewHandler(hotelConfigSvc, log)
	updateEnergyConfig := updateEnergyConfigHandler.NewHandler(hotelConfigSvc, log)
	getGuestReport := getGuestReportHandler.NewHandler(analyticsSvc, log)
	getHotelReport := getHotelReportHandler.NewHandler(analyticsSvc, log)
	getHotelDashboard := getHotelDashboardHandler.NewHandler(analyticsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Котировки зарядных слотов на окно проживания
	api.HandleFunc("/hotels/{hotelId}/charging-slots",
		getChargingSlots.Handle).Methods(http.MethodGet)

	// Энергетическая конфигурация отеля
	api.HandleFunc("/hotels/{hotelId}/energy-config",
		getEnergyConfig.Handle).Methods(http.MethodGet)

	// HTML дашборд отеля
	api.HandleFunc("/hotels/{hotelId}/dashboard",
		getHotelDashboard.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования зарядного слота
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования (только менеджер отеля)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Энергетический отчёт гостя
	protected.HandleFunc("/users/{userId}/energy-report", getGuestReport.Handle).Methods(http.MethodGet)

	// --- Управление отелем (для менеджеров) ---
	// Список бронирований отеля
	protected.HandleFunc("/hotels/{hotelId}/bookings", getHotelBookings.Handle).Methods(http.MethodGet)

	// Отчёт менеджера отеля
	protected.HandleFunc("/hotels/{hotelId}/energy-report", getHotelReport.Handle).Methods(http.MethodGet)

	// Обновление энергетической конфигурации отеля
	protected.HandleFunc("/hotels/{hotelId}/energy-config", updateEnergyConfig.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
