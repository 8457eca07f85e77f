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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/get_available_slots"
	getScheduleHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/get_schedule"
	getShopSettingsHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/get_shop_settings"
	listProfessionalsHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/list_professionals"
	listServicesHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/list_services"
	updateAppointmentHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/update_appointment"
	updateShopSettingsHandler "github.com/m04kA/BRB-ScheduleService/internal/api/handlers/update_shop_settings"
	"github.com/m04kA/BRB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/BRB-ScheduleService/internal/config"
	apptRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/appointment"
	professionalRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/professional"
	serviceItemRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/serviceitem"
	settingsRepo "github.com/m04kA/BRB-ScheduleService/internal/infra/storage/settings"
	appointmentsService "github.com/m04kA/BRB-ScheduleService/internal/service/appointments"
	catalogService "github.com/m04kA/BRB-ScheduleService/internal/service/catalog"
	settingsService "github.com/m04kA/BRB-ScheduleService/internal/service/settings"
	createAppointmentUC "github.com/m04kA/BRB-ScheduleService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/BRB-ScheduleService/internal/usecase/get_available_slots"
	updateAppointmentUC "github.com/m04kA/BRB-ScheduleService/internal/usecase/update_appointment"
	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/logger"
	"github.com/m04kA/BRB-ScheduleService/pkg/metrics"
	"github.com/m04kA/BRB-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/BRB-ScheduleService/pkg/txmanager"
)

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

	log.Info("Starting BRB-ScheduleService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *apptRepo.Repository
		settingsRepository     *settingsRepo.Repository
		serviceItemRepository  *serviceItemRepo.Repository
		professionalRepository *professionalRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = apptRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		serviceItemRepository = serviceItemRepo.NewRepository(wrappedDB)
		professionalRepository = professionalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = apptRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		serviceItemRepository = serviceItemRepo.NewRepository(db)
		professionalRepository = professionalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, txMgr, log)
	catalogSvc := catalogService.NewService(serviceItemRepository, professionalRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		serviceItemRepository,
		professionalRepository,
		txMgr,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		serviceItemRepository,
		professionalRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		serviceItemRepository,
		professionalRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	getShopSettings := getShopSettingsHandler.NewHandler(settingsSvc, log)
	updateShopSettings := updateShopSettingsHandler.NewHandler(settingsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listProfessionals := listProfessionalsHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной request ID для трассировки логов
	r.Use(middleware.RequestID)

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

	// Получение доступных слотов для записи
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Настройки календаря салона
	api.HandleFunc("/settings", getShopSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи (одиночной или повторяющейся серии)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Изменение записи (перенос, смена услуг)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)

	// Завершение записи с фиксацией итоговой цены
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Расписание с фильтрацией по дате, мастеру и статусу
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// --- Управление салоном ---
	// Обновление настроек календаря
	protected.HandleFunc("/settings", updateShopSettings.Handle).Methods(http.MethodPut)

	// --- Каталоги ---
	protected.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)

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
