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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/soltours/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/soltours/booking-service/internal/api/handlers/create_booking"
	createReviewHandler "github.com/soltours/booking-service/internal/api/handlers/create_review"
	getActivityHandler "github.com/soltours/booking-service/internal/api/handlers/get_activity"
	getAvailabilityHandler "github.com/soltours/booking-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/soltours/booking-service/internal/api/handlers/get_booking"
	getCancellationPolicyHandler "github.com/soltours/booking-service/internal/api/handlers/get_cancellation_policy"
	getUserBookingsHandler "github.com/soltours/booking-service/internal/api/handlers/get_user_bookings"
	listActivitiesHandler "github.com/soltours/booking-service/internal/api/handlers/list_activities"
	listReviewsHandler "github.com/soltours/booking-service/internal/api/handlers/list_reviews"
	modifyBookingHandler "github.com/soltours/booking-service/internal/api/handlers/modify_booking"
	quoteCancellationHandler "github.com/soltours/booking-service/internal/api/handlers/quote_cancellation"
	quoteModificationHandler "github.com/soltours/booking-service/internal/api/handlers/quote_modification"
	"github.com/soltours/booking-service/internal/api/middleware"
	"github.com/soltours/booking-service/internal/config"
	availabilityCache "github.com/soltours/booking-service/internal/infra/cache/availability"
	activityRepo "github.com/soltours/booking-service/internal/infra/storage/activity"
	bookingRepo "github.com/soltours/booking-service/internal/infra/storage/booking"
	paymentRepo "github.com/soltours/booking-service/internal/infra/storage/payment"
	policyRepo "github.com/soltours/booking-service/internal/infra/storage/policy"
	reviewRepo "github.com/soltours/booking-service/internal/infra/storage/review"
	notifyClient "github.com/soltours/booking-service/internal/integrations/notify"
	paymentsClient "github.com/soltours/booking-service/internal/integrations/payments"
	activitiesService "github.com/soltours/booking-service/internal/service/activities"
	bookingsService "github.com/soltours/booking-service/internal/service/bookings"
	policyService "github.com/soltours/booking-service/internal/service/policy"
	reviewsService "github.com/soltours/booking-service/internal/service/reviews"
	cancelBookingUC "github.com/soltours/booking-service/internal/usecase/cancel_booking"
	createBookingUC "github.com/soltours/booking-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/soltours/booking-service/internal/usecase/get_availability"
	modifyBookingUC "github.com/soltours/booking-service/internal/usecase/modify_booking"
	"github.com/soltours/booking-service/pkg/dbmetrics"
	"github.com/soltours/booking-service/pkg/logger"
	"github.com/soltours/booking-service/pkg/metrics"
	"github.com/soltours/booking-service/pkg/simpletxmanager"
	"github.com/soltours/booking-service/pkg/txmanager"
)

func main() {
	// Загружаем переменные окружения (.env опционален)
	_ = godotenv.Load()

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

	log.Info("Starting booking-service...")
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

	// Инициализируем кэш доступности (Redis опционален)
	type AvailabilityCache interface {
		Get(ctx context.Context, activityID int64, date string) (*availabilityCache.DaySnapshot, error)
		Set(ctx context.Context, snapshot *availabilityCache.DaySnapshot) error
		Invalidate(ctx context.Context, activityID int64, date string) error
	}
	var cache AvailabilityCache

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cache = availabilityCache.NewCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	} else {
		cache = availabilityCache.NewNoop()
		log.Info("Availability cache disabled, every request recomputes from database")
	}

	// Инициализируем интеграционных клиентов
	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	notify := notifyClient.NewClient(
		cfg.Notify.URL,
		time.Duration(cfg.Notify.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Payments=%s timeout=%ds, Notify=%s timeout=%ds)",
		cfg.Payments.URL, cfg.Payments.Timeout, cfg.Notify.URL, cfg.Notify.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		activityRepository *activityRepo.Repository
		paymentRepository  *paymentRepo.Repository
		policyRepository   *policyRepo.Repository
		reviewRepository   *reviewRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		activityRepository = activityRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		activityRepository = activityRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		paymentRepository,
		log,
	)
	activitiesSvc := activitiesService.NewService(
		activityRepository,
		reviewRepository,
		log,
	)
	reviewsSvc := reviewsService.NewService(
		reviewRepository,
		bookingRepository,
		log,
	)
	policySvc := policyService.NewService(
		policyRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		activityRepository,
		paymentRepository,
		payments,
		notify,
		cache,
		txMgr,
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		policySvc,
		payments,
		notify,
		cache,
		txMgr,
		log,
	)

	modifyBookingUseCase := modifyBookingUC.NewUseCase(
		bookingRepository,
		activityRepository,
		paymentRepository,
		policySvc,
		payments,
		notify,
		cache,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		activityRepository,
		cache,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	quoteCancellation := quoteCancellationHandler.NewHandler(cancelBookingUseCase, log)
	modifyBooking := modifyBookingHandler.NewHandler(modifyBookingUseCase, log)
	quoteModification := quoteModificationHandler.NewHandler(modifyBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listActivities := listActivitiesHandler.NewHandler(activitiesSvc, log)
	getActivity := getActivityHandler.NewHandler(activitiesSvc, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewsSvc, log)
	getCancellationPolicy := getCancellationPolicyHandler.NewHandler(policySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Каталог активностей
	api.HandleFunc("/activities", listActivities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{slug}", getActivity.Handle).Methods(http.MethodGet)

	// Доступность активности на дату
	api.HandleFunc("/activities/{activityId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Отзывы активности
	api.HandleFunc("/activities/{activityId}/reviews", listReviews.Handle).Methods(http.MethodGet)

	// Действующая политика отмены активности
	api.HandleFunc("/activities/{activityId}/policy", getCancellationPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования и предварительная квота отмены
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel/quote", quoteCancellation.Handle).Methods(http.MethodGet)

	// Изменение бронирования и предварительная квота изменения
	protected.HandleFunc("/bookings/{bookingId}/modify", modifyBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/modify/quote", quoteModification.Handle).Methods(http.MethodPost)

	// --- Отзывы ---
	// Создание отзыва по завершённому бронированию
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

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
