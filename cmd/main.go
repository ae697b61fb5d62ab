package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/lunara-travel/fraud-monitor/internal/analytics"
	"github.com/lunara-travel/fraud-monitor/internal/handlers"
	"github.com/lunara-travel/fraud-monitor/internal/jwt"
	"github.com/lunara-travel/fraud-monitor/internal/logger"
	"github.com/lunara-travel/fraud-monitor/internal/metrics"
	"github.com/lunara-travel/fraud-monitor/internal/middlewares"
	"github.com/lunara-travel/fraud-monitor/internal/models"
	"github.com/lunara-travel/fraud-monitor/internal/repositories"
	"github.com/lunara-travel/fraud-monitor/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lunara-travel/fraud-monitor/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title fraud-monitor API
// @version 1.0.0
// @description Fraud signal service for Lunara Travel payment transactions
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application, database, Redis, Kafka, JWT, logging, and
// detection configuration.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	ReportCacheTTL    time.Duration

	KafkaBroker  string
	KafkaTopic   string
	KafkaGroupID string

	JWTSecretKey string
	JWTExp       time.Duration

	HighRiskBINs      []string
	VelocityWindow    time.Duration
	VelocityThreshold int
	VelocityLimit     int
	HourLocation      *time.Location
}

// parseConfig loads environment variables from a file and returns the
// assembled configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "fraud")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	var cacheTTLSecond int
	if cacheTTLSecond, err = strconv.Atoi(getEnv("REPORT_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	cfg.ReportCacheTTL = time.Duration(cacheTTLSecond) * time.Second

	// Kafka config
	cfg.KafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "payment-transactions")
	cfg.KafkaGroupID = getEnv("KAFKA_GROUP_ID", "fraud-monitor")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	var jwtExpSecond int
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExpSecond) * time.Second

	// Detection config
	cfg.HighRiskBINs = models.DefaultHighRiskBINs
	if bins := getEnv("APP_HIGH_RISK_BINS", ""); bins != "" {
		cfg.HighRiskBINs = strings.Split(bins, ",")
		for i := range cfg.HighRiskBINs {
			cfg.HighRiskBINs[i] = strings.TrimSpace(cfg.HighRiskBINs[i])
		}
	}
	var windowSecond int
	if windowSecond, err = strconv.Atoi(getEnv("APP_VELOCITY_WINDOW_SECOND", "600")); err != nil {
		return
	}
	cfg.VelocityWindow = time.Duration(windowSecond) * time.Second
	if cfg.VelocityThreshold, err = strconv.Atoi(getEnv("APP_VELOCITY_THRESHOLD", "3")); err != nil {
		return
	}
	if cfg.VelocityLimit, err = strconv.Atoi(getEnv("APP_VELOCITY_LIMIT", "10")); err != nil {
		return
	}
	if cfg.HourLocation, err = time.LoadLocation(getEnv("APP_HOUR_LOCATION", "UTC")); err != nil {
		return
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka reader, and HTTP
// server. It sets up routes, applies middleware, starts the feed consumer,
// and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PGHost, cfg.PGPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka reader for the transaction feed
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroupID,
	})
	defer kafkaReader.Close()

	// Initialize JWT service
	jwtSvc := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Prometheus metrics
	collector := metrics.NewCollector("fraud_monitor", nil)

	// Initialize repositories
	txnReadRepo := repositories.NewTransactionReadRepository(db)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db)
	reportCacheRepo := repositories.NewReportCacheRepository(rdb, cfg.ReportCacheTTL)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	reportService := services.NewReportService(
		txnReadRepo,
		reportCacheRepo,
		collector,
		cfg.HighRiskBINs,
		analytics.VelocityConfig{
			Window:    cfg.VelocityWindow,
			Threshold: cfg.VelocityThreshold,
			Limit:     cfg.VelocityLimit,
		},
		cfg.HourLocation,
	)
	ingestService := services.NewIngestService(kafkaReader, txnWriteRepo, collector)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	transactionsHandler := handlers.NewTransactionsHandler(reportService)
	relatedHandler := handlers.NewRelatedHandler(reportService)
	velocityHandler := handlers.NewVelocityHandler(reportService)
	binsHandler := handlers.NewBINRankingHandler(reportService)
	hourlyHandler := handlers.NewHourlyHandler(reportService)
	summaryHandler := handlers.NewSummaryHandler(reportService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc))
			r.Get("/transactions", transactionsHandler)
			r.Get("/transactions/{id}/related", relatedHandler)
			r.Get("/reports/velocity", velocityHandler)
			r.Get("/reports/bins", binsHandler)
			r.Get("/reports/hourly", hourlyHandler)
			r.Get("/reports/summary", summaryHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Consume the transaction feed until shutdown
	go func() {
		logger.Log.Infof("Consuming transaction feed from %s topic %s", cfg.KafkaBroker, cfg.KafkaTopic)
		if err := ingestService.Run(ctxShutdown); err != nil &&
			!errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			errChan <- fmt.Errorf("transaction feed consumer failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
