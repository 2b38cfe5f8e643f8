package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/changifyhq/changify-backend/internal/adapters/cache/memstore"
	"github.com/changifyhq/changify-backend/internal/adapters/cache/redisstore"
	"github.com/changifyhq/changify-backend/internal/adapters/database/pgsql"
	"github.com/changifyhq/changify-backend/internal/adapters/notify/kafka"
	portsrepo "github.com/changifyhq/changify-backend/internal/core/ports/repositories"
	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/changifyhq/changify-backend/internal/core/services"
	"github.com/changifyhq/changify-backend/internal/handlers"
	"github.com/changifyhq/changify-backend/internal/middleware"
	"github.com/changifyhq/changify-backend/internal/platform/config"
	"github.com/changifyhq/changify-backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Draft sessions live in Redis when configured, in process memory
	// otherwise.
	var draftStore portsrepo.DraftSessionStore
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to parse REDIS_URL", slog.String("error", err.Error()))
			os.Exit(1)
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Error("Failed to ping redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		draftStore = redisstore.NewDraftStore(redisClient, cfg.DraftSessionTTL)
		logger.Info("Redis draft session store established.")
	} else {
		draftStore = memstore.NewDraftStore(cfg.DraftSessionTTL)
		logger.Warn("REDIS_URL not set, draft sessions are kept in process memory.")
	}

	// Notifications go to Kafka when brokers are configured, to the log
	// otherwise.
	var notifier portssvc.Notifier
	if len(cfg.KafkaBrokers) > 0 {
		kafkaNotifier, err := kafka.NewNotifier(cfg.KafkaBrokers, cfg.KafkaNotificationsTopic, logger)
		if err != nil {
			logger.Error("Failed to create kafka notifier", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer kafkaNotifier.Close()
		notifier = kafkaNotifier
	} else {
		notifier = kafka.NewNoOpNotifier(logger)
	}

	repos := portsrepo.RepositoryProvider{
		CurrencyRepo:     pgsql.NewCurrencyRepository(dbPool),
		BankRepo:         pgsql.NewBankRepository(dbPool),
		ExchangeRateRepo: pgsql.NewExchangeRateRepository(dbPool),
		UserRepo:         pgsql.NewUserRepository(dbPool),
		OrderRepo:        pgsql.NewOrderRepository(dbPool),
		DraftStore:       draftStore,
	}
	serviceContainer := services.NewServiceContainer(cfg, repos, notifier, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending up migrations using a temporary
// database/sql connection compatible with the main pgx pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
