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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-operation-ledger/docs"
	"github.com/sbilibin2017/gw-operation-ledger/internal/emitters"
	"github.com/sbilibin2017/gw-operation-ledger/internal/facades"
	"github.com/sbilibin2017/gw-operation-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-operation-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-operation-ledger/internal/logger"
	"github.com/sbilibin2017/gw-operation-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-operation-ledger/internal/migrator"
	"github.com/sbilibin2017/gw-operation-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-operation-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-operation-ledger API
// @version 1.0.0
// @description Ledger engine creating pending operations between wallet accounts under layered spending limits
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka, the exchanger client and the HTTP server.
// It blocks until ctx is done or a shutdown signal arrives.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	loc, err := time.LoadLocation(cfg.Ledger.Timezone)
	if err != nil {
		return fmt.Errorf("invalid ledger timezone %q: %w", cfg.Ledger.Timezone, err)
	}

	// PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrator.Up(db.DB, cfg.Postgres.MigrationsPath, cfg.Postgres.DB); err != nil {
		return err
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka
	emitter := emitters.NewKafkaEventEmitter(
		newKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.OperationTopic),
		newKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.UserLimitTopic),
	)
	defer emitter.Close()

	// Repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	transactionTypeRepo := repositories.NewTransactionTypeRepository(db, txGetter)
	currencyRepo := repositories.NewCurrencyRepository(db, txGetter)
	limitTypeRepo := repositories.NewLimitTypeRepository(db, txGetter)
	walletRepo := repositories.NewWalletRepository(db, txGetter)
	walletAccountRepo := repositories.NewWalletAccountRepository(db, txGetter)
	globalLimitRepo := repositories.NewGlobalLimitRepository(db, txGetter)
	userLimitRepo := repositories.NewUserLimitRepository(db, txGetter)
	trackerRepo := repositories.NewUserLimitTrackerRepository(db, txGetter)
	operationRepo := repositories.NewOperationRepository(db, txGetter)
	pendingRepo := repositories.NewPendingTransactionRepository(db)
	quotationRepo := repositories.NewQuotationRepository(db)

	walletCacheRepo := repositories.NewWalletAccountCacheRepository(rdb, time.Duration(cfg.Redis.WalletExpSecond)*time.Second)
	quotationCacheRepo := repositories.NewQuotationCacheRepository(rdb, time.Duration(cfg.Redis.QuotationExpSecond)*time.Second)

	// Quotation sources
	sources := []services.QuotationSource{quotationRepo}
	if cfg.Exchanger.Enabled {
		grpcAddr := fmt.Sprintf("%s:%s", cfg.Exchanger.Host, cfg.Exchanger.Port)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		defer conn.Close()

		exchanger := facades.NewQuotationGRPCFacade(
			pb.NewExchangeServiceClient(conn),
			cfg.Exchanger.Priority,
			facades.DefaultBreakerConfig,
		)
		sources = append(sources, exchanger)
	}

	// Services
	quotationService := services.NewQuotationService(quotationCacheRepo, sources...)
	pendingLedger := services.NewPendingLedger(pendingRepo, cfg.Ledger.PendingTTL())
	liabilityService := services.NewLiabilityService(
		walletCacheRepo, walletAccountRepo, quotationService, pendingLedger,
		cfg.Ledger.SettlementCurrency, cfg.Ledger.CacheMaxAge(),
	)
	limitService := services.NewLimitService(
		limitTypeRepo, globalLimitRepo, userLimitRepo, trackerRepo,
		transactionTypeRepo, operationRepo, loc,
	)
	factory := services.NewOperationFactory(operationRepo, trackerRepo)
	operationService := services.NewOperationService(
		transactionTypeRepo, currencyRepo, walletRepo, walletAccountRepo, walletCacheRepo,
		operationRepo, limitService, liabilityService, pendingLedger, factory, emitter, emitter,
		middlewares.AfterCommit,
	)

	tokener := jwt.New(jwt.WithSecretKey(cfg.JWT.SecretKey))

	r := newRouter(db, tokener, operationService)
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts the ledger API under /api/v1 behind auth and the request transaction.
func newRouter(db *sqlx.DB, tokener middlewares.Tokener, svc handlers.OperationCreator) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/operations", handlers.NewCreateOperationHandler(svc))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
}
