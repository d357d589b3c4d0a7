package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-book-trading/docs"
	"github.com/sbilibin2017/gw-book-trading/internal/facades"
	"github.com/sbilibin2017/gw-book-trading/internal/handlers"
	"github.com/sbilibin2017/gw-book-trading/internal/health"
	"github.com/sbilibin2017/gw-book-trading/internal/jwt"
	"github.com/sbilibin2017/gw-book-trading/internal/logger"
	"github.com/sbilibin2017/gw-book-trading/internal/metrics"
	"github.com/sbilibin2017/gw-book-trading/internal/middlewares"
	"github.com/sbilibin2017/gw-book-trading/internal/repositories"
	"github.com/sbilibin2017/gw-book-trading/internal/services"
	"github.com/sbilibin2017/gw-book-trading/internal/views"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-book-trading API
// @version 1.0.0
// @description Book trading club: users list the books they own and trade them with each other
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
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
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string
	BaseURL   string

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

	SessionExp    time.Duration
	OAuthStateExp time.Duration
	JWTSecretKey  string
	CookieSecure  bool

	GitHubClientID     string
	GitHubClientSecret string
	GitHubCallbackURL  string

	KafkaBrokers []string
	KafkaTopic   string

	GRPCHealthPort string
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, auth, Kafka and health configuration.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var errs []error
	intEnv := func(key, defaultValue string) int {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	secondsEnv := func(key, defaultValue string) time.Duration {
		return time.Duration(intEnv(key, defaultValue)) * time.Second
	}

	var cfg config

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", logger.FormatJSON)
	cfg.BaseURL = strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:8080"), "/")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGPort = intEnv("POSTGRES_PORT", "5432")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGMaxOpenConns = intEnv("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = intEnv("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = intEnv("REDIS_PORT", "6379")
	cfg.RedisDB = intEnv("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = intEnv("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = intEnv("REDIS_MIN_IDLE_CONNS", "2")

	// Session config
	cfg.SessionExp = secondsEnv("SESSION_EXP_SECOND", "86400")
	cfg.OAuthStateExp = secondsEnv("OAUTH_STATE_EXP_SECOND", "600")
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cookieSecure, err := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("COOKIE_SECURE: %w", err))
	}
	cfg.CookieSecure = cookieSecure

	// GitHub OAuth config
	cfg.GitHubClientID = getEnv("GITHUB_CLIENT_ID", "")
	cfg.GitHubClientSecret = getEnv("GITHUB_CLIENT_SECRET", "")
	cfg.GitHubCallbackURL = getEnv("GITHUB_CALLBACK_URL", cfg.BaseURL+"/auth/github/callback")

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "trade-events")

	// gRPC health config
	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")

	return cfg, errors.Join(errs...)
}

// newRouter wires repositories, services and handlers onto a chi router.
func newRouter(cfg config, db *sqlx.DB, rdb *redis.Client, kafkaWriter services.KafkaWriter) (*chi.Mux, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.SessionExp),
	)
	github := facades.NewGitHubOAuthFacade(cfg.GitHubClientID, cfg.GitHubClientSecret, cfg.GitHubCallbackURL)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	bookReadRepo := repositories.NewBookReadRepository(db)
	bookWriteRepo := repositories.NewBookWriteRepository(db, middlewares.GetTxFromContext)
	tradeReadRepo := repositories.NewTradeReadRepository(db)
	tradeWriteRepo := repositories.NewTradeWriteRepository(db, middlewares.GetTxFromContext)
	sessionRepo := repositories.NewSessionCacheRepository(rdb, cfg.SessionExp)
	stateRepo := repositories.NewOAuthStateCacheRepository(rdb, cfg.OAuthStateExp)

	// Initialize services
	authService := services.NewAuthService(github, stateRepo, sessionRepo, userWriteRepo, tokens)
	settingsService := services.NewSettingsService(userReadRepo, userWriteRepo)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, tradeWriteRepo)
	tradeService := services.NewTradeService(tradeReadRepo, tradeWriteRepo, bookReadRepo, kafkaWriter)

	cookie := handlers.CookieOptions{Secure: cfg.CookieSecure, MaxAge: cfg.SessionExp}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.InstrumentHandler)

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.BaseURL+"/swagger/doc.json"),
	))

	// Public routes
	r.With(middlewares.IdentityMiddleware(tokens, authService)).
		Get("/", handlers.NewIndexHandler(renderer))
	r.Get("/logout", handlers.NewLogoutHandler(authService, tokens, cookie))
	r.Get("/auth/github", handlers.NewGitHubLoginHandler(authService))
	r.Get("/auth/github/callback", handlers.NewGitHubCallbackHandler(authService, cookie))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, authService))

		r.Get("/settings", handlers.NewSettingsHandler(settingsService, renderer))
		r.Get("/my-books", handlers.NewUserBooksHandler(bookService, renderer))
		r.Get("/books", handlers.NewBooksHandler(bookService, renderer))
		r.Get("/trade-requests", handlers.NewTradeRequestsHandler(tradeService, renderer))
		r.Get("/my-requests", handlers.NewUserRequestsHandler(tradeService, renderer))

		r.Post("/api/settings", handlers.NewUpdateSettingsHandler(settingsService))
		r.Post("/api/add-book", handlers.NewAddBookHandler(bookService))
		r.With(middlewares.TxMiddleware(db)).
			Get("/api/delete-book/{id}", handlers.NewDeleteBookHandler(bookService))
		r.Get("/api/delete-trade/{id}", handlers.NewDeleteTradeHandler(tradeService))
		r.Get("/api/ask/{id}", handlers.NewAskHandler(tradeService))
		r.Get("/api/accept/{id}", handlers.NewAcceptHandler(tradeService))
		r.Get("/api/deny/{id}", handlers.NewDenyHandler(tradeService))
	})

	return r, nil
}

// run initializes the logger, database, Redis, Kafka, health and HTTP servers.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("postgres schema: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}

	// Kafka is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		}
		defer func() {
			if err := w.Close(); err != nil {
				logger.Log.Errorw("Kafka writer close error", "error", err)
			}
		}()
		kafkaWriter = w
		logger.Log.Infow("Publishing trade events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, trade events are not published")
	}

	r, err := newRouter(cfg, db, rdb, kafkaWriter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	httpLis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort))
	if err != nil {
		return fmt.Errorf("HTTP listener: %w", err)
	}

	healthLis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCHealthPort))
	if err != nil {
		httpLis.Close()
		return fmt.Errorf("gRPC health listener: %w", err)
	}

	return serve(ctx, srv, httpLis, health.NewServer(), healthLis)
}

// serve runs the HTTP and gRPC health servers on already bound listeners.
// Health reports SERVING only while both are accepting connections.
// It returns after a shutdown signal, ctx cancellation or a server failure.
func serve(ctx context.Context, srv *http.Server, httpLis net.Listener, healthSrv *health.Server, healthLis net.Listener) error {
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", healthLis.Addr())
		if err := healthSrv.Serve(healthLis); err != nil {
			errChan <- fmt.Errorf("gRPC health server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", httpLis.Addr())
		if err := srv.Serve(httpLis); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	healthSrv.SetServing(true)

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		healthSrv.Stop()
		_ = srv.Close()
		return serveErr
	}

	healthSrv.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	healthSrv.Stop()

	logger.Log.Info("Servers stopped gracefully")
	return nil
}
