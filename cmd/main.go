package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/asirianni/LatinAd/internal/handlers"
	"github.com/asirianni/LatinAd/internal/jwt"
	"github.com/asirianni/LatinAd/internal/logger"
	"github.com/asirianni/LatinAd/internal/middlewares"
	"github.com/asirianni/LatinAd/internal/photos"
	"github.com/asirianni/LatinAd/internal/repositories"
	"github.com/asirianni/LatinAd/internal/services"
	"github.com/asirianni/LatinAd/internal/storage"
	"github.com/asirianni/LatinAd/migrations"

	_ "github.com/asirianni/LatinAd/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title LatinAd displays API
// @version 1.0.0
// @description REST API for managing advertising display listings
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, appBaseURL, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		jwtSecret, jwtExpSecond,
		storagePath,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, appBaseURL, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		jwtSecret, jwtExpSecond,
		storagePath,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, JWT and storage configuration.
func parseConfig(path string) (
	appHost, appPort, appBaseURL, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	jwtSecret string, jwtExpSecond int,
	storagePath string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	appBaseURL = getEnv("APP_BASE_URL", fmt.Sprintf("http://%s:%s", appHost, appPort))
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "latinad")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// JWT config
	jwtSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Storage config
	storagePath = getEnv("STORAGE_PATH", "./storage")

	return
}

// run initializes the logger, database, Redis, storage and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, appBaseURL, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	jwtSecret string, jwtExpSecond int,
	storagePath string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecret, time.Duration(jwtExpSecond)*time.Second)

	// Initialize photo storage
	blobStore := storage.NewFileStorage(storagePath, appBaseURL+"/storage")
	photoProcessor := photos.NewProcessor(blobStore)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	displayReadRepo := repositories.NewDisplayReadRepository(db, middlewares.GetTxFromContext)
	displayWriteRepo := repositories.NewDisplayWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	revokedStore := services.NewRevokedTokenStore(rdb, "revoked_tokens")
	authService := services.NewAuthService(userReadRepo, jwtSvc, revokedStore)
	displayService := services.NewDisplayService(displayReadRepo, displayWriteRepo, photoProcessor)

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService)
	refreshHandler := handlers.NewRefreshHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	displayListHandler := handlers.NewDisplayListHandler(displayService, photoProcessor)
	displayCreateHandler := handlers.NewDisplayCreateHandler(displayService, photoProcessor)
	displayGetHandler := handlers.NewDisplayGetHandler(displayService, photoProcessor)
	displayUpdateHandler := handlers.NewDisplayUpdateHandler(displayService, photoProcessor)
	displayDeleteHandler := handlers.NewDisplayDeleteHandler(displayService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/login", loginHandler)
	r.Handle("/storage/*", http.StripPrefix("/storage/", http.FileServer(http.Dir(blobStore.Dir()))))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(authService))

		r.Post("/logout", logoutHandler)
		r.Post("/refresh", refreshHandler)
		r.Get("/user", userHandler)

		r.Get("/displays", displayListHandler)
		r.Get("/displays/{id}", displayGetHandler)

		// Write routes run inside a per-request transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))

			r.Post("/displays", displayCreateHandler)
			r.Put("/displays/{id}", displayUpdateHandler)
			r.Patch("/displays/{id}", displayUpdateHandler)
			r.Delete("/displays/{id}", displayDeleteHandler)
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
