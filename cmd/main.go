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
	"github.com/segmentio/kafka-go"

	"github.com/wesshacks/wesshacks/internal/handlers"
	"github.com/wesshacks/wesshacks/internal/jwt"
	"github.com/wesshacks/wesshacks/internal/logger"
	"github.com/wesshacks/wesshacks/internal/middlewares"
	"github.com/wesshacks/wesshacks/internal/repositories"
	"github.com/wesshacks/wesshacks/internal/services"
	"github.com/wesshacks/wesshacks/internal/sessions"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title WesShacks API
// @version 1.0.0
// @description Student housing catalog with reviews, saved houses and a classifieds board
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic, logLevel,
		jwtSecret, jwtExp, forumRequireAuth,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp, forumRequireAuth,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	forumRequireAuth bool,
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
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "wesshacks")
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

	// Kafka config; empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "wesshacks.events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Forum config
	if forumRequireAuth, err = strconv.ParseBool(getEnv("FORUM_REQUIRE_AUTH", "true")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	forumRequireAuth bool,
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

	tokenLifetime := time.Duration(jwtExpSecond) * time.Second

	// Token issue/verify and the session store behind logout
	jwtSvc := jwt.New(jwt.WithSecretKey(jwtSecretKey), jwt.WithExpiration(tokenLifetime))
	sessionStore := sessions.New(rdb, tokenLifetime)

	// Kafka writer for catalog activity events
	var eventsWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		eventsWriter = w
		logger.Log.Infof("Kafka events enabled, addr %s topic %s", kafkaAddr, kafkaTopic)
	} else {
		logger.Log.Info("Kafka events disabled")
	}

	// Initialize repositories
	houseReadRepo := repositories.NewHouseReadRepository(db)
	houseWriteRepo := repositories.NewHouseWriteRepository(db)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	savedReadRepo := repositories.NewSavedHouseReadRepository(db)
	savedWriteRepo := repositories.NewSavedHouseWriteRepository(db)
	forumReadRepo := repositories.NewForumPostReadRepository(db)
	forumWriteRepo := repositories.NewForumPostWriteRepository(db)

	// Initialize services
	listingsService := services.NewListingsService(houseReadRepo, reviewReadRepo, savedReadRepo)
	housesService := services.NewHousesService(houseReadRepo, houseWriteRepo, eventsWriter)
	reviewsService := services.NewReviewsService(reviewReadRepo, reviewWriteRepo, houseReadRepo, eventsWriter)
	savedService := services.NewSavedService(savedReadRepo, savedWriteRepo, houseReadRepo)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, sessionStore)
	forumService := services.NewForumService(forumReadRepo, forumWriteRepo)

	// Initialize handlers
	listHousesHandler := handlers.NewListHousesHandler(listingsService)
	registerHouseHandler := handlers.NewRegisterHouseHandler(housesService)
	listReviewsHandler := handlers.NewListReviewsHandler(reviewsService)
	createReviewHandler := handlers.NewCreateReviewHandler(reviewsService)
	updateReviewHandler := handlers.NewUpdateReviewHandler(reviewsService)
	deleteReviewHandler := handlers.NewDeleteReviewHandler(reviewsService)
	listSavedHandler := handlers.NewListSavedHousesHandler(savedService)
	saveHouseHandler := handlers.NewSaveHouseHandler(savedService)
	unsaveHouseHandler := handlers.NewUnsaveHouseHandler(savedService)
	userActionHandler := handlers.NewUserActionHandler(authService)
	currentUserHandler := handlers.NewCurrentUserHandler(authService)
	listForumHandler := handlers.NewListForumPostsHandler(forumService)
	createForumHandler := handlers.NewCreateForumPostHandler(forumService)

	requireAuth := middlewares.AuthMiddleware(jwtSvc, sessionStore)
	optionalAuth := middlewares.OptionalAuthMiddleware(jwtSvc, sessionStore)
	withTx := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public reads; listings pick up is_saved when a token is present
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/houses", listHousesHandler)
		})
		r.Get("/reviews", listReviewsHandler)
		r.Get("/forum", listForumHandler)

		// Account actions; logout inspects the optional identity itself
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth, withTx)
			r.Post("/users", userActionHandler)
		})
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/users", currentUserHandler)
		})

		// Authenticated writes inside a per-request transaction
		r.Group(func(r chi.Router) {
			r.Use(requireAuth, withTx)
			r.Post("/houses", registerHouseHandler)
			r.Post("/reviews", createReviewHandler)
			r.Put("/reviews", updateReviewHandler)
			r.Delete("/reviews", deleteReviewHandler)
			r.Get("/saved_houses", listSavedHandler)
			r.Post("/saved_houses", saveHouseHandler)
			r.Delete("/saved_houses", unsaveHouseHandler)
		})

		// Forum posting honors the anonymous-board deployments
		r.Group(func(r chi.Router) {
			if forumRequireAuth {
				r.Use(requireAuth)
			} else {
				r.Use(optionalAuth)
			}
			r.Use(withTx)
			r.Post("/forum", createForumHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

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
