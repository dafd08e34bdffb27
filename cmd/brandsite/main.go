// Command brandsite runs the bilingual marketing site and its admin API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/lorenzapy/brandsite/internal/cache"
	"github.com/lorenzapy/brandsite/internal/config"
	"github.com/lorenzapy/brandsite/internal/handler"
	"github.com/lorenzapy/brandsite/internal/i18n"
	"github.com/lorenzapy/brandsite/internal/logging"
	"github.com/lorenzapy/brandsite/internal/middleware"
	"github.com/lorenzapy/brandsite/internal/service"
	"github.com/lorenzapy/brandsite/internal/session"
	"github.com/lorenzapy/brandsite/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "none"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "brandsite - bilingual marketing site and admin API\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BRAND_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BRAND_DB_PATH          SQLite database path (default: ./data/brandsite.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BRAND_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BRAND_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BRAND_UPLOADS_DIR      Uploaded media directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BRAND_REDIS_URL        Redis URL for the content cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BRAND_DO_SEED          Seed admin user and default content (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("brandsite %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(textHandler)
	slog.SetDefault(logger)

	// Initialize i18n system for localized API messages
	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}
	slog.Info("i18n system initialized", "languages", i18n.SupportedLanguages)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// Upgrade the default logger so warnings and errors also land in the
	// events table, where the admin dashboard reads them.
	eventLogger := slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(eventLogger)
	logger = eventLogger

	ctx := context.Background()
	queries := store.New(db)

	if cfg.DoSeed {
		if err := store.Seed(ctx, queries, logger, store.SeedParams{
			AdminEmail:    cfg.AdminEmail,
			AdminPassword: cfg.AdminPassword,
		}); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	// Content cache: Redis when configured, in-process memory otherwise.
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	var cacheBackend cache.Cache
	if cfg.UseRedisCache() {
		redisCache, err := cache.NewRedisCacheFromURL(cfg.RedisURL, cfg.CachePrefix, cacheTTL)
		if err != nil {
			slog.Warn("redis cache unavailable, falling back to memory cache", "error", err)
		} else {
			slog.Info("using redis content cache")
			cacheBackend = redisCache
		}
	}
	if cacheBackend == nil {
		cacheBackend = cache.NewMemoryCache(cache.MemoryCacheOptions{
			DefaultTTL:      cacheTTL,
			MaxSize:         cfg.CacheMaxSize,
			CleanupInterval: time.Minute,
		})
	}
	defer func() {
		if err := cacheBackend.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()

	// Services
	eventService := service.NewEventService(db)
	contentService := service.NewContentService(db, cacheBackend, cacheTTL, logger)
	mediaService := service.NewMediaService(cfg.UploadsDir, cfg.PublicBaseURL)

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(db, sessionManager, eventService, loginProtection)
	frontendHandler := handler.NewFrontendHandler(db, contentService)
	contentHandler := handler.NewContentHandler(db, contentService, eventService)
	teamHandler := handler.NewTeamHandler(db, contentService, eventService)
	testimonialHandler := handler.NewTestimonialHandler(db, contentService, eventService)
	settingsHandler := handler.NewSettingsHandler(db, contentService, eventService)
	uploadHandler := handler.NewUploadHandler(mediaService, eventService)
	eventsHandler := handler.NewEventsHandler(eventService)
	overviewHandler := handler.NewOverviewHandler(db)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.Language())

	r.Get("/health", healthHandler.Health)

	// Uploaded media (hero image, team carousel photos)
	uploadsHandler := middleware.StaticCache(604800)(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(mediaService.UploadDir()))))
	r.Handle("/uploads/*", uploadsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		// Public section payloads for the frontend
		r.Get("/sections/{section}", frontendHandler.Section)

		r.Group(func(r chi.Router) {
			r.Use(loginProtection.Middleware())
			r.Post("/auth/login", authHandler.Login)
		})
		r.Post("/auth/logout", authHandler.Logout)

		// Admin routes require an authenticated admin session
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadUser(sessionManager, db))
			r.Use(middleware.RequireAdmin())
			r.Use(csrfMiddleware)

			r.Get("/auth/me", authHandler.Me)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/overview", overviewHandler.Overview)

				r.Get("/content", contentHandler.List)
				r.Put("/content", contentHandler.Save)

				r.Get("/team", teamHandler.List)
				r.Post("/team", teamHandler.Create)
				r.Patch("/team/{id}", teamHandler.Toggle)
				r.Delete("/team/{id}", teamHandler.Delete)

				r.Get("/testimonials", testimonialHandler.List)
				r.Post("/testimonials", testimonialHandler.Save)
				r.Patch("/testimonials/{id}", testimonialHandler.Toggle)
				r.Delete("/testimonials/{id}", testimonialHandler.Delete)

				r.Get("/settings", settingsHandler.Get)
				r.Put("/settings", settingsHandler.Save)

				r.Post("/upload", uploadHandler.Upload)

				r.Get("/events", eventsHandler.List)
				r.Delete("/events", eventsHandler.Prune)
			})
		})
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Allow for slow upload connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
