// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
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

	"github.com/eduree/metaon/internal/assistant"
	"github.com/eduree/metaon/internal/auth"
	"github.com/eduree/metaon/internal/config"
	"github.com/eduree/metaon/internal/geoip"
	"github.com/eduree/metaon/internal/handler"
	"github.com/eduree/metaon/internal/logging"
	"github.com/eduree/metaon/internal/middleware"
	"github.com/eduree/metaon/internal/relay"
	"github.com/eduree/metaon/internal/render"
	"github.com/eduree/metaon/internal/scheduler"
	"github.com/eduree/metaon/internal/service"
	"github.com/eduree/metaon/internal/session"
	"github.com/eduree/metaon/internal/store"
	"github.com/eduree/metaon/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "MetaOn - bilingual marketing site and CMS\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  METAON_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  METAON_STORE_BACKEND    Content store: file|sqlite|redis (default: file)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  METAON_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  METAON_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  METAON_GEMINI_API_KEY   Gemini API key for the chat assistant (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  METAON_RELAY_URL        Form relay endpoint for home-page inquiries (optional)\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("metaon %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
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

	logger, recentEvents := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	// Content store backend. All three persist the content root as one
	// blob under one key; SQLite additionally hosts the session table.
	var (
		backend store.Backend
		db      *sql.DB
	)
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		dbDir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		slog.Info("initializing database", "path", cfg.DBPath)
		db, err = store.NewDB(cfg.DBPath)
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
		backend = store.NewSQLiteBackend(db)
	case config.BackendRedis:
		redisBackend, err := store.NewRedisBackend(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("initializing redis backend: %w", err)
		}
		defer func() {
			if err := redisBackend.Close(); err != nil {
				slog.Error("error closing redis connection", "error", err)
			}
		}()
		if err := redisBackend.Ping(context.Background()); err != nil {
			return err
		}
		backend = redisBackend
	default:
		backend = store.NewFileBackend(cfg.DataPath)
	}
	slog.Info("content store backend initialized", "backend", cfg.StoreBackend)

	ctx := context.Background()
	contentStore := store.New(backend, logger)
	if err := contentStore.Load(ctx); err != nil {
		return fmt.Errorf("loading content store: %w", err)
	}
	slog.Info("content store loaded",
		"posts", len(contentStore.GetPosts()),
		"sections", len(contentStore.GetSections()),
	)

	// Initialize session manager; sessions live in SQLite when available.
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized", "persistent", db != nil)

	// Initialize template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// Admin gate
	adminGate := auth.NewGate(cfg.AdminPassword, cfg.AdminPasswordHash)

	// Chat assistant (optional)
	var chatAssistant *assistant.Assistant
	if cfg.ChatEnabled() {
		var provider assistant.Provider
		if cfg.ChatProvider == config.ProviderOpenAI {
			provider = assistant.NewOpenAIProvider(cfg.ChatAPIKey(), cfg.ChatModel)
		} else {
			provider = assistant.NewGeminiProvider(cfg.ChatAPIKey(), cfg.ChatModel)
		}
		chatAssistant = assistant.New(provider, logger)
		slog.Info("chat assistant initialized", "provider", provider.Name(), "model", cfg.ChatModel)
	} else {
		slog.Warn("chat assistant disabled: no API key configured")
	}

	// Form relay (optional)
	var relayClient *relay.Client
	if cfg.RelayEnabled() {
		relayClient = relay.New(cfg.RelayURL)
		slog.Info("inquiry relay initialized")
	} else {
		slog.Warn("inquiry relay disabled: home-page inquiries will be recorded locally only")
	}

	// GeoIP country lookup (optional)
	geo := geoip.NewLookup()
	if cfg.GeoIPEnabled() {
		if err := geo.Init(cfg.GeoIPDBPath); err != nil {
			slog.Warn("GeoIP lookup disabled", "error", err)
		} else {
			slog.Info("GeoIP lookup initialized", "path", cfg.GeoIPDBPath)
		}
	}
	defer func() {
		if err := geo.Close(); err != nil {
			slog.Error("error closing GeoIP database", "error", err)
		}
	}()

	// Services
	inquiries := service.NewInquiries(contentStore, relayClient, logger)
	assets := service.NewAssets(contentStore, logger)

	// Snapshot backup job
	if cfg.BackupsEnabled() {
		backups := scheduler.New(contentStore, cfg.BackupDir, logger)
		if err := backups.Start(cfg.BackupSchedule); err != nil {
			return fmt.Errorf("starting backup scheduler: %w", err)
		}
		defer backups.Stop()
		slog.Info("snapshot backups scheduled", "schedule", cfg.BackupSchedule, "dir", cfg.BackupDir)
	}

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))
	r.Use(middleware.RequestPath)
	r.Use(sessionManager.LoadAndSave)

	// CSRF protection, applied globally; the JSON chat endpoint is called
	// from page scripts without a form token and is exempted.
	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	r.Use(middleware.SkipCSRF(handler.RouteChatAPI))
	r.Use(middleware.CSRF(csrfConfig))
	slog.Info("CSRF protection initialized")

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	chatRateLimiter := middleware.NewIPRateLimiter(1, 5)

	// Initialize handlers
	frontendHandler := handler.NewFrontendHandler(contentStore, renderer, inquiries, geo, cfg.SiteURL, cfg.IsDevelopment())
	authHandler := handler.NewAuthHandler(adminGate, renderer, sessionManager, loginProtection)
	adminHandler := handler.NewAdminHandler(contentStore, renderer, sessionManager, recentEvents)
	assetsHandler := handler.NewAssetsHandler(adminHandler, assets)
	chatHandler := handler.NewChatHandler(chatAssistant)

	// Public frontend routes
	r.Get(handler.RouteRoot, frontendHandler.Home)
	r.Post(handler.RouteRoot, frontendHandler.SubmitInquiry)
	r.Get(handler.RouteAbout, frontendHandler.About)
	r.Get(handler.RouteFeatures, frontendHandler.Features)
	r.Get(handler.RouteClients, frontendHandler.Clients)
	r.Get(handler.RouteNews, frontendHandler.News)
	r.Get(handler.RoutePostSlug, frontendHandler.Post)
	r.Get(handler.RouteContact, frontendHandler.Contact)
	r.Post(handler.RouteContact, frontendHandler.SubmitContact)
	r.Post(handler.RouteLanguage, frontendHandler.SetLanguage)
	r.Get(handler.RouteSitemap, frontendHandler.Sitemap)
	r.Get(handler.RouteRobots, frontendHandler.Robots)

	// Chat assistant endpoint (JSON, rate limited per IP)
	r.With(chatRateLimiter.Middleware()).Post(handler.RouteChatAPI, chatHandler.Chat)

	// Auth routes
	r.Get(handler.RouteLogin, authHandler.LoginForm)
	r.With(loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
	r.Post(handler.RouteLogout, authHandler.Logout)

	// Admin routes (protected)
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Admin(sessionManager))

		r.Get(handler.RouteRoot, adminHandler.Dashboard)

		r.Get(handler.RoutePosts, adminHandler.Posts)
		r.Get(handler.RoutePosts+"/new", adminHandler.PostNew)
		r.Post(handler.RoutePosts, adminHandler.PostSave)
		r.Get(handler.RoutePosts+handler.RouteParamID, adminHandler.PostEdit)
		r.Post(handler.RoutePosts+handler.RouteParamID, adminHandler.PostSave)
		r.Post(handler.RoutePosts+handler.RouteParamID+"/delete", adminHandler.PostDelete)

		r.Get(handler.RouteSections, adminHandler.Sections)
		r.Get(handler.RouteSections+handler.RouteParamID, adminHandler.SectionEdit)
		r.Post(handler.RouteSections+handler.RouteParamID, adminHandler.SectionUpdate)

		r.Get(handler.RouteInquiries, adminHandler.Inquiries)

		r.Get(handler.RouteAssets, assetsHandler.List)
		r.Post(handler.RouteAssets+"/upload", assetsHandler.Upload)
		r.Post(handler.RouteAssets+handler.RouteParamID+"/delete", assetsHandler.Delete)

		r.Get(handler.RouteSettings, adminHandler.Settings)
		r.Post(handler.RouteSettings, adminHandler.SettingsUpdate)
	})

	// Static file serving from the embedded filesystem
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.NotFound(frontendHandler.NotFound)

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
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
