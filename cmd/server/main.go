package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"sagarneeli.dev/internal/config"
	"sagarneeli.dev/internal/content"
	"sagarneeli.dev/internal/handlers"
	"sagarneeli.dev/internal/profileapi"
	"sagarneeli.dev/internal/render"
	"sagarneeli.dev/web"
)

var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Portfolio server\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  APP_ENV                Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  LOG_LEVEL              debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SERVER_ADDR            Listen address (default: :8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CONTENT_ROOT           Directory content paths are resolved against (default: .)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CONTENT_PATH           Content document, .json or .yaml (default: content/content.json)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CONTENT_CACHE          Keep the first successful load (default: true)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SITE_LOCALE            Locale for month names (default: en)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PROFILE_API_BASE_URL   Portfolio API base URL (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PROFILE_API_TIMEOUT    Per-request timeout (default: 5s)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PROFILE_API_RPS        Outbound requests per second, 0 disables limiting (default: 5)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PROFILE_API_BURST      Outbound burst size (default: 10)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("portfolio %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
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

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	provider := content.NewProvider(cfg.ContentRoot, cfg.ContentPath,
		content.WithCache(cfg.ContentCache),
		content.WithLogger(logger),
	)
	if _, err := provider.Content(); err != nil {
		// not fatal: requests keep retrying and render the error page meanwhile
		logger.Warn("content not available at startup", "error", err)
	}

	remote := profileapi.New(cfg.ProfileAPIBaseURL,
		profileapi.WithTimeout(cfg.ProfileAPITimeout),
		profileapi.WithRateLimit(cfg.ProfileAPIRPS, cfg.ProfileAPIBurst),
		profileapi.WithLogger(logger),
	)
	if remote.Enabled() {
		logger.Info("profile api enabled", "base_url", cfg.ProfileAPIBaseURL)
	}

	tmpl, err := render.NewTemplates(web.Templates)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("loading static files: %w", err)
	}

	router := handlers.SetupRoutes(cfg, handlers.Deps{
		Logger:    logger,
		Content:   provider,
		Remote:    remote,
		Templates: tmpl,
		Static:    static,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.ServerAddr, "env", cfg.Env, "version", appVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newLogger uses text output in development and JSON otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
