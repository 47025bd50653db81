package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tsgfulfillment.com/web/internal/config"
	"tsgfulfillment.com/web/internal/handlers"
	"tsgfulfillment.com/web/internal/headdoc"
	"tsgfulfillment.com/web/internal/i18n"
	webmw "tsgfulfillment.com/web/internal/middleware"
	"tsgfulfillment.com/web/internal/observability"
	"tsgfulfillment.com/web/internal/pages"
	"tsgfulfillment.com/web/internal/redirects"
	"tsgfulfillment.com/web/internal/seo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override environment values.
	addr := flag.String("addr", cfg.Server.Addr(), "HTTP listen address")
	flag.StringVar(&cfg.Paths.RedirectsFile, "redirects", cfg.Paths.RedirectsFile, "YAML redirect rules merged over the legacy table")
	flag.StringVar(&cfg.Paths.ContentDir, "content", cfg.Paths.ContentDir, "markdown content directory")
	flag.StringVar(&cfg.Paths.PublicDir, "public", cfg.Paths.PublicDir, "public assets directory")
	flag.StringVar(&cfg.Paths.ShellFile, "shell", cfg.Paths.ShellFile, "HTML shell document")
	flag.StringVar(&cfg.Paths.LocalesDir, "locales", cfg.Paths.LocalesDir, "YAML interface string overrides")
	flag.Parse()

	level := cfg.Log.Level
	if cfg.DevMode {
		level = "debug"
	}
	baseLogger, err := observability.NewLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("web")

	handler, err := newServer(cfg, logger, observability.NewMetrics(nil))
	if err != nil {
		logger.Fatal("failed to initialise server", zap.Error(err))
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("tsg web listening", zap.Bool("dev_mode", cfg.DevMode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newServer wires the redirect table, page catalog and shell into the HTTP router.
func newServer(cfg config.Config, logger *zap.Logger, metrics *observability.Metrics) (http.Handler, error) {
	table, err := redirects.Build(cfg.Paths.RedirectsFile)
	if err != nil {
		return nil, fmt.Errorf("load redirects: %w", err)
	}
	site := seo.Site{
		Origin:       cfg.Site.Origin,
		Brand:        cfg.Site.Brand,
		Description:  cfg.Site.Description,
		DefaultImage: cfg.Site.DefaultImage,
		TwitterSite:  cfg.Site.TwitterSite,
	}
	strs, err := i18n.Load(cfg.Paths.LocalesDir, "en")
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}
	catalog, err := pages.NewCatalog(site, pages.Options{
		ContentDir: cfg.Paths.ContentDir,
		PageSize:   cfg.Listing.PageSize,
		Languages:  cfg.Site.Languages,
		Strings:    strs,
	})
	if err != nil {
		return nil, fmt.Errorf("load pages: %w", err)
	}
	shell, err := loadShell(cfg.Paths.ShellFile)
	if err != nil {
		return nil, err
	}
	logger.Info("site loaded",
		zap.Int("redirects", table.Len()),
		zap.Int("pages", len(catalog.Paths())),
		zap.String("origin", site.AbsoluteURL("/")),
	)

	defaultLang := ""
	if len(cfg.Site.Languages) > 0 {
		defaultLang = cfg.Site.Languages[0]
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	r.Use(middleware.RealIP)
	r.Use(observability.TraceMiddleware())
	r.Use(observability.InjectLogger(logger))
	r.Use(observability.RequestLogger)
	r.Use(observability.Recovery)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	if dir := strings.TrimSpace(cfg.Paths.PublicDir); dir != "" {
		r.Handle("/assets/*", webmw.AssetsWithCache(filepath.Join(dir, "assets"), "/assets"))
	}

	r.Group(func(r chi.Router) {
		r.Use(redirects.Middleware(table, metrics))
		r.Use(webmw.Language(cfg.Site.Languages))
		pagesHandler := handlers.NewPages(shell, catalog, table, metrics, defaultLang)
		r.Method(http.MethodGet, "/*", pagesHandler)
		r.Method(http.MethodHead, "/*", pagesHandler)
	})
	return r, nil
}

func loadShell(path string) (*headdoc.Document, error) {
	if strings.TrimSpace(path) == "" {
		return headdoc.New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shell: %w", err)
	}
	defer f.Close()
	doc, err := headdoc.Parse(f)
	if err != nil {
		return nil, err
	}
	if _, ok := doc.ElementByID("root"); !ok {
		return nil, fmt.Errorf("shell %s: no element with id \"root\"", path)
	}
	return doc, nil
}
