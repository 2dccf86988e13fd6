// Package main is the entry point for the xmlsense completion server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/dshills/xmlsense/internal/catalog"
	"github.com/dshills/xmlsense/internal/completion"
	"github.com/dshills/xmlsense/internal/config"
	"github.com/dshills/xmlsense/internal/logging"
	"github.com/dshills/xmlsense/internal/script"
	"github.com/dshills/xmlsense/internal/search"
	"github.com/dshills/xmlsense/internal/server"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	addr        string
	logLevel    string
	catalogPath string
	scriptPath  string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, done := parseFlags()
	if done {
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, err := logging.NewLogger(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Error("failed to load catalog", zap.Error(err))
		return 1
	}

	searcher := search.NewSearcher()
	if cfg.Scoring.Script != "" {
		scorer, err := script.LoadFile(cfg.Scoring.Script)
		if err != nil {
			logger.Error("failed to load score script", zap.Error(err))
			return 1
		}
		defer scorer.Close()
		searcher.SetScorer(scorer)
		logger.Info("using scripted scorer", zap.String("script", cfg.Scoring.Script))
	}

	session := completion.NewSession(cat,
		completion.WithSearcher(searcher),
		completion.WithSearchOptions(cfg.SearchOptions()),
		completion.WithAdvancedSearch(cfg.Search.SearchDescriptions || cfg.Search.SearchDataTypes),
	)

	srv := server.NewServer(session, searcher, cfg.SearchOptions(), &cfg.Server, logger)

	// Graceful shutdown on SIGINT/SIGTERM.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace())
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logger.Warn("shutdown incomplete", zap.Error(err))
		}
	}()

	logger.Info("xmlsense starting",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr))
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", zap.Error(err))
		return 1
	}
	return 0
}

func loadCatalog(cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Builtin(), nil
	}
	logger.Info("loading user catalog", zap.String("path", cfg.Catalog.Path))
	return catalog.Load(cfg.Catalog.Path)
}

// applyOverrides lets flags win over the config file.
func applyOverrides(cfg *config.Config, opts options) {
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.logLevel != "" {
		cfg.Server.LogLevel = opts.logLevel
	}
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	if opts.scriptPath != "" {
		cfg.Scoring.Script = opts.scriptPath
	}
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "xmlsense.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "xmlsense.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.addr, "addr", "", "Listen address (overrides config)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.catalogPath, "catalog", "", "Path to a candidate catalog JSON file")
	flag.StringVar(&opts.scriptPath, "script", "", "Path to a Lua score script")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if showVersion {
		fmt.Printf("xmlsense %s (%s, built %s)\n", version, commit, date)
		return opts, true
	}
	return opts, false
}
