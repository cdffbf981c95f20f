package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsgateway/fsgateway/internal/config"
	"github.com/fsgateway/fsgateway/internal/logging"
	"github.com/fsgateway/fsgateway/internal/server"
)

func main() {
	// Parse flags
	port := flag.String("port", "", "Server port")
	host := flag.String("host", "", "Bind address")
	configFile := flag.String("config", "", "Allow-list file (json, yaml or toml)")
	roots := flag.String("roots", "", "Comma-separated allowed directories")
	extensions := flag.String("extensions", "", "Comma-separated allowed file extensions")
	ignore := flag.String("ignore", "", "Comma-separated glob patterns to skip during discovery")
	dev := flag.Bool("dev", false, "Development mode (colored logs, debug level)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	applyFlags(cfg, *port, *host, *configFile, *roots, *extensions, *ignore, *dev)

	logger := newLogger(cfg)
	defer logger.Sync()

	// The allow-list file fills whatever flags and environment left unset.
	// A missing or unparseable file degrades to empty allow-lists: the
	// server still starts, but every request is denied.
	fc, err := config.LoadFile(cfg.Gateway.ConfigFile)
	if err != nil {
		logger.Warn("allow-list file unavailable, starting with access denied",
			logging.String("path", cfg.Gateway.ConfigFile),
			logging.Err(err),
		)
	}
	cfg.ApplyFile(fc)

	logger.Info("filesystem gateway starting",
		logging.Strings("roots", cfg.Gateway.Roots),
		logging.Strings("extensions", cfg.Gateway.Extensions),
		logging.String("port", cfg.Server.Port),
	)

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", logging.Err(err))
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(cfg.Server.Host + ":" + cfg.Server.Port); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("shutting down gracefully")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("error during shutdown", logging.Err(err))
		}
	case err := <-errChan:
		logger.Fatal("server error", logging.Err(err))
	}
}

// newLogger builds the logger from the configured level and mode, falling
// back to defaults when the level does not parse.
func newLogger(cfg *config.Config) *logging.Logger {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		logger = logging.NewDefault()
		logger.Warn("invalid log level, using info", logging.String("level", cfg.Logging.Level))
	}
	return logger
}

// applyFlags overrides config with explicitly set flags; flags win over
// environment, which wins over the allow-list file.
func applyFlags(cfg *config.Config, port, host, configFile, roots, extensions, ignore string, dev bool) {
	if port != "" {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if configFile != "" {
		cfg.Gateway.ConfigFile = configFile
	}
	if roots != "" {
		cfg.Gateway.Roots = splitList(roots)
	}
	if extensions != "" {
		cfg.Gateway.Extensions = splitList(extensions)
	}
	if ignore != "" {
		cfg.Gateway.IgnorePatterns = splitList(ignore)
	}
	if dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
