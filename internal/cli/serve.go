package cli

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookkept/matchd/internal/api"
	"github.com/bookkept/matchd/internal/domain/matcher"
	"github.com/bookkept/matchd/internal/infrastructure/config"
	"github.com/bookkept/matchd/internal/infrastructure/logging"
)

// ServeFlags holds the CLI flags for the serve command.
type ServeFlags struct {
	Port       int
	ConfigPath string
	Verbose    bool
}

// ParseServeFlags parses command line flags for the serve command.
func ParseServeFlags() *ServeFlags {
	flags := &ServeFlags{}
	flag.IntVar(&flags.Port, "port", 0, "Port to listen on (0 = from config)")
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Configuration file path")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// NewMatcher builds the matching engine from configuration. A zero
// threshold in the config keeps the engine default.
func NewMatcher(cfg *config.Config) *matcher.Matcher {
	matcherCfg := matcher.DefaultConfig()
	if cfg.Matcher.Threshold > 0 {
		matcherCfg.Threshold = cfg.Matcher.Threshold
	}
	return matcher.New(matcherCfg)
}

// RunServe runs the API server until interrupted.
func RunServe(cfg *config.Config, flags *ServeFlags) error {
	loggingCfg := cfg.Observability.Logging
	if flags.Verbose {
		loggingCfg.Level = "debug"
	}
	logger := logging.NewLoggerWithComponent(loggingCfg, "api")

	apiCfg := api.DefaultConfig()
	if cfg.Server.Port > 0 {
		apiCfg.Port = cfg.Server.Port
	}
	if flags.Port > 0 {
		apiCfg.Port = flags.Port
	}
	if len(cfg.Server.AllowedOrigins) > 0 {
		apiCfg.AllowedOrigins = cfg.Server.AllowedOrigins
	}

	server := api.NewServer(apiCfg, NewMatcher(cfg), logger)

	// Handle graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("received shutdown signal")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		close(done)
	}()

	// Start server (blocks until shutdown)
	if err := server.Start(); err != nil {
		return err
	}

	<-done
	logger.Info("server stopped")
	return nil
}
