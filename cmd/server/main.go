package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/nigelapi/internal/cache"
	"github.com/example/nigelapi/internal/config"
	"github.com/example/nigelapi/internal/handlers"
	apihttp "github.com/example/nigelapi/internal/http"
	"github.com/example/nigelapi/internal/logging"
	"github.com/example/nigelapi/internal/rate"
)

var (
	cfgFile     string
	flagHost    string
	flagPort    string
	flagDebug   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "nigel-server",
	Short: "Serve the Nigel Number API",
	Long: `nigel-server exposes the Nigel Number calculation over HTTP.

The Nigel Number of N is the sum of all primes less than or equal to N.

Examples:
  nigel-server                      # start with default settings
  nigel-server --host 0.0.0.0       # allow external connections
  nigel-server --port 9000          # use a custom port
  nigel-server --debug              # enable debug logging

Environment variables:
  NIGEL_API_HOST    default host (default: 127.0.0.1)
  NIGEL_API_PORT    default port (default: 8080)
  NIGEL_API_DEBUG   enable debug mode (true/1/yes)`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	rootCmd.Flags().StringVar(&flagHost, "host", "", "host to bind the server to")
	rootCmd.Flags().StringVar(&flagPort, "port", "", "port to bind the server to")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug mode")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithFile(cfgFile)
	if err != nil {
		return err
	}
	if flagHost != "" {
		cfg.Host = flagHost
	}
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagDebug {
		cfg.Debug = true
	}
	cfg.Port = sanitizePort(cfg.Port)
	if err := validatePort(cfg.Port); err != nil {
		return err
	}
	if cfg.Debug || flagVerbose {
		cfg.LogLevel = "debug"
	}
	if err := logging.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	defer logging.Sync()

	// deps
	c := cache.New(cfg.CacheTTL)
	nh := handlers.NewNigelHandler(handlers.NigelDeps{
		Cache:   c,
		Timeout: cfg.RequestTimeout,
		MaxN:    cfg.MaxN,
	})
	lm := rate.NewLimiterMap(cfg.RateLimitRPM, cfg.RateLimitRPM, 5*time.Minute)
	defer lm.Stop()

	router := apihttp.NewRouter(nh, lm)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("listening",
			zap.String("addr", srv.Addr),
			zap.Bool("debug", cfg.Debug))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}
	logging.Logger.Info("shutting down")
	shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shCancel()
	return srv.Shutdown(shCtx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
