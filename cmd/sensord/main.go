package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sensord/internal/bus"
	"sensord/internal/config"
	"sensord/internal/consumer"
	"sensord/internal/httpapi"
	"sensord/internal/sensor"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// Flag defaults honor environment overrides, config file fills the rest.
	defaultAddr := ":8080"
	if v := os.Getenv("SENSORD_ADDR"); v != "" {
		defaultAddr = v
	}

	var (
		cfgPath  string
		addr     string
		logLevel string
		runFor   time.Duration
	)

	root := &cobra.Command{
		Use:           "sensord",
		Short:         "Simulated sensor pipeline over an asynchronous event bus",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{}
			if cfgPath != "" {
				var err error
				if cfg, err = config.Load(cfgPath); err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			// Flags win over the config file when set explicitly.
			if cmd.Flags().Changed("addr") || cfg.Addr == "" {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
				cfg.LogLevel = logLevel
			}
			if !cmd.Flags().Changed("run-for") && cfg.RunSeconds > 0 {
				runFor = time.Duration(cfg.RunSeconds) * time.Second
			}
			return run(cfg, runFor)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "Path to config file (.yaml/.json/.toml)")
	root.Flags().StringVar(&addr, "addr", defaultAddr, "HTTP listen address, e.g. :8080")
	root.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	root.Flags().DurationVar(&runFor, "run-for", 0, "Stop after this duration (0 = run until signal)")
	return root
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

func interval(sec int, fallback time.Duration) time.Duration {
	if sec > 0 {
		return time.Duration(sec) * time.Second
	}
	return fallback
}

func run(cfg config.Config, runFor time.Duration) error {
	logger := newLogger(cfg.LogLevel)

	b := bus.New(bus.WithLogger(logger.With().Str("component", "bus").Logger()))
	consumer.NewLogger(b, logger.With().Str("component", "consumer").Logger())
	consumer.NewMetrics(b)

	seed := uint32(time.Now().UnixNano())
	simLog := logger.With().Str("component", "simulator").Logger()
	sims := []*sensor.Simulator{
		sensor.NewSimulator(sensor.NewDevice(sensor.KindCO, seed),
			interval(cfg.GasIntervalSec, sensor.DefaultCOInterval), b, simLog),
		sensor.NewSimulator(sensor.NewDevice(sensor.KindTemperature, seed+1),
			interval(cfg.TempIntervalSec, sensor.DefaultTemperatureInterval), b, simLog),
		sensor.NewSimulator(sensor.NewDevice(sensor.KindPressure, seed+2),
			interval(cfg.PressureIntervalSec, sensor.DefaultPressureInterval), b, simLog),
	}
	fleet := sensor.NewFleet(logger.With().Str("component", "fleet").Logger())
	for _, s := range sims {
		fleet.Add(s)
	}

	b.Start()
	fleet.StartAll()

	svc := newService(b, fleet, sims)
	httpapi.SetLogger(logger.With().Str("component", "http").Logger())
	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(svc)}
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("sensord listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("server error")
		}
	}()

	// Run until signal (Ctrl+C / SIGTERM) or the optional deadline.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	var deadline <-chan time.Time
	if runFor > 0 {
		deadline = time.After(runFor)
	}
	select {
	case <-stop:
		logger.Info().Msg("signal received, stopping")
	case <-deadline:
		logger.Info().Dur("run_for", runFor).Msg("run duration reached, stopping")
	}

	// Stop producers first, then drain the bus.
	fleet.StopAll()
	b.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}
