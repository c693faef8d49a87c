package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"qkart/internal/api"
	"qkart/internal/config"
	"qkart/internal/eventbus"
	"qkart/internal/logging"
	"qkart/internal/search"
	"qkart/internal/session"
	"qkart/internal/ui"
)

// options holds the command line flags
type options struct {
	configPath  string
	baseURL     string
	debounce    time.Duration
	timeout     time.Duration
	logLevel    string
	logFile     string
	writeConfig bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("qkart", pflag.ContinueOnError)
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to the config file (default "+config.DefaultPath()+")")
	fs.StringVar(&opts.baseURL, "base-url", "", "backend API base URL")
	fs.DurationVar(&opts.debounce, "debounce", 0, "pause in typing before a search is sent")
	fs.DurationVar(&opts.timeout, "timeout", 0, "timeout of a single backend request")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&opts.logFile, "log-file", "", "log file")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "save the effective configuration and exit")
	return fs
}

// applyFlags overrides config values with the flags that were set
func applyFlags(cfg *config.Config, fs *pflag.FlagSet, opts *options) {
	if fs.Changed("base-url") {
		cfg.API.BaseURL = opts.baseURL
	}
	if fs.Changed("debounce") {
		cfg.Search.Debounce = config.Duration(opts.debounce)
	}
	if fs.Changed("timeout") {
		cfg.API.Timeout = config.Duration(opts.timeout)
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if fs.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "qkart: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Create event bus
	bus := eventbus.New(nil)
	defer bus.Close()

	configSvc := config.NewConfigService(opts.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cfg, fs, &opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if opts.writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", configSvc.Path())
		return nil
	}

	// Set up logging
	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger, logFile, err := logging.OpenFile(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger.Info("starting qkart", "config", configSvc.Path(), "base_url", cfg.API.BaseURL)

	client, err := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout.Std()),
		api.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	sessions := session.NewManager(client, bus, logger)

	// The program is created after the pipeline, which needs to notify it
	var program *tea.Program
	pipeline := search.New(client,
		search.WithWindow(cfg.Search.Debounce.Std()),
		search.WithTimeout(cfg.API.Timeout.Std()),
		search.WithLogger(logger),
		search.WithNotify(func() {
			if program != nil {
				program.Send(ui.SearchUpdatedMsg{})
			}
		}),
	)
	defer pipeline.Close()

	uiModel := ui.NewModel(cfg, pipeline, sessions, bus, logger)
	program = tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(program)

	// Forward session events to the UI
	forward := func(e eventbus.DomainEvent) {
		program.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventLoggedIn,
		eventbus.EventLoggedOut,
		eventbus.EventRegistered,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	// Handle interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("qkart exited", slog.Any("stats", pipeline.Stats()))
	return nil
}
