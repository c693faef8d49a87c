package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"qkart/internal/logging"
	"qkart/internal/mockapi"
)

func main() {
	var (
		addr     string
		latency  time.Duration
		failWith int
		logLevel string
		users    []string
	)
	pflag.StringVar(&addr, "addr", ":8082", "listen address")
	pflag.DurationVar(&latency, "latency", 0, "artificial delay added to every response")
	pflag.IntVar(&failWith, "fail", 0, "answer every request with this HTTP status")
	pflag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pflag.StringSliceVar(&users, "user", nil, "seed an account as username:password (repeatable)")
	pflag.Parse()

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qkart-mockapi: %v\n", err)
		os.Exit(2)
	}
	logger := logging.NewLogger(os.Stderr, level)

	backend := mockapi.New(mockapi.SampleCatalog(), logger)
	backend.SetLatency(latency)
	backend.SetFailure(failWith)
	for _, u := range users {
		name, password, ok := splitUser(u)
		if !ok {
			fmt.Fprintf(os.Stderr, "qkart-mockapi: bad --user %q, want username:password\n", u)
			os.Exit(2)
		}
		backend.AddUser(name, password)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           backend,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving mock backend", "addr", addr, "prefix", mockapi.Prefix, "latency", latency)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func splitUser(s string) (string, string, bool) {
	name, password, ok := strings.Cut(s, ":")
	return name, password, ok && name != "" && password != ""
}
