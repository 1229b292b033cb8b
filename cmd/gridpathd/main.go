// Command gridpathd serves path searches over HTTP (see package server).
//
// Configuration, flags override the environment:
//
//	-addr      GRIDPATH_ADDR   listen address, default ":8080"
//	-release   GRIDPATH_ENV    "production" selects gin release mode and
//	                           JSON production logging
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
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/server"
)

const (
	defaultAddr     = ":8080"
	shutdownTimeout = 5 * time.Second
)

type config struct {
	addr    string
	release bool
}

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := newLogger(cfg.release)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = serve(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// loadConfig reads the environment through getenv, then applies flags.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	cfg := config{
		addr:    defaultAddr,
		release: getenv("GRIDPATH_ENV") == "production",
	}
	if v := getenv("GRIDPATH_ADDR"); v != "" {
		cfg.addr = v
	}

	fs := flag.NewFlagSet("gridpathd", flag.ContinueOnError)
	fs.StringVar(&cfg.addr, "addr", cfg.addr, "listen address")
	fs.BoolVar(&cfg.release, "release", cfg.release, "release mode")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(release bool) (*zap.Logger, error) {
	if release {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// serve runs the HTTP server until ctx is done, then shuts it down.
func serve(ctx context.Context, cfg config, log *zap.Logger) error {
	if cfg.release {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           server.New(log.Named("http")).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.addr), zap.Bool("release", cfg.release))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("gridpathd: shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
