package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/RemiKalbe/unicode-explorer/api"
	"github.com/RemiKalbe/unicode-explorer/conf"
	"github.com/RemiKalbe/unicode-explorer/logger"
	"github.com/RemiKalbe/unicode-explorer/names"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath = kingpin.Flag("config", "optional YAML config file").String()
	addr       = kingpin.Flag("addr", "listen address").String()
	dataDir    = kingpin.Flag("data-dir", "directory with per-block name files").String()
	debug      = kingpin.Flag("debug", "enable debug logging").Bool()
)

func main() {
	kingpin.Parse()

	if *configPath != "" {
		if err := conf.Load(*configPath); err != nil {
			logger.Fatal("loading config", zap.Error(err))
		}
	}
	// flags win over the config file
	if *addr != "" {
		conf.HTTPAddr = *addr
	}
	if *dataDir != "" {
		conf.DataDir = *dataDir
	}
	if *debug {
		conf.Debug = true
	}
	if conf.Debug {
		logger.SetLevel(zapcore.DebugLevel)
	}
	defer logger.Sync()

	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Info(fmt.Sprintf(format, args...))
	}))

	srv := api.NewServer(conf.HTTPAddr, names.NewLoader(conf.DataDir), conf.PageLimit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("bye")
}
