// cmd/wizard-server/main.go
package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pageant-wizard/internal/common/config"
	"pageant-wizard/internal/common/logger"
	"pageant-wizard/internal/gateway"
	"pageant-wizard/internal/notify"
	"pageant-wizard/internal/server"
	"pageant-wizard/internal/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zlog.Sync() }()
	log := logger.NewZapAdapter(zlog)

	zlog.Info("starting wizard server",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
		zap.String("address", cfg.Server.Address),
	)

	gw, err := gateway.NewHTTPGateway(
		cfg.Gateway.URL,
		time.Duration(cfg.Gateway.Timeout)*time.Millisecond,
		log,
	)
	if err != nil {
		zlog.Fatal("failed to build submission gateway", zap.Error(err))
	}

	var notifier wizard.Notifier
	if cfg.Notifications.Enabled {
		n, err := notify.New(context.Background(), notify.Config{
			AWSRegion:   cfg.Notifications.AWSRegion,
			SenderEmail: cfg.Notifications.SenderEmail,
			SNSTopicARN: cfg.Notifications.SNSTopicARN,
		}, log)
		if err != nil {
			zlog.Fatal("failed to build notifier", zap.Error(err))
		}
		notifier = n
	}

	limits := wizard.Limits{
		WordLimit:     cfg.Wizard.WordLimit,
		AgeMin:        cfg.Wizard.AgeMin,
		AgeMax:        cfg.Wizard.AgeMax,
		MaxPhotoBytes: cfg.Wizard.MaxPhotoBytes,
	}
	validator := wizard.NewValidator(limits)
	sequencer := wizard.NewSequencer()

	sessions := server.NewSessionManager(func() *wizard.Controller {
		return wizard.NewController(validator, sequencer, gw, notifier, log)
	})
	api := server.New(sessions, cfg.Wizard.MaxPhotoBytes, log)

	apiServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: api.Handler(),
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    cfg.Server.MetricsAddress,
		Handler: metricsMux,
	}

	go func() {
		zlog.Info("metrics listening", zap.String("address", cfg.Server.MetricsAddress))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Error("metrics server stopped", zap.Error(err))
		}
	}()

	go func() {
		zlog.Info("api listening", zap.String("address", cfg.Server.Address))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("api server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		zlog.Error("api shutdown error", zap.Error(err))
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		zlog.Error("metrics shutdown error", zap.Error(err))
	}
	zlog.Info("stopped")
}
