// Command dlpgateway is a minimal HTTP front end for the detection
// pipeline: it loads configuration, builds a Scanner, and exposes it over
// POST /v1/scan for manual exercise of the pipeline.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/sentineldlp/gateway/internal/apihandler"
	"github.com/sentineldlp/gateway/internal/config"
	"github.com/sentineldlp/gateway/pkg/dlp"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	cfgPath := os.Getenv("DLPGATEWAY_CONFIG")
	cfg, err := config.LoadFile(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	scanner, err := dlp.NewScanner(cfg, nil)
	if err != nil {
		log.WithError(err).Fatal("failed to build scanner")
	}

	h := apihandler.New(scanner, log, cfg.MaxPromptSizeBytes)

	app := fiber.New(fiber.Config{
		AppName: "dlpgateway",
	})

	app.Get("/health", h.Health)
	v1 := app.Group("/v1")
	v1.Post("/scan", h.Scan)

	addr := os.Getenv("DLPGATEWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	go func() {
		log.WithField("addr", addr).Info("starting dlpgateway")
		if err := app.Listen(addr); err != nil {
			log.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down dlpgateway")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("dlpgateway stopped")
}
