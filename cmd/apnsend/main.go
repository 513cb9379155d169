// apnsend sends a single notification described by a yaml config file.
// It is a thin wrapper around pkg/apns for smoke testing credentials and
// payloads from the command line.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/tinywideclouds/go-apns/pkg/apns"
)

func main() {
	configPath := flag.String("config", "apnsend.yaml", "path to the yaml config file")
	dryRun := flag.Bool("dry-run", false, "build the notification but do not contact APNs")
	verbose := flag.Bool("verbose", false, "enable debug tracing of the request")
	flag.Parse()

	var logLevel slog.Level
	switch os.Getenv("LOG_LEVEL") {
	case "debug", "DEBUG":
		logLevel = slog.LevelDebug
	case "warn", "WARN":
		logLevel = slog.LevelWarn
	case "error", "ERROR":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})).With("service", "apnsend")
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath, logger)
	if err != nil {
		logger.Error("Config failed", "err", err)
		os.Exit(1)
	}

	notification, err := buildNotification(cfg)
	if err != nil {
		logger.Error("Invalid notification config", "err", err)
		os.Exit(1)
	}

	client, err := apns.NewClient(cfg.CertificatePath, cfg.CertificatePassphrase, apns.WithLogger(logger))
	if err != nil {
		logger.Error("Client setup failed", "err", err)
		os.Exit(1)
	}
	client.SetProduction(!cfg.Sandbox)
	client.SetVerbose(*verbose)
	if *dryRun {
		client.DisableDeliveryForTesting()
	}

	id, err := client.Send(context.Background(), notification)
	if err != nil {
		if apiErr, ok := apns.AsAPIError(err); ok {
			logger.Error("APNs rejected notification",
				"status", apiErr.Status,
				"reason", apiErr.Reason,
				"bad_device_token", apiErr.IsBadDeviceToken(),
			)
		} else {
			logger.Error("Delivery failed", "err", err)
		}
		os.Exit(1)
	}

	logger.Info("Notification delivered", "id", id, "dry_run", *dryRun)
}
