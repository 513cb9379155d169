package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinywideclouds/go-apns/pkg/apns"
)

// yamlConfig mirrors the raw config file.
type yamlConfig struct {
	CertificatePath       string `yaml:"certificate_path"`
	CertificatePassphrase string `yaml:"certificate_passphrase"`
	Topic                 string `yaml:"topic"`
	DeviceToken           string `yaml:"device_token"`
	Sandbox               bool   `yaml:"sandbox"`

	Title      string `yaml:"title"`
	Body       string `yaml:"body"`
	Alert      string `yaml:"alert"`
	Badge      *int   `yaml:"badge"`
	Sound      string `yaml:"sound"`
	Category   string `yaml:"category"`
	ThreadID   string `yaml:"thread_id"`
	CollapseID string `yaml:"collapse_id"`
	Expiration *int64 `yaml:"expiration"`
	Priority   string `yaml:"priority"` // "low" or "high"
}

// loadConfig reads and parses the yaml config file, then applies
// environment variable overrides for the credential and target fields.
func loadConfig(path string, logger *slog.Logger) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg yamlConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Environment overrides, so credentials can stay out of the file.
	overrides := map[string]*string{
		"APNS_CERT_PATH":       &cfg.CertificatePath,
		"APNS_CERT_PASSPHRASE": &cfg.CertificatePassphrase,
		"APNS_TOPIC":           &cfg.Topic,
		"APNS_DEVICE_TOKEN":    &cfg.DeviceToken,
	}
	for key, field := range overrides {
		if val := os.Getenv(key); val != "" {
			logger.Debug("Overriding config value", "key", key, "source", "env")
			*field = val
		}
	}

	if cfg.CertificatePath == "" {
		return nil, errors.New("certificate_path is required (or set APNS_CERT_PATH)")
	}
	if cfg.Topic == "" {
		return nil, errors.New("topic is required (or set APNS_TOPIC)")
	}
	if cfg.DeviceToken == "" {
		return nil, errors.New("device_token is required (or set APNS_DEVICE_TOKEN)")
	}

	return &cfg, nil
}

// buildNotification maps the config onto a Notification via the builder.
func buildNotification(cfg *yamlConfig) (apns.Notification, error) {
	builder := apns.NewNotification(cfg.Topic, cfg.DeviceToken)

	if cfg.Alert != "" {
		builder.Alert(cfg.Alert)
	}
	if cfg.Title != "" {
		builder.Title(cfg.Title)
	}
	if cfg.Body != "" {
		builder.Body(cfg.Body)
	}
	if cfg.Badge != nil {
		builder.Badge(*cfg.Badge)
	}
	if cfg.Sound != "" {
		builder.Sound(cfg.Sound)
	}
	if cfg.Category != "" {
		builder.Category(cfg.Category)
	}
	if cfg.ThreadID != "" {
		builder.ThreadID(cfg.ThreadID)
	}
	if cfg.Expiration != nil {
		builder.Expiration(*cfg.Expiration)
	}

	switch cfg.Priority {
	case "":
	case "low":
		builder.Priority(apns.PriorityLow)
	case "high":
		builder.Priority(apns.PriorityHigh)
	default:
		return apns.Notification{}, fmt.Errorf("unknown priority %q (want low or high)", cfg.Priority)
	}

	if cfg.CollapseID != "" {
		collapseID, err := apns.NewCollapseID(cfg.CollapseID)
		if err != nil {
			return apns.Notification{}, fmt.Errorf("invalid collapse_id: %w", err)
		}
		builder.CollapseID(collapseID)
	}

	return builder.Build(), nil
}
