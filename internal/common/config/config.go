// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Wizard        WizardConfig       `mapstructure:"wizard"`
	Gateway       GatewayConfig      `mapstructure:"gateway"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Notifications NotificationConfig `mapstructure:"notifications"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	MetricsAddress  string `mapstructure:"metrics_address"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

// WizardConfig carries the business constants the rule set is built from.
// They are configuration, not literals in the engine.
type WizardConfig struct {
	WordLimit     int   `mapstructure:"word_limit"`
	AgeMin        int   `mapstructure:"age_min"`
	AgeMax        int   `mapstructure:"age_max"`
	MaxPhotoBytes int64 `mapstructure:"max_photo_bytes"`
}

// GatewayConfig points at the external submission endpoint.
type GatewayConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NotificationConfig holds settings for terminal-transition notifications.
type NotificationConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	AWSRegion   string `mapstructure:"aws_region"`
	SenderEmail string `mapstructure:"sender_email"`
	SNSTopicARN string `mapstructure:"sns_topic_arn"`
}

func validateConfig(cfg *Config) error {
	if cfg.Wizard.WordLimit <= 0 {
		return fmt.Errorf("wizard.word_limit must be positive")
	}
	if cfg.Wizard.AgeMin <= 0 || cfg.Wizard.AgeMax < cfg.Wizard.AgeMin {
		return fmt.Errorf("wizard age bounds are invalid: [%d, %d]", cfg.Wizard.AgeMin, cfg.Wizard.AgeMax)
	}
	if cfg.Wizard.MaxPhotoBytes <= 0 {
		return fmt.Errorf("wizard.max_photo_bytes must be positive")
	}
	if cfg.Gateway.URL == "" {
		return fmt.Errorf("gateway.url is required")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "pageant-wizard"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.MetricsAddress == "" {
		cfg.Server.MetricsAddress = ":9090"
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Wizard.WordLimit == 0 {
		cfg.Wizard.WordLimit = 500
	}
	if cfg.Wizard.AgeMin == 0 {
		cfg.Wizard.AgeMin = 18
	}
	if cfg.Wizard.AgeMax == 0 {
		cfg.Wizard.AgeMax = 35
	}
	if cfg.Wizard.MaxPhotoBytes == 0 {
		cfg.Wizard.MaxPhotoBytes = 100 << 20 // 100MB
	}
	if cfg.Gateway.Timeout <= 0 {
		cfg.Gateway.Timeout = 30000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
