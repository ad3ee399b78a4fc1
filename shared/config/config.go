package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube    YouTubeConfig    `yaml:"youtube"`
	Scan       ScanConfig       `yaml:"scan"`
	Output     OutputConfig     `yaml:"output"`
	Email      EmailConfig      `yaml:"email"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Schedule   string           `yaml:"schedule"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
}

type ScanConfig struct {
	// Region is the two-letter region code searched for channels.
	Region string `yaml:"region"`
	// MaxChannels caps the number of records kept per scan.
	MaxChannels int `yaml:"max_channels"`
	// MaxSubscribers is the admission threshold: channels above it are
	// dropped. The original tool hard-coded 50000 as an upper bound even
	// though its stated intent was a lower bound; keep it configurable
	// instead of guessing.
	MaxSubscribers uint64 `yaml:"max_subscribers"`
}

type OutputConfig struct {
	DataDir  string `yaml:"data_dir"`
	Filename string `yaml:"filename"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username" env:"EMAIL_USERNAME"`
	Password   string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

// Enabled reports whether the digest email should be sent at all. The
// email block is optional; a scan with no SMTP server configured simply
// skips the digest.
func (e *EmailConfig) Enabled() bool {
	return e.SMTPServer != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	configFile := os.Getenv("CONFIG_FILE")
	explicit := configFile != ""
	if configFile == "" {
		configFile = "config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		// The tool is expected to run with no config file at all: region
		// and thresholds have defaults, the API key comes from the
		// environment. Only an explicitly requested file is required.
		if !os.IsNotExist(err) || explicit {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.Email.Username == "" {
		cfg.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if cfg.Email.Password == "" {
		cfg.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}

	if cfg.Scan.Region == "" {
		cfg.Scan.Region = "US"
	}
	if cfg.Scan.MaxChannels == 0 {
		cfg.Scan.MaxChannels = 50
	}
	if cfg.Scan.MaxSubscribers == 0 {
		cfg.Scan.MaxSubscribers = 50000
	}
	if cfg.Output.DataDir == "" {
		cfg.Output.DataDir = "data"
	}
	if cfg.Output.Filename == "" {
		cfg.Output.Filename = "channel_data.json"
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
	if cfg.Monitoring.HealthPort == 0 {
		cfg.Monitoring.HealthPort = 8080
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "0 0 6 * * *" // Daily at 6 AM
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or youtube.api_key)")
	}
	if c.Scan.MaxChannels < 1 {
		return fmt.Errorf("scan.max_channels must be positive, got %d", c.Scan.MaxChannels)
	}
	if c.Email.Enabled() {
		if c.Email.Username == "" || c.Email.Password == "" {
			return fmt.Errorf("email credentials are required when smtp_server is set (set EMAIL_USERNAME and EMAIL_PASSWORD)")
		}
		if c.Email.FromEmail == "" || c.Email.ToEmail == "" {
			return fmt.Errorf("email.from_email and email.to_email are required when smtp_server is set")
		}
	}
	return nil
}
