package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"NewswireNotifier/internal/infrastructure/email"
	"NewswireNotifier/internal/newsml"
)

const (
	productionEnvironment = "production"
	defaultEnvironment    = "testing"

	configPathEnv     = "NEWSWIRE_CONFIG"
	webhookEnv        = "SLACK_WEBHOOK"
	minPriorityEnv    = "MIN_PRIORITY"
	alertPriorityEnv  = "ALERT_PRIORITY"
	requireMethodeEnv = "REQUIRE_METHODE"
	debugEnv          = "DEBUG"
	legacyDebugEnv    = "NODE_DEBUG"
	environmentEnv    = "ENVIRONMENT"
	legacyEnvEnv      = "NODE_ENV"
	logLevelEnv       = "LOG_LEVEL"
	httpAddrEnv       = "HTTP_ADDR"
	smtpServerEnv     = "SMTP_SERVER"
	smtpPortEnv       = "SMTP_PORT"
	smtpUserEnv       = "SMTP_USER"
	smtpPassEnv       = "SMTP_PASS"
	smtpFromEnv       = "SMTP_FROM"
	smtpToEnv         = "SMTP_TO"
)

// Config holds high-level settings required across the application.
type Config struct {
	Environment string        `yaml:"environment"`
	Debug       bool          `yaml:"debug"`
	Webhook     WebhookConfig `yaml:"webhook"`
	Rules       RulesConfig   `yaml:"rules"`
	Logging     LoggingConfig `yaml:"logging"`
	HTTP        HTTPConfig    `yaml:"http"`
	Watch       WatchConfig   `yaml:"watch"`
	Email       EmailConfig   `yaml:"email"`
}

// WebhookConfig points at the chat incoming webhook.
type WebhookConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// RulesConfig drives the alert and threshold decisions.
type RulesConfig struct {
	MinPriority    *int `yaml:"minPriority"`
	AlertPriority  int  `yaml:"alertPriority"`
	RequireMethode bool `yaml:"requireMethode"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// HTTPConfig configures the bulletin intake server.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// WatchConfig configures the drop-directory watcher.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// EmailConfig enables the SMTP mirror when complete.
type EmailConfig struct {
	SMTPServer string `yaml:"smtpServer"`
	SMTPPort   int    `yaml:"smtpPort"`
	SMTPUser   string `yaml:"smtpUser"`
	SMTPPass   string `yaml:"smtpPass"`
	FromEmail  string `yaml:"fromEmail"`
	ToEmail    string `yaml:"toEmail"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Debug {
		cfg.Logging.Level = "debug"
	}

	return cfg
}

// Options projects the rules into the explicit value the transform consumes.
func (c Config) Options() newsml.Options {
	return newsml.Options{
		MinPriority:    c.Rules.MinPriority,
		AlertPriority:  c.Rules.AlertPriority,
		RequireMethode: c.Rules.RequireMethode,
	}
}

// DeliveryEnabled reports whether payloads are posted rather than only returned.
func (c Config) DeliveryEnabled() bool {
	return c.Environment == productionEnvironment && c.Webhook.URL != ""
}

// EmailSettings converts the mirror settings for the email notifier.
func (c Config) EmailSettings() email.Config {
	return email.Config{
		SMTPServer: c.Email.SMTPServer,
		SMTPPort:   c.Email.SMTPPort,
		SMTPUser:   c.Email.SMTPUser,
		SMTPPass:   c.Email.SMTPPass,
		FromEmail:  c.Email.FromEmail,
		ToEmail:    c.Email.ToEmail,
	}
}

func (c *Config) applyEnvOverrides() {
	if v := firstEnv(environmentEnv, legacyEnvEnv); v != "" {
		c.Environment = v
	}

	if v := firstEnv(debugEnv, legacyDebugEnv); v != "" {
		c.Debug = v == "true"
	}

	if v := os.Getenv(webhookEnv); v != "" {
		c.Webhook.URL = v
	}

	if v := os.Getenv(minPriorityEnv); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil {
			log.Printf("config: ignoring %s=%q: %v", minPriorityEnv, v, err)
		} else {
			c.Rules.MinPriority = &n
		}
	}

	if v := os.Getenv(alertPriorityEnv); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err != nil {
			log.Printf("config: ignoring %s=%q: %v", alertPriorityEnv, v, err)
		} else {
			c.Rules.AlertPriority = n
		}
	}

	if v := os.Getenv(requireMethodeEnv); v != "" {
		c.Rules.RequireMethode = v == "true"
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(httpAddrEnv); v != "" {
		c.HTTP.Addr = v
	}

	if v := os.Getenv(smtpServerEnv); v != "" {
		c.Email.SMTPServer = v
	}
	if v := os.Getenv(smtpPortEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Email.SMTPPort = n
		}
	}
	if v := os.Getenv(smtpUserEnv); v != "" {
		c.Email.SMTPUser = v
	}
	if v := os.Getenv(smtpPassEnv); v != "" {
		c.Email.SMTPPass = v
	}
	if v := os.Getenv(smtpFromEnv); v != "" {
		c.Email.FromEmail = v
	}
	if v := os.Getenv(smtpToEnv); v != "" {
		c.Email.ToEmail = v
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func mergeConfig(base, override Config) Config {
	if override.Environment != "" {
		base.Environment = override.Environment
	}
	if override.Debug {
		base.Debug = true
	}

	if override.Webhook.URL != "" {
		base.Webhook.URL = override.Webhook.URL
	}
	if override.Webhook.Timeout > 0 {
		base.Webhook.Timeout = override.Webhook.Timeout
	}

	if override.Rules.MinPriority != nil {
		base.Rules.MinPriority = override.Rules.MinPriority
	}
	if override.Rules.AlertPriority != 0 {
		base.Rules.AlertPriority = override.Rules.AlertPriority
	}
	if override.Rules.RequireMethode {
		base.Rules.RequireMethode = true
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.HTTP.Addr != "" {
		base.HTTP.Addr = override.HTTP.Addr
	}

	if override.Watch.Debounce > 0 {
		base.Watch.Debounce = override.Watch.Debounce
	}

	if override.Email.SMTPServer != "" {
		base.Email = override.Email
		if base.Email.SMTPPort == 0 {
			base.Email.SMTPPort = defaultConfig().Email.SMTPPort
		}
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Environment: defaultEnvironment,
		Webhook:     WebhookConfig{Timeout: 5 * time.Second},
		Rules:       RulesConfig{AlertPriority: newsml.DefaultAlertPriority},
		Logging:     LoggingConfig{Level: "info"},
		HTTP:        HTTPConfig{Addr: ":8080"},
		Watch:       WatchConfig{Debounce: 500 * time.Millisecond},
		Email:       EmailConfig{SMTPPort: 587},
	}
}
