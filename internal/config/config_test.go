package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		configPathEnv, webhookEnv, minPriorityEnv, alertPriorityEnv, requireMethodeEnv,
		debugEnv, legacyDebugEnv, environmentEnv, legacyEnvEnv, logLevelEnv, httpAddrEnv,
		smtpServerEnv, smtpPortEnv, smtpUserEnv, smtpPassEnv, smtpFromEnv, smtpToEnv,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Environment != "testing" {
		t.Fatalf("unexpected environment: %s", cfg.Environment)
	}
	if cfg.DeliveryEnabled() {
		t.Fatal("delivery must be disabled by default")
	}
	opts := cfg.Options()
	if opts.MinPriority != nil {
		t.Fatalf("expected no minimum priority, got %d", *opts.MinPriority)
	}
	if opts.AlertPriority != 3 {
		t.Fatalf("expected alert priority 3, got %d", opts.AlertPriority)
	}
	if cfg.EmailSettings().Enabled() {
		t.Fatal("email mirror must be disabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(webhookEnv, "https://hooks.example.org/T000/B000/XXX")
	t.Setenv(minPriorityEnv, "3")
	t.Setenv(alertPriorityEnv, "2")
	t.Setenv(legacyEnvEnv, "production")
	t.Setenv(legacyDebugEnv, "true")
	t.Setenv(requireMethodeEnv, "true")

	cfg := Load()

	if !cfg.DeliveryEnabled() {
		t.Fatal("expected delivery in production with webhook")
	}
	opts := cfg.Options()
	if opts.MinPriority == nil || *opts.MinPriority != 3 {
		t.Fatalf("unexpected min priority: %v", opts.MinPriority)
	}
	if opts.AlertPriority != 2 {
		t.Fatalf("unexpected alert priority: %d", opts.AlertPriority)
	}
	if !opts.RequireMethode {
		t.Fatal("expected methode to be required")
	}
	if !cfg.Debug || cfg.Logging.Level != "debug" {
		t.Fatalf("debug flag not applied: debug=%v level=%s", cfg.Debug, cfg.Logging.Level)
	}
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv(minPriorityEnv, "high")

	cfg := Load()
	if cfg.Rules.MinPriority != nil {
		t.Fatalf("expected invalid MIN_PRIORITY to be ignored, got %d", *cfg.Rules.MinPriority)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "newswire.yaml")
	content := `
environment: production
webhook:
  url: https://hooks.example.org/file
  timeout: 2s
rules:
  minPriority: 4
logging:
  level: warn
watch:
  debounce: 1s
email:
  smtpServer: smtp.example.org
  smtpUser: wire
  smtpPass: secret
  fromEmail: wire@example.org
  toEmail: desk@example.org
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(configPathEnv, path)
	t.Setenv(webhookEnv, "https://hooks.example.org/env")

	cfg := Load()

	if cfg.Webhook.URL != "https://hooks.example.org/env" {
		t.Fatalf("env must override file, got %s", cfg.Webhook.URL)
	}
	if cfg.Webhook.Timeout != 2*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Webhook.Timeout)
	}
	if cfg.Rules.MinPriority == nil || *cfg.Rules.MinPriority != 4 {
		t.Fatalf("unexpected min priority: %v", cfg.Rules.MinPriority)
	}
	if cfg.Rules.AlertPriority != 3 {
		t.Fatalf("default alert priority lost: %d", cfg.Rules.AlertPriority)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected level: %s", cfg.Logging.Level)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Fatalf("unexpected debounce: %v", cfg.Watch.Debounce)
	}
	mail := cfg.EmailSettings()
	if !mail.Enabled() || mail.SMTPPort != 587 {
		t.Fatalf("unexpected email settings: %+v", mail)
	}
}
