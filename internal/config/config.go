package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Log           LogConfig
	UI            UIConfig
	Reminder      ReminderConfig
	PubSub        PubSubConfig
	Telegram      TelegramConfig
	Observability ObservabilityConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

type UIConfig struct {
	Theme string
}

type ReminderConfig struct {
	PollInterval         time.Duration
	DueTolerance         time.Duration
	SuppressionCacheSize int
}

type PubSubConfig struct {
	NatsURL         string
	GCloudProjectID string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

func (c *TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

type ObservabilityConfig struct {
	Environment    string
	MetricsEnabled bool
	OTLPEndpoint   string
	SamplingRate   float64
}

var defaults = map[string]any{
	"server_host":                     "0.0.0.0",
	"server_port":                     "8080",
	"server_read_timeout":             "30s",
	"server_write_timeout":            "30s",
	"database_driver":                 "",
	"postgres_dsn":                    "",
	"database_url":                    "",
	"sqlite_path":                     "medications.db",
	"db_max_open_conns":               "25",
	"db_max_idle_conns":               "25",
	"db_conn_max_lifetime":            "5m",
	"db_slow_threshold":               "200ms",
	"log_level":                       "info",
	"ui_theme":                        ThemeLight,
	"reminder_poll_interval":          "1m",
	"reminder_due_tolerance":          "",
	"reminder_suppression_cache_size": "1024",
	"nats_url":                        "",
	"gcloud_project_id":               "",
	"telegram_bot_token":              "",
	"telegram_chat_id":                "",
	"env":                             "local",
	"metrics_enabled":                 "true",
	"otel_exporter_otlp_endpoint":     "",
	"otel_sampling_rate":              "1.0",
}

// Load reads defaults, then the YAML file named by CONFIG_FILE, then the environment.
// Keys are the lower-cased environment variable names in every layer.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("invalid CONFIG_FILE: %w", err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	return parse(k)
}

// envKey keeps known, non-empty variables; empty ones fall back to lower layers.
func envKey(name, value string) (string, any) {
	key := strings.ToLower(name)
	if _, known := defaults[key]; !known || value == "" {
		return "", nil
	}

	return key, value
}

func parse(k *koanf.Koanf) (*Config, error) {
	p := parser{k: k}

	cfg := &Config{
		Server: ServerConfig{
			Host:         p.str("server_host"),
			Port:         p.intValue("server_port"),
			ReadTimeout:  p.durationValue("server_read_timeout"),
			WriteTimeout: p.durationValue("server_write_timeout"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(p.str("database_driver")),
			DSN:             p.str("postgres_dsn"),
			SQLitePath:      p.str("sqlite_path"),
			MaxOpenConns:    p.intValue("db_max_open_conns"),
			MaxIdleConns:    p.intValue("db_max_idle_conns"),
			ConnMaxLifetime: p.durationValue("db_conn_max_lifetime"),
			SlowThreshold:   p.durationValue("db_slow_threshold"),
		},
		Log: LogConfig{
			Level: p.str("log_level"),
		},
		UI: UIConfig{
			Theme: strings.ToLower(p.str("ui_theme")),
		},
		Reminder: ReminderConfig{
			PollInterval:         p.durationValue("reminder_poll_interval"),
			SuppressionCacheSize: p.intValue("reminder_suppression_cache_size"),
		},
		PubSub: PubSubConfig{
			NatsURL:         p.str("nats_url"),
			GCloudProjectID: p.str("gcloud_project_id"),
		},
		Telegram: TelegramConfig{
			BotToken: p.str("telegram_bot_token"),
		},
		Observability: ObservabilityConfig{
			Environment:    p.str("env"),
			MetricsEnabled: p.boolValue("metrics_enabled"),
			OTLPEndpoint:   p.str("otel_exporter_otlp_endpoint"),
			SamplingRate:   p.floatValue("otel_sampling_rate"),
		},
	}

	if p.str("reminder_due_tolerance") == "" {
		cfg.Reminder.DueTolerance = cfg.Reminder.PollInterval
	} else {
		cfg.Reminder.DueTolerance = p.durationValue("reminder_due_tolerance")
	}

	if p.str("telegram_chat_id") != "" {
		cfg.Telegram.ChatID = p.int64Value("telegram_chat_id")
	}

	if p.err != nil {
		return nil, p.err
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = p.str("database_url")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "":
		c.Database.Driver = DriverSQLite
		if c.Database.DSN != "" {
			c.Database.Driver = DriverPostgres
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("POSTGRES_DSN environment variable is required")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("invalid DATABASE_DRIVER: unsupported driver %q", c.Database.Driver)
	}

	if c.UI.Theme != ThemeLight && c.UI.Theme != ThemeDark {
		return fmt.Errorf("invalid UI_THEME: must be %q or %q", ThemeLight, ThemeDark)
	}

	if c.Reminder.PollInterval <= 0 {
		return fmt.Errorf("invalid REMINDER_POLL_INTERVAL: must be positive")
	}

	if c.Reminder.DueTolerance < 0 {
		return fmt.Errorf("invalid REMINDER_DUE_TOLERANCE: must not be negative")
	}

	if c.Reminder.SuppressionCacheSize <= 0 {
		return fmt.Errorf("invalid REMINDER_SUPPRESSION_CACHE_SIZE: must be positive")
	}

	if c.Telegram.Enabled() && c.Telegram.ChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	if c.Observability.SamplingRate < 0 || c.Observability.SamplingRate > 1 {
		return fmt.Errorf("invalid OTEL_SAMPLING_RATE: must be between 0 and 1")
	}

	return nil
}

// parser keeps the first conversion error so Load reports one key at a time.
type parser struct {
	k   *koanf.Koanf
	err error
}

func (p *parser) str(key string) string {
	return strings.TrimSpace(p.k.String(key))
}

func (p *parser) intValue(key string) int {
	v, err := strconv.Atoi(p.str(key))
	p.fail(key, err)

	return v
}

func (p *parser) int64Value(key string) int64 {
	v, err := strconv.ParseInt(p.str(key), 10, 64)
	p.fail(key, err)

	return v
}

func (p *parser) floatValue(key string) float64 {
	v, err := strconv.ParseFloat(p.str(key), 64)
	p.fail(key, err)

	return v
}

func (p *parser) boolValue(key string) bool {
	v, err := strconv.ParseBool(p.str(key))
	p.fail(key, err)

	return v
}

func (p *parser) durationValue(key string) time.Duration {
	v, err := time.ParseDuration(p.str(key))
	p.fail(key, err)

	return v
}

func (p *parser) fail(key string, err error) {
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid %s: %w", strings.ToUpper(key), err)
	}
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
