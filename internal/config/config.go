package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/service/costs"
)

// Драйверы хранилища сессий
const (
	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

// Драйверы доставки уведомлений
const (
	NotifyDriverNone    = "none"
	NotifyDriverWebhook = "webhook"
	NotifyDriverKafka   = "kafka"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Scheduling    SchedulingConfig    `toml:"scheduling"`
	Sessions      SessionsConfig      `toml:"sessions"`
	Notifications NotificationsConfig `toml:"notifications"`
	Costs         costs.Rates         `toml:"costs"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig путь к файлу политики расписания и часовой пояс
type SchedulingConfig struct {
	ConfigFile string `toml:"config_file"`
	Timezone   string `toml:"timezone"`
}

// SessionsConfig настройки хранилища сессий
type SessionsConfig struct {
	Driver        string `toml:"driver"`
	TTLMinutes    int    `toml:"ttl_minutes"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	KeyPrefix     string `toml:"key_prefix"`
}

// TTL время жизни сессии
func (s SessionsConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// NotificationsConfig настройки доставки уведомлений
type NotificationsConfig struct {
	Driver         string   `toml:"driver"`
	WebhookURL     string   `toml:"webhook_url"`
	KafkaBrokers   []string `toml:"kafka_brokers"`
	TopicPrefix    string   `toml:"topic_prefix"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
	QueueSize      int      `toml:"queue_size"`
}

// Timeout таймаут одной доставки
func (n NotificationsConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// Load читает конфигурацию из TOML файла
// Переменные окружения (в т.ч. из .env.local/.env) перекрывают значения из файла
func Load(path string) (*Config, error) {
	// .env файлы опциональны
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "appointment-assistant",
		},
		Sessions: SessionsConfig{
			Driver:     SessionDriverMemory,
			TTLMinutes: 60,
			KeyPrefix:  "session",
		},
		Notifications: NotificationsConfig{
			Driver:         NotifyDriverNone,
			TopicPrefix:    "assistant",
			TimeoutSeconds: 5,
			QueueSize:      256,
		},
		Costs: costs.DefaultRates(),
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Logs.Level, "LOG_LEVEL")
	setInt(&cfg.Server.HTTPPort, "HTTP_PORT")
	setString(&cfg.Scheduling.ConfigFile, "SCHEDULING_CONFIG")
	setString(&cfg.Scheduling.Timezone, "SCHEDULING_TIMEZONE")
	setString(&cfg.Sessions.RedisAddr, "REDIS_ADDR")
	setString(&cfg.Sessions.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.Notifications.WebhookURL, "NOTIFY_WEBHOOK_URL")
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Notifications.KafkaBrokers = splitList(brokers)
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}

	switch c.Sessions.Driver {
	case SessionDriverMemory:
	case SessionDriverRedis:
		if c.Sessions.RedisAddr == "" {
			return fmt.Errorf("%w: sessions.redis_addr is required for redis driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown sessions.driver %q", ErrInvalidConfig, c.Sessions.Driver)
	}

	switch c.Notifications.Driver {
	case NotifyDriverNone:
	case NotifyDriverWebhook:
		if c.Notifications.WebhookURL == "" {
			return fmt.Errorf("%w: notifications.webhook_url is required for webhook driver", ErrInvalidConfig)
		}
	case NotifyDriverKafka:
		if len(c.Notifications.KafkaBrokers) == 0 {
			return fmt.Errorf("%w: notifications.kafka_brokers is required for kafka driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown notifications.driver %q", ErrInvalidConfig, c.Notifications.Driver)
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
