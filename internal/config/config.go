// config предоставляет структуру конфигурации бота знакомств
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pribylovaa/go-dating-bot/internal/models"
)

// Бэкенды антиспам-лимитера.
const (
	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Limits    LimitsConfig    `yaml:"limits"`
	Bounds    BoundsConfig    `yaml:"bounds"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Summary   SummaryConfig   `yaml:"summary"`
	Timeouts  TimeoutsConfig  `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера проб и метрик.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// PostgresConfig — настройки подключения к базе данных.
type PostgresConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// TelegramConfig — настройки клиента Bot API.
type TelegramConfig struct {
	Token       string        `yaml:"token" env:"BOT_TOKEN" env-required:"true"`
	PollTimeout time.Duration `yaml:"poll_timeout" env:"BOT_POLL_TIMEOUT" env-default:"60s"`
	Debug       bool          `yaml:"debug" env:"BOT_DEBUG" env-default:"false"`
}

// LimitsConfig — дневная квота исходящих запросов доступа.
type LimitsConfig struct {
	DailyRequests int `yaml:"daily_requests" env:"MAX_REQUESTS_PER_DAY" env-default:"10"`
	// Timezone задаёт границу суток для квоты (IANA-имя).
	Timezone string `yaml:"timezone" env:"QUOTA_TIMEZONE" env-default:"UTC"`
}

// Location возвращает часовой пояс квоты; при ошибке — UTC.
func (l LimitsConfig) Location() *time.Location {
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BoundsConfig — глобальные границы атрибутов анкеты.
type BoundsConfig struct {
	AgeMin    int `yaml:"age_min" env:"MIN_AGE" env-default:"18"`
	AgeMax    int `yaml:"age_max" env:"MAX_AGE" env-default:"100"`
	HeightMin int `yaml:"height_min" env:"MIN_HEIGHT" env-default:"140"`
	HeightMax int `yaml:"height_max" env:"MAX_HEIGHT" env-default:"220"`
	WeightMin int `yaml:"weight_min" env:"MIN_WEIGHT" env-default:"40"`
	WeightMax int `yaml:"weight_max" env:"MAX_WEIGHT" env-default:"200"`
}

// Model конвертирует конфиг в доменные границы.
func (b BoundsConfig) Model() models.Bounds {
	return models.Bounds{
		Age:    models.Range{Min: b.AgeMin, Max: b.AgeMax},
		Height: models.Range{Min: b.HeightMin, Max: b.HeightMax},
		Weight: models.Range{Min: b.WeightMin, Max: b.WeightMax},
	}
}

// RateLimitConfig — антиспам-лимитер действий пользователя.
type RateLimitConfig struct {
	Backend  string `yaml:"backend" env:"RATE_LIMIT_BACKEND" env-default:"memory"`
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`
	Prefix   string `yaml:"prefix" env:"RATE_LIMIT_PREFIX" env-default:"datingbot:rl:"`
}

// SummaryConfig — периодическая рассылка дневной сводки.
type SummaryConfig struct {
	Enabled  bool          `yaml:"enabled" env:"SUMMARY_ENABLED" env-default:"false"`
	Interval time.Duration `yaml:"interval" env:"SUMMARY_INTERVAL" env-default:"24h"`
}

// TimeoutsConfig — таймауты обработки.
type TimeoutsConfig struct {
	// Update — дедлайн обработки одного апдейта Telegram.
	Update time.Duration `yaml:"update" env:"UPDATE_TIMEOUT" env-default:"10s"`
	// Notify — дедлайн доставки одного уведомления.
	Notify time.Duration `yaml:"notify" env:"NOTIFY_TIMEOUT" env-default:"5s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	var (
		c   *Config
		err error
	)

	switch envPath := os.Getenv("CONFIG_PATH"); {
	case path != "":
		c, err = tryRead(path)
	case envPath != "":
		c, err = tryRead(envPath)
	default:
		if _, statErr := os.Stat("local.yaml"); statErr == nil {
			c, err = tryRead("local.yaml")
			break
		}

		if err = cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
		c = &cfg
	}

	if err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.Postgres.URL == "" {
		return fmt.Errorf("postgres.url is required")
	}
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if c.Limits.DailyRequests <= 0 {
		return fmt.Errorf("limits.daily_requests must be > 0")
	}
	if _, err := time.LoadLocation(c.Limits.Timezone); err != nil {
		return fmt.Errorf("limits.timezone: %w", err)
	}

	b := c.Bounds
	if b.AgeMin <= 0 || b.AgeMin >= b.AgeMax {
		return fmt.Errorf("bounds: age_min must be > 0 and < age_max")
	}
	if b.HeightMin <= 0 || b.HeightMin >= b.HeightMax {
		return fmt.Errorf("bounds: height_min must be > 0 and < height_max")
	}
	if b.WeightMin <= 0 || b.WeightMin >= b.WeightMax {
		return fmt.Errorf("bounds: weight_min must be > 0 and < weight_max")
	}

	switch c.RateLimit.Backend {
	case RateLimitMemory:
	case RateLimitRedis:
		if c.RateLimit.RedisURL == "" {
			return fmt.Errorf("rate_limit.redis_url is required for redis backend")
		}
	default:
		return fmt.Errorf("rate_limit.backend must be %q or %q", RateLimitMemory, RateLimitRedis)
	}

	if c.Summary.Enabled && c.Summary.Interval < time.Minute {
		return fmt.Errorf("summary.interval must be at least 1m")
	}
	if c.Timeouts.Update <= 0 || c.Timeouts.Notify <= 0 {
		return fmt.Errorf("timeouts must be > 0")
	}

	return nil
}
