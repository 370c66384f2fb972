// Package config предоставялет структуры и функции для загрузки конфигурации сервиса.
//
// Конфигурация читается из YAML-файла, путь к которому задаётся переменной CONFIG_PATH.
// Если переменная не задана, все значения берутся из окружения или значений по умолчанию.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Режимы работы бэкенда.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// Драйверы хранилища аккаунтов.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	TimeZone        string `yaml:"time_zone" env:"TIME_ZONE" env-default:"Local"`
	HTTPServer      `yaml:"http_server"`
	Storage         `yaml:"storage"`
	RedisConnection `yaml:"redis_connection"`
	RabbitMQ        `yaml:"rabbitmq"`
	Backend         `yaml:"backend"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Port        string        `yaml:"port" env:"PORT" env-default:"5000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Storage структура для выбора и настройки хранилища аккаунтов
type Storage struct {
	Driver                  string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес отключает кэш.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	MaxRetries   int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env:"REDIS_TIMEOUT" env-default:"3s"`
	CacheTTL     time.Duration `yaml:"cache_ttl" env:"REDIS_CACHE_TTL" env-default:"10m"`
}

// RabbitMQ структура для настройки публикации событий.
// Пустой URL отключает публикацию.
type RabbitMQ struct {
	URLRabbitMQ string        `yaml:"url" env:"RABBITMQ_URL"`
	Exchange    string        `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"accounts"`
	Retries     int           `yaml:"retries" env:"RABBITMQ_RETRIES" env-default:"5"`
	RetryDelay  time.Duration `yaml:"retry_delay" env:"RABBITMQ_RETRY_DELAY" env-default:"2s"`
}

// Backend определяет, обслуживает ли процесс аккаунты сам или проксирует их во внешний API.
type Backend struct {
	Mode   string `yaml:"mode" env:"ACCOUNT_BACKEND" env-default:"local"`
	APIURL string `yaml:"api_url" env:"API_URL" env-default:"http://localhost:5000"`
}

// Load загружает конфиг из файла CONFIG_PATH (если задан) и переменных окружения.
func Load() (*Config, error) {
	const op = "config.Load"
	var cfg Config

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: file %s does not exist", op, configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Mode {
	case BackendLocal:
	case BackendRemote:
		if c.APIURL == "" {
			return errors.New("api_url is required in remote backend mode")
		}
	default:
		return fmt.Errorf("unknown backend mode %q", c.Mode)
	}

	switch c.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.StorageConnectionString == "" {
			return errors.New("storage_connection_string is required for postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}

	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Address возвращает адрес, на котором слушает HTTP-сервер.
func (c *Config) Address() string {
	return ":" + c.Port
}

// Location возвращает часовой пояс для календарной арифметики дат истечения.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time_zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"TimeZone: %s\n"+
			"HTTPServer:\n"+
			"  Port: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"  CacheTTL: %s\n"+
			"RabbitMQ:\n"+
			"  Exchange: %s\n"+
			"Backend:\n"+
			"  Mode: %s\n"+
			"  APIURL: %s\n",
		c.Env,
		c.TimeZone,
		c.Port,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Driver,
		c.AddressRedis,
		c.DB,
		c.CacheTTL,
		c.Exchange,
		c.Mode,
		c.APIURL,
	)
}
